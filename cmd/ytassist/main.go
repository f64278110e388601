package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ytassist",
	Short: "AQA YouTube Assistant - organize YouTube video production",
	Long: `AQA YouTube Assistant keeps a content creator's video projects,
workspaces, and title/description templates in one place, served
over a JSON REST API.`,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
