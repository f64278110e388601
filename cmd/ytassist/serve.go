package main

import (
	"fmt"
	"os"

	"github.com/aqa-studio/yt-assistant/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

// @title AQA YouTube Assistant API
// @version 1.0
// @description Backend API for YouTube video planning assistant
// @host localhost:8000
// @BasePath /
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the YouTube Assistant API server",
	Long: `Start the API server backed by SQLite (default) or PostgreSQL.

Examples:
  ytassist serve                # Run with defaults (SQLite, port 8000)
  ytassist serve --port 8080    # Override port

Environment variables:
  YTASSIST_SERVER_PORT       Server port (default: 8000)
  YTASSIST_DATABASE_DRIVER   Database driver: sqlite, postgres
  YTASSIST_DATABASE_DSN      Database connection string
  YTASSIST_LOG_FORMAT        Log format: text, json
  YTASSIST_LOG_LEVEL         Log level: debug, info, warn, error`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to run server on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := server.Config{
		Port:    servePort,
		Version: Version,
	}

	if err := server.RunWithSignalHandling(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
