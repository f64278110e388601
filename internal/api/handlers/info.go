package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is set via ldflags at build time
var Version = "dev"

// Root godoc
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AQA YouTube Assistant API",
		"version": Version,
		"status":  "running",
	})
}

// HealthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
