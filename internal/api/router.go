package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aqa-studio/yt-assistant/internal/api/handlers"
	"github.com/aqa-studio/yt-assistant/internal/api/middleware"
	"github.com/aqa-studio/yt-assistant/internal/config"
	"github.com/aqa-studio/yt-assistant/internal/service"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware())

	wsHandler := handlers.NewWorkspaceHandler(service.NewWorkspaceService(db))
	projectHandler := handlers.NewProjectHandler(service.NewProjectService(db))
	templateHandler := handlers.NewTemplateHandler(service.NewTemplateService(db))

	router.GET("/", handlers.Root)

	api := router.Group("/api")
	api.Use(middleware.WorkspaceScope())
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/workspaces", wsHandler.ListWorkspaces)
		api.POST("/workspaces", wsHandler.CreateWorkspace)
		api.GET("/workspaces/:id", wsHandler.GetWorkspace)
		api.PUT("/workspaces/:id", wsHandler.UpdateWorkspace)
		api.DELETE("/workspaces/:id", wsHandler.DeleteWorkspace)

		api.GET("/projects", projectHandler.ListProjects)
		api.POST("/projects", projectHandler.CreateProject)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.GET("/templates", templateHandler.ListTemplates)
		api.POST("/templates", templateHandler.CreateTemplate)
		api.PUT("/templates/:id", templateHandler.UpdateTemplate)
		api.DELETE("/templates/:id", templateHandler.DeleteTemplate)
		api.POST("/templates/:id/apply", templateHandler.ApplyTemplate)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
			"request_id", middleware.GetRequestID(c),
		)
	}
}

// corsMiddleware adds CORS headers so the Next.js frontend can talk to the API
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.WorkspaceHeader+", "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
