package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aqa-studio/yt-assistant/internal/api/middleware"
	"github.com/aqa-studio/yt-assistant/internal/config"
	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Workspace{}, &models.Project{}, &models.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&models.Workspace{ID: models.DefaultWorkspaceID, Name: "Default"}).Error; err != nil {
		t.Fatalf("seed default workspace: %v", err)
	}

	cfg := &config.Config{Server: config.ServerConfig{Mode: "development"}}
	return NewRouter(cfg, db)
}

func TestRouter_RootAndHealth(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("root: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header on response")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/projects", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestRouter_WorkspaceEndpointsWired(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/workspaces", nil))
	if w.Code != http.StatusOK {
		t.Errorf("list workspaces: expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/workspaces/1", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("delete default workspace: expected 403, got %d", w.Code)
	}
}
