package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/gin-gonic/gin"
)

func TestResolveWorkspaceID(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   uint
	}{
		{"absent", "", models.DefaultWorkspaceID},
		{"whitespace", "   ", models.DefaultWorkspaceID},
		{"not a number", "abc", models.DefaultWorkspaceID},
		{"zero", "0", models.DefaultWorkspaceID},
		{"negative", "-3", models.DefaultWorkspaceID},
		{"decimal", "1.5", models.DefaultWorkspaceID},
		{"valid", "12", 12},
		{"valid with padding", " 7 ", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveWorkspaceID(tc.header); got != tc.want {
				t.Errorf("ResolveWorkspaceID(%q) = %d, want %d", tc.header, got, tc.want)
			}
		})
	}
}

func TestWorkspaceScope_StoresResolvedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got uint
	router := gin.New()
	router.Use(WorkspaceScope())
	router.GET("/probe", func(c *gin.Context) {
		got = EffectiveWorkspace(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(WorkspaceHeader, "42")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if got != 42 {
		t.Errorf("expected workspace 42, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)
	if got != models.DefaultWorkspaceID {
		t.Errorf("expected default workspace, got %d", got)
	}
}

func TestEffectiveWorkspace_OutsideScopeFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := EffectiveWorkspace(c); got != models.DefaultWorkspaceID {
		t.Errorf("expected default workspace, got %d", got)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "client-supplied" {
		t.Errorf("expected client-supplied id to be echoed, got %q", got)
	}
}
