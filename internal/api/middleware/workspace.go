package middleware

import (
	"strconv"
	"strings"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/gin-gonic/gin"
)

// WorkspaceHeader carries the caller's workspace selection. Absent or
// malformed values fall back to the default workspace so pre-workspace
// clients keep working unchanged.
const WorkspaceHeader = "X-Workspace-Id"

// workspaceKey is the gin context key holding the resolved workspace id.
const workspaceKey = "workspaceID"

// ResolveWorkspaceID parses a workspace header value into an effective
// workspace id. It is a pure function of its input; existence of the
// workspace is validated downstream by the services.
func ResolveWorkspaceID(headerValue string) uint {
	trimmed := strings.TrimSpace(headerValue)
	if trimmed == "" {
		return models.DefaultWorkspaceID
	}
	id, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || id == 0 {
		return models.DefaultWorkspaceID
	}
	return uint(id)
}

// WorkspaceScope resolves the X-Workspace-Id header once per request and
// stores the effective workspace id on the context.
func WorkspaceScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(workspaceKey, ResolveWorkspaceID(c.GetHeader(WorkspaceHeader)))
		c.Next()
	}
}

// EffectiveWorkspace returns the workspace id resolved by WorkspaceScope.
// Handlers registered outside the scoped group get the default workspace.
func EffectiveWorkspace(c *gin.Context) uint {
	if v, exists := c.Get(workspaceKey); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return models.DefaultWorkspaceID
}
