package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aqa-studio/yt-assistant/internal/service"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleServiceError maps service-layer errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		return
	}
	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Message})
		return
	}
	var conflictErr *service.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflictErr.Message})
		return
	}
	var forbiddenErr *service.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: forbiddenErr.Message})
		return
	}
	slog.Error("unhandled service error", "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// idParam parses the :id route parameter. The second return value reports
// whether parsing succeeded; on failure a 404 has already been written, since
// a non-numeric id can never name an existing resource.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return 0, false
	}
	return uint(id), true
}
