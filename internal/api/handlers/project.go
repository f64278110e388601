package handlers

import (
	"net/http"

	"github.com/aqa-studio/yt-assistant/internal/api/middleware"
	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/aqa-studio/yt-assistant/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects godoc
// @Summary List all projects in the effective workspace, newest first
// @Tags projects
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Success 200 {array} models.Project
// @Failure 500 {object} ErrorResponse
// @Router /api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(middleware.EffectiveWorkspace(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a new video project
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param project body CreateProjectRequest true "Project details"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.svc.Create(middleware.EffectiveWorkspace(c), service.ProjectCreate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
// @Summary Get a project by id
// @Tags projects
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	project, err := h.svc.Get(middleware.EffectiveWorkspace(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary Update a project's fields
// @Tags projects
// @Accept json
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Project ID"
// @Param project body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.svc.Update(middleware.EffectiveWorkspace(c), id, service.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		VideoTitle:  req.VideoTitle,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Permanently delete a project
// @Tags projects
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(middleware.EffectiveWorkspace(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Request types ---

type CreateProjectRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description *string              `json:"description"`
	Status      models.ProjectStatus `json:"status"`
}

type UpdateProjectRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *models.ProjectStatus `json:"status"`
	VideoTitle  *string               `json:"video_title"`
}
