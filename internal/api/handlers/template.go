package handlers

import (
	"net/http"

	"github.com/aqa-studio/yt-assistant/internal/api/middleware"
	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/aqa-studio/yt-assistant/internal/service"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	svc *service.TemplateService
}

func NewTemplateHandler(svc *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// ListTemplates godoc
// @Summary List templates in the effective workspace
// @Tags templates
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param type query string false "Filter by template type (title or description)"
// @Success 200 {array} models.Template
// @Failure 400 {object} ErrorResponse
// @Router /api/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	typeFilter := models.TemplateType(c.Query("type"))

	templates, err := h.svc.List(middleware.EffectiveWorkspace(c), typeFilter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Create a new title or description template
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param template body CreateTemplateRequest true "Template details"
// @Success 201 {object} models.Template
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.svc.Create(middleware.EffectiveWorkspace(c), service.TemplateCreate{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate godoc
// @Summary Update a template
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Template ID"
// @Param template body UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} models.Template
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	template, err := h.svc.Update(middleware.EffectiveWorkspace(c), id, service.TemplateUpdate{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteTemplate godoc
// @Summary Delete a template
// @Tags templates
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Template ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
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

// ApplyTemplate godoc
// @Summary Apply a template to a project's video title
// @Description Substitutes [placeholder] tokens in the template content with
// @Description the supplied values and overwrites the project's video title.
// @Description Placeholders without a supplied value are left verbatim.
// @Tags templates
// @Accept json
// @Produce json
// @Param X-Workspace-Id header int false "Workspace scope (default 1)"
// @Param id path int true "Template ID"
// @Param request body ApplyTemplateRequest true "Target project and placeholder values"
// @Success 200 {object} models.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/templates/{id}/apply [post]
func (h *TemplateHandler) ApplyTemplate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	project, err := h.svc.Apply(middleware.EffectiveWorkspace(c), id, req.ProjectID, req.Variables)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// --- Request types ---

type CreateTemplateRequest struct {
	Type    models.TemplateType `json:"type" binding:"required"`
	Name    string              `json:"name" binding:"required"`
	Content string              `json:"content" binding:"required"`
}

type UpdateTemplateRequest struct {
	Type    *models.TemplateType `json:"type"`
	Name    *string              `json:"name"`
	Content *string              `json:"content"`
}

type ApplyTemplateRequest struct {
	ProjectID uint              `json:"project_id" binding:"required"`
	Variables map[string]string `json:"variables"`
}
