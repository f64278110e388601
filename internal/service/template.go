package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"gorm.io/gorm"
)

const (
	maxTemplateNameLen    = 100
	maxTemplateContentLen = 1000
)

// TemplateService contains the business logic for template operations,
// including applying a template to a project's video title.
type TemplateService struct {
	db       *gorm.DB
	projects *ProjectService
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db, projects: NewProjectService(db)}
}

// TemplateCreate holds parameters for creating a template.
type TemplateCreate struct {
	Type    models.TemplateType
	Name    string
	Content string
}

// TemplateUpdate holds the optional fields of a template update.
type TemplateUpdate struct {
	Type    *models.TemplateType
	Name    *string
	Content *string
}

// Create validates and creates a new template in the given workspace.
func (s *TemplateService) Create(workspaceID uint, req TemplateCreate) (*models.Template, error) {
	if err := s.ensureWorkspace(workspaceID); err != nil {
		return nil, err
	}
	if !req.Type.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid template type %q", req.Type)}
	}
	name, err := trimRequired(req.Name, "template name", maxTemplateNameLen)
	if err != nil {
		return nil, err
	}
	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}
	if err := s.checkDuplicateContent(workspaceID, req.Type, content, 0); err != nil {
		return nil, err
	}

	template := models.Template{
		Type:        req.Type,
		Name:        name,
		Content:     content,
		WorkspaceID: workspaceID,
	}
	if err := s.db.Create(&template).Error; err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}
	return &template, nil
}

// List returns templates in the workspace, newest first, optionally filtered
// by type.
func (s *TemplateService) List(workspaceID uint, typeFilter models.TemplateType) ([]models.Template, error) {
	query := s.db.Where("workspace_id = ?", workspaceID)
	if typeFilter != "" {
		if !typeFilter.Valid() {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid template type %q", typeFilter)}
		}
		query = query.Where("type = ?", typeFilter)
	}

	var templates []models.Template
	if err := query.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// Get returns a single template. A template belonging to a different
// workspace is reported as not found.
func (s *TemplateService) Get(workspaceID, id uint) (*models.Template, error) {
	var template models.Template
	if err := s.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Template with id %d not found", id)}
		}
		return nil, err
	}
	return &template, nil
}

// Update applies a partial update to a template. Changing the type or content
// re-checks the content dedupe against the rest of the workspace.
func (s *TemplateService) Update(workspaceID, id uint, update TemplateUpdate) (*models.Template, error) {
	template, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}

	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid template type %q", *update.Type)}
		}
	}
	if update.Name != nil {
		name, err := trimRequired(*update.Name, "template name", maxTemplateNameLen)
		if err != nil {
			return nil, err
		}
		template.Name = name
	}

	newType := template.Type
	if update.Type != nil {
		newType = *update.Type
	}
	newContent := template.Content
	if update.Content != nil {
		content, err := validateContent(*update.Content)
		if err != nil {
			return nil, err
		}
		newContent = content
	}
	if update.Type != nil || update.Content != nil {
		if err := s.checkDuplicateContent(workspaceID, newType, newContent, template.ID); err != nil {
			return nil, err
		}
	}
	template.Type = newType
	template.Content = newContent

	if err := s.db.Save(template).Error; err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return template, nil
}

// Delete permanently removes a template. Projects populated from it are
// unaffected; no provenance link is kept.
func (s *TemplateService) Delete(workspaceID, id uint) error {
	template, err := s.Get(workspaceID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(template).Error
}

// Apply renders the template's content with the supplied placeholder values
// and writes the result into the target project's video title, overwriting
// any existing title. The template itself is never mutated.
func (s *TemplateService) Apply(workspaceID, templateID, projectID uint, values map[string]string) (*models.Project, error) {
	template, err := s.Get(workspaceID, templateID)
	if err != nil {
		return nil, err
	}
	rendered := Render(template.Content, values)
	return s.projects.SetVideoTitle(workspaceID, projectID, rendered)
}

// Render substitutes each [key] placeholder in content with the matching
// value. Unmatched placeholders are left verbatim, brackets included, so a
// missing value is visible in the output rather than silently dropped.
func Render(content string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); {
		open := strings.IndexByte(content[i:], '[')
		if open < 0 {
			b.WriteString(content[i:])
			break
		}
		open += i
		end := strings.IndexByte(content[open:], ']')
		if end < 0 {
			b.WriteString(content[i:])
			break
		}
		end += open

		b.WriteString(content[i:open])
		key := content[open+1 : end]
		if value, ok := values[key]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(content[open : end+1])
		}
		i = end + 1
	}
	return b.String()
}

// Placeholders returns the placeholder keys found in content, in order of
// appearance, without deduplication.
func Placeholders(content string) []string {
	var keys []string
	for i := 0; i < len(content); {
		open := strings.IndexByte(content[i:], '[')
		if open < 0 {
			break
		}
		open += i
		end := strings.IndexByte(content[open:], ']')
		if end < 0 {
			break
		}
		end += open
		keys = append(keys, content[open+1:end])
		i = end + 1
	}
	return keys
}

// validateContent trims the content and requires at least one non-blank
// [placeholder] token; a template without placeholders is just a constant
// string and almost certainly a user mistake.
func validateContent(content string) (string, error) {
	trimmed, err := trimRequired(content, "template content", maxTemplateContentLen)
	if err != nil {
		return "", err
	}
	for _, key := range Placeholders(trimmed) {
		if strings.TrimSpace(key) != "" {
			return trimmed, nil
		}
	}
	return "", &ValidationError{Message: "template content must contain at least one [placeholder]"}
}

// ensureWorkspace verifies the target workspace exists before writing into it.
func (s *TemplateService) ensureWorkspace(workspaceID uint) error {
	var count int64
	if err := s.db.Model(&models.Workspace{}).Where("id = ?", workspaceID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Message: fmt.Sprintf("Workspace with id %d not found", workspaceID)}
	}
	return nil
}

// checkDuplicateContent rejects content already used by another template of
// the same type in the workspace, compared case-insensitively.
func (s *TemplateService) checkDuplicateContent(workspaceID uint, templateType models.TemplateType, content string, excludeID uint) error {
	query := s.db.Model(&models.Template{}).
		Where("workspace_id = ? AND type = ? AND LOWER(content) = LOWER(?)", workspaceID, templateType, content)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	var existing models.Template
	if err := query.First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return &ConflictError{Message: fmt.Sprintf("Template with this content already exists (ID: %d)", existing.ID)}
}
