package service

import (
	"errors"
	"fmt"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"gorm.io/gorm"
)

const (
	maxProjectNameLen = 255
	maxProjectDescLen = 2000
	maxVideoTitleLen  = 500
)

// ProjectService contains the business logic for project operations. Every
// operation is scoped by an effective workspace id resolved from the request.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectCreate holds parameters for creating a project.
type ProjectCreate struct {
	Name        string
	Description *string
	Status      models.ProjectStatus
}

// ProjectUpdate holds the optional fields of a project update. Nil fields are
// left untouched; blank optional strings clear the stored value.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
	VideoTitle  *string
}

// Create validates and creates a new project in the given workspace.
func (s *ProjectService) Create(workspaceID uint, req ProjectCreate) (*models.Project, error) {
	if err := s.ensureWorkspace(workspaceID); err != nil {
		return nil, err
	}

	name, err := trimRequired(req.Name, "project name", maxProjectNameLen)
	if err != nil {
		return nil, err
	}
	desc, err := normalizeOptional(req.Description, "project description", maxProjectDescLen)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusPlanned
	}
	if !status.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid project status %q", status)}
	}

	if err := s.checkDuplicateName(workspaceID, name, 0); err != nil {
		return nil, err
	}

	project := models.Project{
		Name:        name,
		Description: desc,
		Status:      status,
		WorkspaceID: workspaceID,
	}
	if err := s.db.Create(&project).Error; err != nil {
		// Unique index backstop for a create racing this one
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: fmt.Sprintf("A project named %q already exists", name)}
		}
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// List returns all projects in the workspace, newest first. Volumes are tens
// of projects per year, so there is no pagination.
func (s *ProjectService) List(workspaceID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Get returns a single project. A project belonging to a different workspace
// is reported as not found.
func (s *ProjectService) Get(workspaceID, id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Project with id %d not found", id)}
		}
		return nil, err
	}
	return &project, nil
}

// Update applies a partial update to a project and refreshes its updated_at.
func (s *ProjectService) Update(workspaceID, id uint, update ProjectUpdate) (*models.Project, error) {
	project, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name, err := trimRequired(*update.Name, "project name", maxProjectNameLen)
		if err != nil {
			return nil, err
		}
		if err := s.checkDuplicateName(workspaceID, name, project.ID); err != nil {
			return nil, err
		}
		project.Name = name
	}
	if update.Description != nil {
		desc, err := normalizeOptional(update.Description, "project description", maxProjectDescLen)
		if err != nil {
			return nil, err
		}
		project.Description = desc
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid project status %q", *update.Status)}
		}
		project.Status = *update.Status
	}
	if update.VideoTitle != nil {
		title, err := normalizeOptional(update.VideoTitle, "video title", maxVideoTitleLen)
		if err != nil {
			return nil, err
		}
		project.VideoTitle = title
	}

	if err := s.db.Save(project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: fmt.Sprintf("A project named %q already exists", project.Name)}
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete permanently removes a project. There is no soft delete.
func (s *ProjectService) Delete(workspaceID, id uint) error {
	project, err := s.Get(workspaceID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(project).Error
}

// SetVideoTitle overwrites the project's video title unconditionally and
// persists it. Callers are expected to have confirmed an intentional
// overwrite of a non-empty title before calling.
func (s *ProjectService) SetVideoTitle(workspaceID, id uint, title string) (*models.Project, error) {
	project, err := s.Get(workspaceID, id)
	if err != nil {
		return nil, err
	}
	normalized, err := normalizeOptional(&title, "video title", maxVideoTitleLen)
	if err != nil {
		return nil, err
	}
	project.VideoTitle = normalized
	if err := s.db.Save(project).Error; err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// ensureWorkspace verifies the target workspace exists before writing into it.
func (s *ProjectService) ensureWorkspace(workspaceID uint) error {
	var count int64
	if err := s.db.Model(&models.Workspace{}).Where("id = ?", workspaceID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Message: fmt.Sprintf("Workspace with id %d not found", workspaceID)}
	}
	return nil
}

// checkDuplicateName rejects a name already used by another project in the
// same workspace, compared case-insensitively. excludeID skips the project
// being updated so renaming a project to its own name never conflicts.
func (s *ProjectService) checkDuplicateName(workspaceID uint, name string, excludeID uint) error {
	query := s.db.Model(&models.Project{}).
		Where("workspace_id = ? AND LOWER(name) = LOWER(?)", workspaceID, name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Message: fmt.Sprintf("A project named %q already exists", name)}
	}
	return nil
}
