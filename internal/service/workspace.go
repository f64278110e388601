package service

import (
	"errors"
	"fmt"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"gorm.io/gorm"
)

const (
	maxWorkspaceNameLen = 100
	maxWorkspaceDescLen = 500
)

// WorkspaceService contains the business logic for workspace operations.
type WorkspaceService struct {
	db *gorm.DB
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(db *gorm.DB) *WorkspaceService {
	return &WorkspaceService{db: db}
}

// WorkspaceUpdate holds the optional fields of a workspace update. Nil fields
// are left untouched.
type WorkspaceUpdate struct {
	Name        *string
	Description *string
}

// WorkspaceSummary is a workspace plus its project count, as returned by List.
type WorkspaceSummary struct {
	models.Workspace
	ProjectCount int64 `json:"project_count"`
}

// Create validates and creates a new workspace.
func (s *WorkspaceService) Create(name string, description *string) (*models.Workspace, error) {
	trimmed, err := trimRequired(name, "workspace name", maxWorkspaceNameLen)
	if err != nil {
		return nil, err
	}
	desc, err := normalizeOptional(description, "workspace description", maxWorkspaceDescLen)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicateName(trimmed, 0); err != nil {
		return nil, err
	}

	ws := models.Workspace{Name: trimmed, Description: desc}
	if err := s.db.Create(&ws).Error; err != nil {
		// Unique index backstop for a create racing this one
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: fmt.Sprintf("A workspace named %q already exists", trimmed)}
		}
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &ws, nil
}

// List returns all workspaces in id order, each with its project count.
func (s *WorkspaceService) List() ([]WorkspaceSummary, error) {
	var workspaces []models.Workspace
	if err := s.db.Order("id ASC").Find(&workspaces).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		WorkspaceID uint
		Count       int64
	}
	var rows []countRow
	if err := s.db.Model(&models.Project{}).
		Select("workspace_id, COUNT(*) as count").
		Group("workspace_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.WorkspaceID] = r.Count
	}

	summaries := make([]WorkspaceSummary, 0, len(workspaces))
	for _, ws := range workspaces {
		summaries = append(summaries, WorkspaceSummary{Workspace: ws, ProjectCount: counts[ws.ID]})
	}
	return summaries, nil
}

// Get returns a single workspace by ID.
func (s *WorkspaceService) Get(id uint) (*models.Workspace, error) {
	var ws models.Workspace
	if err := s.db.Where("id = ?", id).First(&ws).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Workspace with id %d not found", id)}
		}
		return nil, err
	}
	return &ws, nil
}

// Update applies a partial update to a workspace.
func (s *WorkspaceService) Update(id uint, update WorkspaceUpdate) (*models.Workspace, error) {
	ws, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		trimmed, err := trimRequired(*update.Name, "workspace name", maxWorkspaceNameLen)
		if err != nil {
			return nil, err
		}
		if err := s.checkDuplicateName(trimmed, ws.ID); err != nil {
			return nil, err
		}
		ws.Name = trimmed
	}
	if update.Description != nil {
		desc, err := normalizeOptional(update.Description, "workspace description", maxWorkspaceDescLen)
		if err != nil {
			return nil, err
		}
		ws.Description = desc
	}

	if err := s.db.Save(ws).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: fmt.Sprintf("A workspace named %q already exists", ws.Name)}
		}
		return nil, fmt.Errorf("update workspace: %w", err)
	}
	return ws, nil
}

// Delete removes a workspace. The default workspace can never be deleted, and
// a workspace that still contains projects must be emptied first. Templates
// belonging to the workspace are removed along with it.
func (s *WorkspaceService) Delete(id uint) error {
	if id == models.DefaultWorkspaceID {
		return &ForbiddenError{Message: "The default workspace cannot be deleted"}
	}

	ws, err := s.Get(id)
	if err != nil {
		return err
	}

	var projectCount int64
	if err := s.db.Model(&models.Project{}).Where("workspace_id = ?", ws.ID).Count(&projectCount).Error; err != nil {
		return err
	}
	if projectCount > 0 {
		return &ConflictError{Message: fmt.Sprintf("Workspace %q still contains %d project(s)", ws.Name, projectCount)}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", ws.ID).Delete(&models.Template{}).Error; err != nil {
			return err
		}
		return tx.Delete(ws).Error
	})
}

// checkDuplicateName rejects a name already used by another workspace,
// compared case-insensitively. excludeID skips the workspace being updated.
func (s *WorkspaceService) checkDuplicateName(name string, excludeID uint) error {
	query := s.db.Model(&models.Workspace{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Message: fmt.Sprintf("A workspace named %q already exists", name)}
	}
	return nil
}
