package models

import (
	"time"
)

// ProjectStatus represents the production stage of a video project
type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "planned"
	StatusScripting  ProjectStatus = "scripting"
	StatusFilming    ProjectStatus = "filming"
	StatusInProgress ProjectStatus = "in_progress"
	StatusEditing    ProjectStatus = "editing"
	StatusPublished  ProjectStatus = "published"
)

// Valid reports whether s is one of the known production stages. Transitions
// between stages are deliberately unrestricted; only membership is checked.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusScripting, StatusFilming, StatusInProgress, StatusEditing, StatusPublished:
		return true
	}
	return false
}

// Project is a single YouTube video's production record.
//
// Name uniqueness is case-insensitive within a workspace. SQLite cannot
// enforce that at the schema level, so the service layer performs the
// case-insensitive check and the composite unique index below acts as the
// backstop for exact-match races.
type Project struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"size:255;not null;uniqueIndex:idx_projects_workspace_name" json:"name"`
	Description *string       `gorm:"size:2000" json:"description"`
	Status      ProjectStatus `gorm:"size:50;not null;default:'planned'" json:"status"`
	VideoTitle  *string       `gorm:"size:500" json:"video_title"`
	WorkspaceID uint          `gorm:"not null;default:1;index;uniqueIndex:idx_projects_workspace_name" json:"workspace_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName ensures GORM uses the "projects" table
func (Project) TableName() string {
	return "projects"
}
