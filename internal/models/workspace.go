package models

import (
	"time"
)

// DefaultWorkspaceID is the workspace every request falls back to when no
// X-Workspace-Id header is supplied. It is seeded at migration time and can
// never be deleted.
const DefaultWorkspaceID uint = 1

// Workspace is a named container isolating a set of projects and templates.
type Workspace struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	Projects    []Project  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Templates   []Template `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// TableName ensures GORM uses the "workspaces" table
func (Workspace) TableName() string {
	return "workspaces"
}

// IsDefault reports whether this is the undeletable default workspace.
func (w *Workspace) IsDefault() bool {
	return w.ID == DefaultWorkspaceID
}
