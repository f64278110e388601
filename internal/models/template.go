package models

import (
	"time"
)

// TemplateType distinguishes title templates from description templates
type TemplateType string

const (
	TemplateTypeTitle       TemplateType = "title"
	TemplateTypeDescription TemplateType = "description"
)

// Valid reports whether t is a known template type.
func (t TemplateType) Valid() bool {
	return t == TemplateTypeTitle || t == TemplateTypeDescription
}

// Template is a reusable string pattern with bracket-delimited placeholders,
// e.g. "Best [technology] Tools for [year]". Applying a template substitutes
// placeholder values into a project's video title and never mutates the
// template itself.
type Template struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Type        TemplateType `gorm:"size:20;not null;index" json:"type"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Content     string       `gorm:"size:1000;not null" json:"content"`
	WorkspaceID uint         `gorm:"not null;default:1;index" json:"workspace_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName ensures GORM uses the "templates" table
func (Template) TableName() string {
	return "templates"
}
