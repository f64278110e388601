package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB creates an in-memory DB, migrates models, and seeds the default
// workspace the way a fresh server start would.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if err := db.AutoMigrate(&models.Workspace{}, &models.Project{}, &models.Template{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ws := models.Workspace{ID: models.DefaultWorkspaceID, Name: "Default"}
	if err := db.Create(&ws).Error; err != nil {
		t.Fatalf("seed default workspace: %v", err)
	}
	return db
}

func strptr(s string) *string { return &s }

func TestWorkspaceCreate_TrimsName(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	ws, err := svc.Create("  Client Work  ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Name != "Client Work" {
		t.Errorf("expected trimmed name, got %q", ws.Name)
	}
	if ws.ID == 0 {
		t.Error("expected assigned id")
	}
}

func TestWorkspaceCreate_BlankDescriptionBecomesNull(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	ws, err := svc.Create("Client Work", strptr("   "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Description != nil {
		t.Errorf("expected nil description, got %q", *ws.Description)
	}
}

func TestWorkspaceCreate_Validation(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	cases := []struct {
		name        string
		wsName      string
		description *string
	}{
		{"empty name", "", nil},
		{"whitespace name", "   ", nil},
		{"name too long", strings.Repeat("x", 101), nil},
		{"description too long", "ok", strptr(strings.Repeat("d", 501))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.wsName, tc.description)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestWorkspaceCreate_DuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	if _, err := svc.Create("Client Work", nil); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create("client work", nil)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestWorkspaceList_IncludesProjectCounts(t *testing.T) {
	db := testDB(t)
	svc := NewWorkspaceService(db)
	projects := NewProjectService(db)

	ws, err := svc.Create("Client Work", nil)
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	for _, name := range []string{"Intro Video", "Outro Video"} {
		if _, err := projects.Create(ws.ID, ProjectCreate{Name: name}); err != nil {
			t.Fatalf("create project %q: %v", name, err)
		}
	}

	summaries, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 workspaces, got %d", len(summaries))
	}
	// id order: default first
	if summaries[0].ID != models.DefaultWorkspaceID || summaries[0].ProjectCount != 0 {
		t.Errorf("default workspace: got id=%d count=%d", summaries[0].ID, summaries[0].ProjectCount)
	}
	if summaries[1].ID != ws.ID || summaries[1].ProjectCount != 2 {
		t.Errorf("client workspace: got id=%d count=%d", summaries[1].ID, summaries[1].ProjectCount)
	}
}

func TestWorkspaceGet_NotFound(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	_, err := svc.Get(999)
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestWorkspaceUpdate_RenameAndClearDescription(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	ws, err := svc.Create("Client Work", strptr("billable"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ws.ID, WorkspaceUpdate{
		Name:        strptr("Agency Work"),
		Description: strptr(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Agency Work" {
		t.Errorf("expected renamed workspace, got %q", updated.Name)
	}
	if updated.Description != nil {
		t.Errorf("expected cleared description, got %q", *updated.Description)
	}
}

func TestWorkspaceUpdate_KeepingOwnNameIsNotAConflict(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	ws, err := svc.Create("Client Work", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ws.ID, WorkspaceUpdate{Name: strptr("Client Work")}); err != nil {
		t.Fatalf("renaming to own name should succeed, got %v", err)
	}
}

func TestWorkspaceDelete_DefaultIsForbidden(t *testing.T) {
	db := testDB(t)
	svc := NewWorkspaceService(db)

	// Forbidden regardless of project count
	err := svc.Delete(models.DefaultWorkspaceID)
	var forbiddenErr *ForbiddenError
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}

	projects := NewProjectService(db)
	if _, err := projects.Create(models.DefaultWorkspaceID, ProjectCreate{Name: "Intro Video"}); err != nil {
		t.Fatalf("create project: %v", err)
	}
	err = svc.Delete(models.DefaultWorkspaceID)
	if !errors.As(err, &forbiddenErr) {
		t.Fatalf("expected ForbiddenError with projects present, got %v", err)
	}
}

func TestWorkspaceDelete_NonEmptyIsAConflict(t *testing.T) {
	db := testDB(t)
	svc := NewWorkspaceService(db)
	projects := NewProjectService(db)

	empty, err := svc.Create("Empty", nil)
	if err != nil {
		t.Fatalf("create empty workspace: %v", err)
	}
	busy, err := svc.Create("Busy", nil)
	if err != nil {
		t.Fatalf("create busy workspace: %v", err)
	}
	if _, err := projects.Create(busy.ID, ProjectCreate{Name: "Intro Video"}); err != nil {
		t.Fatalf("create project: %v", err)
	}

	if err := svc.Delete(empty.ID); err != nil {
		t.Fatalf("deleting empty workspace should succeed, got %v", err)
	}

	err = svc.Delete(busy.ID)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError for non-empty workspace, got %v", err)
	}
}

func TestWorkspaceDelete_RemovesItsTemplates(t *testing.T) {
	db := testDB(t)
	svc := NewWorkspaceService(db)
	templates := NewTemplateService(db)

	ws, err := svc.Create("Client Work", nil)
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	if _, err := templates.Create(ws.ID, TemplateCreate{
		Type:    models.TemplateTypeTitle,
		Name:    "Tools roundup",
		Content: "Best [technology] Tools",
	}); err != nil {
		t.Fatalf("create template: %v", err)
	}

	if err := svc.Delete(ws.ID); err != nil {
		t.Fatalf("delete workspace: %v", err)
	}

	var count int64
	if err := db.Model(&models.Template{}).Where("workspace_id = ?", ws.ID).Count(&count).Error; err != nil {
		t.Fatalf("count templates: %v", err)
	}
	if count != 0 {
		t.Errorf("expected workspace templates to be removed, found %d", count)
	}
}

func TestWorkspaceDelete_NotFound(t *testing.T) {
	svc := NewWorkspaceService(testDB(t))

	err := svc.Delete(999)
	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
