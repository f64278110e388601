package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aqa-studio/yt-assistant/internal/config"
	"github.com/aqa-studio/yt-assistant/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New creates a new database connection based on configuration
func New(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		// WAL mode and a busy timeout for better concurrency
		dialector = sqlite.Open(cfg.DSN + "?_journal_mode=WAL&_busy_timeout=5000")
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// WAL mode allows concurrent reads but only one writer; a single
		// connection avoids SQLITE_BUSY on the write path.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		slog.Info("Configured SQLite with WAL mode and single connection")
	} else {
		maxIdleConns := cfg.MaxIdleConns
		if maxIdleConns <= 0 {
			maxIdleConns = 10
		}
		maxOpenConns := cfg.MaxOpenConns
		if maxOpenConns <= 0 {
			maxOpenConns = 100
		}
		connMaxLifetime := cfg.ConnMaxLifetime
		if connMaxLifetime <= 0 {
			connMaxLifetime = 60
		}

		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

		slog.Info("Configured PostgreSQL connection pool",
			"max_idle_conns", maxIdleConns,
			"max_open_conns", maxOpenConns,
			"conn_max_lifetime_min", connMaxLifetime)
	}

	return db, nil
}

// Migrate runs database migrations for all models
func Migrate(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.Workspace{},
		&models.Project{},
		&models.Template{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedDefaultWorkspace(db); err != nil {
		return fmt.Errorf("failed to seed default workspace: %w", err)
	}

	return nil
}

// seedDefaultWorkspace ensures the default workspace (id 1) exists. Projects
// created without an explicit workspace land here, so it must be present
// before the first request is served.
func seedDefaultWorkspace(db *gorm.DB) error {
	var existing models.Workspace
	result := db.Where("id = ?", models.DefaultWorkspaceID).First(&existing)
	if result.Error == gorm.ErrRecordNotFound {
		desc := "Default workspace for your video projects"
		ws := models.Workspace{
			ID:          models.DefaultWorkspaceID,
			Name:        "Default",
			Description: &desc,
		}
		if err := db.Create(&ws).Error; err != nil {
			return err
		}
		slog.Info("Created default workspace", "id", ws.ID)
		return nil
	}
	return result.Error
}
