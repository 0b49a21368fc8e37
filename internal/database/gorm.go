package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/docflow-app/docflow/internal/config"
	"github.com/docflow-app/docflow/internal/models"
)

// Connect opens the configured relational database and runs migrations.
// sqlite is the development default; postgres is intended for production.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("database migrate: %w", err)
	}

	return db, nil
}

// Ping verifies the underlying connection, used by the readiness endpoint.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
