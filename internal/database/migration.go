package database

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/prepr3ss/prepress-web-center-sub001/internal/database/migration"
)

// RunMigrations applies pending SQL migrations from migrationsDir at boot.
func RunMigrations(log *zap.Logger, migrationsDir string) error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	migrationsURL := "file://" + absPath

	return migration.Migrate(dbURL, migrationsURL, true, log)
}
