package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/internal/models"
)

// RunMigrations brings the schema up to date. Both Postgres and the
// SQLite databases used in tests go through gorm auto-migration.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserAllergen{},
		&models.UserConcern{},
		&models.Product{},
		&models.RoutineItem{},
		&models.ScanReport{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
