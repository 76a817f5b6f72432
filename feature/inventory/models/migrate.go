package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the tables, indexes and foreign key if they are missing.
// It is safe to run on every startup.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if err := db.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
