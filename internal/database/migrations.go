package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Durga-Vijaya-Ramaraju-Pamidi/Task-Trackr/internal/models"
)

// Migrate creates or updates the schema for all stores. It is idempotent and
// is run explicitly once at process start rather than as a hidden side
// effect of opening the database.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Message{},
		&models.LogEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}
