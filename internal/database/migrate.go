package database

import (
	"photostudio_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate migrates all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Media{},
	)
}
