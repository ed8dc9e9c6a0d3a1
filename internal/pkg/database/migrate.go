package database

import (
	"photoshare/internal/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all persisted entities.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Photo{},
		&model.Comment{},
		&model.Subscription{},
		&model.Reaction{},
		&model.PhotoReaction{},
		&model.PhotoRating{},
	)
}
