package model

import "time"

type PhotoRating struct {
	ID        uint64    `gorm:"primaryKey"`
	PhotoID   uint64    `gorm:"not null;uniqueIndex:idx_photo_user,priority:1" json:"photoId"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_photo_user,priority:2" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	CreatedAt time.Time `json:"createdAt"`
}

func (PhotoRating) TableName() string {
	return "photo_ratings"
}
