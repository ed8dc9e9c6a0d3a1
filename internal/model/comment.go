package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PhotoID   uint64    `gorm:"not null;index:idx_photo_id" json:"photoId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
