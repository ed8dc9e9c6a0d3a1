package model

import "time"

type Photo struct {
	ID          uint64    `gorm:"primaryKey"`
	OwnerID     uint64    `gorm:"not null;index:idx_owner_id" json:"ownerId"`
	URLLink     string    `gorm:"type:varchar(255);not null" json:"urlLink"`
	Description *string   `gorm:"type:varchar(1000)" json:"description"`
	Rating      *float64  `gorm:"type:decimal(4,2)" json:"rating"` // round(mean(ratings), 2), NULL until first rating
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
}

func (Photo) TableName() string {
	return "photos"
}
