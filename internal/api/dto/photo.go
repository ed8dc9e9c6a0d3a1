package dto

import "time"

type PhotoDTO struct {
	ID          uint64    `json:"id"`
	OwnerID     uint64    `json:"ownerId"`
	URLLink     string    `json:"urlLink"`
	Description *string   `json:"description"`
	Rating      *float64  `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UpdatePhotoDTO struct {
	Description string `json:"description" binding:"required,max=1000"`
}
