package dto

import "time"

type AddRatingDTO struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type RatingDTO struct {
	PhotoID   uint64    `json:"photoId"`
	UserID    uint64    `json:"userId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type AverageRatingDTO struct {
	PhotoID uint64   `json:"photoId"`
	Rating  *float64 `json:"rating"`
}
