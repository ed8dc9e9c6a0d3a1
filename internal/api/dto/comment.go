package dto

import "time"

type CommentCreateDTO struct {
	Content string `json:"content" binding:"required,max=1000"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	PhotoID   uint64    `json:"photoId"`
	UserID    uint64    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
