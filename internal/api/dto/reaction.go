package dto

import "time"

type ToggleReactionDTO struct {
	ReactionID uint64 `json:"reactionId" binding:"required"`
}

type CreateReactionDTO struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// ReactionDTO is the caller's active reaction on a photo.
type ReactionDTO struct {
	ReactionID uint64    `json:"reactionId"`
	Name       string    `json:"name"`
	PhotoID    uint64    `json:"photoId"`
	UserID     uint64    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReactionItemDTO is one entry of the reaction catalog.
type ReactionItemDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ReactionCountDTO struct {
	ReactionID uint64 `json:"reactionId"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

// ReactionStateDTO renders the UI badge payload: per-reaction counts plus
// the caller's own active reaction (nil when none).
type ReactionStateDTO struct {
	Counts  []*ReactionCountDTO `json:"counts"`
	Current *ReactionDTO        `json:"current"`
}
