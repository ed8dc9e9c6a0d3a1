package model

import "time"

// PhotoReaction holds the single active reaction a user has placed on a
// photo. The composite primary key enforces at most one row per
// (photo_id, user_id) pair.
type PhotoReaction struct {
	PhotoID    uint64    `gorm:"primaryKey" json:"photoId"`
	UserID     uint64    `gorm:"primaryKey" json:"userId"`
	ReactionID uint64    `gorm:"not null;index:idx_reaction_id" json:"reactionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PhotoReaction) TableName() string {
	return "photo_reactions"
}
