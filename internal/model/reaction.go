package model

import "time"

type Reaction struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_reaction_name" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Reaction) TableName() string {
	return "reactions"
}
