package model

import "time"

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Username  string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_email" json:"email"`
	Password  string  `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL *string `gorm:"type:varchar(255)" json:"avatarUrl"`
	IsAdmin   bool    `gorm:"type:tinyint(1);not null;default:0" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
