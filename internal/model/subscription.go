package model

import "time"

type Subscription struct {
	SubscriberID   uint64    `gorm:"primaryKey" json:"subscriberId"`
	SubscribedToID uint64    `gorm:"primaryKey;index:idx_subscribed_to_id" json:"subscribedToId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
