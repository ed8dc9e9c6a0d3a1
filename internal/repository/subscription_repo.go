package repository

import (
	"context"
	"photoshare/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepo interface {
	CreateSubscription(ctx context.Context, sub *model.Subscription) error
	DeleteSubscription(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error)
	CheckSubscriptionExists(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error)
	GetSubscribers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetSubscriptions(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetSubscriberCount(ctx context.Context, userID uint64) (int64, error)
}

type SubscriptionRepoImpl struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &SubscriptionRepoImpl{db}
}

func (s *SubscriptionRepoImpl) CreateSubscription(ctx context.Context, sub *model.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *SubscriptionRepoImpl) DeleteSubscription(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, subscribedToID).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *SubscriptionRepoImpl) CheckSubscriptionExists(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, subscribedToID).
		Count(&count).Error
	return count > 0, err
}

func (s *SubscriptionRepoImpl) GetSubscribers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.subscribed_to_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SubscriptionRepoImpl) GetSubscriptions(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscribed_to_id = users.id").
		Where("subscriptions.subscriber_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *SubscriptionRepoImpl) GetSubscriberCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed_to_id = ?", userID).
		Count(&count).Error
	return count, err
}
