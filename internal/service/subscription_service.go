package service

import (
	"context"
	"photoshare/internal/model"
	"photoshare/internal/repository"
	"time"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, subscriberID, subscribedToID uint64) error
	Unsubscribe(ctx context.Context, subscriberID, subscribedToID uint64) error
	IsSubscribed(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error)
	GetSubscribers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetSubscriptions(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetSubscriberCount(ctx context.Context, userID uint64) (int64, error)
}

type subscriptionServiceImpl struct {
	subscriptionRepo repository.SubscriptionRepo
	userRepo         repository.UserRepo
}

func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepo, userRepo repository.UserRepo) SubscriptionService {
	return &subscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, subscriberID, subscribedToID uint64) error {
	if subscriberID == subscribedToID {
		return ErrSubscribeSelf
	}

	target, err := s.userRepo.GetUserByID(ctx, subscribedToID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	exists, err := s.subscriptionRepo.CheckSubscriptionExists(ctx, subscriberID, subscribedToID)
	if err != nil {
		return err
	}
	if exists {
		return ErrSubscriptionExists
	}

	err = s.subscriptionRepo.CreateSubscription(ctx, &model.Subscription{
		SubscriberID:   subscriberID,
		SubscribedToID: subscribedToID,
		CreatedAt:      time.Now(),
	})
	if isDuplicateKey(err) {
		return ErrSubscriptionExists
	}
	return err
}

func (s *subscriptionServiceImpl) Unsubscribe(ctx context.Context, subscriberID, subscribedToID uint64) error {
	deleted, err := s.subscriptionRepo.DeleteSubscription(ctx, subscriberID, subscribedToID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (s *subscriptionServiceImpl) IsSubscribed(ctx context.Context, subscriberID, subscribedToID uint64) (bool, error) {
	return s.subscriptionRepo.CheckSubscriptionExists(ctx, subscriberID, subscribedToID)
}

func (s *subscriptionServiceImpl) GetSubscribers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	return s.subscriptionRepo.GetSubscribers(ctx, userID, limit, offset)
}

func (s *subscriptionServiceImpl) GetSubscriptions(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	return s.subscriptionRepo.GetSubscriptions(ctx, userID, limit, offset)
}

func (s *subscriptionServiceImpl) GetSubscriberCount(ctx context.Context, userID uint64) (int64, error) {
	return s.subscriptionRepo.GetSubscriberCount(ctx, userID)
}
