package service

import (
	"context"
	"photoshare/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionFixture(t *testing.T) (SubscriptionService, *gorm.DB) {
	db := setupRankingDB(t)
	seedUser(t, db, 1, "alice")
	seedUser(t, db, 2, "bob")
	seedUser(t, db, 3, "carol")
	svc := NewSubscriptionService(repository.NewSubscriptionRepo(db), repository.NewUserRepo(db))
	return svc, db
}

func TestSubscribe(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, 2, 1))

	subscribed, err := svc.IsSubscribed(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, subscribed)

	// one-directional
	subscribed, err = svc.IsSubscribed(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscribe_Self(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)

	err := svc.Subscribe(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrSubscribeSelf)
}

func TestSubscribe_TargetMissing(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)

	err := svc.Subscribe(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubscribe_Duplicate(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, 2, 1))
	err := svc.Subscribe(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrSubscriptionExists)
}

func TestUnsubscribe(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, 2, 1))
	require.NoError(t, svc.Unsubscribe(ctx, 2, 1))

	subscribed, err := svc.IsSubscribed(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, subscribed)

	err = svc.Unsubscribe(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestGetSubscribersAndCount(t *testing.T) {
	svc, _ := newSubscriptionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Subscribe(ctx, 2, 1))
	require.NoError(t, svc.Subscribe(ctx, 3, 1))
	require.NoError(t, svc.Subscribe(ctx, 1, 2))

	subscribers, err := svc.GetSubscribers(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, subscribers, 2)

	subscriptions, err := svc.GetSubscriptions(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "bob", subscriptions[0].Username)

	count, err := svc.GetSubscriberCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
