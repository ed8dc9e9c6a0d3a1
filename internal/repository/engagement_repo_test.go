package repository

import (
	"context"
	"photoshare/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEngagementDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Photo{}, &model.Comment{},
		&model.Subscription{}, &model.Reaction{},
		&model.PhotoReaction{}, &model.PhotoRating{},
	))
	return db
}

func TestListUsers_OrderedByID(t *testing.T) {
	db := setupEngagementDB(t)
	repo := NewEngagementRepo(db)

	for _, u := range []model.User{
		{ID: 3, Username: "carol", Email: "carol@example.com", Password: "hash"},
		{ID: 1, Username: "alice", Email: "alice@example.com", Password: "hash"},
		{ID: 2, Username: "bob", Email: "bob@example.com", Password: "hash"},
	} {
		require.NoError(t, db.Create(&u).Error)
	}

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []uint64{1, 2, 3}, []uint64{users[0].ID, users[1].ID, users[2].ID})
	assert.Equal(t, "alice", users[0].Username)
}

func TestCollectCounts(t *testing.T) {
	db := setupEngagementDB(t)
	repo := NewEngagementRepo(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "hash"}).Error)
	require.NoError(t, db.Create(&model.User{ID: 2, Username: "bob", Email: "bob@example.com", Password: "hash"}).Error)

	// alice owns two photos, bob owns one
	require.NoError(t, db.Create(&model.Photo{ID: 100, OwnerID: 1, URLLink: "u"}).Error)
	require.NoError(t, db.Create(&model.Photo{ID: 101, OwnerID: 1, URLLink: "u"}).Error)
	require.NoError(t, db.Create(&model.Photo{ID: 102, OwnerID: 2, URLLink: "u"}).Error)

	// comments and reactions only count on photos the user owns
	require.NoError(t, db.Create(&model.Comment{PhotoID: 100, UserID: 2, Content: "nice"}).Error)
	require.NoError(t, db.Create(&model.Comment{PhotoID: 101, UserID: 2, Content: "wow"}).Error)
	require.NoError(t, db.Create(&model.Comment{PhotoID: 102, UserID: 1, Content: "thanks"}).Error)

	require.NoError(t, db.Create(&model.Reaction{ID: 1, Name: "like"}).Error)
	require.NoError(t, db.Create(&model.PhotoReaction{PhotoID: 100, UserID: 2, ReactionID: 1}).Error)

	require.NoError(t, db.Create(&model.Subscription{SubscriberID: 2, SubscribedToID: 1}).Error)

	counts, err := repo.CollectCounts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &model.EngagementCounts{
		SubscribersCount: 1,
		CommentsCount:    2,
		ReactionsCount:   1,
		PhotosCount:      2,
	}, counts)

	counts, err = repo.CollectCounts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &model.EngagementCounts{
		CommentsCount: 1,
		PhotosCount:   1,
	}, counts)
}

func TestCollectCounts_UnknownUserYieldsZeros(t *testing.T) {
	db := setupEngagementDB(t)
	repo := NewEngagementRepo(db)

	counts, err := repo.CollectCounts(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, &model.EngagementCounts{}, counts)
}
