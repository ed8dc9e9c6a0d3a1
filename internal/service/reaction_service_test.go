package service

import (
	"context"
	"photoshare/internal/model"
	"photoshare/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReactionFixture(t *testing.T) (ReactionService, *gorm.DB) {
	db := setupRankingDB(t)
	svc := NewReactionService(repository.NewReactionRepo(db), repository.NewPhotoRepo(db))
	return svc, db
}

func seedReactionWorld(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedUser(t, db, 1, "alice")
	seedUser(t, db, 2, "bob")
	seedPhoto(t, db, 100, 1)
	require.NoError(t, db.Create(&model.Reaction{ID: 1, Name: "like"}).Error)
	require.NoError(t, db.Create(&model.Reaction{ID: 2, Name: "love"}).Error)
}

func TestToggle_InsertThenOff(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)
	ctx := context.Background()

	// absent -> insert
	current, err := svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, uint64(1), current.ReactionID)
	assert.Equal(t, "like", current.Name)

	// same reaction -> toggle off
	current, err = svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, current)

	var count int64
	require.NoError(t, db.Model(&model.PhotoReaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestToggle_ReplaceKeepsSingleRow(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)

	// different reaction -> replace
	current, err := svc.Toggle(ctx, 100, 2, 2)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, uint64(2), current.ReactionID)
	assert.Equal(t, "love", current.Name)

	var rows []*model.PhotoReaction
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, uint64(2), rows[0].ReactionID)
}

func TestToggle_PhotoNotFound(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)

	_, err := svc.Toggle(context.Background(), 999, 2, 1)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestToggle_ReactionNotFound(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)

	_, err := svc.Toggle(context.Background(), 100, 2, 999)
	assert.ErrorIs(t, err, ErrReactionNotFound)
}

func TestToggle_IndependentUsers(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)
	seedUser(t, db, 3, "carol")
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 100, 3, 2)
	require.NoError(t, err)

	// bob toggling off leaves carol's reaction alone
	current, err := svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)
	assert.Nil(t, current)

	carol, err := svc.CurrentForUserAndPhoto(ctx, 100, 3)
	require.NoError(t, err)
	require.NotNil(t, carol)
	assert.Equal(t, uint64(2), carol.ReactionID)
}

func TestCountsForPhoto(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)
	seedUser(t, db, 3, "carol")
	seedUser(t, db, 4, "dora")
	ctx := context.Background()

	_, err := svc.Toggle(ctx, 100, 2, 1)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 100, 3, 1)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, 100, 4, 2)
	require.NoError(t, err)

	counts, err := svc.CountsForPhoto(ctx, 100)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "like", counts[0].Name)
	assert.Equal(t, int64(2), counts[0].Count)
	assert.Equal(t, "love", counts[1].Name)
	assert.Equal(t, int64(1), counts[1].Count)
}

func TestCurrentForUserAndPhoto_None(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)

	current, err := svc.CurrentForUserAndPhoto(context.Background(), 100, 2)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestCreateReaction_DuplicateName(t *testing.T) {
	svc, db := newReactionFixture(t)
	seedReactionWorld(t, db)
	ctx := context.Background()

	_, err := svc.CreateReaction(ctx, "like")
	assert.ErrorIs(t, err, ErrReactionNameExist)

	reactions, err := svc.ListReactions(ctx)
	require.NoError(t, err)
	assert.Len(t, reactions, 2)
}
