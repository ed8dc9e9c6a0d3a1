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

func newRatingFixture(t *testing.T) (RatingService, *gorm.DB) {
	db := setupRankingDB(t)
	seedUser(t, db, 1, "alice")
	seedUser(t, db, 2, "bob")
	seedUser(t, db, 3, "carol")
	seedPhoto(t, db, 100, 1)
	svc := NewRatingService(repository.NewRatingRepo(db), repository.NewPhotoRepo(db))
	return svc, db
}

func photoRating(t *testing.T, db *gorm.DB, photoID uint64) *float64 {
	t.Helper()
	var photo model.Photo
	require.NoError(t, db.First(&photo, photoID).Error)
	return photo.Rating
}

func TestAddRating_UpdatesMean(t *testing.T) {
	svc, db := newRatingFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddRating(ctx, 100, 2, 3))
	rating := photoRating(t, db, 100)
	require.NotNil(t, rating)
	assert.Equal(t, 3.0, *rating)

	require.NoError(t, svc.AddRating(ctx, 100, 3, 5))
	rating = photoRating(t, db, 100)
	require.NotNil(t, rating)
	assert.Equal(t, 4.0, *rating)
}

func TestAddRating_RoundsToTwoDecimals(t *testing.T) {
	svc, db := newRatingFixture(t)
	ctx := context.Background()

	// mean of 1 and 2 is 1.5; mean of 1, 2, 2 is 1.6666... -> 1.67
	require.NoError(t, svc.AddRating(ctx, 100, 1, 1))
	require.NoError(t, svc.AddRating(ctx, 100, 2, 2))
	require.NoError(t, svc.AddRating(ctx, 100, 3, 2))

	rating := photoRating(t, db, 100)
	require.NotNil(t, rating)
	assert.Equal(t, 1.67, *rating)
}

func TestAddRating_Conflict(t *testing.T) {
	svc, db := newRatingFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddRating(ctx, 100, 2, 3))

	err := svc.AddRating(ctx, 100, 2, 5)
	assert.ErrorIs(t, err, ErrRatingExists)

	// the rejected rating must not leak into the mean
	rating := photoRating(t, db, 100)
	require.NotNil(t, rating)
	assert.Equal(t, 3.0, *rating)

	var count int64
	require.NoError(t, db.Model(&model.PhotoRating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddRating_OutOfRange(t *testing.T) {
	svc, _ := newRatingFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddRating(ctx, 100, 2, 0), ErrRatingOutOfRange)
	assert.ErrorIs(t, svc.AddRating(ctx, 100, 2, 6), ErrRatingOutOfRange)
}

func TestAddRating_PhotoNotFound(t *testing.T) {
	svc, _ := newRatingFixture(t)

	err := svc.AddRating(context.Background(), 999, 2, 3)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestDeleteRating_UpdatesMean(t *testing.T) {
	svc, db := newRatingFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddRating(ctx, 100, 2, 3))
	require.NoError(t, svc.AddRating(ctx, 100, 3, 5))

	require.NoError(t, svc.DeleteRating(ctx, 100, 3))
	rating := photoRating(t, db, 100)
	require.NotNil(t, rating)
	assert.Equal(t, 3.0, *rating)
}

func TestDeleteRating_LastOneClearsMean(t *testing.T) {
	svc, db := newRatingFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AddRating(ctx, 100, 2, 4))
	require.NoError(t, svc.DeleteRating(ctx, 100, 2))

	assert.Nil(t, photoRating(t, db, 100))
}

func TestDeleteRating_NotFound(t *testing.T) {
	svc, _ := newRatingFixture(t)

	err := svc.DeleteRating(context.Background(), 100, 2)
	assert.ErrorIs(t, err, ErrRatingNotFound)
}

func TestGetAverageRating(t *testing.T) {
	svc, _ := newRatingFixture(t)
	ctx := context.Background()

	rating, err := svc.GetAverageRating(ctx, 100)
	require.NoError(t, err)
	assert.Nil(t, rating)

	require.NoError(t, svc.AddRating(ctx, 100, 2, 5))
	rating, err = svc.GetAverageRating(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 5.0, *rating)

	_, err = svc.GetAverageRating(ctx, 999)
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}
