package service

import (
	"context"
	"photoshare/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentFixture(t *testing.T) (CommentService, *gorm.DB) {
	db := setupRankingDB(t)
	seedUser(t, db, 1, "alice")
	seedUser(t, db, 2, "bob")
	seedPhoto(t, db, 100, 1)
	svc := NewCommentService(repository.NewCommentRepo(db), repository.NewPhotoRepo(db))
	return svc, db
}

func TestCreateComment(t *testing.T) {
	svc, _ := newCommentFixture(t)
	ctx := context.Background()

	comment, err := svc.CreateComment(ctx, 2, 100, "great shot")
	require.NoError(t, err)
	require.NotZero(t, comment.ID)
	assert.Equal(t, uint64(2), comment.UserID)

	comments, err := svc.GetCommentsByPhoto(ctx, 100, 10, 0)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "great shot", comments[0].Content)
}

func TestCreateComment_PhotoNotFound(t *testing.T) {
	svc, _ := newCommentFixture(t)

	_, err := svc.CreateComment(context.Background(), 2, 999, "hello")
	assert.ErrorIs(t, err, ErrPhotoNotFound)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	svc, _ := newCommentFixture(t)
	ctx := context.Background()

	comment, err := svc.CreateComment(ctx, 2, 100, "first")
	require.NoError(t, err)

	// a stranger cannot delete it
	err = svc.DeleteComment(ctx, 1, false, comment.ID)
	assert.ErrorIs(t, err, UnauthorizedError)

	// the author can
	require.NoError(t, svc.DeleteComment(ctx, 2, false, comment.ID))

	err = svc.DeleteComment(ctx, 2, false, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_AdminOverride(t *testing.T) {
	svc, _ := newCommentFixture(t)
	ctx := context.Background()

	comment, err := svc.CreateComment(ctx, 2, 100, "spam")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteComment(ctx, 1, true, comment.ID))
}
