package service

import (
	"context"
	"photoshare/internal/pkg/security"
	"photoshare/internal/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) UserService {
	db := setupRankingDB(t)
	return NewUserService(repository.NewUserRepo(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cretpass", user.Password)

	token, loggedIn, err := svc.Login(ctx, "alice", "s3cretpass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrUsernameExist)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrEmailExist)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	// unknown users fail the same way as a bad password
	_, _, err = svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc := newUserFixture(t)

	_, err := svc.GetUserByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
