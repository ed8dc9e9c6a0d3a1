package service

import (
	"context"
	"photoshare/internal/model"
	"photoshare/internal/pkg/consts"
	"photoshare/internal/pkg/redis"
	"photoshare/internal/pkg/security"
	"photoshare/internal/repository"
	"time"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	Logout(ctx context.Context, tokenString string) error
	GetUserByID(ctx context.Context, userID uint64) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExist
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExist
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrUsernameExist
		}
		return nil, err
	}
	return user, nil
}

func (s *userServiceImpl) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrPasswordIncorrect
	}

	if err := security.CheckPasswordHash(password, user.Password); err != nil {
		return "", nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout blacklists the token signature until the token would expire anyway.
func (s *userServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistPrefix+signature, time.Now().Unix(), security.JWTExpirationTime)
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
