package service

import (
	"context"
	"errors"
	"photoshare/internal/model"
	"photoshare/internal/repository"

	"gorm.io/gorm"
)

const (
	MinRating = 1
	MaxRating = 5
)

type RatingService interface {
	AddRating(ctx context.Context, photoID, userID uint64, rating int) error
	DeleteRating(ctx context.Context, photoID, userID uint64) error
	GetAverageRating(ctx context.Context, photoID uint64) (*float64, error)
	GetRatingsByPhoto(ctx context.Context, photoID uint64) ([]*model.PhotoRating, error)
	GetRatingsByUser(ctx context.Context, userID uint64) ([]*model.PhotoRating, error)
}

type ratingServiceImpl struct {
	ratingRepo repository.RatingRepo
	photoRepo  repository.PhotoRepo
}

func NewRatingService(ratingRepo repository.RatingRepo, photoRepo repository.PhotoRepo) RatingService {
	return &ratingServiceImpl{
		ratingRepo: ratingRepo,
		photoRepo:  photoRepo,
	}
}

// AddRating records one user's rating for a photo. Each user rates a photo
// at most once; changing a rating is an explicit delete followed by a new
// add. The photo's displayed mean is recomputed before this returns.
func (s *ratingServiceImpl) AddRating(ctx context.Context, photoID, userID uint64, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}

	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	err = s.ratingRepo.AddRating(ctx, photoID, userID, rating)
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKey(err) {
		return ErrRatingExists
	}
	return err
}

func (s *ratingServiceImpl) DeleteRating(ctx context.Context, photoID, userID uint64) error {
	err := s.ratingRepo.DeleteRating(ctx, photoID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRatingNotFound
	}
	return err
}

func (s *ratingServiceImpl) GetAverageRating(ctx context.Context, photoID uint64) (*float64, error) {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo.Rating, nil
}

func (s *ratingServiceImpl) GetRatingsByPhoto(ctx context.Context, photoID uint64) ([]*model.PhotoRating, error) {
	return s.ratingRepo.GetRatingsByPhotoID(ctx, photoID)
}

func (s *ratingServiceImpl) GetRatingsByUser(ctx context.Context, userID uint64) ([]*model.PhotoRating, error) {
	return s.ratingRepo.GetRatingsByUserID(ctx, userID)
}
