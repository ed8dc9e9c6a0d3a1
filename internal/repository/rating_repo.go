package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"photoshare/internal/model"
	"time"

	"gorm.io/gorm"
)

type RatingRepo interface {
	AddRating(ctx context.Context, photoID, userID uint64, rating int) error
	DeleteRating(ctx context.Context, photoID, userID uint64) error
	GetRating(ctx context.Context, photoID, userID uint64) (*model.PhotoRating, error)
	GetRatingsByPhotoID(ctx context.Context, photoID uint64) ([]*model.PhotoRating, error)
	GetRatingsByUserID(ctx context.Context, userID uint64) ([]*model.PhotoRating, error)
}

type RatingRepoImpl struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) RatingRepo {
	return &RatingRepoImpl{db}
}

// AddRating inserts the rating row and recomputes the photo's mean rating
// in the same transaction, so the displayed rating is never stale relative
// to the rating table. A second rating for the same (photo, user) pair
// fails with gorm.ErrDuplicatedKey.
func (s *RatingRepoImpl) AddRating(ctx context.Context, photoID, userID uint64, rating int) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.PhotoRating{}).
			Where("photo_id = ? AND user_id = ?", photoID, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		row := &model.PhotoRating{
			PhotoID:   photoID,
			UserID:    userID,
			Rating:    rating,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return recomputeAverage(tx, photoID)
	})
}

// DeleteRating removes the rating row and recomputes the mean. Deleting
// the last rating sets photos.rating back to NULL.
func (s *RatingRepoImpl) DeleteRating(ctx context.Context, photoID, userID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).
			Delete(&model.PhotoRating{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeAverage(tx, photoID)
	})
}

func recomputeAverage(tx *gorm.DB, photoID uint64) error {
	var avg sql.NullFloat64
	row := tx.Model(&model.PhotoRating{}).
		Where("photo_id = ?", photoID).
		Select("AVG(rating)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return err
	}

	var rating *float64
	if avg.Valid {
		rounded := math.Round(avg.Float64*100) / 100
		rating = &rounded
	}
	return tx.Model(&model.Photo{}).
		Where("id = ?", photoID).
		Update("rating", rating).Error
}

func (s *RatingRepoImpl) GetRating(ctx context.Context, photoID, userID uint64) (*model.PhotoRating, error) {
	var rating model.PhotoRating
	err := s.db.WithContext(ctx).
		Where("photo_id = ? AND user_id = ?", photoID, userID).
		Take(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (s *RatingRepoImpl) GetRatingsByPhotoID(ctx context.Context, photoID uint64) ([]*model.PhotoRating, error) {
	ratings := make([]*model.PhotoRating, 0)
	err := s.db.WithContext(ctx).Where("photo_id = ?", photoID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *RatingRepoImpl) GetRatingsByUserID(ctx context.Context, userID uint64) ([]*model.PhotoRating, error) {
	ratings := make([]*model.PhotoRating, 0)
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
