package repository

import (
	"context"
	"errors"
	"photoshare/internal/model"

	"gorm.io/gorm"
)

type PhotoRepo interface {
	CreatePhoto(ctx context.Context, photo *model.Photo) error
	GetPhoto(ctx context.Context, photoID uint64) (*model.Photo, error)
	GetPhotosByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Photo, error)
	DeletePhoto(ctx context.Context, photoID uint64) error
	UpdateDescription(ctx context.Context, photoID uint64, description string) error
}

type PhotoRepoImpl struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) PhotoRepo {
	return &PhotoRepoImpl{db}
}

func (s *PhotoRepoImpl) CreatePhoto(ctx context.Context, photo *model.Photo) error {
	return s.db.WithContext(ctx).Create(photo).Error
}

func (s *PhotoRepoImpl) GetPhoto(ctx context.Context, photoID uint64) (*model.Photo, error) {
	var photo model.Photo
	err := s.db.WithContext(ctx).Where("id = ?", photoID).Take(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (s *PhotoRepoImpl) GetPhotosByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Photo, error) {
	photos := make([]*model.Photo, 0)
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *PhotoRepoImpl) DeletePhoto(ctx context.Context, photoID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photoID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photoID).Delete(&model.PhotoReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("photo_id = ?", photoID).Delete(&model.PhotoRating{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", photoID).Delete(&model.Photo{}).Error
	})
}

func (s *PhotoRepoImpl) UpdateDescription(ctx context.Context, photoID uint64, description string) error {
	return s.db.WithContext(ctx).Model(&model.Photo{}).
		Where("id = ?", photoID).
		Update("description", description).Error
}
