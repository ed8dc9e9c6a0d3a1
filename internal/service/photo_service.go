package service

import (
	"context"
	"fmt"
	"io"
	log "log/slog"
	"path/filepath"
	"photoshare/internal/model"
	"photoshare/internal/pkg/storage"
	"photoshare/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PhotoService interface {
	UploadPhoto(ctx context.Context, ownerID uint64, filename string, reader io.Reader, size int64, contentType string, description *string) (*model.Photo, error)
	GetPhoto(ctx context.Context, photoID uint64) (*model.Photo, error)
	GetPhotosByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Photo, error)
	UpdateDescription(ctx context.Context, userID uint64, isAdmin bool, photoID uint64, description string) error
	DeletePhoto(ctx context.Context, userID uint64, isAdmin bool, photoID uint64) error
}

type photoServiceImpl struct {
	photoRepo repository.PhotoRepo
}

func NewPhotoService(photoRepo repository.PhotoRepo) PhotoService {
	return &photoServiceImpl{photoRepo: photoRepo}
}

func (s *photoServiceImpl) UploadPhoto(ctx context.Context, ownerID uint64, filename string, reader io.Reader, size int64, contentType string, description *string) (*model.Photo, error) {
	objectName := fmt.Sprintf("photos/%d/%s%s", ownerID, uuid.NewString(), filepath.Ext(filename))
	url, err := storage.UploadPhoto(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	photo := &model.Photo{
		OwnerID:     ownerID,
		URLLink:     url,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := s.photoRepo.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *photoServiceImpl) GetPhoto(ctx context.Context, photoID uint64) (*model.Photo, error) {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}

func (s *photoServiceImpl) GetPhotosByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Photo, error) {
	return s.photoRepo.GetPhotosByOwner(ctx, ownerID, limit, offset)
}

func (s *photoServiceImpl) UpdateDescription(ctx context.Context, userID uint64, isAdmin bool, photoID uint64, description string) error {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}
	if photo.OwnerID != userID && !isAdmin {
		return UnauthorizedError
	}
	return s.photoRepo.UpdateDescription(ctx, photoID, description)
}

func (s *photoServiceImpl) DeletePhoto(ctx context.Context, userID uint64, isAdmin bool, photoID uint64) error {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}
	if photo == nil {
		return ErrPhotoNotFound
	}
	if photo.OwnerID != userID && !isAdmin {
		return UnauthorizedError
	}
	if err := s.photoRepo.DeletePhoto(ctx, photoID); err != nil {
		return err
	}

	// best effort blob cleanup; an orphaned object is harmless
	if objectName := objectNameFromURL(photo.URLLink); objectName != "" {
		if err := storage.RemovePhoto(ctx, objectName); err != nil {
			log.WarnContext(ctx, "failed to remove photo object", "photo_id", photoID, "err", err)
		}
	}
	return nil
}

func objectNameFromURL(url string) string {
	marker := "/" + storage.Bucket + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return ""
	}
	return url[idx+len(marker):]
}
