package service

import (
	"context"
	"photoshare/internal/model"
	"photoshare/internal/repository"
	"time"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, photoID uint64, content string) (*model.Comment, error)
	GetCommentsByPhoto(ctx context.Context, photoID uint64, limit, offset int) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	photoRepo   repository.PhotoRepo
}

func NewCommentService(commentRepo repository.CommentRepo, photoRepo repository.PhotoRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		photoRepo:   photoRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, photoID uint64, content string) (*model.Comment, error) {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	comment := &model.Comment{
		PhotoID:   photoID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentServiceImpl) GetCommentsByPhoto(ctx context.Context, photoID uint64, limit, offset int) ([]*model.Comment, error) {
	return s.commentRepo.GetCommentsByPhotoID(ctx, photoID, limit, offset)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && !isAdmin {
		return UnauthorizedError
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
