package service

import (
	"context"
	"errors"
	"photoshare/internal/api/dto"
	"photoshare/internal/model"
	"photoshare/internal/repository"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type ReactionService interface {
	Toggle(ctx context.Context, photoID, userID, reactionID uint64) (*dto.ReactionDTO, error)
	CountsForPhoto(ctx context.Context, photoID uint64) ([]*dto.ReactionCountDTO, error)
	CurrentForUserAndPhoto(ctx context.Context, photoID, userID uint64) (*dto.ReactionDTO, error)

	CreateReaction(ctx context.Context, name string) (*model.Reaction, error)
	ListReactions(ctx context.Context) ([]*model.Reaction, error)
}

type reactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	photoRepo    repository.PhotoRepo
}

func NewReactionService(reactionRepo repository.ReactionRepo, photoRepo repository.PhotoRepo) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		photoRepo:    photoRepo,
	}
}

// Toggle applies one transition of the reaction state machine for the
// (photo, user) key: absent inserts, same reaction removes, different
// reaction replaces. A nil DTO means the caller has no active reaction.
func (s *reactionServiceImpl) Toggle(ctx context.Context, photoID, userID, reactionID uint64) (*dto.ReactionDTO, error) {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	reaction, err := s.reactionRepo.GetReactionByID(ctx, reactionID)
	if err != nil {
		return nil, err
	}
	if reaction == nil {
		return nil, ErrReactionNotFound
	}

	assignment, err := s.reactionRepo.ToggleAssignment(ctx, photoID, userID, reactionID)
	if isDuplicateKey(err) {
		// lost a race with a concurrent toggle for the same key; the row
		// now exists, so rerun the transition against the fresh state
		assignment, err = s.reactionRepo.ToggleAssignment(ctx, photoID, userID, reactionID)
	}
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}

	return &dto.ReactionDTO{
		ReactionID: assignment.ReactionID,
		Name:       reaction.Name,
		PhotoID:    assignment.PhotoID,
		UserID:     assignment.UserID,
		CreatedAt:  assignment.CreatedAt,
	}, nil
}

func (s *reactionServiceImpl) CountsForPhoto(ctx context.Context, photoID uint64) ([]*dto.ReactionCountDTO, error) {
	photo, err := s.photoRepo.GetPhoto(ctx, photoID)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}

	rows, err := s.reactionRepo.CountsByPhotoID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	counts := make([]*dto.ReactionCountDTO, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &dto.ReactionCountDTO{
			ReactionID: row.ReactionID,
			Name:       row.Name,
			Count:      row.Count,
		})
	}
	return counts, nil
}

func (s *reactionServiceImpl) CurrentForUserAndPhoto(ctx context.Context, photoID, userID uint64) (*dto.ReactionDTO, error) {
	assignment, err := s.reactionRepo.GetAssignment(ctx, photoID, userID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, nil
	}

	reaction, err := s.reactionRepo.GetReactionByID(ctx, assignment.ReactionID)
	if err != nil {
		return nil, err
	}

	result := &dto.ReactionDTO{
		ReactionID: assignment.ReactionID,
		PhotoID:    assignment.PhotoID,
		UserID:     assignment.UserID,
		CreatedAt:  assignment.CreatedAt,
	}
	if reaction != nil {
		result.Name = reaction.Name
	}
	return result, nil
}

func (s *reactionServiceImpl) CreateReaction(ctx context.Context, name string) (*model.Reaction, error) {
	reaction := &model.Reaction{Name: name}
	err := s.reactionRepo.CreateReaction(ctx, reaction)
	if isDuplicateKey(err) {
		return nil, ErrReactionNameExist
	}
	if err != nil {
		return nil, err
	}
	return reaction, nil
}

func (s *reactionServiceImpl) ListReactions(ctx context.Context) ([]*model.Reaction, error) {
	return s.reactionRepo.ListReactions(ctx)
}

// isDuplicateKey recognizes a unique constraint violation from either the
// gorm translator or the raw mysql driver.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
