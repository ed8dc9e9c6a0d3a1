package repository

import (
	"context"
	"errors"
	"photoshare/internal/model"
	"time"

	"gorm.io/gorm"
)

type ReactionCountRow struct {
	ReactionID uint64 `json:"reactionId"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

type ReactionRepo interface {
	CreateReaction(ctx context.Context, reaction *model.Reaction) error
	GetReactionByID(ctx context.Context, reactionID uint64) (*model.Reaction, error)
	ListReactions(ctx context.Context) ([]*model.Reaction, error)

	ToggleAssignment(ctx context.Context, photoID, userID, reactionID uint64) (*model.PhotoReaction, error)
	GetAssignment(ctx context.Context, photoID, userID uint64) (*model.PhotoReaction, error)
	CountsByPhotoID(ctx context.Context, photoID uint64) ([]*ReactionCountRow, error)
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db}
}

func (s *ReactionRepoImpl) CreateReaction(ctx context.Context, reaction *model.Reaction) error {
	return s.db.WithContext(ctx).Create(reaction).Error
}

func (s *ReactionRepoImpl) GetReactionByID(ctx context.Context, reactionID uint64) (*model.Reaction, error) {
	var reaction model.Reaction
	err := s.db.WithContext(ctx).Where("id = ?", reactionID).Take(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (s *ReactionRepoImpl) ListReactions(ctx context.Context) ([]*model.Reaction, error) {
	reactions := make([]*model.Reaction, 0)
	err := s.db.WithContext(ctx).Order("id ASC").Find(&reactions).Error
	if err != nil {
		return nil, err
	}
	return reactions, nil
}

// ToggleAssignment applies one transition of the reaction state machine in
// a single transaction. Returns the new assignment, or nil when the call
// toggled the existing reaction off. The composite primary key on
// photo_reactions keeps concurrent transitions from ever producing two
// rows for the same (photo_id, user_id) pair.
func (s *ReactionRepoImpl) ToggleAssignment(ctx context.Context, photoID, userID, reactionID uint64) (*model.PhotoReaction, error) {
	var out *model.PhotoReaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PhotoReaction
		err := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).Take(&existing).Error
		switch {
		case err == nil:
			if delErr := tx.Where("photo_id = ? AND user_id = ?", photoID, userID).
				Delete(&model.PhotoReaction{}).Error; delErr != nil {
				return delErr
			}
			if existing.ReactionID == reactionID {
				// same reaction again: toggle off
				out = nil
				return nil
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		assignment := &model.PhotoReaction{
			PhotoID:    photoID,
			UserID:     userID,
			ReactionID: reactionID,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		out = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReactionRepoImpl) GetAssignment(ctx context.Context, photoID, userID uint64) (*model.PhotoReaction, error) {
	var assignment model.PhotoReaction
	err := s.db.WithContext(ctx).
		Where("photo_id = ? AND user_id = ?", photoID, userID).
		Take(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *ReactionRepoImpl) CountsByPhotoID(ctx context.Context, photoID uint64) ([]*ReactionCountRow, error) {
	rows := make([]*ReactionCountRow, 0)
	err := s.db.WithContext(ctx).Model(&model.PhotoReaction{}).
		Select("photo_reactions.reaction_id AS reaction_id", "reactions.name AS name", "COUNT(*) AS count").
		Joins("JOIN reactions ON reactions.id = photo_reactions.reaction_id").
		Where("photo_reactions.photo_id = ?", photoID).
		Group("photo_reactions.reaction_id, reactions.name").
		Order("photo_reactions.reaction_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
