package repository

import (
	"context"
	"photoshare/internal/model"

	"gorm.io/gorm"
)

// EngagementRepo aggregates the popularity signals for the ranking engine.
// All four counts are plain read aggregations over the base tables; an
// unknown user simply yields zeros.
type EngagementRepo interface {
	ListUsers(ctx context.Context) ([]*model.RankedUser, error)
	CollectCounts(ctx context.Context, userID uint64) (*model.EngagementCounts, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db}
}

// ListUsers enumerates user ids and usernames ordered by id. The ranking
// builder relies on this order as the stable tie-break for equal scores.
func (s *EngagementRepoImpl) ListUsers(ctx context.Context) ([]*model.RankedUser, error) {
	users := make([]*model.RankedUser, 0)
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("id", "username").
		Order("id ASC").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *EngagementRepoImpl) CollectCounts(ctx context.Context, userID uint64) (*model.EngagementCounts, error) {
	counts := &model.EngagementCounts{}

	err := s.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed_to_id = ?", userID).
		Count(&counts.SubscribersCount).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&model.Comment{}).
		Joins("JOIN photos ON photos.id = comments.photo_id").
		Where("photos.owner_id = ?", userID).
		Count(&counts.CommentsCount).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&model.PhotoReaction{}).
		Joins("JOIN photos ON photos.id = photo_reactions.photo_id").
		Where("photos.owner_id = ?", userID).
		Count(&counts.ReactionsCount).Error
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(&model.Photo{}).
		Where("owner_id = ?", userID).
		Count(&counts.PhotosCount).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
