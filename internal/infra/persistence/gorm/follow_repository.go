package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormFollowRepository is the GORM implementation of FollowRepository.
type GormFollowRepository struct {
	db *gorm.DB
}

func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	if db == nil {
		panic("database connection cannot be nil for GormFollowRepository")
	}
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: check follow %s -> %s: %w", followerID, followingID, err)
	}
	return count > 0, nil
}

func (r *GormFollowRepository) Save(ctx context.Context, follow *domain.Follow) error {
	if err := mapWriteError(r.db.WithContext(ctx).Create(follow).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save follow %s -> %s: %w", follow.FollowerID, follow.FollowingID, err)
	}
	return nil
}

func (r *GormFollowRepository) Delete(ctx context.Context, followerID, followingID string) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&domain.Follow{}).Error
	if err != nil {
		return fmt.Errorf("gorm: delete follow %s -> %s: %w", followerID, followingID, err)
	}
	return nil
}

func (r *GormFollowRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count followers of %s: %w", userID, err)
	}
	return count, nil
}

func (r *GormFollowRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count following of %s: %w", userID, err)
	}
	return count, nil
}
