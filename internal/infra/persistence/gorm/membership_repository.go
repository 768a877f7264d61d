package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormMembershipRepository is the GORM implementation of
// MembershipRepository.
type GormMembershipRepository struct {
	db *gorm.DB
}

func NewGormMembershipRepository(db *gorm.DB) *GormMembershipRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMembershipRepository")
	}
	return &GormMembershipRepository{db: db}
}

func (r *GormMembershipRepository) Find(ctx context.Context, roomID, userID string) (*domain.Membership, error) {
	var membership domain.Membership
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("gorm: find membership room %s user %s: %w", roomID, userID, err)
	}
	return &membership, nil
}

func (r *GormMembershipRepository) Save(ctx context.Context, membership *domain.Membership) error {
	if err := mapWriteError(r.db.WithContext(ctx).Save(membership).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save membership room %s user %s: %w", membership.RoomID, membership.UserID, err)
	}
	return nil
}

func (r *GormMembershipRepository) Delete(ctx context.Context, roomID, userID string) error {
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&domain.Membership{}).Error
	if err != nil {
		return fmt.Errorf("gorm: delete membership room %s user %s: %w", roomID, userID, err)
	}
	return nil
}

func (r *GormMembershipRepository) FindByRoom(ctx context.Context, roomID string) ([]domain.Membership, error) {
	var memberships []domain.Membership
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Find(&memberships).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find memberships for room %s: %w", roomID, err)
	}
	return memberships, nil
}

func (r *GormMembershipRepository) FindRoomIDsByUser(ctx context.Context, userID string, status domain.MembershipStatus) ([]string, error) {
	var roomIDs []string
	err := r.db.WithContext(ctx).
		Model(&domain.Membership{}).
		Where("user_id = ? AND status = ?", userID, status).
		Pluck("room_id", &roomIDs).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find room ids for user %s: %w", userID, err)
	}
	return roomIDs, nil
}
