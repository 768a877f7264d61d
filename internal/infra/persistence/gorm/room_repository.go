package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormRoomRepository is the GORM implementation of RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	if db == nil {
		panic("database connection cannot be nil for GormRoomRepository")
	}
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find room by id %s: %w", id, err)
	}
	return &room, nil
}

func (r *GormRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	if err := mapWriteError(r.db.WithContext(ctx).Save(room).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save room %s: %w", room.ID, err)
	}
	return nil
}

func (r *GormRoomRepository) FindCommunities(ctx context.Context, excludeCreator string) ([]domain.Room, error) {
	var rooms []domain.Room
	query := r.db.WithContext(ctx).Where("kind = ?", domain.RoomCommunity)
	if excludeCreator != "" {
		query = query.Where("created_by <> ?", excludeCreator)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("gorm: find communities: %w", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) FindCommunitiesByCreator(ctx context.Context, creatorID string) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("kind = ? AND created_by = ?", domain.RoomCommunity, creatorID).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find communities by creator %s: %w", creatorID, err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) FindCommunitiesByIDs(ctx context.Context, ids []string) ([]domain.Room, error) {
	var rooms []domain.Room
	if len(ids) == 0 {
		return rooms, nil
	}
	err := r.db.WithContext(ctx).
		Where("kind = ? AND id IN ?", domain.RoomCommunity, ids).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find communities by ids: %w", err)
	}
	return rooms, nil
}

// GormDirectRoomRepository is the GORM implementation of
// DirectRoomRepository.
type GormDirectRoomRepository struct {
	db *gorm.DB
}

func NewGormDirectRoomRepository(db *gorm.DB) *GormDirectRoomRepository {
	if db == nil {
		panic("database connection cannot be nil for GormDirectRoomRepository")
	}
	return &GormDirectRoomRepository{db: db}
}

func (r *GormDirectRoomRepository) FindByRoomID(ctx context.Context, roomID string) (*domain.DirectRoom, error) {
	var room domain.DirectRoom
	err := r.db.WithContext(ctx).First(&room, "room_id = ?", roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find direct room %s: %w", roomID, err)
	}
	return &room, nil
}

func (r *GormDirectRoomRepository) FindByParticipants(ctx context.Context, user1ID, user2ID string) (*domain.DirectRoom, error) {
	var room domain.DirectRoom
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			user1ID, user2ID, user2ID, user1ID).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}
		return nil, fmt.Errorf("gorm: find direct room by participants: %w", err)
	}
	return &room, nil
}

func (r *GormDirectRoomRepository) FindByUser(ctx context.Context, userID string) ([]domain.DirectRoom, error) {
	var rooms []domain.DirectRoom
	err := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find direct rooms for user %s: %w", userID, err)
	}
	return rooms, nil
}

func (r *GormDirectRoomRepository) Save(ctx context.Context, room *domain.DirectRoom) error {
	if err := mapWriteError(r.db.WithContext(ctx).Create(room).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save direct room %s: %w", room.RoomID, err)
	}
	return nil
}
