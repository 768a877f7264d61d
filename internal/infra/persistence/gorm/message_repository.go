package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormMessageRepository is the GORM implementation of MessageRepository.
type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	if db == nil {
		panic("database connection cannot be nil for GormMessageRepository")
	}
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Save(ctx context.Context, message *domain.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("gorm: save message for room %s: %w", message.RoomID, err)
	}
	return nil
}

func (r *GormMessageRepository) FindByRoom(ctx context.Context, roomID string, limit, offset int) ([]domain.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	var messages []domain.Message
	// The id tiebreak keeps pagination stable for equal timestamps; it is
	// not an arrival order.
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find messages for room %s: %w", roomID, err)
	}
	return messages, nil
}

func (r *GormMessageRepository) FindLast(ctx context.Context, roomID string) (*domain.Message, error) {
	var message domain.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}
		return nil, fmt.Errorf("gorm: find last message for room %s: %w", roomID, err)
	}
	return &message, nil
}
