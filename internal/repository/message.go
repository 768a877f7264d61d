package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// MessageRepository persists chat messages. The store assigns identifiers
// and creation timestamps on Save.
type MessageRepository interface {
	// Save persists a message and fills in its ID and CreatedAt.
	Save(ctx context.Context, message *domain.Message) error

	// FindByRoom returns messages of a room in non-decreasing creation-time
	// order, paginated by limit and offset.
	FindByRoom(ctx context.Context, roomID string, limit, offset int) ([]domain.Message, error)

	// FindLast returns the most recent message of a room, or
	// ErrMessageNotFound when the room has none.
	FindLast(ctx context.Context, roomID string) (*domain.Message, error)
}
