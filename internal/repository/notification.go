package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// NotificationRepository stores user notifications.
type NotificationRepository interface {
	// Save persists a notification.
	Save(ctx context.Context, notification *domain.Notification) error

	// FindRecent returns the latest notifications for a recipient, newest
	// first, capped at limit.
	FindRecent(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a
	// recipient.
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkAllRead marks every unread notification of the recipient as read
	// and stamps the read time.
	MarkAllRead(ctx context.Context, recipientID string) error
}
