package gormpersistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
)

// GormNotificationRepository is the GORM implementation of
// NotificationRepository.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	if db == nil {
		panic("database connection cannot be nil for GormNotificationRepository")
	}
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Save(ctx context.Context, notification *domain.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("gorm: save notification for %s: %w", notification.RecipientID, err)
	}
	return nil
}

func (r *GormNotificationRepository) FindRecent(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find notifications for %s: %w", recipientID, err)
	}
	return notifications, nil
}

func (r *GormNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count unread notifications for %s: %w", recipientID, err)
	}
	return count, nil
}

func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": &now}).Error
	if err != nil {
		return fmt.Errorf("gorm: mark notifications read for %s: %w", recipientID, err)
	}
	return nil
}
