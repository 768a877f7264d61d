package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification event types.
const (
	NotificationFollow      = "follow"
	NotificationJoinRequest = "join_request"
	NotificationApproved    = "membership_approved"
)

// Notification is a user-facing event, written by the background worker and
// read by the polling endpoint.
type Notification struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	RecipientID string     `gorm:"type:char(36);index:idx_notifications_recipient;not null" json:"recipient_id"`
	SenderID    string     `gorm:"type:char(36)" json:"sender_id"`
	Type        string     `gorm:"type:varchar(32);not null" json:"type"`
	Message     string     `gorm:"type:text" json:"message"`
	IsRead      bool       `gorm:"default:false;index:idx_notifications_recipient" json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
