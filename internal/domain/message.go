package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one chat message. Immutable once persisted; the store assigns
// both the identifier and the creation timestamp. History is ordered by
// created_at; same-timestamp ties fall back to id, which only makes the
// ordering stable, not chronological (ids are random UUIDs).
type Message struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	RoomID    string    `gorm:"type:char(36);index:idx_messages_room_created;not null" json:"room_id"`
	SenderID  string    `gorm:"type:char(36);index;not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_messages_room_created" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
