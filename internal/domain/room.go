package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomKind distinguishes two-party direct conversations from community
// (group) channels.
type RoomKind string

const (
	RoomDirect    RoomKind = "direct"
	RoomCommunity RoomKind = "community"
)

// Room is a chat channel. Immutable after creation except for
// membership-derived state, which lives in Membership rows.
type Room struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Kind        RoomKind  `gorm:"type:varchar(16);index;not null" json:"type"`
	Name        string    `gorm:"type:varchar(191)" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   string    `gorm:"type:char(36);index;not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// DirectRoom records the two fixed participants of a direct room.
type DirectRoom struct {
	RoomID    string    `gorm:"type:char(36);primaryKey" json:"room_id"`
	User1ID   string    `gorm:"type:char(36);index;not null" json:"user1_id"`
	User2ID   string    `gorm:"type:char(36);index;not null" json:"user2_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// HasParticipant reports whether userID is one of the two recorded
// participants.
func (d *DirectRoom) HasParticipant(userID string) bool {
	return d.User1ID == userID || d.User2ID == userID
}

// OtherParticipant returns the participant that is not userID. Returns an
// empty string when userID is not a participant at all.
func (d *DirectRoom) OtherParticipant(userID string) string {
	switch userID {
	case d.User1ID:
		return d.User2ID
	case d.User2ID:
		return d.User1ID
	}
	return ""
}
