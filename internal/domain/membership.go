package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipStatus is the approval state of a community membership.
// Absence of a Membership row is the third state ("none"); it is decoded
// into a decision exactly once, at the membership gate.
type MembershipStatus string

const (
	MembershipApproved MembershipStatus = "approved"
	MembershipPending  MembershipStatus = "pending"
)

// MemberRole is the role a subject holds inside a room.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// Membership ties a subject to a room. At most one row per (room, subject)
// pair, enforced by a unique index.
type Membership struct {
	ID        string           `gorm:"type:char(36);primaryKey" json:"id"`
	RoomID    string           `gorm:"type:char(36);uniqueIndex:idx_room_user;not null" json:"room_id"`
	UserID    string           `gorm:"type:char(36);uniqueIndex:idx_room_user;not null" json:"user_id"`
	Role      MemberRole       `gorm:"type:varchar(16);not null" json:"role"`
	Status    MembershipStatus `gorm:"type:varchar(16);index;not null" json:"status"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"-"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// IsApprovedAdmin reports whether this membership grants admin rights.
func (m *Membership) IsApprovedAdmin() bool {
	return m.Role == RoleAdmin && m.Status == MembershipApproved
}
