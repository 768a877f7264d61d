// Package domain defines the persistent data model of the application.
package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile represents a user profile. The identity provider owns
// authentication; this table only mirrors the public-facing fields.
type Profile struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(191);uniqueIndex:idx_profiles_username;not null" json:"username"`
	FullName  string    `gorm:"type:varchar(191)" json:"full_name"`
	Email     string    `gorm:"type:varchar(191);uniqueIndex:idx_profiles_email" json:"email"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	Bio       string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
