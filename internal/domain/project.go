package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a collaboration listing created by a developer looking for
// contributors.
type Project struct {
	ID                  string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title               string    `gorm:"type:varchar(191);not null" json:"title"`
	Description         string    `gorm:"type:text" json:"description"`
	DetailedDescription string    `gorm:"type:text" json:"detailed_description"`
	Status              string    `gorm:"type:varchar(32);default:active" json:"status"`
	CreatedBy           string    `gorm:"type:char(36);index;not null" json:"created_by"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"-"`

	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectMember is an application to join a project. New applications are
// always pending until the owner acts on them.
type ProjectMember struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID string    `gorm:"type:char(36);uniqueIndex:idx_project_user;not null" json:"project_id"`
	UserID    string    `gorm:"type:char(36);uniqueIndex:idx_project_user;not null" json:"user_id"`
	Role      string    `gorm:"type:varchar(32);default:member" json:"role"`
	Status    string    `gorm:"type:varchar(32);default:pending" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *ProjectMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
