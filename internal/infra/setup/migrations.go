package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
)

// MigrateDB migrates the full schema. All primary keys are char(36) UUIDs
// assigned in BeforeCreate hooks, so AutoMigrate covers everything.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}
	err := db.AutoMigrate(
		&domain.Profile{},
		&domain.Room{},
		&domain.DirectRoom{},
		&domain.Membership{},
		&domain.Message{},
		&domain.Follow{},
		&domain.Notification{},
		&domain.Project{},
		&domain.ProjectMember{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}
	return nil
}
