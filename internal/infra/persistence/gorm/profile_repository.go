package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormProfileRepository is the GORM implementation of ProfileRepository.
type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	if db == nil {
		panic("database connection cannot be nil for GormProfileRepository")
	}
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}
		return nil, fmt.Errorf("gorm: find profile by id %s: %w", id, err)
	}
	return &profile, nil
}

func (r *GormProfileRepository) Search(ctx context.Context, q string) ([]domain.Profile, error) {
	var profiles []domain.Profile
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "username", "avatar_url").
		Where("full_name LIKE ? OR username LIKE ?", pattern, pattern).
		Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: search profiles %q: %w", q, err)
	}
	return profiles, nil
}

func (r *GormProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if err := mapWriteError(r.db.WithContext(ctx).Save(profile).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save profile %s: %w", profile.ID, err)
	}
	return nil
}
