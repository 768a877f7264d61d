// Package repository declares the storage interfaces the services depend
// on. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// ProfileRepository stores and retrieves user profiles.
type ProfileRepository interface {
	// FindByID returns the profile for a user, or ErrProfileNotFound.
	FindByID(ctx context.Context, id string) (*domain.Profile, error)

	// Search returns profiles whose full name or username contains q,
	// case-insensitively.
	Search(ctx context.Context, q string) ([]domain.Profile, error)

	// Save creates or updates a profile.
	Save(ctx context.Context, profile *domain.Profile) error
}
