package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// ProjectRepository stores project listings and membership applications.
type ProjectRepository interface {
	// Save creates or updates a project.
	Save(ctx context.Context, project *domain.Project) error

	// Search returns projects whose title or detailed description contains
	// q, case-insensitively.
	Search(ctx context.Context, q string) ([]domain.Project, error)

	// FindAllWithMembers returns all projects with their members preloaded.
	FindAllWithMembers(ctx context.Context) ([]domain.Project, error)

	// CountByCreator returns how many projects a user has created.
	CountByCreator(ctx context.Context, userID string) (int64, error)

	// SaveMember records a membership application. Applying twice to the
	// same project yields ErrDuplicateEntry.
	SaveMember(ctx context.Context, member *domain.ProjectMember) error
}
