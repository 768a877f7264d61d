package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// GormProjectRepository is the GORM implementation of ProjectRepository.
type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	if db == nil {
		panic("database connection cannot be nil for GormProjectRepository")
	}
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Save(ctx context.Context, project *domain.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("gorm: save project %s: %w", project.ID, err)
	}
	return nil
}

func (r *GormProjectRepository) Search(ctx context.Context, q string) ([]domain.Project, error) {
	var projects []domain.Project
	pattern := "%" + q + "%"
	err := r.db.WithContext(ctx).
		Select("id", "title", "detailed_description").
		Where("title LIKE ? OR detailed_description LIKE ?", pattern, pattern).
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: search projects %q: %w", q, err)
	}
	return projects, nil
}

func (r *GormProjectRepository) FindAllWithMembers(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.db.WithContext(ctx).Preload("Members").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find projects with members: %w", err)
	}
	return projects, nil
}

func (r *GormProjectRepository) CountByCreator(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("created_by = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count projects by %s: %w", userID, err)
	}
	return count, nil
}

func (r *GormProjectRepository) SaveMember(ctx context.Context, member *domain.ProjectMember) error {
	if err := mapWriteError(r.db.WithContext(ctx).Create(member).Error); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return err
		}
		return fmt.Errorf("gorm: save project member %s/%s: %w", member.ProjectID, member.UserID, err)
	}
	return nil
}
