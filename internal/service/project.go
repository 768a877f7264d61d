package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// ProjectService manages project listings and applications.
type ProjectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	if projects == nil {
		panic("ProjectService dependencies cannot be nil")
	}
	return &ProjectService{projects: projects}
}

// Create posts a new project.
func (s *ProjectService) Create(ctx context.Context, creatorID, title, description string) (*domain.Project, error) {
	if len(title) < 3 {
		return nil, fmt.Errorf("%w: project title must be at least 3 characters", ErrInvalidInput)
	}
	project := &domain.Project{
		Title:       title,
		Description: description,
		CreatedBy:   creatorID,
	}
	if err := s.projects.Save(ctx, project); err != nil {
		logrus.WithError(err).WithField("creator_id", creatorID).Error("Failed to create project")
		return nil, ErrInternalServer
	}
	logrus.WithFields(logrus.Fields{"project_id": project.ID, "creator_id": creatorID}).Info("Project created")
	return project, nil
}

// List returns all projects with their members attached.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.FindAllWithMembers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list projects")
		return nil, ErrInternalServer
	}
	return projects, nil
}

// Apply records a pending application to join a project. Applying twice is
// a conflict.
func (s *ProjectService) Apply(ctx context.Context, projectID, userID string) (*domain.ProjectMember, error) {
	logCtx := logrus.WithFields(logrus.Fields{"project_id": projectID, "user_id": userID})

	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Status:    "pending",
	}
	if err := s.projects.SaveMember(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrAlreadyMember
		}
		logCtx.WithError(err).Error("Failed to record project application")
		return nil, ErrInternalServer
	}

	logCtx.Info("Project application recorded")
	return member, nil
}
