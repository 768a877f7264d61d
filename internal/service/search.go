package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// SearchService answers free-text lookups over profiles and projects.
type SearchService struct {
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
}

func NewSearchService(profiles repository.ProfileRepository, projects repository.ProjectRepository) *SearchService {
	if profiles == nil || projects == nil {
		panic("SearchService dependencies cannot be nil")
	}
	return &SearchService{profiles: profiles, projects: projects}
}

// Devs matches profiles by username or full name. An empty query returns an
// empty result rather than the whole table.
func (s *SearchService) Devs(ctx context.Context, query string) ([]domain.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Profile{}, nil
	}
	profiles, err := s.profiles.Search(ctx, query)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Developer search failed")
		return nil, ErrInternalServer
	}
	return profiles, nil
}

// Projects matches projects by title or description.
func (s *SearchService) Projects(ctx context.Context, query string) ([]domain.Project, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Project{}, nil
	}
	projects, err := s.projects.Search(ctx, query)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Error("Project search failed")
		return nil, ErrInternalServer
	}
	return projects, nil
}
