package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
	"github.com/adithya2152/devconnect/internal/repository/mocks"
	"github.com/adithya2152/devconnect/internal/service"
)

func TestProjectService_Create_Success(t *testing.T) {
	projectRepo := new(mocks.ProjectRepository)
	svc := service.NewProjectService(projectRepo)
	ctx := context.Background()

	projectRepo.On("Save", ctx, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Title == "Side quest" && p.CreatedBy == "alice"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Project).ID = "proj-1"
	}).Return(nil).Once()

	project, err := svc.Create(ctx, "alice", "Side quest", "a weekend build")

	require.NoError(t, err)
	assert.Equal(t, "proj-1", project.ID)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Create_TitleTooShort(t *testing.T) {
	projectRepo := new(mocks.ProjectRepository)
	svc := service.NewProjectService(projectRepo)

	_, err := svc.Create(context.Background(), "alice", "ab", "")

	assert.True(t, errors.Is(err, service.ErrInvalidInput))
	projectRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// Applying records the pending membership and nothing else; no
// notification is dispatched to the project owner.
func TestProjectService_Apply_RecordsPendingMember(t *testing.T) {
	projectRepo := new(mocks.ProjectRepository)
	svc := service.NewProjectService(projectRepo)
	ctx := context.Background()

	projectRepo.On("SaveMember", ctx, mock.MatchedBy(func(m *domain.ProjectMember) bool {
		return m.ProjectID == "proj-1" && m.UserID == "bob" && m.Status == "pending"
	})).Return(nil).Once()

	member, err := svc.Apply(ctx, "proj-1", "bob")

	require.NoError(t, err)
	assert.Equal(t, "pending", member.Status)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Apply_Duplicate(t *testing.T) {
	projectRepo := new(mocks.ProjectRepository)
	svc := service.NewProjectService(projectRepo)
	ctx := context.Background()

	projectRepo.On("SaveMember", ctx, mock.Anything).
		Return(repository.ErrDuplicateEntry).Once()

	_, err := svc.Apply(ctx, "proj-1", "bob")

	assert.True(t, errors.Is(err, service.ErrAlreadyMember))
}
