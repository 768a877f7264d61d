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

func newProfileService() (*service.ProfileService, *mocks.ProfileRepository, *mocks.FollowRepository, *mocks.ProjectRepository, *mockDispatcher) {
	profileRepo := new(mocks.ProfileRepository)
	followRepo := new(mocks.FollowRepository)
	projectRepo := new(mocks.ProjectRepository)
	dispatcher := new(mockDispatcher)
	svc := service.NewProfileService(profileRepo, followRepo, projectRepo, dispatcher)
	return svc, profileRepo, followRepo, projectRepo, dispatcher
}

func TestProfileService_Follow_Success(t *testing.T) {
	svc, profileRepo, followRepo, _, dispatcher := newProfileService()
	ctx := context.Background()

	profileRepo.On("FindByID", ctx, "bob").
		Return(&domain.Profile{ID: "bob", Username: "bob"}, nil).Once()
	followRepo.On("Save", ctx, mock.MatchedBy(func(f *domain.Follow) bool {
		return f.FollowerID == "alice" && f.FollowingID == "bob"
	})).Return(nil).Once()
	dispatcher.On("Dispatch", ctx, "bob", "alice", domain.NotificationFollow, mock.AnythingOfType("string")).
		Return(nil).Once()

	err := svc.Follow(ctx, "alice", "bob")

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestProfileService_Follow_Self(t *testing.T) {
	svc, _, followRepo, _, _ := newProfileService()

	err := svc.Follow(context.Background(), "alice", "alice")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrSelfFollow))
	followRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_Follow_Duplicate(t *testing.T) {
	svc, profileRepo, followRepo, _, dispatcher := newProfileService()
	ctx := context.Background()

	profileRepo.On("FindByID", ctx, "bob").
		Return(&domain.Profile{ID: "bob"}, nil).Once()
	followRepo.On("Save", ctx, mock.AnythingOfType("*domain.Follow")).
		Return(repository.ErrDuplicateEntry).Once()

	err := svc.Follow(ctx, "alice", "bob")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrAlreadyFollowing))
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_Follow_TargetMissing(t *testing.T) {
	svc, profileRepo, followRepo, _, _ := newProfileService()
	ctx := context.Background()

	profileRepo.On("FindByID", ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound).Once()

	err := svc.Follow(ctx, "alice", "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrProfileNotFound))
	followRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProfileService_Detailed_OwnProfile(t *testing.T) {
	svc, profileRepo, followRepo, projectRepo, _ := newProfileService()
	ctx := context.Background()

	profileRepo.On("FindByID", ctx, "alice").
		Return(&domain.Profile{ID: "alice", Username: "alice"}, nil).Once()
	followRepo.On("CountFollowers", ctx, "alice").Return(int64(3), nil).Once()
	followRepo.On("CountFollowing", ctx, "alice").Return(int64(7), nil).Once()
	projectRepo.On("CountByCreator", ctx, "alice").Return(int64(2), nil).Once()

	detail, err := svc.Detailed(ctx, "alice", "alice")

	require.NoError(t, err)
	assert.True(t, detail.IsOwnProfile)
	assert.False(t, detail.IsFollowing)
	assert.Equal(t, int64(3), detail.Followers)
	assert.Equal(t, int64(7), detail.Following)
	assert.Equal(t, int64(2), detail.Projects)
	followRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_Detailed_ViewerFollows(t *testing.T) {
	svc, profileRepo, followRepo, projectRepo, _ := newProfileService()
	ctx := context.Background()

	profileRepo.On("FindByID", ctx, "bob").
		Return(&domain.Profile{ID: "bob", Username: "bob"}, nil).Once()
	followRepo.On("CountFollowers", ctx, "bob").Return(int64(1), nil).Once()
	followRepo.On("CountFollowing", ctx, "bob").Return(int64(0), nil).Once()
	projectRepo.On("CountByCreator", ctx, "bob").Return(int64(0), nil).Once()
	followRepo.On("Exists", ctx, "alice", "bob").Return(true, nil).Once()

	detail, err := svc.Detailed(ctx, "bob", "alice")

	require.NoError(t, err)
	assert.False(t, detail.IsOwnProfile)
	assert.True(t, detail.IsFollowing)
}

func TestProfileService_Unfollow_AbsentEdgeIsNoop(t *testing.T) {
	svc, _, followRepo, _, _ := newProfileService()
	ctx := context.Background()

	followRepo.On("Delete", ctx, "alice", "bob").Return(nil).Once()

	err := svc.Unfollow(ctx, "alice", "bob")

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
}
