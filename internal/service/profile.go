package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// ProfileDetail is a profile enriched with follow counts and the viewer's
// relationship to it.
type ProfileDetail struct {
	Profile      domain.Profile `json:"profile"`
	Followers    int64          `json:"followers"`
	Following    int64          `json:"following"`
	Projects     int64          `json:"projects"`
	IsFollowing  bool           `json:"is_following"`
	IsOwnProfile bool           `json:"is_own_profile"`
}

// ProfileService serves profiles and the follow graph.
type ProfileService struct {
	profiles repository.ProfileRepository
	follows  repository.FollowRepository
	projects repository.ProjectRepository
	notifier NotificationDispatcher
}

func NewProfileService(
	profiles repository.ProfileRepository,
	follows repository.FollowRepository,
	projects repository.ProjectRepository,
	notifier NotificationDispatcher,
) *ProfileService {
	if profiles == nil || follows == nil || projects == nil || notifier == nil {
		panic("ProfileService dependencies cannot be nil")
	}
	return &ProfileService{profiles: profiles, follows: follows, projects: projects, notifier: notifier}
}

// Get loads a bare profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		return nil, ErrInternalServer
	}
	return profile, nil
}

// Detailed loads a profile with follow counts, project count and the
// viewer's follow state.
func (s *ProfileService) Detailed(ctx context.Context, userID, viewerID string) (*ProfileDetail, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &ProfileDetail{
		Profile:      *profile,
		IsOwnProfile: viewerID == userID,
	}

	if detail.Followers, err = s.follows.CountFollowers(ctx, userID); err != nil {
		logrus.WithError(err).Warn("Failed to count followers")
	}
	if detail.Following, err = s.follows.CountFollowing(ctx, userID); err != nil {
		logrus.WithError(err).Warn("Failed to count following")
	}
	if detail.Projects, err = s.projects.CountByCreator(ctx, userID); err != nil {
		logrus.WithError(err).Warn("Failed to count projects")
	}
	if viewerID != "" && viewerID != userID {
		if detail.IsFollowing, err = s.follows.Exists(ctx, viewerID, userID); err != nil {
			logrus.WithError(err).Warn("Failed to check follow state")
		}
	}
	return detail, nil
}

// Update saves edits to the caller's own profile.
func (s *ProfileService) Update(ctx context.Context, profile *domain.Profile) error {
	if err := s.profiles.Save(ctx, profile); err != nil {
		logrus.WithError(err).WithField("user_id", profile.ID).Error("Failed to update profile")
		return ErrInternalServer
	}
	return nil
}

// Follow records followerID following followingID and notifies the target.
func (s *ProfileService) Follow(ctx context.Context, followerID, followingID string) error {
	logCtx := logrus.WithFields(logrus.Fields{"follower_id": followerID, "following_id": followingID})

	if followerID == followingID {
		return ErrSelfFollow
	}
	if _, err := s.Get(ctx, followingID); err != nil {
		return err
	}

	follow := &domain.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := s.follows.Save(ctx, follow); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyFollowing
		}
		logCtx.WithError(err).Error("Failed to record follow")
		return ErrInternalServer
	}

	_ = s.notifier.Dispatch(ctx, followingID, followerID, domain.NotificationFollow, "started following you")

	logCtx.Info("Follow recorded")
	return nil
}

// Unfollow removes the edge; removing a missing edge is a no-op.
func (s *ProfileService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.follows.Delete(ctx, followerID, followingID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"follower_id":  followerID,
			"following_id": followingID,
		}).Error("Failed to remove follow")
		return ErrInternalServer
	}
	return nil
}
