package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
	"github.com/adithya2152/devconnect/internal/repository"
)

// CommunityMember is one member listing entry, membership plus profile.
type CommunityMember struct {
	Membership domain.Membership `json:"membership"`
	Profile    *domain.Profile   `json:"profile,omitempty"`
}

// CommunityService manages community rooms and their approval-gated
// memberships.
type CommunityService struct {
	rooms       repository.RoomRepository
	memberships repository.MembershipRepository
	profiles    repository.ProfileRepository
	notifier    NotificationDispatcher
}

func NewCommunityService(
	rooms repository.RoomRepository,
	memberships repository.MembershipRepository,
	profiles repository.ProfileRepository,
	notifier NotificationDispatcher,
) *CommunityService {
	if rooms == nil || memberships == nil || profiles == nil || notifier == nil {
		panic("CommunityService dependencies cannot be nil")
	}
	return &CommunityService{rooms: rooms, memberships: memberships, profiles: profiles, notifier: notifier}
}

// Explore lists communities the user did not create.
func (s *CommunityService) Explore(ctx context.Context, userID string) ([]domain.Room, error) {
	rooms, err := s.rooms.FindCommunities(ctx, userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to list communities")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// Joined lists communities where the user holds an approved membership.
func (s *CommunityService) Joined(ctx context.Context, userID string) ([]domain.Room, error) {
	roomIDs, err := s.memberships.FindRoomIDsByUser(ctx, userID, domain.MembershipApproved)
	if err != nil {
		logrus.WithError(err).Error("Failed to list membership room ids")
		return nil, ErrInternalServer
	}
	if len(roomIDs) == 0 {
		return []domain.Room{}, nil
	}
	rooms, err := s.rooms.FindCommunitiesByIDs(ctx, roomIDs)
	if err != nil {
		logrus.WithError(err).Error("Failed to load joined communities")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// Hosted lists communities the user created.
func (s *CommunityService) Hosted(ctx context.Context, userID string) ([]domain.Room, error) {
	rooms, err := s.rooms.FindCommunitiesByCreator(ctx, userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to list hosted communities")
		return nil, ErrInternalServer
	}
	return rooms, nil
}

// Create creates a community room; the creator becomes its approved admin.
func (s *CommunityService) Create(ctx context.Context, creatorID, name, description string) (*domain.Room, error) {
	logCtx := logrus.WithFields(logrus.Fields{"creator_id": creatorID, "name": name})
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: community name must be at least 3 characters", ErrInvalidInput)
	}

	room := &domain.Room{
		Kind:        domain.RoomCommunity,
		Name:        name,
		Description: description,
		CreatedBy:   creatorID,
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		logCtx.WithError(err).Error("Failed to create community")
		return nil, ErrInternalServer
	}

	admin := &domain.Membership{
		RoomID: room.ID,
		UserID: creatorID,
		Role:   domain.RoleAdmin,
		Status: domain.MembershipApproved,
	}
	if err := s.memberships.Save(ctx, admin); err != nil {
		logCtx.WithError(err).Error("Failed to record creator membership")
		return nil, ErrInternalServer
	}

	logCtx.WithField("room_id", room.ID).Info("Community created")
	return room, nil
}

// Join records a pending membership request and notifies the community
// owner. Joining twice, or while already a member, is a conflict.
func (s *CommunityService) Join(ctx context.Context, communityID, userID string) (*domain.Membership, error) {
	logCtx := logrus.WithFields(logrus.Fields{"community_id": communityID, "user_id": userID})

	room, err := s.findCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}

	membership := &domain.Membership{
		RoomID: communityID,
		UserID: userID,
		Role:   domain.RoleMember,
		Status: domain.MembershipPending,
	}
	if err := s.memberships.Save(ctx, membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrAlreadyMember
		}
		logCtx.WithError(err).Error("Failed to record join request")
		return nil, ErrInternalServer
	}

	_ = s.notifier.Dispatch(ctx, room.CreatedBy, userID, domain.NotificationJoinRequest,
		fmt.Sprintf("New join request for %s", room.Name))

	logCtx.Info("Join request recorded")
	return membership, nil
}

// Approve flips a pending membership to approved. Only an approved admin of
// the community may approve.
func (s *CommunityService) Approve(ctx context.Context, communityID, adminID, userID string) error {
	logCtx := logrus.WithFields(logrus.Fields{"community_id": communityID, "admin_id": adminID, "user_id": userID})

	room, err := s.findCommunity(ctx, communityID)
	if err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, communityID, adminID); err != nil {
		return err
	}

	membership, err := s.memberships.Find(ctx, communityID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return ErrMembershipNotFound
		}
		logCtx.WithError(err).Error("Failed to load membership for approval")
		return ErrInternalServer
	}

	membership.Status = domain.MembershipApproved
	if err := s.memberships.Save(ctx, membership); err != nil {
		logCtx.WithError(err).Error("Failed to approve membership")
		return ErrInternalServer
	}

	_ = s.notifier.Dispatch(ctx, userID, adminID, domain.NotificationApproved,
		fmt.Sprintf("Your request to join %s was approved", room.Name))

	logCtx.Info("Membership approved")
	return nil
}

// Reject removes a pending join request. Only an approved admin may reject.
func (s *CommunityService) Reject(ctx context.Context, communityID, adminID, userID string) error {
	logCtx := logrus.WithFields(logrus.Fields{"community_id": communityID, "admin_id": adminID, "user_id": userID})

	if _, err := s.findCommunity(ctx, communityID); err != nil {
		return err
	}
	if err := s.requireAdmin(ctx, communityID, adminID); err != nil {
		return err
	}
	if err := s.memberships.Delete(ctx, communityID, userID); err != nil {
		logCtx.WithError(err).Error("Failed to reject membership")
		return ErrInternalServer
	}
	logCtx.Info("Membership rejected")
	return nil
}

// Leave removes the caller's membership, whatever its status.
func (s *CommunityService) Leave(ctx context.Context, communityID, userID string) error {
	if err := s.memberships.Delete(ctx, communityID, userID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"community_id": communityID,
			"user_id":      userID,
		}).Error("Failed to leave community")
		return ErrInternalServer
	}
	return nil
}

// Members lists a community's memberships with their profiles.
func (s *CommunityService) Members(ctx context.Context, communityID string) ([]CommunityMember, error) {
	memberships, err := s.memberships.FindByRoom(ctx, communityID)
	if err != nil {
		logrus.WithError(err).WithField("community_id", communityID).Error("Failed to list members")
		return nil, ErrInternalServer
	}
	members := make([]CommunityMember, 0, len(memberships))
	for _, m := range memberships {
		member := CommunityMember{Membership: m}
		if profile, err := s.profiles.FindByID(ctx, m.UserID); err == nil {
			member.Profile = profile
		}
		members = append(members, member)
	}
	return members, nil
}

func (s *CommunityService) findCommunity(ctx context.Context, communityID string) (*domain.Room, error) {
	room, err := s.rooms.FindByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrCommunityNotFound
		}
		logrus.WithError(err).WithField("community_id", communityID).Error("Failed to load community")
		return nil, ErrInternalServer
	}
	if room.Kind != domain.RoomCommunity {
		return nil, ErrCommunityNotFound
	}
	return room, nil
}

func (s *CommunityService) requireAdmin(ctx context.Context, communityID, adminID string) error {
	membership, err := s.memberships.Find(ctx, communityID, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return ErrNotAdmin
		}
		logrus.WithError(err).Error("Failed to load admin membership")
		return ErrInternalServer
	}
	if !membership.IsApprovedAdmin() {
		return ErrNotAdmin
	}
	return nil
}
