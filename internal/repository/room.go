package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// RoomRepository stores chat rooms of both kinds.
type RoomRepository interface {
	// FindByID returns a room by ID, or ErrRoomNotFound.
	FindByID(ctx context.Context, id string) (*domain.Room, error)

	// Save creates or updates a room.
	Save(ctx context.Context, room *domain.Room) error

	// FindCommunities returns community rooms not created by excludeCreator.
	// Pass an empty string to list all communities.
	FindCommunities(ctx context.Context, excludeCreator string) ([]domain.Room, error)

	// FindCommunitiesByCreator returns community rooms created by creatorID.
	FindCommunitiesByCreator(ctx context.Context, creatorID string) ([]domain.Room, error)

	// FindCommunitiesByIDs returns the community rooms among the given IDs.
	FindCommunitiesByIDs(ctx context.Context, ids []string) ([]domain.Room, error)
}

// DirectRoomRepository stores the participant pairs of direct rooms.
type DirectRoomRepository interface {
	// FindByRoomID returns the participant record for a direct room, or
	// ErrRoomNotFound.
	FindByRoomID(ctx context.Context, roomID string) (*domain.DirectRoom, error)

	// FindByParticipants returns the direct room shared by the two users,
	// in either order, or ErrRoomNotFound.
	FindByParticipants(ctx context.Context, user1ID, user2ID string) (*domain.DirectRoom, error)

	// FindByUser returns every direct room the user participates in.
	FindByUser(ctx context.Context, userID string) ([]domain.DirectRoom, error)

	// Save creates a participant record.
	Save(ctx context.Context, room *domain.DirectRoom) error
}
