package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// MembershipRepository stores room memberships. The (room, user) pair is
// unique; Find returning ErrMembershipNotFound encodes the "none" state of
// the membership tri-state.
type MembershipRepository interface {
	// Find returns the membership of userID in roomID, or
	// ErrMembershipNotFound.
	Find(ctx context.Context, roomID, userID string) (*domain.Membership, error)

	// Save creates or updates a membership. A second create for the same
	// (room, user) pair yields ErrDuplicateEntry.
	Save(ctx context.Context, membership *domain.Membership) error

	// Delete removes the membership of userID in roomID. Deleting an absent
	// membership is not an error.
	Delete(ctx context.Context, roomID, userID string) error

	// FindByRoom returns all memberships of a room.
	FindByRoom(ctx context.Context, roomID string) ([]domain.Membership, error)

	// FindRoomIDsByUser returns the IDs of rooms where the user holds a
	// membership with the given status.
	FindRoomIDsByUser(ctx context.Context, userID string, status domain.MembershipStatus) ([]string, error)
}
