package repository

import (
	"context"

	"github.com/adithya2152/devconnect/internal/domain"
)

// FollowRepository stores the follow graph.
type FollowRepository interface {
	// Exists reports whether follower already follows following.
	Exists(ctx context.Context, followerID, followingID string) (bool, error)

	// Save creates a follow edge.
	Save(ctx context.Context, follow *domain.Follow) error

	// Delete removes a follow edge; removing an absent edge is not an error.
	Delete(ctx context.Context, followerID, followingID string) error

	// CountFollowers returns how many users follow userID.
	CountFollowers(ctx context.Context, userID string) (int64, error)

	// CountFollowing returns how many users userID follows.
	CountFollowing(ctx context.Context, userID string) (int64, error)
}
