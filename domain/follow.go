package domain

import (
	"context"
	"time"
)

// Follow represents a directed edge: FollowerID follows FollowedID.
// The feed engine only consumes it as a read-only filter predicate.
type Follow struct {
	FollowerID string
	FollowedID string
	CreatedAt  time.Time
}

// FollowUsecase defines the business logic contract for follow edges.
type FollowUsecase interface {
	// Follow makes the viewer follow the given user.
	// Returns ErrConflict if the edge already exists.
	Follow(ctx context.Context, viewer Viewer, followedID string) error

	// Unfollow removes the viewer's follow edge to the given user.
	Unfollow(ctx context.Context, viewer Viewer, followedID string) error
}

// FollowRepository defines the contract for follow edge persistence.
type FollowRepository interface {
	// Create inserts a follow edge.
	// Returns ErrConflict if the edge already exists.
	Create(ctx context.Context, f *Follow) error

	// Delete removes a follow edge.
	// Returns ErrNotFound if the edge doesn't exist.
	Delete(ctx context.Context, followerID, followedID string) error
}
