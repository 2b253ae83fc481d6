package domain

import (
	"context"
	"time"
)

// Like is representing a like record. The (UserID, TweetID) pair is
// unique; the database constraint is the backstop for concurrent
// toggles on the same pair.
type Like struct {
	UserID    string
	TweetID   string
	CreatedAt time.Time
}

// LikeRepository defines the contract for like persistence.
type LikeRepository interface {
	// Exists reports whether the (userID, tweetID) like row is present.
	Exists(ctx context.Context, userID, tweetID string) (bool, error)

	// Create inserts a like row.
	// Returns ErrConflict if the pair already exists.
	Create(ctx context.Context, like *Like) error

	// Delete removes a like row.
	// Returns ErrNotFound if the pair doesn't exist.
	Delete(ctx context.Context, userID, tweetID string) error
}
