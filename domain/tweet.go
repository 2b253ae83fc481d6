package domain

import (
	"context"
	"time"
)

// Tweet is representing the Tweet data struct
type Tweet struct {
	ID        string    // Server-assigned opaque identifier
	Content   string    // Tweet body text
	User      User      // Author information
	CreatedAt time.Time // Creation timestamp
}

// TweetSummary is the denormalized projection served to readers.
// It is rebuilt on every query and never stored.
type TweetSummary struct {
	ID        string
	Content   string
	CreatedAt time.Time
	LikeCount int64
	LikedByMe bool
	User      Author
}

// Cursor marks the last item of a fetched page. createdAt alone is not
// unique, so the tweet id acts as tiebreaker; the (createdAt, id) pair
// is totally ordered and makes pagination gap- and duplicate-free.
type Cursor struct {
	ID        string
	CreatedAt time.Time
}

// FeedQuery describes one page request against the feed.
type FeedQuery struct {
	Viewer        Viewer
	OnlyFollowing bool   // restrict to authors followed by the viewer
	AuthorID      string // restrict to a single author (profile feed)
	Cursor        *Cursor
}

// FeedPage is one page of summaries plus the resume position.
// A nil NextCursor means the feed is exhausted.
type FeedPage struct {
	Tweets     []TweetSummary
	NextCursor *Cursor
}

// LikeResult reports the outcome of a like toggle.
type LikeResult struct {
	AddedLike bool
}

// TweetRepository defines the contract for tweet data persistence
type TweetRepository interface {
	// FetchFeed retrieves up to num summaries matching q, ordered by
	// (created_at desc, id desc), resuming strictly after q.Cursor.
	FetchFeed(ctx context.Context, q FeedQuery, num int64) ([]TweetSummary, error)

	// Store creates a new tweet. CreatedAt is backfilled on success.
	Store(ctx context.Context, t *Tweet) error

	// GetByID retrieves a single tweet by its ID.
	// Returns ErrNotFound if the tweet doesn't exist.
	GetByID(ctx context.Context, id string) (Tweet, error)

	// FetchIDs pages over all tweet ids, for bloom filter warmup.
	FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error)
}

// FeedRepository assembles feed pages: it owns the limit+1 overfetch
// that detects whether more pages exist and the resulting next cursor.
type FeedRepository interface {
	GetPage(ctx context.Context, q FeedQuery, limit int64) (FeedPage, error)
}

// FeedCache caches the anonymous first page of the recent feed.
// Authenticated reads bypass it because LikedByMe is viewer-specific.
type FeedCache interface {
	// GetRecentFirstPage returns ErrCacheMiss when the page is absent.
	GetRecentFirstPage(ctx context.Context) (FeedPage, error)
	SetRecentFirstPage(ctx context.Context, page FeedPage) error
	InvalidateRecent(ctx context.Context) error
}

type TweetUsecase interface {
	// InfiniteFeed returns one page of the recent or following-only feed.
	// OnlyFollowing with an anonymous viewer degenerates to the recent feed.
	InfiniteFeed(ctx context.Context, viewer Viewer, onlyFollowing bool, limit int64, cursor *Cursor) (FeedPage, error)

	// InfiniteProfileFeed returns one page of a single author's tweets.
	InfiniteProfileFeed(ctx context.Context, viewer Viewer, authorID string, limit int64, cursor *Cursor) (FeedPage, error)

	// Create stores a new tweet for the authenticated viewer and
	// schedules regeneration of the author's profile page.
	Create(ctx context.Context, viewer Viewer, content string) (Tweet, error)

	// ToggleLike flips the viewer's like on a tweet.
	ToggleLike(ctx context.Context, viewer Viewer, tweetID string) (LikeResult, error)
}
