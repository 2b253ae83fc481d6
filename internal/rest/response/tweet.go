package response

import (
	"time"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/repository"
)

type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type TweetSummary struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int64     `json:"like_count"`
	LikedByMe bool      `json:"liked_by_me"`
	User      Author    `json:"user"`
}

// FeedPage carries one page plus the opaque cursor for the next one.
// NextCursor is empty at the end of the feed.
type FeedPage struct {
	Tweets     []TweetSummary `json:"tweets"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// Tweet is the raw created-tweet record returned by the create
// mutation; the caller synthesizes the view model.
type Tweet struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

type LikeResult struct {
	AddedLike bool `json:"added_like"`
}

// FromDomain: Domain -> Response
func NewTweetSummaryFromDomain(t *domain.TweetSummary) TweetSummary {
	return TweetSummary{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		LikeCount: t.LikeCount,
		LikedByMe: t.LikedByMe,
		User: Author{
			ID:    t.User.ID,
			Name:  t.User.Name,
			Image: t.User.Image,
		},
	}
}

func NewFeedPageFromDomain(p *domain.FeedPage) FeedPage {
	res := FeedPage{
		Tweets: make([]TweetSummary, len(p.Tweets)),
	}
	for i := range p.Tweets {
		res.Tweets[i] = NewTweetSummaryFromDomain(&p.Tweets[i])
	}
	if p.NextCursor != nil {
		res.NextCursor = repository.EncodeCursor(*p.NextCursor)
	}
	return res
}

func NewTweetFromDomain(t *domain.Tweet) Tweet {
	return Tweet{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UserID:    t.User.ID,
	}
}
