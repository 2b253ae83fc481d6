package model

import (
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

type Tweet struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Content   string    `gorm:"type:text;not null"`
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;index"`
	CreatedAt time.Time `gorm:"type:datetime;index:idx_tweet_feed,priority:1"`
}

func (Tweet) TableName() string {
	return "tweet"
}

func (m *Tweet) ToDomain() domain.Tweet {
	return domain.Tweet{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
	}
}

func NewTweetFromDomain(t *domain.Tweet) *Tweet {
	return &Tweet{
		ID:        t.ID,
		Content:   t.Content,
		UserID:    t.User.ID,
		CreatedAt: t.CreatedAt,
	}
}

// FeedRow is the flat shape produced by the feed query: one tweet row
// joined with its author plus the like aggregate and the per-viewer
// like existence flag.
type FeedRow struct {
	ID        string
	Content   string
	CreatedAt time.Time
	UserID    string
	UserName  string
	UserImage string
	LikeCount int64
	LikedByMe bool
}

// ToSummary shapes a feed row into the view model served to readers.
func (r *FeedRow) ToSummary() domain.TweetSummary {
	return domain.TweetSummary{
		ID:        r.ID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		LikeCount: r.LikeCount,
		LikedByMe: r.LikedByMe,
		User: domain.Author{
			ID:    r.UserID,
			Name:  r.UserName,
			Image: r.UserImage,
		},
	}
}
