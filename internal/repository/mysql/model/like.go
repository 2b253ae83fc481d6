package model

import (
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

// Like rows carry a composite unique key on (user_id, tweet_id); the
// constraint arbitrates concurrent duplicate inserts.
type Like struct {
	UserID    string    `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:uniq_user_tweet,priority:1"`
	TweetID   string    `gorm:"column:tweet_id;type:varchar(36);not null;uniqueIndex:uniq_user_tweet,priority:2"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l *domain.Like) *Like {
	return &Like{
		UserID:    l.UserID,
		TweetID:   l.TweetID,
		CreatedAt: l.CreatedAt,
	}
}
