package model

import (
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

type Follow struct {
	FollowerID string    `gorm:"column:follower_id;type:varchar(36);not null;uniqueIndex:uniq_follower_followed,priority:1"`
	FollowedID string    `gorm:"column:followed_id;type:varchar(36);not null;uniqueIndex:uniq_follower_followed,priority:2"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		FollowerID: f.FollowerID,
		FollowedID: f.FollowedID,
		CreatedAt:  f.CreatedAt,
	}
}
