package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/birdfeed/birdfeed/domain"
)

const (
	KeyRecentFirstPage = "feed:recent:first"

	recentFirstPageTTL = 30 * time.Second
)

// feedCache holds the anonymous first page of the recent feed. Only the
// anonymous view is cacheable: liked_by_me is viewer-specific, so
// authenticated reads always go to the database.
type feedCache struct {
	client *redis.Client
}

var _ domain.FeedCache = (*feedCache)(nil)

func NewFeedCache(client *redis.Client) *feedCache {
	return &feedCache{
		client,
	}
}

func (c *feedCache) GetRecentFirstPage(ctx context.Context) (res domain.FeedPage, err error) {
	data, err := c.client.Get(ctx, KeyRecentFirstPage).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.FeedPage{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.FeedPage{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.FeedPage{}, err
	}
	return
}

func (c *feedCache) SetRecentFirstPage(ctx context.Context, page domain.FeedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyRecentFirstPage, data, recentFirstPageTTL).Err()
}

func (c *feedCache) InvalidateRecent(ctx context.Context) error {
	return c.client.Del(ctx, KeyRecentFirstPage).Err()
}
