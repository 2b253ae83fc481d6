package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdfeed/birdfeed/domain"
	redisRepo "github.com/birdfeed/birdfeed/internal/repository/redis"
)

func samplePage() domain.FeedPage {
	createdAt := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)
	return domain.FeedPage{
		Tweets: []domain.TweetSummary{
			{
				ID:        "t2",
				Content:   "second",
				CreatedAt: createdAt,
				LikeCount: 3,
				User:      domain.Author{ID: "u1", Name: "Alice"},
			},
			{
				ID:        "t1",
				Content:   "first",
				CreatedAt: createdAt.Add(-time.Minute),
				User:      domain.Author{ID: "u2", Name: "Bob"},
			},
		},
		NextCursor: &domain.Cursor{ID: "t1", CreatedAt: createdAt.Add(-time.Minute)},
	}
}

func TestGetRecentFirstPageMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewFeedCache(client)

	mock.ExpectGet(redisRepo.KeyRecentFirstPage).RedisNil()

	_, err := cache.GetRecentFirstPage(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentFirstPageRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewFeedCache(client)

	page := samplePage()
	data, err := json.Marshal(page)
	require.NoError(t, err)

	mock.ExpectSet(redisRepo.KeyRecentFirstPage, data, 30*time.Second).SetVal("OK")
	mock.ExpectGet(redisRepo.KeyRecentFirstPage).SetVal(string(data))

	require.NoError(t, cache.SetRecentFirstPage(context.Background(), page))

	got, err := cache.GetRecentFirstPage(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Tweets, 2)
	assert.Equal(t, "t2", got.Tweets[0].ID)
	assert.Equal(t, int64(3), got.Tweets[0].LikeCount)
	require.NotNil(t, got.NextCursor)
	assert.Equal(t, "t1", got.NextCursor.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateRecent(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := redisRepo.NewFeedCache(client)

	mock.ExpectDel(redisRepo.KeyRecentFirstPage).SetVal(1)

	require.NoError(t, cache.InvalidateRecent(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
