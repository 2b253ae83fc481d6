package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/birdfeed/birdfeed/domain"
)

type TweetRepository struct {
	mock.Mock
}

func (m *TweetRepository) FetchFeed(ctx context.Context, q domain.FeedQuery, num int64) ([]domain.TweetSummary, error) {
	args := m.Called(ctx, q, num)
	res, _ := args.Get(0).([]domain.TweetSummary)
	return res, args.Error(1)
}

func (m *TweetRepository) Store(ctx context.Context, t *domain.Tweet) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TweetRepository) GetByID(ctx context.Context, id string) (domain.Tweet, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(domain.Tweet)
	return res, args.Error(1)
}

func (m *TweetRepository) FetchIDs(ctx context.Context, cursor string, limit int64) ([]string, error) {
	args := m.Called(ctx, cursor, limit)
	res, _ := args.Get(0).([]string)
	return res, args.Error(1)
}

type FeedRepository struct {
	mock.Mock
}

func (m *FeedRepository) GetPage(ctx context.Context, q domain.FeedQuery, limit int64) (domain.FeedPage, error) {
	args := m.Called(ctx, q, limit)
	res, _ := args.Get(0).(domain.FeedPage)
	return res, args.Error(1)
}

type FeedCache struct {
	mock.Mock
}

func (m *FeedCache) GetRecentFirstPage(ctx context.Context) (domain.FeedPage, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).(domain.FeedPage)
	return res, args.Error(1)
}

func (m *FeedCache) SetRecentFirstPage(ctx context.Context, page domain.FeedPage) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *FeedCache) InvalidateRecent(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
