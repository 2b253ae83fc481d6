package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/birdfeed/birdfeed/domain"
)

type TweetUsecase struct {
	mock.Mock
}

func (m *TweetUsecase) InfiniteFeed(ctx context.Context, viewer domain.Viewer, onlyFollowing bool, limit int64, cursor *domain.Cursor) (domain.FeedPage, error) {
	args := m.Called(ctx, viewer, onlyFollowing, limit, cursor)
	res, _ := args.Get(0).(domain.FeedPage)
	return res, args.Error(1)
}

func (m *TweetUsecase) InfiniteProfileFeed(ctx context.Context, viewer domain.Viewer, authorID string, limit int64, cursor *domain.Cursor) (domain.FeedPage, error) {
	args := m.Called(ctx, viewer, authorID, limit, cursor)
	res, _ := args.Get(0).(domain.FeedPage)
	return res, args.Error(1)
}

func (m *TweetUsecase) Create(ctx context.Context, viewer domain.Viewer, content string) (domain.Tweet, error) {
	args := m.Called(ctx, viewer, content)
	res, _ := args.Get(0).(domain.Tweet)
	return res, args.Error(1)
}

func (m *TweetUsecase) ToggleLike(ctx context.Context, viewer domain.Viewer, tweetID string) (domain.LikeResult, error) {
	args := m.Called(ctx, viewer, tweetID)
	res, _ := args.Get(0).(domain.LikeResult)
	return res, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, name, username, password string) error {
	args := m.Called(ctx, name, username, password)
	return args.Error(0)
}

func (m *UserUsecase) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *UserUsecase) Me(ctx context.Context, viewer domain.Viewer) (domain.User, error) {
	args := m.Called(ctx, viewer)
	res, _ := args.Get(0).(domain.User)
	return res, args.Error(1)
}

type FollowUsecase struct {
	mock.Mock
}

func (m *FollowUsecase) Follow(ctx context.Context, viewer domain.Viewer, followedID string) error {
	args := m.Called(ctx, viewer, followedID)
	return args.Error(0)
}

func (m *FollowUsecase) Unfollow(ctx context.Context, viewer domain.Viewer, followedID string) error {
	args := m.Called(ctx, viewer, followedID)
	return args.Error(0)
}
