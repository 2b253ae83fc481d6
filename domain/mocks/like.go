package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/birdfeed/birdfeed/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Exists(ctx context.Context, userID, tweetID string) (bool, error) {
	args := m.Called(ctx, userID, tweetID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepository) Delete(ctx context.Context, userID, tweetID string) error {
	args := m.Called(ctx, userID, tweetID)
	return args.Error(0)
}

type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type RevalidateWorker struct {
	mock.Mock
}

func (m *RevalidateWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *RevalidateWorker) Send(userID string) {
	m.Called(userID)
}
