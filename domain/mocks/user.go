package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/birdfeed/birdfeed/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(domain.User)
	return res, args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	res, _ := args.Get(0).(domain.User)
	return res, args.Error(1)
}

type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Create(ctx context.Context, f *domain.Follow) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FollowRepository) Delete(ctx context.Context, followerID, followedID string) error {
	args := m.Called(ctx, followerID, followedID)
	return args.Error(0)
}
