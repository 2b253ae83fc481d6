package follow

import (
	"context"
	"time"

	"github.com/birdfeed/birdfeed/domain"
)

type Service struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
}

var _ domain.FollowUsecase = (*Service)(nil)

func NewService(followRepo domain.FollowRepository, userRepo domain.UserRepository) *Service {
	return &Service{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *Service) Follow(ctx context.Context, viewer domain.Viewer, followedID string) error {
	viewerID, ok := viewer.ID()
	if !ok {
		return domain.ErrUnauthorized
	}
	if followedID == "" || followedID == viewerID {
		return domain.ErrBadParamInput
	}

	if _, err := s.userRepo.GetByID(ctx, followedID); err != nil {
		return err
	}

	return s.followRepo.Create(ctx, &domain.Follow{
		FollowerID: viewerID,
		FollowedID: followedID,
		CreatedAt:  time.Now(),
	})
}

func (s *Service) Unfollow(ctx context.Context, viewer domain.Viewer, followedID string) error {
	viewerID, ok := viewer.ID()
	if !ok {
		return domain.ErrUnauthorized
	}
	if followedID == "" {
		return domain.ErrBadParamInput
	}

	return s.followRepo.Delete(ctx, viewerID, followedID)
}
