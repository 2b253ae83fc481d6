package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

func (m *followRepository) Create(ctx context.Context, f *domain.Follow) error {
	followModel := model.NewFollowFromDomain(f)
	result := m.DB.WithContext(ctx).Create(followModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (m *followRepository) Delete(ctx context.Context, followerID, followedID string) error {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
