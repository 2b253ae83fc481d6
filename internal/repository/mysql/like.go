package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) Exists(ctx context.Context, userID, tweetID string) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the like row. A concurrent duplicate insert loses the
// race at the unique (user_id, tweet_id) index and comes back as
// ErrConflict instead of a raw driver error.
func (m *likeRepository) Create(ctx context.Context, like *domain.Like) error {
	likeModel := model.NewLikeFromDomain(like)
	result := m.DB.WithContext(ctx).Create(likeModel)
	if result.Error != nil {
		if isDuplicateEntry(result.Error) {
			return domain.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (m *likeRepository) Delete(ctx context.Context, userID, tweetID string) error {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.Like{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
