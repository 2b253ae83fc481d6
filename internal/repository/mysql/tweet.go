package mysql

import (
	"context"
	"errors"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/repository/mysql/model"
)

const mysqlErrDuplicateEntry = 1062

type tweetRepository struct {
	DB *gorm.DB
}

var _ domain.TweetRepository = (*tweetRepository)(nil)

func NewTweetRepository(db *gorm.DB) *tweetRepository {
	return &tweetRepository{db}
}

// FetchFeed runs the feed query: up to num rows ordered by
// (created_at desc, id desc), resuming strictly after q.Cursor. The
// like count is a correlated aggregate and liked_by_me an EXISTS check
// against the viewer id; anonymous viewers check with an empty id and
// always read false.
func (m *tweetRepository) FetchFeed(ctx context.Context, q domain.FeedQuery, num int64) (res []domain.TweetSummary, err error) {
	viewerID, _ := q.Viewer.ID()

	query := m.DB.WithContext(ctx).
		Model(&model.Tweet{}).
		Select(`tweet.id, tweet.content, tweet.created_at, tweet.user_id,
			user.name AS user_name, user.image AS user_image,
			(SELECT COUNT(*) FROM likes WHERE likes.tweet_id = tweet.id) AS like_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.tweet_id = tweet.id AND likes.user_id = ?) AS liked_by_me`,
			viewerID).
		Joins("JOIN user ON user.id = tweet.user_id")

	if q.AuthorID != "" {
		query = query.Where("tweet.user_id = ?", q.AuthorID)
	} else if q.OnlyFollowing {
		query = query.Where(
			"tweet.user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)",
			viewerID,
		)
	}

	if q.Cursor != nil {
		query = query.Where(
			"tweet.created_at < ? OR (tweet.created_at = ? AND tweet.id < ?)",
			q.Cursor.CreatedAt, q.Cursor.CreatedAt, q.Cursor.ID,
		)
	}

	var rows []model.FeedRow
	err = query.
		Order("tweet.created_at DESC, tweet.id DESC").
		Limit(int(num)).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	res = make([]domain.TweetSummary, len(rows))
	for i := range rows {
		res[i] = rows[i].ToSummary()
	}
	return res, nil
}

func (m *tweetRepository) Store(ctx context.Context, t *domain.Tweet) error {
	tweetModel := model.NewTweetFromDomain(t)
	result := m.DB.WithContext(ctx).Create(tweetModel)
	if result.Error != nil {
		return result.Error
	}
	t.CreatedAt = tweetModel.CreatedAt
	return nil
}

func (m *tweetRepository) GetByID(ctx context.Context, id string) (res domain.Tweet, err error) {
	var tweet model.Tweet
	err = m.DB.WithContext(ctx).First(&tweet, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = tweet.ToDomain()
	return
}

func (m *tweetRepository) FetchIDs(ctx context.Context, cursor string, limit int64) (ids []string, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Tweet{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

// isDuplicateEntry reports whether err is a unique-constraint violation.
func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqlDriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry
}
