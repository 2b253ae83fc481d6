package repository

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/birdfeed/birdfeed/domain"
)

// feedRepository coordinates the database and the first-page cache.
// Only the anonymous, unfiltered, cursorless default page is cacheable;
// everything else goes straight to the database.
type feedRepository struct {
	db           domain.TweetRepository
	cache        domain.FeedCache
	rebuildGroup singleflight.Group
}

var _ domain.FeedRepository = (*feedRepository)(nil)

func NewFeedRepository(db domain.TweetRepository, cache domain.FeedCache) *feedRepository {
	return &feedRepository{
		db:    db,
		cache: cache,
	}
}

// GetPage fetches limit+1 rows; the extra row proves another page
// exists and is discarded. NextCursor is the (createdAt, id) pair of
// the last row actually returned, so the next scan resumes strictly
// after it and the discarded row opens the next page.
func (r *feedRepository) GetPage(ctx context.Context, q domain.FeedQuery, limit int64) (domain.FeedPage, error) {
	PageVerify(&limit)

	if r.cacheable(q, limit) {
		page, err := r.cache.GetRecentFirstPage(ctx)
		if err == nil {
			return page, nil
		}
		if err != domain.ErrCacheMiss {
			logrus.Warnf("feed cache get error: %v", err)
		}
		return r.rebuildRecentFirstPage(ctx, q, limit)
	}

	return r.buildPage(ctx, q, limit)
}

func (r *feedRepository) buildPage(ctx context.Context, q domain.FeedQuery, limit int64) (domain.FeedPage, error) {
	rows, err := r.db.FetchFeed(ctx, q, limit+1)
	if err != nil {
		return domain.FeedPage{}, err
	}

	page := domain.FeedPage{Tweets: rows}
	if int64(len(rows)) > limit {
		page.Tweets = rows[:limit]
		last := page.Tweets[limit-1]
		page.NextCursor = &domain.Cursor{ID: last.ID, CreatedAt: last.CreatedAt}
	}
	return page, nil
}

// rebuildRecentFirstPage collapses concurrent cache misses into one
// database read.
func (r *feedRepository) rebuildRecentFirstPage(ctx context.Context, q domain.FeedQuery, limit int64) (domain.FeedPage, error) {
	result, err, _ := r.rebuildGroup.Do("recent:first", func() (any, error) {
		page, err := r.buildPage(ctx, q, limit)
		if err != nil {
			return domain.FeedPage{}, err
		}

		if err := r.cache.SetRecentFirstPage(ctx, page); err != nil {
			logrus.Warnf("failed to set recent first page cache: %v", err)
		}
		return page, nil
	})

	if err != nil {
		return domain.FeedPage{}, err
	}
	return result.(domain.FeedPage), nil
}

func (r *feedRepository) cacheable(q domain.FeedQuery, limit int64) bool {
	return !q.Viewer.Authenticated() &&
		!q.OnlyFollowing &&
		q.AuthorID == "" &&
		q.Cursor == nil &&
		limit == DefaultPageNum
}
