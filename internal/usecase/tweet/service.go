package tweet

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/birdfeed/birdfeed/domain"
)

// MaxContentLength bounds the tweet body.
const MaxContentLength = 280

type Service struct {
	feedRepo         domain.FeedRepository
	tweetRepo        domain.TweetRepository
	likeRepo         domain.LikeRepository
	feedCache        domain.FeedCache
	bloomRepo        domain.BloomRepository
	revalidateWorker domain.RevalidateWorker
}

var _ domain.TweetUsecase = (*Service)(nil)

// NewService will create a new tweet service object
func NewService(
	feedRepo domain.FeedRepository,
	tweetRepo domain.TweetRepository,
	likeRepo domain.LikeRepository,
	feedCache domain.FeedCache,
	bloomRepo domain.BloomRepository,
	revalidateWorker domain.RevalidateWorker,
) *Service {
	return &Service{
		feedRepo:         feedRepo,
		tweetRepo:        tweetRepo,
		likeRepo:         likeRepo,
		feedCache:        feedCache,
		bloomRepo:        bloomRepo,
		revalidateWorker: revalidateWorker,
	}
}

func (s *Service) InfiniteFeed(ctx context.Context, viewer domain.Viewer, onlyFollowing bool, limit int64, cursor *domain.Cursor) (domain.FeedPage, error) {
	// An anonymous viewer has no following set: the filter degenerates
	// to the recent feed instead of erroring.
	if onlyFollowing && !viewer.Authenticated() {
		onlyFollowing = false
	}

	return s.feedRepo.GetPage(ctx, domain.FeedQuery{
		Viewer:        viewer,
		OnlyFollowing: onlyFollowing,
		Cursor:        cursor,
	}, limit)
}

func (s *Service) InfiniteProfileFeed(ctx context.Context, viewer domain.Viewer, authorID string, limit int64, cursor *domain.Cursor) (domain.FeedPage, error) {
	if authorID == "" {
		return domain.FeedPage{}, domain.ErrBadParamInput
	}

	return s.feedRepo.GetPage(ctx, domain.FeedQuery{
		Viewer:   viewer,
		AuthorID: authorID,
		Cursor:   cursor,
	}, limit)
}

func (s *Service) Create(ctx context.Context, viewer domain.Viewer, content string) (domain.Tweet, error) {
	viewerID, ok := viewer.ID()
	if !ok {
		return domain.Tweet{}, domain.ErrUnauthorized
	}

	if strings.TrimSpace(content) == "" || len(content) > MaxContentLength {
		return domain.Tweet{}, domain.ErrBadParamInput
	}

	t := domain.Tweet{
		ID:        uuid.NewString(),
		Content:   content,
		User:      domain.User{ID: viewerID},
		CreatedAt: time.Now(),
	}
	if err := s.tweetRepo.Store(ctx, &t); err != nil {
		return domain.Tweet{}, err
	}

	if err := s.bloomRepo.Add(ctx, t.ID); err != nil {
		logrus.Warnf("failed to add tweet %s to bloom filter: %v", t.ID, err)
	}
	if err := s.feedCache.InvalidateRecent(ctx); err != nil {
		logrus.Warnf("failed to invalidate recent feed cache: %v", err)
	}

	// Best effort: the author's static profile page is regenerated
	// out of band.
	s.revalidateWorker.Send(viewerID)

	return t, nil
}

// ToggleLike flips the viewer's like on a tweet. The read-then-write is
// not atomic; the unique (user_id, tweet_id) constraint arbitrates a
// concurrent duplicate, and losing that race means the like exists, so
// the conflict is reported as AddedLike.
func (s *Service) ToggleLike(ctx context.Context, viewer domain.Viewer, tweetID string) (domain.LikeResult, error) {
	viewerID, ok := viewer.ID()
	if !ok {
		return domain.LikeResult{}, domain.ErrUnauthorized
	}
	if tweetID == "" {
		return domain.LikeResult{}, domain.ErrBadParamInput
	}

	exists, err := s.bloomRepo.Exists(ctx, tweetID)
	if err != nil {
		logrus.Warnf("bloom filter check failed for tweet %s: %v", tweetID, err)
	} else if !exists {
		logrus.Warnf("bloom filter says tweet %s does not exist", tweetID)
		return domain.LikeResult{}, domain.ErrNotFound
	}

	// The filter only proves absence. A positive can be a false
	// positive, so the tweet row is the authority before a like row is
	// written for the id.
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return domain.LikeResult{}, err
	}

	liked, err := s.likeRepo.Exists(ctx, viewerID, tweetID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	if !liked {
		err = s.likeRepo.Create(ctx, &domain.Like{
			UserID:    viewerID,
			TweetID:   tweetID,
			CreatedAt: time.Now(),
		})
		if errors.Is(err, domain.ErrConflict) {
			// Lost the race to a concurrent like: the row exists.
			return domain.LikeResult{AddedLike: true}, nil
		}
		if err != nil {
			return domain.LikeResult{}, err
		}
		return domain.LikeResult{AddedLike: true}, nil
	}

	err = s.likeRepo.Delete(ctx, viewerID, tweetID)
	if errors.Is(err, domain.ErrNotFound) {
		// A concurrent unlike already removed the row.
		return domain.LikeResult{AddedLike: false}, nil
	}
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{AddedLike: false}, nil
}

// WarmBloomFilter pages over all stored tweet ids and loads them into
// the bloom filter. Called once at startup.
func (s *Service) WarmBloomFilter(ctx context.Context) error {
	const batchSize = 1000
	cursor := ""
	for {
		ids, err := s.tweetRepo.FetchIDs(ctx, cursor, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
