package tweet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/domain/mocks"
	ucase "github.com/birdfeed/birdfeed/internal/usecase/tweet"
)

type serviceMocks struct {
	feedRepo    *mocks.FeedRepository
	tweetRepo   *mocks.TweetRepository
	likeRepo    *mocks.LikeRepository
	feedCache   *mocks.FeedCache
	bloomRepo   *mocks.BloomRepository
	revalidator *mocks.RevalidateWorker
}

func newService() (*ucase.Service, *serviceMocks) {
	m := &serviceMocks{
		feedRepo:    new(mocks.FeedRepository),
		tweetRepo:   new(mocks.TweetRepository),
		likeRepo:    new(mocks.LikeRepository),
		feedCache:   new(mocks.FeedCache),
		bloomRepo:   new(mocks.BloomRepository),
		revalidator: new(mocks.RevalidateWorker),
	}
	svc := ucase.NewService(m.feedRepo, m.tweetRepo, m.likeRepo, m.feedCache, m.bloomRepo, m.revalidator)
	return svc, m
}

func TestInfiniteFeedAnonymousFollowingDegenerates(t *testing.T) {
	svc, m := newService()

	m.feedRepo.On("GetPage", mock.Anything, mock.MatchedBy(func(q domain.FeedQuery) bool {
		return !q.OnlyFollowing && q.AuthorID == ""
	}), int64(10)).Return(domain.FeedPage{}, nil).Once()

	_, err := svc.InfiniteFeed(context.Background(), domain.AnonymousViewer(), true, 10, nil)

	require.NoError(t, err)
	m.feedRepo.AssertExpectations(t)
}

func TestInfiniteFeedAuthenticatedFollowingKept(t *testing.T) {
	svc, m := newService()

	m.feedRepo.On("GetPage", mock.Anything, mock.MatchedBy(func(q domain.FeedQuery) bool {
		return q.OnlyFollowing
	}), int64(10)).Return(domain.FeedPage{}, nil).Once()

	_, err := svc.InfiniteFeed(context.Background(), domain.AuthenticatedViewer("u1"), true, 10, nil)

	require.NoError(t, err)
	m.feedRepo.AssertExpectations(t)
}

func TestInfiniteProfileFeedRequiresAuthor(t *testing.T) {
	svc, _ := newService()

	_, err := svc.InfiniteProfileFeed(context.Background(), domain.AnonymousViewer(), "", 10, nil)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestInfiniteFeedPropagatesStorageError(t *testing.T) {
	svc, m := newService()
	storageErr := errors.New("connection reset")

	m.feedRepo.On("GetPage", mock.Anything, mock.Anything, int64(10)).
		Return(domain.FeedPage{}, storageErr).Once()

	_, err := svc.InfiniteFeed(context.Background(), domain.AnonymousViewer(), false, 10, nil)

	assert.ErrorIs(t, err, storageErr)
}

func TestCreateRequiresAuthentication(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), domain.AnonymousViewer(), faker.Sentence())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateRejectsBlankContent(t *testing.T) {
	svc, _ := newService()
	viewer := domain.AuthenticatedViewer("u1")

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := svc.Create(context.Background(), viewer, content)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	}
}

func TestCreateRejectsOversizedContent(t *testing.T) {
	svc, _ := newService()

	long := make([]byte, ucase.MaxContentLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.Create(context.Background(), domain.AuthenticatedViewer("u1"), string(long))

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestCreateStoresAndSchedulesRevalidation(t *testing.T) {
	svc, m := newService()
	content := faker.Sentence()

	m.tweetRepo.On("Store", mock.Anything, mock.MatchedBy(func(tw *domain.Tweet) bool {
		return tw.ID != "" && tw.Content == content && tw.User.ID == "u1"
	})).Return(nil).Once()
	m.bloomRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	m.feedCache.On("InvalidateRecent", mock.Anything).Return(nil).Once()
	m.revalidator.On("Send", "u1").Once()

	created, err := svc.Create(context.Background(), domain.AuthenticatedViewer("u1"), content)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.User.ID)
	assert.False(t, created.CreatedAt.IsZero())
	m.tweetRepo.AssertExpectations(t)
	m.revalidator.AssertExpectations(t)
}

func TestCreateStoreFailureSkipsSideEffects(t *testing.T) {
	svc, m := newService()
	storageErr := errors.New("insert failed")

	m.tweetRepo.On("Store", mock.Anything, mock.Anything).Return(storageErr).Once()

	_, err := svc.Create(context.Background(), domain.AuthenticatedViewer("u1"), faker.Sentence())

	assert.ErrorIs(t, err, storageErr)
	m.revalidator.AssertNotCalled(t, "Send", mock.Anything)
	m.feedCache.AssertNotCalled(t, "InvalidateRecent", mock.Anything)
}

func TestToggleLikeRequiresAuthentication(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ToggleLike(context.Background(), domain.AnonymousViewer(), "t1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestToggleLikeAlternates(t *testing.T) {
	svc, m := newService()
	viewer := domain.AuthenticatedViewer("u1")

	m.bloomRepo.On("Exists", mock.Anything, "t1").Return(true, nil)
	m.tweetRepo.On("GetByID", mock.Anything, "t1").Return(domain.Tweet{ID: "t1"}, nil)

	// first call: no like yet, so it is created
	m.likeRepo.On("Exists", mock.Anything, "u1", "t1").Return(false, nil).Once()
	m.likeRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.Like) bool {
		return l.UserID == "u1" && l.TweetID == "t1"
	})).Return(nil).Once()

	res, err := svc.ToggleLike(context.Background(), viewer, "t1")
	require.NoError(t, err)
	assert.True(t, res.AddedLike)

	// second call: the like exists, so it is removed
	m.likeRepo.On("Exists", mock.Anything, "u1", "t1").Return(true, nil).Once()
	m.likeRepo.On("Delete", mock.Anything, "u1", "t1").Return(nil).Once()

	res, err = svc.ToggleLike(context.Background(), viewer, "t1")
	require.NoError(t, err)
	assert.False(t, res.AddedLike)

	m.likeRepo.AssertExpectations(t)
}

func TestToggleLikeRecoversFromDuplicateInsert(t *testing.T) {
	svc, m := newService()

	m.bloomRepo.On("Exists", mock.Anything, "t1").Return(true, nil)
	m.tweetRepo.On("GetByID", mock.Anything, "t1").Return(domain.Tweet{ID: "t1"}, nil)
	m.likeRepo.On("Exists", mock.Anything, "u1", "t1").Return(false, nil).Once()
	// a concurrent toggle inserted the row first
	m.likeRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

	res, err := svc.ToggleLike(context.Background(), domain.AuthenticatedViewer("u1"), "t1")

	require.NoError(t, err)
	assert.True(t, res.AddedLike)
}

func TestToggleLikeRecoversFromConcurrentRemoval(t *testing.T) {
	svc, m := newService()

	m.bloomRepo.On("Exists", mock.Anything, "t1").Return(true, nil)
	m.tweetRepo.On("GetByID", mock.Anything, "t1").Return(domain.Tweet{ID: "t1"}, nil)
	m.likeRepo.On("Exists", mock.Anything, "u1", "t1").Return(true, nil).Once()
	m.likeRepo.On("Delete", mock.Anything, "u1", "t1").Return(domain.ErrNotFound).Once()

	res, err := svc.ToggleLike(context.Background(), domain.AuthenticatedViewer("u1"), "t1")

	require.NoError(t, err)
	assert.False(t, res.AddedLike)
}

func TestToggleLikeBloomRejectsUnknownTweet(t *testing.T) {
	svc, m := newService()

	m.bloomRepo.On("Exists", mock.Anything, "ghost").Return(false, nil).Once()

	_, err := svc.ToggleLike(context.Background(), domain.AuthenticatedViewer("u1"), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.tweetRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeBloomFalsePositiveIsNotFound(t *testing.T) {
	svc, m := newService()

	// the filter can report presence for an id that was never stored;
	// the tweet lookup is the authority
	m.bloomRepo.On("Exists", mock.Anything, "ghost").Return(true, nil).Once()
	m.tweetRepo.On("GetByID", mock.Anything, "ghost").Return(domain.Tweet{}, domain.ErrNotFound).Once()

	_, err := svc.ToggleLike(context.Background(), domain.AuthenticatedViewer("u1"), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	m.likeRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	m.likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestToggleLikeBloomFailureFallsThrough(t *testing.T) {
	svc, m := newService()

	// a broken bloom filter must not block the toggle
	m.bloomRepo.On("Exists", mock.Anything, "t1").Return(false, errors.New("redis down")).Once()
	m.tweetRepo.On("GetByID", mock.Anything, "t1").Return(domain.Tweet{ID: "t1"}, nil).Once()
	m.likeRepo.On("Exists", mock.Anything, "u1", "t1").Return(false, nil).Once()
	m.likeRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.ToggleLike(context.Background(), domain.AuthenticatedViewer("u1"), "t1")

	require.NoError(t, err)
	assert.True(t, res.AddedLike)
}

func TestWarmBloomFilterPagesThroughIDs(t *testing.T) {
	svc, m := newService()

	first := []string{"a", "b", "c"}
	m.tweetRepo.On("FetchIDs", mock.Anything, "", int64(1000)).Return(first, nil).Once()
	m.bloomRepo.On("BulkAdd", mock.Anything, first).Return(nil).Once()
	m.tweetRepo.On("FetchIDs", mock.Anything, "c", int64(1000)).Return([]string{}, nil).Once()

	err := svc.WarmBloomFilter(context.Background())

	require.NoError(t, err)
	m.tweetRepo.AssertExpectations(t)
	m.bloomRepo.AssertExpectations(t)
}
