// Package feedcache holds the client-side view of one or more
// independently paginated feed variants and keeps them coherent after
// mutations without refetching. Every reconciliation builds fresh pages
// instead of mutating shared slices, so snapshots handed out earlier
// stay valid.
package feedcache

import (
	"github.com/birdfeed/birdfeed/domain"
)

// VariantKey identifies one paginated feed stream. The zero value is
// the unfiltered recent feed.
type VariantKey struct {
	OnlyFollowing bool
	ProfileID     string
}

// Recent is the unfiltered recent feed.
func Recent() VariantKey {
	return VariantKey{}
}

// Following is the following-only feed.
func Following() VariantKey {
	return VariantKey{OnlyFollowing: true}
}

// Profile is a single author's feed.
func Profile(userID string) VariantKey {
	return VariantKey{ProfileID: userID}
}

// Page is one fetched page of a variant. A nil NextCursor means the
// variant is exhausted.
type Page struct {
	Tweets     []domain.TweetSummary
	NextCursor *domain.Cursor
}

// Cache maps feed variants to their pages, in fetch order.
type Cache struct {
	pages map[VariantKey][]Page
}

func New() *Cache {
	return &Cache{
		pages: make(map[VariantKey][]Page),
	}
}

// Append adds a freshly fetched page to the end of a variant.
func (c *Cache) Append(key VariantKey, page Page) {
	c.pages[key] = append(c.pages[key], page)
}

// Pages returns the cached pages of a variant in fetch order.
func (c *Cache) Pages(key VariantKey) []Page {
	return c.pages[key]
}

// Tweets flattens a variant's pages into one ordered list.
func (c *Cache) Tweets(key VariantKey) []domain.TweetSummary {
	var res []domain.TweetSummary
	for _, page := range c.pages[key] {
		res = append(res, page.Tweets...)
	}
	return res
}

// NextCursor returns the resume position of a variant: the last page's
// cursor, or nil when the variant is unfetched or exhausted.
func (c *Cache) NextCursor(key VariantKey) *domain.Cursor {
	pages := c.pages[key]
	if len(pages) == 0 {
		return nil
	}
	return pages[len(pages)-1].NextCursor
}

// HasMore reports whether a variant has another page to fetch.
func (c *Cache) HasMore(key VariantKey) bool {
	return c.NextCursor(key) != nil
}

// Fetched reports whether a variant has been loaded at least once.
func (c *Cache) Fetched(key VariantKey) bool {
	_, ok := c.pages[key]
	return ok
}

// Invalidate drops a variant entirely; the next fetch starts over.
func (c *Cache) Invalidate(key VariantKey) {
	delete(c.pages, key)
}

// ApplyCreate prepends a just-created tweet to the first page of the
// recent variant. The summary is synthesized locally: a new tweet has
// no likes and the author cannot have liked it yet.
//
// Only the recent variant is patched. The following-only and profile
// variants are left to their next refetch, mirroring the upstream
// client behavior this cache reproduces.
func (c *Cache) ApplyCreate(t domain.Tweet, author domain.Author) {
	pages, ok := c.pages[Recent()]
	if !ok || len(pages) == 0 {
		return
	}

	summary := domain.TweetSummary{
		ID:        t.ID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		LikeCount: 0,
		LikedByMe: false,
		User:      author,
	}

	first := pages[0]
	newFirst := Page{
		Tweets:     make([]domain.TweetSummary, 0, len(first.Tweets)+1),
		NextCursor: first.NextCursor,
	}
	newFirst.Tweets = append(newFirst.Tweets, summary)
	newFirst.Tweets = append(newFirst.Tweets, first.Tweets...)

	newPages := make([]Page, len(pages))
	copy(newPages, pages)
	newPages[0] = newFirst
	c.pages[Recent()] = newPages
}

// ApplyToggleLike patches every cached copy of the tweet across the
// variants a like toggle affects: the recent feed, the following feed
// and the author's profile feed. Variants never fetched are skipped;
// their first fetch computes correct state from storage.
func (c *Cache) ApplyToggleLike(tweetID, authorID string, addedLike bool) {
	countModifier := int64(-1)
	if addedLike {
		countModifier = 1
	}

	for _, key := range []VariantKey{Recent(), Following(), Profile(authorID)} {
		pages, ok := c.pages[key]
		if !ok {
			continue
		}
		c.pages[key] = patchPages(pages, tweetID, countModifier, addedLike)
	}
}

func patchPages(pages []Page, tweetID string, countModifier int64, likedByMe bool) []Page {
	newPages := make([]Page, len(pages))
	for i, page := range pages {
		newPages[i] = patchPage(page, tweetID, countModifier, likedByMe)
	}
	return newPages
}

func patchPage(page Page, tweetID string, countModifier int64, likedByMe bool) Page {
	patched := Page{
		Tweets:     make([]domain.TweetSummary, len(page.Tweets)),
		NextCursor: page.NextCursor,
	}
	for i, tweet := range page.Tweets {
		if tweet.ID == tweetID {
			tweet.LikeCount += countModifier
			tweet.LikedByMe = likedByMe
		}
		patched.Tweets[i] = tweet
	}
	return patched
}
