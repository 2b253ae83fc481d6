// Package client is a typed API client for the birdfeed server. It
// keeps a local feedcache of every feed variant it has paged through
// and patches that cache synchronously after each successful mutation,
// so callers see mutation effects without refetching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/feedcache"
	"github.com/birdfeed/birdfeed/internal/repository"
	"github.com/birdfeed/birdfeed/internal/rest/response"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
	self    domain.Author
	cache   *feedcache.Cache
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		cache:   feedcache.New(),
	}
}

// Login authenticates the client and resolves its own profile, which
// later backs the synthesized summary of a just-created tweet.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var res struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": password,
	}, &res)
	if err != nil {
		return err
	}
	c.token = res.Token

	var me response.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &me); err != nil {
		return err
	}
	c.self = domain.Author{ID: me.ID, Name: me.Name, Image: me.Image}
	return nil
}

// Self returns the logged-in user's author identity.
func (c *Client) Self() domain.Author {
	return c.self
}

// LoadMore fetches the next page of a feed variant and appends it to
// the local cache. Returns false when the variant is exhausted.
func (c *Client) LoadMore(ctx context.Context, variant feedcache.VariantKey) (bool, error) {
	if c.cache.Fetched(variant) && !c.cache.HasMore(variant) {
		return false, nil
	}

	path, query := feedPath(variant)
	if cursor := c.cache.NextCursor(variant); cursor != nil {
		query.Set("cursor", repository.EncodeCursor(*cursor))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page response.FeedPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return false, err
	}

	cached, err := toCachePage(page)
	if err != nil {
		return false, err
	}
	c.cache.Append(variant, cached)
	return c.cache.HasMore(variant), nil
}

// Tweets returns the cached tweets of a variant, flattened across pages.
func (c *Client) Tweets(variant feedcache.VariantKey) []domain.TweetSummary {
	return c.cache.Tweets(variant)
}

// HasMore reports whether a variant has another page to fetch.
func (c *Client) HasMore(variant feedcache.VariantKey) bool {
	return c.cache.HasMore(variant)
}

// CreateTweet posts a new tweet and prepends it to the cached recent
// feed.
func (c *Client) CreateTweet(ctx context.Context, content string) (domain.Tweet, error) {
	var res response.Tweet
	err := c.do(ctx, http.MethodPost, "/tweets", map[string]string{"content": content}, &res)
	if err != nil {
		return domain.Tweet{}, err
	}

	t := domain.Tweet{
		ID:        res.ID,
		Content:   res.Content,
		CreatedAt: res.CreatedAt,
		User:      domain.User{ID: res.UserID},
	}
	c.cache.ApplyCreate(t, c.self)
	return t, nil
}

// ToggleLike flips the like on a tweet and patches every cached feed
// variant the toggle affects. authorID routes the patch to the right
// profile variant.
func (c *Client) ToggleLike(ctx context.Context, tweetID, authorID string) (bool, error) {
	var res response.LikeResult
	err := c.do(ctx, http.MethodPost, "/tweets/"+url.PathEscape(tweetID)+"/like", nil, &res)
	if err != nil {
		return false, err
	}

	c.cache.ApplyToggleLike(tweetID, authorID, res.AddedLike)
	return res.AddedLike, nil
}

// Follow makes the logged-in user follow the given user.
func (c *Client) Follow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/profiles/"+url.PathEscape(userID)+"/follow", nil, nil)
}

// Unfollow removes the follow edge to the given user.
func (c *Client) Unfollow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/profiles/"+url.PathEscape(userID)+"/follow", nil, nil)
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var respErr struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &respErr)
		return &APIError{StatusCode: resp.StatusCode, Message: respErr.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func feedPath(variant feedcache.VariantKey) (string, url.Values) {
	query := url.Values{}
	if variant.ProfileID != "" {
		return "/profiles/" + url.PathEscape(variant.ProfileID) + "/tweets", query
	}
	if variant.OnlyFollowing {
		query.Set("only_following", strconv.FormatBool(true))
	}
	return "/tweets", query
}

func toCachePage(page response.FeedPage) (feedcache.Page, error) {
	cached := feedcache.Page{
		Tweets: make([]domain.TweetSummary, len(page.Tweets)),
	}
	for i, t := range page.Tweets {
		cached.Tweets[i] = domain.TweetSummary{
			ID:        t.ID,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
			LikeCount: t.LikeCount,
			LikedByMe: t.LikedByMe,
			User: domain.Author{
				ID:    t.User.ID,
				Name:  t.User.Name,
				Image: t.User.Image,
			},
		}
	}
	if page.NextCursor != "" {
		cursor, err := repository.DecodeCursor(page.NextCursor)
		if err != nil {
			return feedcache.Page{}, err
		}
		cached.NextCursor = &cursor
	}
	return cached, nil
}
