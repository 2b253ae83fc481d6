package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/repository"
	"github.com/birdfeed/birdfeed/internal/rest/middleware"
	"github.com/birdfeed/birdfeed/internal/rest/request"
	"github.com/birdfeed/birdfeed/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// TweetHandler represent the httphandler for tweets
type TweetHandler struct {
	Service domain.TweetUsecase
}

func NewTweetHandler(svc domain.TweetUsecase) *TweetHandler {
	return &TweetHandler{
		Service: svc,
	}
}

// InfiniteFeed serves one page of the recent or following-only feed.
func (h *TweetHandler) InfiniteFeed(c *gin.Context) {
	limit := parseLimit(c)
	onlyFollowing, _ := strconv.ParseBool(c.DefaultQuery("only_following", "false"))

	cursor, err := parseCursor(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	viewer := middleware.Viewer(c)
	page, err := h.Service.InfiniteFeed(c.Request.Context(), viewer, onlyFollowing, limit, cursor)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFeedPageFromDomain(&page))
}

// InfiniteProfileFeed serves one page of a single author's tweets.
func (h *TweetHandler) InfiniteProfileFeed(c *gin.Context) {
	limit := parseLimit(c)

	cursor, err := parseCursor(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	viewer := middleware.Viewer(c)
	page, err := h.Service.InfiniteProfileFeed(c.Request.Context(), viewer, c.Param("id"), limit, cursor)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFeedPageFromDomain(&page))
}

// Create will store the tweet by given request body
func (h *TweetHandler) Create(c *gin.Context) {
	var req request.CreateTweet
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	viewer := middleware.Viewer(c)
	t, err := h.Service.Create(c.Request.Context(), viewer, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewTweetFromDomain(&t))
}

// ToggleLike flips the viewer's like on the tweet given by param.
func (h *TweetHandler) ToggleLike(c *gin.Context) {
	viewer := middleware.Viewer(c)
	res, err := h.Service.ToggleLike(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.LikeResult{AddedLike: res.AddedLike})
}

func parseLimit(c *gin.Context) int64 {
	limitS := c.Query("limit")
	if limitS == "" {
		return repository.DefaultPageNum
	}
	limit, err := strconv.ParseInt(limitS, 10, 64)
	if err != nil || limit <= 0 {
		logrus.Error("Invalid param 'limit'")
		return repository.DefaultPageNum
	}
	return limit
}

func parseCursor(c *gin.Context) (*domain.Cursor, error) {
	encoded := c.Query("cursor")
	if encoded == "" {
		return nil, nil
	}
	cursor, err := repository.DecodeCursor(encoded)
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
