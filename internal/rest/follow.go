package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/rest/middleware"
)

// FollowHandler represent the httphandler for follow edges
type FollowHandler struct {
	Service domain.FollowUsecase
}

func NewFollowHandler(svc domain.FollowUsecase) *FollowHandler {
	return &FollowHandler{
		Service: svc,
	}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	viewer := middleware.Viewer(c)
	if err := h.Service.Follow(c.Request.Context(), viewer, c.Param("id")); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	viewer := middleware.Viewer(c)
	if err := h.Service.Unfollow(c.Request.Context(), viewer, c.Param("id")); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
