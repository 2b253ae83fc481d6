package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/rest/middleware"
	"github.com/birdfeed/birdfeed/internal/rest/request"
	"github.com/birdfeed/birdfeed/internal/rest/response"
)

// UserHandler represent the httphandler for users
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Register(c.Request.Context(), req.Name, req.Username, req.Password); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *UserHandler) Me(c *gin.Context) {
	viewer := middleware.Viewer(c)
	u, err := h.Service.Me(c.Request.Context(), viewer)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}
