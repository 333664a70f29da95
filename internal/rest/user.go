package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/rest/request"
	"github.com/filmorate/backend/internal/rest/response"
)

// UserHandler represent the httphandler for users, their friendships and
// their activity feed
type UserHandler struct {
	Service domain.UserUsecase
	Feed    domain.FeedUsecase
}

func NewUserHandler(svc domain.UserUsecase, feed domain.FeedUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
		Feed:    feed,
	}
}

// GetByID will get user by given id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	user, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

// Store will store the user by given request body
func (h *UserHandler) Store(c *gin.Context) {
	var req request.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	user, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Store(c.Request.Context(), &user); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewUserFromDomain(&user))
}

// Update will update the user by given request body
func (h *UserHandler) Update(c *gin.Context) {
	var req request.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	user, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Update(c.Request.Context(), &user); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}

// Delete will delete the user by given param
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AddFriend adds the friend to the user's friend list
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, friendID, err := pathPair(c, "id", "friendId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// RemoveFriend removes the friend from the user's friend list
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	userID, friendID, err := pathPair(c, "id", "friendId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

func (h *UserHandler) GetFriends(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	friends, err := h.Service.GetFriends(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUsersFromDomain(friends))
}

func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	userID, otherID, err := pathPair(c, "id", "otherId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	friends, err := h.Service.GetCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUsersFromDomain(friends))
}

// GetRecommendations will fetch films the user is likely to enjoy
func (h *UserHandler) GetRecommendations(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	films, err := h.Service.GetRecommendations(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

// GetFeed will fetch the user's activity events, oldest first
func (h *UserHandler) GetFeed(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	events, err := h.Feed.FeedFor(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}
