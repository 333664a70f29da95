package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/rest/request"
)

// ReviewHandler represent the httphandler for film reviews
type ReviewHandler struct {
	Service domain.ReviewUsecase
}

func NewReviewHandler(svc domain.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		Service: svc,
	}
}

// GetByID will get review by given id
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	review, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// Fetch will fetch reviews ordered by usefulness, for one film or for all
func (h *ReviewHandler) Fetch(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(DefaultReviewCount)))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var filmID int64
	if s := c.Query("filmId"); s != "" {
		filmID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
	}

	reviews, err := h.Service.Fetch(c.Request.Context(), filmID, count)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	c.JSON(http.StatusOK, reviews)
}

// Store will store the review by given request body
func (h *ReviewHandler) Store(c *gin.Context) {
	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	review := req.ToDomain()

	if err := h.Service.Store(c.Request.Context(), &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Update will update the review's content and verdict
func (h *ReviewHandler) Update(c *gin.Context) {
	var req request.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	review := req.ToDomain()

	if err := h.Service.Update(c.Request.Context(), &review); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete will delete the review by given param
func (h *ReviewHandler) Delete(c *gin.Context) {
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

// Like marks the review as useful for the given user
func (h *ReviewHandler) Like(c *gin.Context) {
	h.react(c, h.Service.AddLike)
}

// Dislike marks the review as not useful for the given user
func (h *ReviewHandler) Dislike(c *gin.Context) {
	h.react(c, h.Service.AddDislike)
}

// RemoveReaction withdraws the user's like or dislike
func (h *ReviewHandler) RemoveReaction(c *gin.Context) {
	h.react(c, h.Service.RemoveReaction)
}

func (h *ReviewHandler) react(c *gin.Context, op func(ctx context.Context, reviewID, userID int64) error) {
	reviewID, userID, err := pathPair(c, "id", "userId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := op(c.Request.Context(), reviewID, userID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
