package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/rest/request"
)

type directorHandler struct {
	Service domain.DirectorUsecase
}

func NewDirectorHandler(svc domain.DirectorUsecase) *directorHandler {
	return &directorHandler{
		Service: svc,
	}
}

func (h *directorHandler) GetAll(c *gin.Context) {
	directors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, directors)
}

func (h *directorHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	director, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, director)
}

func (h *directorHandler) Store(c *gin.Context) {
	var req request.Director
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	director := req.ToDomain()

	if err := h.Service.Store(c.Request.Context(), &director); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, director)
}

func (h *directorHandler) Update(c *gin.Context) {
	var req request.Director
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	director := req.ToDomain()

	if err := h.Service.Update(c.Request.Context(), &director); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, director)
}

func (h *directorHandler) Delete(c *gin.Context) {
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
