package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/filmorate/backend/domain"
)

type catalogHandler struct {
	Service domain.CatalogUsecase
}

func NewCatalogHandler(svc domain.CatalogUsecase) *catalogHandler {
	return &catalogHandler{
		Service: svc,
	}
}

func (h *catalogHandler) GetGenres(c *gin.Context) {
	genres, err := h.Service.GetAllGenres(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, genres)
}

func (h *catalogHandler) GetGenreByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	genre, err := h.Service.GetGenreByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, genre)
}

func (h *catalogHandler) GetMpaRatings(c *gin.Context) {
	ratings, err := h.Service.GetAllMpa(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

func (h *catalogHandler) GetMpaByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	rating, err := h.Service.GetMpaByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rating)
}
