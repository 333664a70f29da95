package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/rest/request"
	"github.com/filmorate/backend/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// FilmHandler represent the httphandler for films
type FilmHandler struct {
	Service domain.FilmUsecase
}

const (
	DefaultPopularCount = 10
	DefaultReviewCount  = 10
)

func NewFilmHandler(svc domain.FilmUsecase) *FilmHandler {
	return &FilmHandler{
		Service: svc,
	}
}

// GetByID will get film by given id
func (h *FilmHandler) GetByID(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	film, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmFromDomain(&film))
}

func (h *FilmHandler) GetAll(c *gin.Context) {
	films, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

// Store will store the film by given request body
func (h *FilmHandler) Store(c *gin.Context) {
	var req request.Film
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	film, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Store(c.Request.Context(), &film); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewFilmFromDomain(&film))
}

// Update will update the film by given request body
func (h *FilmHandler) Update(c *gin.Context) {
	var req request.Film
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	film, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.Update(c.Request.Context(), &film); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmFromDomain(&film))
}

// Delete will delete the film by given param
func (h *FilmHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmFromDomain(&deleted))
}

// Like adds the user's like to the film
func (h *FilmHandler) Like(c *gin.Context) {
	filmID, userID, err := pathPair(c, "id", "userId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.AddLike(c.Request.Context(), filmID, userID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// Unlike removes the user's like from the film
func (h *FilmHandler) Unlike(c *gin.Context) {
	filmID, userID, err := pathPair(c, "id", "userId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// GetPopular will fetch the most liked films, optionally narrowed down to a
// genre and a release year
func (h *FilmHandler) GetPopular(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(DefaultPopularCount)))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	var genreID int64
	if s := c.Query("genreId"); s != "" {
		genreID, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
	}
	var year int
	if s := c.Query("year"); s != "" {
		year, err = strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
			return
		}
	}

	films, err := h.Service.GetPopular(c.Request.Context(), count, genreID, year)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

// GetCommon will fetch films liked by both users
func (h *FilmHandler) GetCommon(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}
	friendID, err := strconv.ParseInt(c.Query("friendId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	films, err := h.Service.GetCommon(c.Request.Context(), userID, friendID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

// GetByDirector will fetch the director's films sorted by year or by likes
func (h *FilmHandler) GetByDirector(c *gin.Context) {
	directorID, err := pathID(c, "directorId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	sortBy := c.DefaultQuery("sortBy", "likes")

	films, err := h.Service.GetByDirector(c.Request.Context(), directorID, sortBy)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

// Search will fetch films whose title or director name contains the query
func (h *FilmHandler) Search(c *gin.Context) {
	query := c.Query("query")
	by := c.DefaultQuery("by", "title")

	films, err := h.Service.Search(c.Request.Context(), query, by)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewFilmsFromDomain(films))
}

func pathID(c *gin.Context, name string) (int64, error) {
	idP, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, err
	}
	return int64(idP), nil
}

func pathPair(c *gin.Context, first, second string) (int64, int64, error) {
	a, err := pathID(c, first)
	if err != nil {
		return 0, 0, err
	}
	b, err := pathID(c, second)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
