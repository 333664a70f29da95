package request

import (
	"time"

	"github.com/filmorate/backend/domain"
)

const dateLayout = "2006-01-02"

type idRef struct {
	ID int64 `json:"id" binding:"required"`
}

type Film struct {
	ID          int64   `json:"id"` // for UPDATE
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"max=200"`
	ReleaseDate string  `json:"releaseDate" binding:"required"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Mpa         idRef   `json:"mpa" binding:"required"`
	Genres      []idRef `json:"genres"`
	Directors   []idRef `json:"directors"`
}

// ToDomain: Request -> Domain
func (r *Film) ToDomain() (domain.Film, error) {
	releaseDate, err := time.Parse(dateLayout, r.ReleaseDate)
	if err != nil {
		return domain.Film{}, domain.ErrBadParamInput
	}

	genres := make([]domain.Genre, 0, len(r.Genres))
	for _, g := range r.Genres {
		genres = append(genres, domain.Genre{ID: g.ID})
	}
	directors := make([]domain.Director, 0, len(r.Directors))
	for _, d := range r.Directors {
		directors = append(directors, domain.Director{ID: d.ID})
	}

	return domain.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: releaseDate,
		Duration:    r.Duration,
		Mpa:         domain.MpaRating{ID: r.Mpa.ID},
		Genres:      genres,
		Directors:   directors,
	}, nil
}
