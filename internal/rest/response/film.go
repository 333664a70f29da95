package response

import (
	"github.com/filmorate/backend/domain"
)

const dateLayout = "2006-01-02"

type Film struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ReleaseDate string            `json:"releaseDate"`
	Duration    int               `json:"duration"`
	Mpa         domain.MpaRating  `json:"mpa"`
	Genres      []domain.Genre    `json:"genres"`
	Directors   []domain.Director `json:"directors"`
}

// FromDomain: Domain -> Response
func NewFilmFromDomain(f *domain.Film) Film {
	genres := f.Genres
	if genres == nil {
		genres = []domain.Genre{}
	}
	directors := f.Directors
	if directors == nil {
		directors = []domain.Director{}
	}

	return Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate.Format(dateLayout),
		Duration:    f.Duration,
		Mpa:         f.Mpa,
		Genres:      genres,
		Directors:   directors,
	}
}

func NewFilmsFromDomain(films []domain.Film) []Film {
	res := make([]Film, len(films))
	for i := range films {
		res[i] = NewFilmFromDomain(&films[i])
	}
	return res
}
