package model

import (
	"time"

	"github.com/filmorate/backend/domain"
)

type Film struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(200)"`
	ReleaseDate time.Time `gorm:"column:release_date;type:date;not null"`
	Duration    int       `gorm:"not null"`
	MpaID       int64     `gorm:"column:mpa_id;not null"`
}

func (Film) TableName() string {
	return "films"
}

func (m *Film) ToDomain() domain.Film {
	return domain.Film{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate,
		Duration:    m.Duration,
		Mpa: domain.MpaRating{
			ID: m.MpaID,
		},
	}
}

func NewFilmFromDomain(f *domain.Film) *Film {
	return &Film{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: f.ReleaseDate,
		Duration:    f.Duration,
		MpaID:       f.Mpa.ID,
	}
}

// FilmGenre and FilmDirector are the explicit join rows between films and
// their lookup entities.
type FilmGenre struct {
	FilmID  int64 `gorm:"column:film_id;primaryKey"`
	GenreID int64 `gorm:"column:genre_id;primaryKey"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}

type FilmDirector struct {
	FilmID     int64 `gorm:"column:film_id;primaryKey"`
	DirectorID int64 `gorm:"column:director_id;primaryKey"`
}

func (FilmDirector) TableName() string {
	return "film_directors"
}
