package domain

import "context"

// Genre is a film genre lookup entity.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MpaRating is a film's content-rating classification (G, PG-13, ...).
type MpaRating struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]Genre, error)
	GetByID(ctx context.Context, id int64) (Genre, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Genre, error)
}

type MpaRepository interface {
	GetAll(ctx context.Context) ([]MpaRating, error)
	GetByID(ctx context.Context, id int64) (MpaRating, error)
}

// CatalogUsecase serves the two read-only lookup dictionaries.
type CatalogUsecase interface {
	GetAllGenres(ctx context.Context) ([]Genre, error)
	GetGenreByID(ctx context.Context, id int64) (Genre, error)
	GetAllMpa(ctx context.Context) ([]MpaRating, error)
	GetMpaByID(ctx context.Context, id int64) (MpaRating, error)
}
