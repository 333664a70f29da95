package domain

import "context"

// Director of a film.
type Director struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type DirectorRepository interface {
	GetAll(ctx context.Context) ([]Director, error)
	GetByID(ctx context.Context, id int64) (Director, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Director, error)
	Store(ctx context.Context, d *Director) error
	Update(ctx context.Context, d *Director) error
	Delete(ctx context.Context, id int64) error
}

type DirectorUsecase interface {
	GetAll(ctx context.Context) ([]Director, error)
	GetByID(ctx context.Context, id int64) (Director, error)
	Store(ctx context.Context, d *Director) error
	Update(ctx context.Context, d *Director) error
	Delete(ctx context.Context, id int64) error
}
