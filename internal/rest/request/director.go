package request

import "github.com/filmorate/backend/domain"

type Director struct {
	ID   int64  `json:"id"` // for UPDATE
	Name string `json:"name" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Director) ToDomain() domain.Director {
	return domain.Director{
		ID:   r.ID,
		Name: r.Name,
	}
}
