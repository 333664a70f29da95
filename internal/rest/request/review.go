package request

import "github.com/filmorate/backend/domain"

type Review struct {
	ID         int64  `json:"reviewId"` // for UPDATE
	FilmID     *int64 `json:"filmId" binding:"required"`
	UserID     *int64 `json:"userId" binding:"required"`
	Content    string `json:"content" binding:"required"`
	IsPositive *bool  `json:"isPositive" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Review) ToDomain() domain.Review {
	return domain.Review{
		ID:         r.ID,
		FilmID:     *r.FilmID,
		UserID:     *r.UserID,
		Content:    r.Content,
		IsPositive: *r.IsPositive,
	}
}
