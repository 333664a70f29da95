package domain

import "context"

// Review domain model
type Review struct {
	ID         int64  `json:"reviewId"`
	FilmID     int64  `json:"filmId"`
	UserID     int64  `json:"userId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	// Useful is the usefulness score: +1 per like, -1 per dislike.
	Useful int `json:"useful"`
}

type ReviewRepository interface {
	Store(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id int64) (Review, error)
	Delete(ctx context.Context, id int64) error

	// FetchAll and FetchByFilm return reviews ordered by useful descending.
	FetchAll(ctx context.Context, limit int) ([]Review, error)
	FetchByFilm(ctx context.Context, filmID int64, limit int) ([]Review, error)

	// AddReaction upserts a like (isLike=true) or dislike for the pair.
	AddReaction(ctx context.Context, reviewID, userID int64, isLike bool) error
	RemoveReaction(ctx context.Context, reviewID, userID int64) error

	// RecalcUseful recomputes the useful score from the stored reactions.
	RecalcUseful(ctx context.Context, reviewID int64) error
}

type ReviewUsecase interface {
	Store(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	GetByID(ctx context.Context, id int64) (Review, error)
	Delete(ctx context.Context, id int64) error
	Fetch(ctx context.Context, filmID int64, count int) ([]Review, error)

	AddLike(ctx context.Context, reviewID, userID int64) error
	AddDislike(ctx context.Context, reviewID, userID int64) error
	RemoveReaction(ctx context.Context, reviewID, userID int64) error
}
