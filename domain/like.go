package domain

import (
	"context"
	"time"
)

// FilmLike is representing a like record
type FilmLike struct {
	FilmID    int64
	UserID    int64
	CreatedAt time.Time
}

// LikeRepository owns the many-to-many like relation between users and films.
type LikeRepository interface {
	// Add inserts a like. Duplicate inserts are a successful no-op.
	Add(ctx context.Context, filmID, userID int64) error

	// Remove deletes a like. Removing an absent like is a no-op.
	Remove(ctx context.Context, filmID, userID int64) error

	// FilmsLikedBy returns the ids of all films the user liked.
	// An unknown user yields an empty slice, not an error.
	FilmsLikedBy(ctx context.Context, userID int64) ([]int64, error)

	// UsersWhoLiked returns the ids of all users who liked the film.
	// An unknown film yields an empty slice, not an error.
	UsersWhoLiked(ctx context.Context, filmID int64) ([]int64, error)

	// LikesWithin returns, for every user except excludeUserID who liked at
	// least one of the given films, the subset of filmIDs that user liked.
	LikesWithin(ctx context.Context, filmIDs []int64, excludeUserID int64) (map[int64][]int64, error)
}

// RecommendationUsecase computes films a user is likely to enjoy based on
// the like patterns of similar users.
type RecommendationUsecase interface {
	ForUser(ctx context.Context, userID int64) ([]Film, error)
}
