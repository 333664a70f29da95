package domain

import (
	"context"
	"time"
)

// EarliestReleaseDate is the date of the first public film screening.
// No film can be released before it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// Film is representing the Film data struct
type Film struct {
	ID          int64      // Unique identifier for the film
	Name        string     // Film title
	Description string     // Short annotation, at most 200 characters
	ReleaseDate time.Time  // Theatrical release date
	Duration    int        // Running time in minutes
	Mpa         MpaRating  // Content rating classification
	Genres      []Genre    // Genres, sorted by id, no duplicates
	Directors   []Director // Directors of the film
}

// FilmDBRepository defines the contract for film persistence.
type FilmDBRepository interface {
	// GetByID retrieves a single film with its rating, genres and directors.
	// Returns ErrNotFound if the film doesn't exist.
	GetByID(ctx context.Context, id int64) (Film, error)

	// GetByIDs retrieves films by given IDs. Missing IDs are silently skipped.
	GetByIDs(ctx context.Context, ids []int64) ([]Film, error)

	GetAll(ctx context.Context) ([]Film, error)

	// Store creates a new film and backfills its ID.
	Store(ctx context.Context, f *Film) error

	// Update modifies an existing film and replaces its genre and director links.
	// Returns ErrNotFound if the film doesn't exist.
	Update(ctx context.Context, f *Film) error

	// Delete removes a film by its ID.
	Delete(ctx context.Context, id int64) error

	// GetPopular returns films ordered by like count descending.
	// genreID and year equal to zero mean "no filter".
	GetPopular(ctx context.Context, count int, genreID int64, year int) ([]Film, error)

	// GetCommon returns films liked by both users, ordered by popularity.
	GetCommon(ctx context.Context, userID, friendID int64) ([]Film, error)

	GetByDirectorSortedByYear(ctx context.Context, directorID int64) ([]Film, error)
	GetByDirectorSortedByLikes(ctx context.Context, directorID int64) ([]Film, error)

	SearchByTitle(ctx context.Context, query string) ([]Film, error)
	SearchByDirector(ctx context.Context, query string) ([]Film, error)
	SearchByTitleAndDirector(ctx context.Context, query string) ([]Film, error)
}

// FilmRepository is the read/write surface the services consume. It matches
// FilmDBRepository; the coordinating implementation adds a cache in front of
// the point reads.
type FilmRepository interface {
	FilmDBRepository
}

type FilmCache interface {
	GetFilm(ctx context.Context, id int64) (Film, error)
	GetFilmsByIDs(ctx context.Context, ids []int64) ([]Film, error)
	SetFilm(ctx context.Context, f *Film) error
	BatchSetFilms(ctx context.Context, films []Film) error
	DeleteFilm(ctx context.Context, id int64) error
}

type FilmUsecase interface {
	GetByID(ctx context.Context, id int64) (Film, error)
	GetAll(ctx context.Context) ([]Film, error)
	Store(ctx context.Context, f *Film) error
	Update(ctx context.Context, f *Film) error
	Delete(ctx context.Context, id int64) (Film, error)

	// AddLike and RemoveLike toggle a like and record the matching feed event.
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error

	GetPopular(ctx context.Context, count int, genreID int64, year int) ([]Film, error)
	GetCommon(ctx context.Context, userID, friendID int64) ([]Film, error)
	GetByDirector(ctx context.Context, directorID int64, sortBy string) ([]Film, error)
	Search(ctx context.Context, query string, by string) ([]Film, error)
}
