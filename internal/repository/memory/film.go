// Package memory holds map-backed implementations of the storage contracts.
// Every store owns its records outright and hands out copies, never aliases,
// so callers cannot mutate shared state behind the store's back.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/filmorate/backend/domain"
)

type FilmStore struct {
	mu     sync.RWMutex
	films  map[int64]domain.Film
	nextID int64

	likes *LikeStore
}

var _ domain.FilmRepository = (*FilmStore)(nil)

// NewFilmStore creates a film store. The like store is consulted for the
// popularity-ordered queries.
func NewFilmStore(likes *LikeStore) *FilmStore {
	return &FilmStore{
		films:  make(map[int64]domain.Film),
		nextID: 1,
		likes:  likes,
	}
}

func (s *FilmStore) GetByID(_ context.Context, id int64) (domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	film, ok := s.films[id]
	if !ok {
		return domain.Film{}, domain.ErrNotFound
	}
	return copyFilm(film), nil
}

func (s *FilmStore) GetByIDs(_ context.Context, ids []int64) ([]domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Film, 0, len(ids))
	for _, id := range ids {
		if film, ok := s.films[id]; ok {
			res = append(res, copyFilm(film))
		}
	}
	return res, nil
}

func (s *FilmStore) GetAll(_ context.Context) ([]domain.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Film) bool { return true }), nil
}

func (s *FilmStore) Store(_ context.Context, f *domain.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.nextID
	s.nextID++
	s.films[f.ID] = copyFilm(*f)
	return nil
}

func (s *FilmStore) Update(_ context.Context, f *domain.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.films[f.ID]; !ok {
		return domain.ErrNotFound
	}
	s.films[f.ID] = copyFilm(*f)
	return nil
}

func (s *FilmStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.films[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.films, id)
	return nil
}

func (s *FilmStore) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]domain.Film, error) {
	s.mu.RLock()
	films := s.collect(func(f domain.Film) bool {
		if genreID != 0 && !hasGenre(f, genreID) {
			return false
		}
		if year != 0 && f.ReleaseDate.Year() != year {
			return false
		}
		return true
	})
	s.mu.RUnlock()

	s.sortByLikes(ctx, films)
	if len(films) > count {
		films = films[:count]
	}
	return films, nil
}

func (s *FilmStore) GetCommon(ctx context.Context, userID, friendID int64) ([]domain.Film, error) {
	userFilms, _ := s.likes.FilmsLikedBy(ctx, userID)
	friendFilms, _ := s.likes.FilmsLikedBy(ctx, friendID)

	liked := make(map[int64]bool, len(friendFilms))
	for _, id := range friendFilms {
		liked[id] = true
	}
	common := make([]int64, 0)
	for _, id := range userFilms {
		if liked[id] {
			common = append(common, id)
		}
	}

	films, err := s.GetByIDs(ctx, common)
	if err != nil {
		return nil, err
	}
	s.sortByLikes(ctx, films)
	return films, nil
}

func (s *FilmStore) GetByDirectorSortedByYear(_ context.Context, directorID int64) ([]domain.Film, error) {
	s.mu.RLock()
	films := s.collect(func(f domain.Film) bool { return hasDirector(f, directorID) })
	s.mu.RUnlock()

	sort.Slice(films, func(i, j int) bool {
		return films[i].ReleaseDate.Before(films[j].ReleaseDate)
	})
	return films, nil
}

func (s *FilmStore) GetByDirectorSortedByLikes(ctx context.Context, directorID int64) ([]domain.Film, error) {
	s.mu.RLock()
	films := s.collect(func(f domain.Film) bool { return hasDirector(f, directorID) })
	s.mu.RUnlock()

	s.sortByLikes(ctx, films)
	return films, nil
}

func (s *FilmStore) SearchByTitle(ctx context.Context, query string) ([]domain.Film, error) {
	return s.search(ctx, query, true, false)
}

func (s *FilmStore) SearchByDirector(ctx context.Context, query string) ([]domain.Film, error) {
	return s.search(ctx, query, false, true)
}

func (s *FilmStore) SearchByTitleAndDirector(ctx context.Context, query string) ([]domain.Film, error) {
	return s.search(ctx, query, true, true)
}

func (s *FilmStore) search(ctx context.Context, query string, byTitle, byDirector bool) ([]domain.Film, error) {
	q := strings.ToLower(query)
	s.mu.RLock()
	films := s.collect(func(f domain.Film) bool {
		if byTitle && strings.Contains(strings.ToLower(f.Name), q) {
			return true
		}
		if byDirector {
			for _, d := range f.Directors {
				if strings.Contains(strings.ToLower(d.Name), q) {
					return true
				}
			}
		}
		return false
	})
	s.mu.RUnlock()

	s.sortByLikes(ctx, films)
	return films, nil
}

// collect must be called with the read lock held.
func (s *FilmStore) collect(match func(domain.Film) bool) []domain.Film {
	res := make([]domain.Film, 0, len(s.films))
	for _, film := range s.films {
		if match(film) {
			res = append(res, copyFilm(film))
		}
	}
	return res
}

func (s *FilmStore) sortByLikes(ctx context.Context, films []domain.Film) {
	counts := make(map[int64]int, len(films))
	for _, f := range films {
		users, _ := s.likes.UsersWhoLiked(ctx, f.ID)
		counts[f.ID] = len(users)
	}
	sort.SliceStable(films, func(i, j int) bool {
		return counts[films[i].ID] > counts[films[j].ID]
	})
}

func hasGenre(f domain.Film, genreID int64) bool {
	for _, g := range f.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

func hasDirector(f domain.Film, directorID int64) bool {
	for _, d := range f.Directors {
		if d.ID == directorID {
			return true
		}
	}
	return false
}

func copyFilm(f domain.Film) domain.Film {
	c := f
	c.Genres = append([]domain.Genre(nil), f.Genres...)
	c.Directors = append([]domain.Director(nil), f.Directors...)
	return c
}
