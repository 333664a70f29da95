package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmorate/backend/domain"
)

// GenreStore serves the fixed genre dictionary.
type GenreStore struct {
	mu     sync.RWMutex
	genres map[int64]domain.Genre
}

var _ domain.GenreRepository = (*GenreStore)(nil)

func NewGenreStore(genres ...domain.Genre) *GenreStore {
	s := &GenreStore{genres: make(map[int64]domain.Genre, len(genres))}
	for _, g := range genres {
		s.genres[g.ID] = g
	}
	return s
}

func (s *GenreStore) GetAll(_ context.Context) ([]domain.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		res = append(res, g)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *GenreStore) GetByID(_ context.Context, id int64) (domain.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	genre, ok := s.genres[id]
	if !ok {
		return domain.Genre{}, domain.ErrNotFound
	}
	return genre, nil
}

func (s *GenreStore) GetByIDs(_ context.Context, ids []int64) ([]domain.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Genre, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.genres[id]; ok {
			res = append(res, g)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// MpaStore serves the fixed MPA rating dictionary.
type MpaStore struct {
	mu      sync.RWMutex
	ratings map[int64]domain.MpaRating
}

var _ domain.MpaRepository = (*MpaStore)(nil)

func NewMpaStore(ratings ...domain.MpaRating) *MpaStore {
	s := &MpaStore{ratings: make(map[int64]domain.MpaRating, len(ratings))}
	for _, r := range ratings {
		s.ratings[r.ID] = r
	}
	return s
}

func (s *MpaStore) GetAll(_ context.Context) ([]domain.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.MpaRating, 0, len(s.ratings))
	for _, r := range s.ratings {
		res = append(res, r)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *MpaStore) GetByID(_ context.Context, id int64) (domain.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rating, ok := s.ratings[id]
	if !ok {
		return domain.MpaRating{}, domain.ErrNotFound
	}
	return rating, nil
}
