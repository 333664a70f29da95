package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmorate/backend/domain"
)

type DirectorStore struct {
	mu        sync.RWMutex
	directors map[int64]domain.Director
	nextID    int64
}

var _ domain.DirectorRepository = (*DirectorStore)(nil)

func NewDirectorStore() *DirectorStore {
	return &DirectorStore{
		directors: make(map[int64]domain.Director),
		nextID:    1,
	}
}

func (s *DirectorStore) GetAll(_ context.Context) ([]domain.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Director, 0, len(s.directors))
	for _, d := range s.directors {
		res = append(res, d)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *DirectorStore) GetByID(_ context.Context, id int64) (domain.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	director, ok := s.directors[id]
	if !ok {
		return domain.Director{}, domain.ErrNotFound
	}
	return director, nil
}

func (s *DirectorStore) GetByIDs(_ context.Context, ids []int64) ([]domain.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Director, 0, len(ids))
	for _, id := range ids {
		if d, ok := s.directors[id]; ok {
			res = append(res, d)
		}
	}
	return res, nil
}

func (s *DirectorStore) Store(_ context.Context, d *domain.Director) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.nextID
	s.nextID++
	s.directors[d.ID] = *d
	return nil
}

func (s *DirectorStore) Update(_ context.Context, d *domain.Director) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.directors[d.ID]; !ok {
		return domain.ErrNotFound
	}
	s.directors[d.ID] = *d
	return nil
}

func (s *DirectorStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.directors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.directors, id)
	return nil
}
