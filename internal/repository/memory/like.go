package memory

import (
	"context"
	"sync"

	"github.com/filmorate/backend/domain"
)

// LikeStore keeps the like relation double-indexed for both query
// directions.
type LikeStore struct {
	mu      sync.RWMutex
	byUser  map[int64]map[int64]struct{} // user id -> film ids
	byFilm  map[int64]map[int64]struct{} // film id -> user ids
}

var _ domain.LikeRepository = (*LikeStore)(nil)

func NewLikeStore() *LikeStore {
	return &LikeStore{
		byUser: make(map[int64]map[int64]struct{}),
		byFilm: make(map[int64]map[int64]struct{}),
	}
}

func (s *LikeStore) Add(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byUser[userID] == nil {
		s.byUser[userID] = make(map[int64]struct{})
	}
	if s.byFilm[filmID] == nil {
		s.byFilm[filmID] = make(map[int64]struct{})
	}
	s.byUser[userID][filmID] = struct{}{}
	s.byFilm[filmID][userID] = struct{}{}
	return nil
}

func (s *LikeStore) Remove(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser[userID], filmID)
	delete(s.byFilm[filmID], userID)
	return nil
}

func (s *LikeStore) FilmsLikedBy(_ context.Context, userID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keys(s.byUser[userID]), nil
}

func (s *LikeStore) UsersWhoLiked(_ context.Context, filmID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keys(s.byFilm[filmID]), nil
}

func (s *LikeStore) LikesWithin(_ context.Context, filmIDs []int64, excludeUserID int64) (map[int64][]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make(map[int64][]int64)
	for _, filmID := range filmIDs {
		for userID := range s.byFilm[filmID] {
			if userID == excludeUserID {
				continue
			}
			res[userID] = append(res[userID], filmID)
		}
	}
	return res, nil
}

func keys(set map[int64]struct{}) []int64 {
	res := make([]int64, 0, len(set))
	for id := range set {
		res = append(res, id)
	}
	return res
}
