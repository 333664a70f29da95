package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmorate/backend/domain"
)

type reactionKey struct {
	reviewID, userID int64
}

type ReviewStore struct {
	mu        sync.RWMutex
	reviews   map[int64]domain.Review
	reactions map[reactionKey]bool // true = like, false = dislike
	nextID    int64
}

var _ domain.ReviewRepository = (*ReviewStore)(nil)

func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reviews:   make(map[int64]domain.Review),
		reactions: make(map[reactionKey]bool),
		nextID:    1,
	}
}

func (s *ReviewStore) Store(_ context.Context, r *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.reviews[r.ID] = *r
	return nil
}

func (s *ReviewStore) Update(_ context.Context, r *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.reviews[r.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Content = r.Content
	stored.IsPositive = r.IsPositive
	s.reviews[r.ID] = stored
	return nil
}

func (s *ReviewStore) GetByID(_ context.Context, id int64) (domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.reviews[id]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return review, nil
}

func (s *ReviewStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.reviews, id)
	for key := range s.reactions {
		if key.reviewID == id {
			delete(s.reactions, key)
		}
	}
	return nil
}

func (s *ReviewStore) FetchAll(_ context.Context, limit int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetch(func(domain.Review) bool { return true }, limit), nil
}

func (s *ReviewStore) FetchByFilm(_ context.Context, filmID int64, limit int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetch(func(r domain.Review) bool { return r.FilmID == filmID }, limit), nil
}

func (s *ReviewStore) AddReaction(_ context.Context, reviewID, userID int64, isLike bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reactions[reactionKey{reviewID, userID}] = isLike
	return nil
}

func (s *ReviewStore) RemoveReaction(_ context.Context, reviewID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reactions, reactionKey{reviewID, userID})
	return nil
}

func (s *ReviewStore) RecalcUseful(_ context.Context, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	review, ok := s.reviews[reviewID]
	if !ok {
		return nil
	}
	useful := 0
	for key, isLike := range s.reactions {
		if key.reviewID != reviewID {
			continue
		}
		if isLike {
			useful++
		} else {
			useful--
		}
	}
	review.Useful = useful
	s.reviews[reviewID] = review
	return nil
}

// fetch must be called with the read lock held.
func (s *ReviewStore) fetch(match func(domain.Review) bool, limit int) []domain.Review {
	res := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if match(r) {
			res = append(res, r)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Useful != res[j].Useful {
			return res[i].Useful > res[j].Useful
		}
		return res[i].ID < res[j].ID
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}
