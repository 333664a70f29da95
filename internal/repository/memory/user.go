package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmorate/backend/domain"
)

type UserStore struct {
	mu      sync.RWMutex
	users   map[int64]domain.User
	friends map[int64]map[int64]struct{}
	nextID  int64
}

var _ domain.UserRepository = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[int64]domain.User),
		friends: make(map[int64]map[int64]struct{}),
		nextID:  1,
	}
}

func (s *UserStore) GetByID(_ context.Context, id int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (s *UserStore) GetAll(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *UserStore) Store(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) Update(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)
	delete(s.friends, id)
	for _, set := range s.friends {
		delete(set, id)
	}
	return nil
}

func (s *UserStore) AddFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.friends[userID] == nil {
		s.friends[userID] = make(map[int64]struct{})
	}
	s.friends[userID][friendID] = struct{}{}
	return nil
}

func (s *UserStore) RemoveFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.friends[userID], friendID)
	return nil
}

func (s *UserStore) GetFriends(_ context.Context, userID int64) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersFromSet(s.friends[userID]), nil
}

func (s *UserStore) GetCommonFriends(_ context.Context, userID, otherID int64) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	common := make(map[int64]struct{})
	other := s.friends[otherID]
	for id := range s.friends[userID] {
		if _, ok := other[id]; ok {
			common[id] = struct{}{}
		}
	}
	return s.usersFromSet(common), nil
}

// usersFromSet must be called with the read lock held.
func (s *UserStore) usersFromSet(set map[int64]struct{}) []domain.User {
	res := make([]domain.User, 0, len(set))
	for id := range set {
		if u, ok := s.users[id]; ok {
			res = append(res, u)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
