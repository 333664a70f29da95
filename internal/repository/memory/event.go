package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/filmorate/backend/domain"
)

// EventStore is an append-only log. IDs are assigned from a monotonically
// increasing counter at append time.
type EventStore struct {
	mu     sync.RWMutex
	events []domain.Event
	nextID int64
}

var _ domain.EventRepository = (*EventStore)(nil)

func NewEventStore() *EventStore {
	return &EventStore{
		nextID: 1,
	}
}

func (s *EventStore) Store(_ context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.events = append(s.events, *e)
	return nil
}

func (s *EventStore) FetchByUser(_ context.Context, userID int64) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]domain.Event, 0)
	for _, e := range s.events {
		if e.UserID == userID {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Timestamp != res[j].Timestamp {
			return res[i].Timestamp < res[j].Timestamp
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}
