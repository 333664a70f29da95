package feed

import (
	"context"
	"time"

	"github.com/filmorate/backend/domain"
)

// Service records activity events and serves per-user feeds.
type Service struct {
	eventRepo domain.EventRepository
	userRepo  domain.UserRepository
}

var _ domain.FeedUsecase = (*Service)(nil)

func NewService(eventRepo domain.EventRepository, userRepo domain.UserRepository) *Service {
	return &Service{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// FeedFor returns the user's events oldest first. A user without events
// gets an empty feed; an unknown user gets ErrNotFound.
func (s *Service) FeedFor(ctx context.Context, userID int64) ([]domain.Event, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func (s *Service) AddLikeEvent(ctx context.Context, userID, filmID int64) error {
	return s.record(ctx, userID, filmID, domain.EventTypeLike, domain.OperationAdd)
}

func (s *Service) RemoveLikeEvent(ctx context.Context, userID, filmID int64) error {
	return s.record(ctx, userID, filmID, domain.EventTypeLike, domain.OperationRemove)
}

func (s *Service) AddFriendEvent(ctx context.Context, userID, friendID int64) error {
	return s.record(ctx, userID, friendID, domain.EventTypeFriend, domain.OperationAdd)
}

func (s *Service) RemoveFriendEvent(ctx context.Context, userID, friendID int64) error {
	return s.record(ctx, userID, friendID, domain.EventTypeFriend, domain.OperationRemove)
}

func (s *Service) AddReviewEvent(ctx context.Context, userID, reviewID int64) error {
	return s.record(ctx, userID, reviewID, domain.EventTypeReview, domain.OperationAdd)
}

func (s *Service) UpdateReviewEvent(ctx context.Context, userID, reviewID int64) error {
	return s.record(ctx, userID, reviewID, domain.EventTypeReview, domain.OperationUpdate)
}

func (s *Service) RemoveReviewEvent(ctx context.Context, userID, reviewID int64) error {
	return s.record(ctx, userID, reviewID, domain.EventTypeReview, domain.OperationRemove)
}

func (s *Service) record(ctx context.Context, userID, entityID int64, eventType domain.EventType, op domain.EventOperation) error {
	event := domain.Event{
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		EventType: eventType,
		Operation: op,
		EntityID:  entityID,
	}
	return s.eventRepo.Store(ctx, &event)
}
