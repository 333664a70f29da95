package domain

import "context"

// EventType classifies what kind of object a feed event is about.
type EventType string

const (
	EventTypeLike   EventType = "LIKE"
	EventTypeReview EventType = "REVIEW"
	EventTypeFriend EventType = "FRIEND"
)

// EventOperation classifies what happened to the object.
type EventOperation string

const (
	OperationAdd    EventOperation = "ADD"
	OperationRemove EventOperation = "REMOVE"
	OperationUpdate EventOperation = "UPDATE"
)

// Event is an immutable fact in a user's activity feed. EntityID is the id
// of the object acted upon: a film id for LIKE, a review id for REVIEW and
// the friend's user id for FRIEND.
type Event struct {
	ID        int64          `json:"eventId"`
	Timestamp int64          `json:"timestamp"` // wall clock, milliseconds
	UserID    int64          `json:"userId"`
	EventType EventType      `json:"eventType"`
	Operation EventOperation `json:"operation"`
	EntityID  int64          `json:"entityId"`
}

// EventRepository is an append-only store. Events are never updated or
// deleted.
type EventRepository interface {
	// Store appends one event and backfills its ID. The store assigns IDs
	// monotonically, so the ID is a deterministic tie-break for events
	// sharing a millisecond timestamp.
	Store(ctx context.Context, e *Event) error

	// FetchByUser returns all events of one user ordered by
	// (timestamp, event_id) ascending.
	FetchByUser(ctx context.Context, userID int64) ([]Event, error)
}

// FeedUsecase records activity events and serves per-user feeds. The
// recorders are called by the write-side services after their primary
// mutation has succeeded.
type FeedUsecase interface {
	FeedFor(ctx context.Context, userID int64) ([]Event, error)

	AddLikeEvent(ctx context.Context, userID, filmID int64) error
	RemoveLikeEvent(ctx context.Context, userID, filmID int64) error
	AddFriendEvent(ctx context.Context, userID, friendID int64) error
	RemoveFriendEvent(ctx context.Context, userID, friendID int64) error
	AddReviewEvent(ctx context.Context, userID, reviewID int64) error
	UpdateReviewEvent(ctx context.Context, userID, reviewID int64) error
	RemoveReviewEvent(ctx context.Context, userID, reviewID int64) error
}
