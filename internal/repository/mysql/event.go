package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type eventRepository struct {
	DB *gorm.DB
}

var _ domain.EventRepository = (*eventRepository)(nil)

func NewEventRepository(db *gorm.DB) *eventRepository {
	return &eventRepository{db}
}

// Store appends one event. The auto-incremented primary key becomes the
// event id, so ids grow monotonically with insertion order.
func (m *eventRepository) Store(ctx context.Context, e *domain.Event) error {
	eventModel := model.NewEventFromDomain(e)
	if err := m.DB.WithContext(ctx).Create(eventModel).Error; err != nil {
		return err
	}
	e.ID = eventModel.ID
	return nil
}

func (m *eventRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	var events []model.Event
	err := m.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp, event_id").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Event, len(events))
	for i := range events {
		res[i] = events[i].ToDomain()
	}
	return res, nil
}
