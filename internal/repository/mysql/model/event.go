package model

import (
	"github.com/filmorate/backend/domain"
)

type Event struct {
	ID        int64  `gorm:"column:event_id;primaryKey;autoIncrement"`
	Timestamp int64  `gorm:"not null"`
	UserID    int64  `gorm:"column:user_id;not null;index"`
	EntityID  int64  `gorm:"column:entity_id;not null"`
	EventType string `gorm:"column:event_type;type:varchar(10);not null"`
	Operation string `gorm:"type:varchar(10);not null"`
}

func (Event) TableName() string {
	return "events"
}

func (m *Event) ToDomain() domain.Event {
	return domain.Event{
		ID:        m.ID,
		Timestamp: m.Timestamp,
		UserID:    m.UserID,
		EntityID:  m.EntityID,
		EventType: domain.EventType(m.EventType),
		Operation: domain.EventOperation(m.Operation),
	}
}

func NewEventFromDomain(e *domain.Event) *Event {
	return &Event{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		UserID:    e.UserID,
		EntityID:  e.EntityID,
		EventType: string(e.EventType),
		Operation: string(e.Operation),
	}
}
