package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/filmorate/backend/domain"
	mysqlRepo "github.com/filmorate/backend/internal/repository/mysql"
)

func TestEventStoreBackfillsID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewEventRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `events`").
		WithArgs(int64(1700000000000), int64(5), int64(9), "LIKE", "ADD").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	event := domain.Event{
		Timestamp: 1700000000000,
		UserID:    5,
		EventType: domain.EventTypeLike,
		Operation: domain.OperationAdd,
		EntityID:  9,
	}
	err := repo.Store(context.Background(), &event)
	require.NoError(t, err)
	assert.Equal(t, int64(42), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventFetchByUserOrdersByTimestampThenID(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewEventRepository(gdb)

	rows := sqlmock.NewRows([]string{"event_id", "timestamp", "user_id", "entity_id", "event_type", "operation"}).
		AddRow(int64(1), int64(100), int64(5), int64(9), "LIKE", "ADD").
		AddRow(int64(2), int64(100), int64(5), int64(9), "LIKE", "REMOVE").
		AddRow(int64(3), int64(200), int64(5), int64(3), "FRIEND", "ADD")
	mock.ExpectQuery("SELECT (.+) FROM `events` WHERE user_id = (.+) ORDER BY timestamp, event_id").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	events, err := repo.FetchByUser(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventTypeLike, events[0].EventType)
	assert.Equal(t, domain.OperationRemove, events[1].Operation)
	assert.Equal(t, domain.EventTypeFriend, events[2].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
