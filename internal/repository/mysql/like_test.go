package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/filmorate/backend/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestLikeAddIgnoresDuplicates(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewLikeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `film_likes` (.+) ON DUPLICATE KEY UPDATE").
		WithArgs(int64(10), int64(20), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Add(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRemove(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewLikeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `film_likes` WHERE film_id = (.+) AND user_id = (.+)").
		WithArgs(int64(10), int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Remove(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeFilmsLikedBy(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewLikeRepository(gdb)

	rows := sqlmock.NewRows([]string{"film_id"}).AddRow(int64(1)).AddRow(int64(3))
	mock.ExpectQuery("SELECT `film_id` FROM `film_likes` WHERE user_id = (.+)").
		WithArgs(int64(20)).
		WillReturnRows(rows)

	ids, err := repo.FilmsLikedBy(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikesWithinGroupsByUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewLikeRepository(gdb)

	rows := sqlmock.NewRows([]string{"film_id", "user_id"}).
		AddRow(int64(1), int64(7)).
		AddRow(int64(2), int64(7)).
		AddRow(int64(1), int64(8))
	mock.ExpectQuery("SELECT (.+) FROM `film_likes` WHERE film_id IN (.+) AND user_id <> (.+)").
		WithArgs(int64(1), int64(2), int64(20)).
		WillReturnRows(rows)

	res, err := repo.LikesWithin(context.Background(), []int64{1, 2}, 20)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, res[7])
	assert.Equal(t, []int64{1}, res[8])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikesWithinEmptyInput(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := mysqlRepo.NewLikeRepository(gdb)

	res, err := repo.LikesWithin(context.Background(), nil, 20)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}
