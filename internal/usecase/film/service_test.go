package film_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/memory"
	"github.com/filmorate/backend/internal/usecase/feed"
	"github.com/filmorate/backend/internal/usecase/film"
)

type fixture struct {
	svc       *film.Service
	films     *memory.FilmStore
	users     *memory.UserStore
	likes     *memory.LikeStore
	events    *memory.EventStore
	directors *memory.DirectorStore
}

func newFixture() *fixture {
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	users := memory.NewUserStore()
	events := memory.NewEventStore()
	directors := memory.NewDirectorStore()
	genres := memory.NewGenreStore(
		domain.Genre{ID: 1, Name: "Comedy"},
		domain.Genre{ID: 2, Name: "Drama"},
	)
	mpa := memory.NewMpaStore(
		domain.MpaRating{ID: 1, Name: "G"},
		domain.MpaRating{ID: 3, Name: "PG-13"},
	)
	feedSvc := feed.NewService(events, users)

	return &fixture{
		svc:       film.NewService(films, users, likes, genres, mpa, directors, feedSvc),
		films:     films,
		users:     users,
		likes:     likes,
		events:    events,
		directors: directors,
	}
}

func (f *fixture) addUser(t *testing.T) int64 {
	t.Helper()
	u := domain.User{Email: "user@example.com", Login: "login"}
	require.NoError(t, f.users.Store(context.Background(), &u))
	return u.ID
}

func (f *fixture) addFilm(t *testing.T) int64 {
	t.Helper()
	flick := domain.Film{
		Name:        "The Matrix",
		ReleaseDate: time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC),
		Duration:    136,
		Mpa:         domain.MpaRating{ID: 3},
	}
	require.NoError(t, f.svc.Store(context.Background(), &flick))
	return flick.ID
}

func TestStoreRejectsPrehistoricReleaseDate(t *testing.T) {
	f := newFixture()

	flick := domain.Film{
		Name:        "Too Early",
		ReleaseDate: time.Date(1895, time.December, 27, 0, 0, 0, 0, time.UTC),
		Duration:    10,
		Mpa:         domain.MpaRating{ID: 1},
	}
	err := f.svc.Store(context.Background(), &flick)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestStoreResolvesLookups(t *testing.T) {
	f := newFixture()

	flick := domain.Film{
		Name:        "Some Film",
		ReleaseDate: time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC),
		Duration:    100,
		Mpa:         domain.MpaRating{ID: 1},
		// duplicated and unordered on purpose
		Genres: []domain.Genre{{ID: 2}, {ID: 1}, {ID: 2}},
	}
	require.NoError(t, f.svc.Store(context.Background(), &flick))

	assert.Equal(t, "G", flick.Mpa.Name)
	require.Len(t, flick.Genres, 2)
	assert.Equal(t, "Comedy", flick.Genres[0].Name)
	assert.Equal(t, "Drama", flick.Genres[1].Name)
}

func TestStoreUnknownMpa(t *testing.T) {
	f := newFixture()

	flick := domain.Film{
		Name:        "Some Film",
		ReleaseDate: time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC),
		Duration:    100,
		Mpa:         domain.MpaRating{ID: 99},
	}
	err := f.svc.Store(context.Background(), &flick)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddLikeRecordsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filmID := f.addFilm(t)
	userID := f.addUser(t)

	require.NoError(t, f.svc.AddLike(ctx, filmID, userID))

	users, err := f.likes.UsersWhoLiked(ctx, filmID)
	require.NoError(t, err)
	assert.Equal(t, []int64{userID}, users)

	events, err := f.events.FetchByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeLike, events[0].EventType)
	assert.Equal(t, domain.OperationAdd, events[0].Operation)
	assert.Equal(t, filmID, events[0].EntityID)
}

func TestAddLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filmID := f.addFilm(t)
	userID := f.addUser(t)

	require.NoError(t, f.svc.AddLike(ctx, filmID, userID))
	require.NoError(t, f.svc.AddLike(ctx, filmID, userID))

	users, err := f.likes.UsersWhoLiked(ctx, filmID)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAddLikeUnknownFilmRecordsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID := f.addUser(t)

	err := f.svc.AddLike(ctx, 404, userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	events, err := f.events.FetchByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRemoveLikeOfAbsentLikeIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filmID := f.addFilm(t)
	userID := f.addUser(t)

	assert.NoError(t, f.svc.RemoveLike(ctx, filmID, userID))
}

func TestDeleteReturnsTheRemovedFilm(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	filmID := f.addFilm(t)

	deleted, err := f.svc.Delete(ctx, filmID)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", deleted.Name)

	_, err = f.svc.GetByID(ctx, filmID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByDirectorRejectsUnknownSort(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	d := domain.Director{Name: "Nolan"}
	require.NoError(t, f.directors.Store(ctx, &d))

	_, err := f.svc.GetByDirector(ctx, d.ID, "rating")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestGetByDirectorUnknownDirector(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByDirector(context.Background(), 404, "year")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchRejectsUnknownField(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Search(context.Background(), "matrix", "genre")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestSearchByTitleAndDirector(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.addFilm(t)

	films, err := f.svc.Search(ctx, "matr", "director,title")
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "The Matrix", films[0].Name)
}

func TestGetPopularRejectsNonPositiveCount(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetPopular(context.Background(), 0, 0, 0)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}
