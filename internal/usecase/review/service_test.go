package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/memory"
	"github.com/filmorate/backend/internal/usecase/feed"
	"github.com/filmorate/backend/internal/usecase/review"
)

type fixture struct {
	svc    *review.Service
	users  *memory.UserStore
	films  *memory.FilmStore
	events *memory.EventStore
}

func newFixture() *fixture {
	users := memory.NewUserStore()
	films := memory.NewFilmStore(memory.NewLikeStore())
	reviews := memory.NewReviewStore()
	events := memory.NewEventStore()
	feedSvc := feed.NewService(events, users)

	return &fixture{
		svc:    review.NewService(reviews, users, films, feedSvc),
		users:  users,
		films:  films,
		events: events,
	}
}

func (f *fixture) addUser(t *testing.T) int64 {
	t.Helper()
	u := domain.User{Email: "a@b.c", Login: "reviewer"}
	require.NoError(t, f.users.Store(context.Background(), &u))
	return u.ID
}

func (f *fixture) addFilm(t *testing.T) int64 {
	t.Helper()
	flick := domain.Film{
		Name:        "Reviewed Film",
		ReleaseDate: time.Date(2005, time.May, 5, 0, 0, 0, 0, time.UTC),
		Duration:    120,
	}
	require.NoError(t, f.films.Store(context.Background(), &flick))
	return flick.ID
}

func (f *fixture) addReview(t *testing.T) domain.Review {
	t.Helper()
	r := domain.Review{
		FilmID:     f.addFilm(t),
		UserID:     f.addUser(t),
		Content:    "worth watching",
		IsPositive: true,
	}
	require.NoError(t, f.svc.Store(context.Background(), &r))
	return r
}

func TestStoreRecordsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.addReview(t)

	events, err := f.events.FetchByUser(ctx, r.UserID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeReview, events[0].EventType)
	assert.Equal(t, domain.OperationAdd, events[0].Operation)
	assert.Equal(t, r.ID, events[0].EntityID)
}

func TestStoreUnknownAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := domain.Review{FilmID: f.addFilm(t), UserID: 404, Content: "x"}

	err := f.svc.Store(ctx, &r)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreUnknownFilm(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := domain.Review{FilmID: 404, UserID: f.addUser(t), Content: "x"}

	err := f.svc.Store(ctx, &r)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateEventBelongsToAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.addReview(t)

	changed := domain.Review{ID: r.ID, FilmID: 999, UserID: 999, Content: "changed my mind", IsPositive: false}
	require.NoError(t, f.svc.Update(ctx, &changed))

	// film and author are immutable, only content and verdict change
	assert.Equal(t, r.FilmID, changed.FilmID)
	assert.Equal(t, r.UserID, changed.UserID)
	assert.Equal(t, "changed my mind", changed.Content)
	assert.False(t, changed.IsPositive)

	events, err := f.events.FetchByUser(ctx, r.UserID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.OperationUpdate, events[1].Operation)
}

func TestDeleteEventBelongsToAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.addReview(t)

	require.NoError(t, f.svc.Delete(ctx, r.ID))

	_, err := f.svc.GetByID(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	events, err := f.events.FetchByUser(ctx, r.UserID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeReview, events[1].EventType)
	assert.Equal(t, domain.OperationRemove, events[1].Operation)
	assert.Equal(t, r.ID, events[1].EntityID)
}

func TestReactionsAdjustUsefulWithoutEvents(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	r := f.addReview(t)
	voter := f.addUser(t)

	require.NoError(t, f.svc.AddLike(ctx, r.ID, voter))
	stored, err := f.svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Useful)

	// switching to a dislike replaces the vote, it does not stack
	require.NoError(t, f.svc.AddDislike(ctx, r.ID, voter))
	stored, err = f.svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, stored.Useful)

	require.NoError(t, f.svc.RemoveReaction(ctx, r.ID, voter))
	stored, err = f.svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Useful)

	events, err := f.events.FetchByUser(ctx, voter)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestFetchOrdersByUseful(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addReview(t)
	second := domain.Review{FilmID: first.FilmID, UserID: first.UserID, Content: "meh", IsPositive: false}
	require.NoError(t, f.svc.Store(ctx, &second))

	voter := f.addUser(t)
	require.NoError(t, f.svc.AddLike(ctx, second.ID, voter))

	reviews, err := f.svc.Fetch(ctx, first.FilmID, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
}

func TestFetchRejectsNonPositiveCount(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Fetch(context.Background(), 0, 0)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestFetchUnknownFilm(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Fetch(context.Background(), 404, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
