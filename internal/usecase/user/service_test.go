package user_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/memory"
	"github.com/filmorate/backend/internal/usecase/feed"
	"github.com/filmorate/backend/internal/usecase/recommend"
	"github.com/filmorate/backend/internal/usecase/user"
)

type fixture struct {
	svc    *user.Service
	users  *memory.UserStore
	events *memory.EventStore
}

func newFixture() *fixture {
	users := memory.NewUserStore()
	events := memory.NewEventStore()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	feedSvc := feed.NewService(events, users)
	recommendSvc := recommend.NewService(likes, films)

	return &fixture{
		svc:    user.NewService(users, feedSvc, recommendSvc),
		users:  users,
		events: events,
	}
}

func (f *fixture) addUser(t *testing.T) int64 {
	t.Helper()
	u := domain.User{
		Email: faker.Email(),
		Login: faker.Username(),
		Name:  faker.Name(),
	}
	require.NoError(t, f.svc.Store(context.Background(), &u))
	return u.ID
}

func TestStoreDefaultsBlankNameToLogin(t *testing.T) {
	f := newFixture()

	u := domain.User{Email: "a@b.c", Login: "neo", Name: "  "}
	require.NoError(t, f.svc.Store(context.Background(), &u))
	assert.Equal(t, "neo", u.Name)
}

func TestStoreRejectsLoginWithSpaces(t *testing.T) {
	f := newFixture()

	u := domain.User{Email: "a@b.c", Login: "bad login"}
	err := f.svc.Store(context.Background(), &u)
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestAddFriendIsOneDirectional(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addUser(t)
	second := f.addUser(t)

	require.NoError(t, f.svc.AddFriend(ctx, first, second))

	friends, err := f.svc.GetFriends(ctx, first)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, second, friends[0].ID)

	// the friendship does not reflect back
	friends, err = f.svc.GetFriends(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestAddFriendRecordsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addUser(t)
	second := f.addUser(t)

	require.NoError(t, f.svc.AddFriend(ctx, first, second))

	events, err := f.events.FetchByUser(ctx, first)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeFriend, events[0].EventType)
	assert.Equal(t, domain.OperationAdd, events[0].Operation)
	assert.Equal(t, second, events[0].EntityID)

	// the friend's own feed stays untouched
	events, err = f.events.FetchByUser(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAddFriendUnknownFriend(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addUser(t)

	err := f.svc.AddFriend(ctx, first, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	events, err := f.events.FetchByUser(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRemoveFriendRecordsEvent(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addUser(t)
	second := f.addUser(t)

	require.NoError(t, f.svc.AddFriend(ctx, first, second))
	require.NoError(t, f.svc.RemoveFriend(ctx, first, second))

	events, err := f.events.FetchByUser(ctx, first)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.OperationRemove, events[1].Operation)
}

func TestGetCommonFriends(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	first := f.addUser(t)
	second := f.addUser(t)
	mutual := f.addUser(t)

	require.NoError(t, f.svc.AddFriend(ctx, first, mutual))
	require.NoError(t, f.svc.AddFriend(ctx, second, mutual))

	common, err := f.svc.GetCommonFriends(ctx, first, second)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, mutual, common[0].ID)
}

func TestGetRecommendationsForUnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetRecommendations(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetRecommendationsWithoutLikes(t *testing.T) {
	f := newFixture()
	userID := f.addUser(t)

	films, err := f.svc.GetRecommendations(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestUpdateUnknownUser(t *testing.T) {
	f := newFixture()

	u := domain.User{ID: 404, Email: "a@b.c", Login: "ghost"}
	err := f.svc.Update(context.Background(), &u)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
