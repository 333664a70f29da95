package recommend_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/memory"
	"github.com/filmorate/backend/internal/usecase/recommend"
)

func seedFilms(t *testing.T, films *memory.FilmStore, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		f := domain.Film{
			Name:        "film",
			ReleaseDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
			Duration:    90,
		}
		require.NoError(t, films.Store(context.Background(), &f))
		ids = append(ids, f.ID)
	}
	return ids
}

func filmIDs(films []domain.Film) []int64 {
	ids := make([]int64, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestForUserOffersNeighborsExtraLikes(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	ids := seedFilms(t, films, 3)

	// user 1 and user 2 agree on the first two films, user 2 also liked the
	// third one
	require.NoError(t, likes.Add(ctx, ids[0], 1))
	require.NoError(t, likes.Add(ctx, ids[1], 1))
	require.NoError(t, likes.Add(ctx, ids[0], 2))
	require.NoError(t, likes.Add(ctx, ids[1], 2))
	require.NoError(t, likes.Add(ctx, ids[2], 2))
	// user 3 shares only one film, so user 2 is the closer neighbor
	require.NoError(t, likes.Add(ctx, ids[0], 3))

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids[2]}, filmIDs(res))
}

func TestForUserTiedNeighborsAllContribute(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	ids := seedFilms(t, films, 3)

	require.NoError(t, likes.Add(ctx, ids[0], 1))
	// users 2 and 3 each share exactly the one film with user 1 but diverge
	// beyond it
	require.NoError(t, likes.Add(ctx, ids[0], 2))
	require.NoError(t, likes.Add(ctx, ids[1], 2))
	require.NoError(t, likes.Add(ctx, ids[0], 3))
	require.NoError(t, likes.Add(ctx, ids[2], 3))

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{ids[1], ids[2]}, filmIDs(res))
}

func TestForUserNeverRecommendsOwnLikes(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	ids := seedFilms(t, films, 4)

	for _, id := range ids[:3] {
		require.NoError(t, likes.Add(ctx, id, 1))
	}
	for _, id := range ids {
		require.NoError(t, likes.Add(ctx, id, 2))
	}

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{ids[3]}, filmIDs(res))
	for _, f := range res {
		assert.NotContains(t, ids[:3], f.ID)
	}
}

func TestForUserWithoutLikesGetsEmptyList(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestForUserWithoutNeighborsGetsEmptyList(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	ids := seedFilms(t, films, 2)

	// only the target user liked anything
	require.NoError(t, likes.Add(ctx, ids[0], 1))
	require.NoError(t, likes.Add(ctx, ids[1], 1))

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestForUserNeighborsWithIdenticalTasteAddNothing(t *testing.T) {
	ctx := context.Background()
	likes := memory.NewLikeStore()
	films := memory.NewFilmStore(likes)
	ids := seedFilms(t, films, 2)

	for _, userID := range []int64{1, 2} {
		require.NoError(t, likes.Add(ctx, ids[0], userID))
		require.NoError(t, likes.Add(ctx, ids[1], userID))
	}

	svc := recommend.NewService(likes, films)
	res, err := svc.ForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, res)
}
