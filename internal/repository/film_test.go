package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository"
	"github.com/filmorate/backend/internal/repository/memory"
)

// stubCache is a map-backed FilmCache that records its calls.
type stubCache struct {
	mu    sync.Mutex
	films map[int64]domain.Film
	gets  int
}

func newStubCache() *stubCache {
	return &stubCache{films: make(map[int64]domain.Film)}
}

func (c *stubCache) GetFilm(_ context.Context, id int64) (domain.Film, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	film, ok := c.films[id]
	if !ok {
		return domain.Film{}, domain.ErrCacheMiss
	}
	return film, nil
}

func (c *stubCache) GetFilmsByIDs(_ context.Context, ids []int64) ([]domain.Film, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res := make([]domain.Film, 0, len(ids))
	for _, id := range ids {
		if f, ok := c.films[id]; ok {
			res = append(res, f)
		}
	}
	return res, nil
}

func (c *stubCache) SetFilm(_ context.Context, f *domain.Film) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.films[f.ID] = *f
	return nil
}

func (c *stubCache) BatchSetFilms(_ context.Context, films []domain.Film) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range films {
		c.films[f.ID] = f
	}
	return nil
}

func (c *stubCache) DeleteFilm(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.films, id)
	return nil
}

func seedFilm(t *testing.T, db *memory.FilmStore) domain.Film {
	t.Helper()
	f := domain.Film{
		Name:        "Cached",
		ReleaseDate: time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC),
		Duration:    95,
	}
	require.NoError(t, db.Store(context.Background(), &f))
	return f
}

func TestGetByIDServesFromCache(t *testing.T) {
	ctx := context.Background()
	db := memory.NewFilmStore(memory.NewLikeStore())
	cache := newStubCache()
	repo := repository.NewFilmRepository(db, cache)

	f := seedFilm(t, db)
	require.NoError(t, cache.SetFilm(ctx, &f))

	// remove the film from the database; a cache hit must not touch it
	require.NoError(t, db.Delete(ctx, f.ID))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
}

func TestGetByIDFallsBackToDatabase(t *testing.T) {
	ctx := context.Background()
	db := memory.NewFilmStore(memory.NewLikeStore())
	cache := newStubCache()
	repo := repository.NewFilmRepository(db, cache)

	f := seedFilm(t, db)

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
}

func TestGetByIDUnknownFilm(t *testing.T) {
	db := memory.NewFilmStore(memory.NewLikeStore())
	repo := repository.NewFilmRepository(db, newStubCache())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByIDsMergesCacheAndDatabase(t *testing.T) {
	ctx := context.Background()
	db := memory.NewFilmStore(memory.NewLikeStore())
	cache := newStubCache()
	repo := repository.NewFilmRepository(db, cache)

	cachedFilm := seedFilm(t, db)
	require.NoError(t, cache.SetFilm(ctx, &cachedFilm))
	dbOnly := seedFilm(t, db)

	films, err := repo.GetByIDs(ctx, []int64{cachedFilm.ID, dbOnly.ID})
	require.NoError(t, err)
	require.Len(t, films, 2)

	ids := []int64{films[0].ID, films[1].ID}
	assert.ElementsMatch(t, []int64{cachedFilm.ID, dbOnly.ID}, ids)
}
