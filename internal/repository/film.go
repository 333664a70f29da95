package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/filmorate/backend/domain"
)

// filmRepository coordinates the database and the cache. Point reads go
// through the cache; list queries always hit the database since their
// results depend on like counts and filters.
type filmRepository struct {
	db           domain.FilmDBRepository
	cache        domain.FilmCache
	rebuildGroup singleflight.Group
}

var _ domain.FilmRepository = (*filmRepository)(nil)

func NewFilmRepository(db domain.FilmDBRepository, cache domain.FilmCache) *filmRepository {
	return &filmRepository{
		db:    db,
		cache: cache,
	}
}

func (r *filmRepository) GetByID(ctx context.Context, id int64) (domain.Film, error) {
	film, err := r.cache.GetFilm(ctx, id)
	if err == nil {
		return film, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	// Collapse concurrent loads of the same film into one database read.
	key := "film:" + strconv.FormatInt(id, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (interface{}, error) {
		f, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		go func(f domain.Film) {
			if err := r.cache.SetFilm(context.Background(), &f); err != nil {
				logrus.Warnf("failed to set film cache: %v", err)
			}
		}(f)

		return f, nil
	})
	if err != nil {
		return domain.Film{}, err
	}
	return result.(domain.Film), nil
}

func (r *filmRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, err := r.cache.GetFilmsByIDs(ctx, ids)
	if err != nil {
		logrus.Warnf("cache mget error: %v", err)
		cached = nil
	}
	if len(cached) == len(ids) {
		return cached, nil
	}

	found := make(map[int64]bool, len(cached))
	for i := range cached {
		found[cached[i].ID] = true
	}
	missed := make([]int64, 0, len(ids)-len(cached))
	for _, id := range ids {
		if !found[id] {
			missed = append(missed, id)
		}
	}

	films, err := r.db.GetByIDs(ctx, missed)
	if err != nil {
		return nil, err
	}

	go func(films []domain.Film) {
		if err := r.cache.BatchSetFilms(context.Background(), films); err != nil {
			logrus.Warnf("failed to batch set film cache: %v", err)
		}
	}(films)

	return append(cached, films...), nil
}

func (r *filmRepository) Store(ctx context.Context, f *domain.Film) error {
	return r.db.Store(ctx, f)
}

func (r *filmRepository) Update(ctx context.Context, f *domain.Film) error {
	if err := r.db.Update(ctx, f); err != nil {
		return err
	}
	r.invalidate(f.ID)
	return nil
}

func (r *filmRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *filmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	return r.db.GetAll(ctx)
}

func (r *filmRepository) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]domain.Film, error) {
	return r.db.GetPopular(ctx, count, genreID, year)
}

func (r *filmRepository) GetCommon(ctx context.Context, userID, friendID int64) ([]domain.Film, error) {
	return r.db.GetCommon(ctx, userID, friendID)
}

func (r *filmRepository) GetByDirectorSortedByYear(ctx context.Context, directorID int64) ([]domain.Film, error) {
	return r.db.GetByDirectorSortedByYear(ctx, directorID)
}

func (r *filmRepository) GetByDirectorSortedByLikes(ctx context.Context, directorID int64) ([]domain.Film, error) {
	return r.db.GetByDirectorSortedByLikes(ctx, directorID)
}

func (r *filmRepository) SearchByTitle(ctx context.Context, query string) ([]domain.Film, error) {
	return r.db.SearchByTitle(ctx, query)
}

func (r *filmRepository) SearchByDirector(ctx context.Context, query string) ([]domain.Film, error) {
	return r.db.SearchByDirector(ctx, query)
}

func (r *filmRepository) SearchByTitleAndDirector(ctx context.Context, query string) ([]domain.Film, error) {
	return r.db.SearchByTitleAndDirector(ctx, query)
}

func (r *filmRepository) invalidate(id int64) {
	go func(id int64) {
		if err := r.cache.DeleteFilm(context.Background(), id); err != nil {
			logrus.Warnf("failed to delete film %d from cache: %v", id, err)
		}
	}(id)
}
