package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/filmorate/backend/domain"
)

const (
	KeyFilms = "film:%d"

	filmTTL = 10 * time.Minute
)

type filmCache struct {
	client *redis.Client
}

var _ domain.FilmCache = (*filmCache)(nil)

func NewFilmCache(client *redis.Client) *filmCache {
	return &filmCache{
		client,
	}
}

func (c *filmCache) GetFilm(ctx context.Context, id int64) (res domain.Film, err error) {
	key := fmt.Sprintf(KeyFilms, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Film{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Film{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Film{}, err
	}
	return
}

// GetFilmsByIDs returns the cached subset of the requested films; missing
// entries are simply absent from the result.
func (c *filmCache) GetFilmsByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(KeyFilms, id)
	}

	jsonList, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	films := make([]domain.Film, 0, len(ids))
	for _, val := range jsonList {
		if val == nil {
			continue
		}

		var f domain.Film
		if str, ok := val.(string); ok {
			if err := json.Unmarshal([]byte(str), &f); err != nil {
				logrus.Warnf("failed to unmarshal cached film: %v", err)
				continue
			}
			films = append(films, f)
		}
	}

	return films, nil
}

func (c *filmCache) SetFilm(ctx context.Context, f *domain.Film) (err error) {
	key := fmt.Sprintf(KeyFilms, f.ID)
	data, err := json.Marshal(f)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, filmTTL).Err()
	return
}

func (c *filmCache) BatchSetFilms(ctx context.Context, films []domain.Film) error {
	if len(films) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for i := range films {
		data, err := json.Marshal(films[i])
		if err != nil {
			logrus.Warnf("failed to marshal film for cache, ID: %d, err: %v", films[i].ID, err)
			continue
		}
		pipe.Set(ctx, fmt.Sprintf(KeyFilms, films[i].ID), data, filmTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *filmCache) DeleteFilm(ctx context.Context, id int64) error {
	key := fmt.Sprintf(KeyFilms, id)
	return c.client.Del(ctx, key).Err()
}
