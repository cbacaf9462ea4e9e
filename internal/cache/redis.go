package cache

import (
	"context"
	"encoding/json"
	"time"

	"urlshortener/internal/types"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shorturl:"

type Cache struct {
	rdb *redis.Client
}

func ConnectRedis(url, password string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     url,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return New(rdb), nil
}

func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Get returns redis.Nil when the hash is not cached.
func (c *Cache) Get(ctx context.Context, hash string) (*types.ShortURL, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+hash).Bytes()
	if err != nil {
		return nil, err
	}
	var s types.ShortURL
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Cache) Set(ctx context.Context, s *types.ShortURL, expiration time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPrefix+s.Hash, raw, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, hash string) error {
	return c.rdb.Del(ctx, keyPrefix+hash).Err()
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
