package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"urlshortener/internal/types"

	"github.com/redis/go-redis/v9"
)

// CachedStore reads short URLs through the cache and falls back to the store.
type CachedStore struct {
	store  URLStore
	cache  LinkCache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedStore(store URLStore, cache LinkCache, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{store: store, cache: cache, ttl: ttl, logger: logger}
}

func (c *CachedStore) FindByKey(ctx context.Context, hash string) (*types.ShortURL, error) {
	s, err := c.cache.Get(ctx, hash)
	if err == nil {
		return s, nil
	}

	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("Redis error", "error", err)
	}

	s, err = c.store.FindByKey(ctx, hash)
	if err != nil {
		return nil, err
	}

	if err = c.cache.Set(ctx, s, c.ttl); err != nil {
		c.logger.Warn("Failed to warm up cache", "error", err)
	}

	return s, nil
}

func (c *CachedStore) Save(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error) {
	saved, err := c.store.Save(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, saved, c.ttl); err != nil {
		c.logger.Warn("Failed to warm up cache", "error", err)
	}
	return saved, nil
}

func (c *CachedStore) Update(ctx context.Context, s *types.ShortURL) (*types.ShortURL, error) {
	updated, err := c.store.Update(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Delete(ctx, s.Hash); err != nil {
		c.logger.Warn("Failed to invalidate cache", "hash", s.Hash, "error", err)
	}
	return updated, nil
}

func (c *CachedStore) ListAll(ctx context.Context) ([]types.ShortURL, error) {
	return c.store.ListAll(ctx)
}
