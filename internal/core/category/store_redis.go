// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taibuivan/bluevelvet/internal/platform/constants"
)

// DefaultSnapshotTTL is how long a cached snapshot stays valid.
const DefaultSnapshotTTL = 5 * time.Minute

// RedisSnapshotCache keeps the collection in Redis under one key, wrapped
// in the {"content": [...]} envelope.
type RedisSnapshotCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisSnapshotCache creates a [SnapshotCache] backed by client.
func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSnapshotCache {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &RedisSnapshotCache{
		client: client,
		key:    constants.RedisKeyCategorySnapshot,
		ttl:    ttl,
		logger: logger,
	}
}

// Load returns the cached collection. Misses and unreadable entries both
// report false.
func (cache *RedisSnapshotCache) Load(context context.Context) ([]Category, bool) {
	data, err := cache.client.Get(context, cache.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		cache.logger.Warn("category_cache_get_failed", slog.Any("error", err))
		return nil, false
	}

	records, shape, err := Decode(data)
	if err != nil || shape == ShapeUnknown {
		cache.logger.Warn("category_cache_corrupt",
			slog.String("shape", string(shape)),
			slog.Any("error", err),
		)
		return nil, false
	}

	cache.logger.Debug("category_cache_hit", slog.Int("count", len(records)))
	return records, true
}

// Store replaces the cached collection.
func (cache *RedisSnapshotCache) Store(context context.Context, records []Category) {
	data, err := json.Marshal(envelope{Content: &records})
	if err != nil {
		cache.logger.Warn("category_cache_encode_failed", slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, cache.key, data, cache.ttl).Err(); err != nil {
		cache.logger.Warn("category_cache_set_failed", slog.Any("error", err))
	}
}

// Invalidate drops the cached collection.
func (cache *RedisSnapshotCache) Invalidate(context context.Context) {
	if err := cache.client.Del(context, cache.key).Err(); err != nil {
		cache.logger.Warn("category_cache_invalidate_failed", slog.Any("error", err))
	}
}
