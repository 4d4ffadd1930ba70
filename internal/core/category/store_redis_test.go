// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bluevelvet/internal/core/category"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

/*
TestRedisSnapshotCache_Unreachable verifies that a down cache degrades to
misses instead of failing reads.
*/
func TestRedisSnapshotCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	cache := category.NewRedisSnapshotCache(client, time.Minute, quietLogger)
	ctx := context.Background()

	cache.Store(ctx, chain())
	records, hit := cache.Load(ctx)

	assert.False(t, hit)
	assert.Nil(t, records)
	cache.Invalidate(ctx)
}

/*
TestRedisSnapshotCache_RoundTrip runs against the server named by
TEST_REDIS_URL.
*/
func TestRedisSnapshotCache_RoundTrip(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	options, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(options)
	t.Cleanup(func() { _ = client.Close() })

	cache := category.NewRedisSnapshotCache(client, time.Minute, quietLogger)
	ctx := context.Background()
	t.Cleanup(func() { cache.Invalidate(ctx) })

	cache.Store(ctx, chain())

	records, hit := cache.Load(ctx)
	require.True(t, hit)
	assert.Equal(t, map[category.ID]category.ID{"A": "", "B": "A", "C": "B"}, parents(records))

	cache.Invalidate(ctx)
	_, hit = cache.Load(ctx)
	assert.False(t, hit)
}
