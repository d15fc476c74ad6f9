package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderKey string

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	cache.Set(ctx, "help:80", "rendered", DefaultExpiration)

	got, ok := cache.Get(ctx, "help:80")
	require.True(t, ok)
	require.Equal(t, "rendered", got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "help:80")

	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expired(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, int]("help", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()

	cache.Set(ctx, "k", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(ctx, "k")
	require.False(t, ok)
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, int]("help", DefaultExpiration, DefaultCleanupInterval)
	ctx := context.Background()
	cache.Set(ctx, "a", 1, DefaultExpiration)
	cache.Set(ctx, "b", 2, DefaultExpiration)
	cache.Set(ctx, "c", 3, DefaultExpiration)

	require.NoError(t, cache.Delete(ctx, "a", "b"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)
	_, ok = cache.Get(ctx, "c")
	require.True(t, ok)

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_ProducesOnceThenHits(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rt := NewReadThroughCache[renderKey, string, int](cache, func(_ context.Context, width int) (string, error) {
		calls++
		return "width-" + string(rune('0'+width%10)), nil
	}, false)

	v1, err := rt.Get(context.Background(), "help:8", 8, DefaultExpiration)
	require.NoError(t, err)
	v2, err := rt.Get(context.Background(), "help:8", 8, DefaultExpiration)
	require.NoError(t, err)

	require.Equal(t, "width-8", v1)
	require.Equal(t, v1, v2)
	require.Equal(t, 1, calls)
}

func TestReadThroughCache_SkipCache(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rt := NewReadThroughCache[renderKey, string, int](cache, func(_ context.Context, _ int) (string, error) {
		calls++
		return "v", nil
	}, true)

	_, _ = rt.Get(context.Background(), "k", 1, DefaultExpiration)
	_, _ = rt.Get(context.Background(), "k", 1, DefaultExpiration)

	require.Equal(t, 2, calls)
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_ErrorNotCached(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[renderKey, string, int](cache, func(_ context.Context, _ int) (string, error) {
		return "", context.Canceled
	}, false)

	_, err := rt.Get(context.Background(), "k", 1, DefaultExpiration)

	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_Stats(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	fail := true
	rt := NewReadThroughCache[renderKey, string, int](cache, func(_ context.Context, _ int) (string, error) {
		if fail {
			return "", context.DeadlineExceeded
		}
		return "ok", nil
	}, false)
	ctx := context.Background()

	_, _ = rt.Get(ctx, "k", 1, DefaultExpiration)
	fail = false
	_, _ = rt.Get(ctx, "k", 1, DefaultExpiration)
	_, _ = rt.Get(ctx, "k", 1, DefaultExpiration)

	require.Equal(t, Stats{Hits: 1, Misses: 2, Failures: 1}, rt.Stats())
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	cache := NewInMemoryCacheManager[renderKey, string]("help", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	rt := NewReadThroughCache[renderKey, string, int](cache, func(_ context.Context, _ int) (string, error) {
		calls++
		return "v", nil
	}, false)
	ctx := context.Background()

	_, _ = rt.Get(ctx, "k", 1, DefaultExpiration)
	require.NoError(t, rt.Invalidate(ctx, "k"))
	_, _ = rt.Get(ctx, "k", 1, DefaultExpiration)

	require.Equal(t, 2, calls)
}
