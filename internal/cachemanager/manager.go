// Package cachemanager holds typed caches for rendered output that is slow
// to produce but stable for a given input, such as the help screen at a
// given terminal width.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values of V under keys of K, each with its own TTL.
// Implementations must be safe for concurrent use.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}

// Stats counts lookups served by a ReadThroughCache.
type Stats struct {
	Hits     int64
	Misses   int64
	Failures int64
}
