package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// Producer builds the value for input when the cache has nothing usable.
type Producer[V any, I any] func(ctx context.Context, input I) (V, error)

// ReadThroughCache fronts a CacheManager with a Producer. Values are produced
// on a miss and stored; failed productions are never stored.
type ReadThroughCache[K comparable, V any, I any] struct {
	store    CacheManager[K, V]
	produce  Producer[V, I]
	bypass   bool
	hits     atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64
}

// NewReadThroughCache wraps store with produce. With bypass set the store is
// never consulted and every Get produces a fresh value.
func NewReadThroughCache[K comparable, V any, I any](store CacheManager[K, V], produce Producer[V, I], bypass bool) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{store: store, produce: produce, bypass: bypass}
}

// Get returns the value stored under key, producing it from input first when
// needed. A produced value is kept for ttl.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if !r.bypass {
		if v, ok := r.store.Get(ctx, key); ok {
			r.hits.Add(1)
			return v, nil
		}
	}
	r.misses.Add(1)

	v, err := r.produce(ctx, input)
	if err != nil {
		r.failures.Add(1)
		return v, err
	}
	if !r.bypass {
		r.store.Set(ctx, key, v, ttl)
	}
	return v, nil
}

// Invalidate drops key so the next Get produces it again.
func (r *ReadThroughCache[K, V, I]) Invalidate(ctx context.Context, key K) error {
	return r.store.Delete(ctx, key)
}

// Stats returns the lookup counters since construction.
func (r *ReadThroughCache[K, V, I]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load(), Failures: r.failures.Load()}
}
