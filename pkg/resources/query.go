package resources

import (
	"context"
	"time"

	"github.com/aussiebroadwan/kickoff/pkg/querycache"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
)

// QueryResult is the state of a cached read.
type QueryResult[T any] struct {
	Data      T
	Err       error
	FetchedAt time.Time

	// Disabled is true when a required parameter was missing and nothing
	// was fetched.
	Disabled bool

	// Cached is true when Data came from the cache without a fetch.
	Cached bool
}

// OK reports a successful, enabled read.
func (r QueryResult[T]) OK() bool { return !r.Disabled && r.Err == nil }

// query performs a cached read of key. When enabled is false the fetch is
// skipped entirely.
func query[T any](
	ctx context.Context,
	cache *querycache.Store,
	key querycache.Key,
	enabled bool,
	fetch func(ctx context.Context) (T, error),
) QueryResult[T] {
	res := cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}, querycache.ReadOptions{Disabled: !enabled})

	out := QueryResult[T]{
		Err:       res.Err,
		FetchedAt: res.FetchedAt,
		Disabled:  res.Disabled,
		Cached:    res.Cached,
	}
	if v, ok := res.Data.(T); ok {
		out.Data = v
	}
	return out
}

// invalidate marks every key under the given prefixes stale.
func invalidate(ctx context.Context, cache *querycache.Store, prefixes ...querycache.Key) {
	log := slogx.FromContext(ctx)
	for _, p := range prefixes {
		n, err := cache.InvalidatePrefix(p)
		if err != nil {
			log.Error("cache invalidation failed", "prefix", p.String(), "error", err)
			continue
		}
		log.Debug("cache invalidated", "prefix", p.String(), "entries", n)
	}
}

// write overwrites a single cache entry.
func write(ctx context.Context, cache *querycache.Store, key querycache.Key, value any) {
	if err := cache.Write(key, value); err != nil {
		slogx.FromContext(ctx).Error("cache write failed", "key", key.String(), "error", err)
	}
}
