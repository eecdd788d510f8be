// Package querycache is an in-memory query cache keyed by ordered segments.
//
// Reads are deduplicated per key and served from the cache while fresh
// (five minutes by default). Writes overwrite a single entry; invalidation
// works on key prefixes so a mutation can expire a whole namespace:
//
//	cache := querycache.New(querycache.Config{})
//	res := cache.Read(ctx, querycache.Key{"fields", "detail", 42}, fetch, querycache.ReadOptions{})
//	cache.InvalidatePrefix(querycache.Key{"fields"})
//
// Nothing is refetched proactively; a stale entry is refreshed by the next Read.
package querycache
