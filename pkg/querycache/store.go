package querycache

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultStaleTime is how long a fetched result is served without refetching.
	DefaultStaleTime = 5 * time.Minute

	// DefaultGCTime is how long an entry nobody reads survives the janitor.
	DefaultGCTime = 5 * time.Minute
)

// Fetcher loads the data of one key.
type Fetcher func(ctx context.Context) (any, error)

// Entry is a snapshot of one cached result.
type Entry struct {
	Data      any
	FetchedAt time.Time
	Stale     bool
}

type entry struct {
	segs        []string
	data        any
	fetchedAt   time.Time
	invalidated bool
	lastRead    time.Time

	// seq orders writes; a fetch never replaces an entry written after it started.
	seq uint64
}

func (e *entry) isStale(now time.Time, staleTime time.Duration) bool {
	return e.invalidated || now.Sub(e.fetchedAt) > staleTime
}

// flight is a fetch in progress. An invalidation hitting it detaches it
// from the key, so later reads start a new fetch instead of joining it.
// A cleared flight hands its result to its waiters but never stores it.
type flight struct {
	segs        []string
	seq         uint64
	invalidated bool
	cleared     bool
}

// Config tunes a Store. Zero values use the defaults.
type Config struct {
	StaleTime time.Duration
	GCTime    time.Duration

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

// Store is the query cache. Reads of the same key share one in-flight
// fetch and one entry; mutations invalidate by key prefix.
type Store struct {
	staleTime time.Duration
	gcTime    time.Duration
	now       func() time.Time

	mu      sync.Mutex
	seq     uint64
	entries map[string]*entry
	flights map[string]*flight
	group   singleflight.Group

	janitor *janitor
}

// New creates an empty Store.
func New(cfg Config) *Store {
	s := &Store{
		staleTime: cfg.StaleTime,
		gcTime:    cfg.GCTime,
		now:       cfg.Now,
		entries:   make(map[string]*entry),
		flights:   make(map[string]*flight),
	}
	if s.staleTime <= 0 {
		s.staleTime = DefaultStaleTime
	}
	if s.gcTime <= 0 {
		s.gcTime = DefaultGCTime
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ReadOptions tweak a single Read.
type ReadOptions struct {
	// Disabled skips the read entirely: no fetch, no cache lookup.
	Disabled bool

	// StaleTime overrides the store default for this read.
	StaleTime time.Duration
}

// Result is the outcome of a Read.
type Result struct {
	Data      any
	Err       error
	Disabled  bool
	FetchedAt time.Time

	// Cached is true when Data was served without calling the fetcher.
	Cached bool
}

// Read returns the cached value of key when it is fresh, otherwise fetches
// it. Concurrent reads of an equal key share one fetch. The shared fetch is
// detached from the caller's cancellation; a caller whose ctx ends stops
// waiting without affecting the others. Fetch errors are not cached and the
// previous data, if any, is returned alongside the error.
func (s *Store) Read(ctx context.Context, key Key, fetch Fetcher, opts ReadOptions) Result {
	if opts.Disabled {
		return Result{Disabled: true}
	}

	segs, err := key.encode()
	if err != nil {
		return Result{Err: err}
	}
	id := joinSegments(segs)

	staleTime := opts.StaleTime
	if staleTime <= 0 {
		staleTime = s.staleTime
	}

	s.mu.Lock()
	now := s.now()
	e, ok := s.entries[id]
	if ok {
		e.lastRead = now
		if !e.isStale(now, staleTime) {
			res := Result{Data: e.data, FetchedAt: e.fetchedAt, Cached: true}
			s.mu.Unlock()
			return res
		}
	}
	s.mu.Unlock()

	ch := s.group.DoChan(id, func() (any, error) {
		return s.fetch(context.WithoutCancel(ctx), id, segs, fetch)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			prev := s.peek(id)
			return Result{Data: prev.Data, FetchedAt: prev.FetchedAt, Err: res.Err}
		}
		snap := res.Val.(Entry)
		return Result{Data: snap.Data, FetchedAt: snap.FetchedAt}
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}

func (s *Store) fetch(ctx context.Context, id string, segs []string, fetch Fetcher) (Entry, error) {
	s.mu.Lock()
	s.seq++
	f := &flight{segs: segs, seq: s.seq}
	s.flights[id] = f
	s.mu.Unlock()

	data, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flights[id] == f {
		delete(s.flights, id)
	}

	if err != nil {
		slogx.FromContext(ctx).Debug("query fetch failed", "key", id, "error", err)
		return Entry{}, err
	}

	now := s.now()
	snap := Entry{Data: data, FetchedAt: now, Stale: f.invalidated}
	if f.cleared {
		return snap, nil
	}
	if e, ok := s.entries[id]; ok && e.seq > f.seq {
		slogx.FromContext(ctx).Debug("query result superseded", "key", id)
		return snap, nil
	}
	s.entries[id] = &entry{
		segs:        segs,
		data:        data,
		fetchedAt:   now,
		invalidated: f.invalidated,
		lastRead:    now,
		seq:         f.seq,
	}
	return snap, nil
}

// detach removes a running fetch from its key. Waiters already joined keep
// waiting on it; the next read of the key starts a new fetch.
func (s *Store) detach(id string, f *flight) {
	f.invalidated = true
	delete(s.flights, id)
	s.group.Forget(id)
}

func (s *Store) peek(id string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		return Entry{Data: e.data, FetchedAt: e.fetchedAt}
	}
	return Entry{}
}

// Get returns the entry of key without fetching.
func (s *Store) Get(key Key) (Entry, bool) {
	segs, err := key.encode()
	if err != nil {
		return Entry{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[joinSegments(segs)]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Data:      e.data,
		FetchedAt: e.fetchedAt,
		Stale:     e.isStale(s.now(), s.staleTime),
	}, true
}

// Write overwrites the entry of key with value and marks it fresh, saving
// the refetch a mutation would otherwise cause.
func (s *Store) Write(key Key, value any) error {
	segs, err := key.encode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.seq++
	s.entries[joinSegments(segs)] = &entry{
		segs:      segs,
		data:      value,
		fetchedAt: now,
		lastRead:  now,
		seq:       s.seq,
	}
	return nil
}

// InvalidatePrefix marks every entry whose key starts with prefix as stale,
// so the next read of it refetches. Fetches already running under the prefix
// are detached: reads issued afterwards start a new fetch, and the old result
// is stored as stale only if nothing newer was written meanwhile. Entries
// outside the prefix are untouched.
// It returns the number of entries marked.
func (s *Store) InvalidatePrefix(prefix Key) (int, error) {
	psegs, err := prefix.encode()
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		if hasPrefix(e.segs, psegs) {
			e.invalidated = true
			n++
		}
	}
	for id, f := range s.flights {
		if hasPrefix(f.segs, psegs) {
			s.detach(id, f)
		}
	}
	return n, nil
}

// Remove deletes every entry whose key starts with prefix.
func (s *Store) Remove(prefix Key) error {
	psegs, err := prefix.encode()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if hasPrefix(e.segs, psegs) {
			delete(s.entries, id)
		}
	}
	return nil
}

// Clear drops every entry. Running fetches are detached and their results
// are never stored, so nothing read before Clear reappears after it.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
	for id, f := range s.flights {
		f.cleared = true
		s.detach(id, f)
	}
}

// IsFetching reports whether a fetch for key is in progress.
func (s *Store) IsFetching(key Key) bool {
	segs, err := key.encode()
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.flights[joinSegments(segs)]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// collect evicts entries not read for longer than the GC time.
func (s *Store) collect() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if now.Sub(e.lastRead) > s.gcTime {
			delete(s.entries, id)
			n++
		}
	}
	return n
}
