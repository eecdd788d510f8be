package querycache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/kickoff/pkg/querycache"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// counter returns a fetcher yielding 1, 2, 3... and the call count.
func counter() (querycache.Fetcher, *atomic.Int32) {
	var n atomic.Int32
	return func(context.Context) (any, error) {
		return int(n.Add(1)), nil
	}, &n
}

func TestKey_Equality(t *testing.T) {
	t.Parallel()

	type dateRange struct {
		From string `json:"from"`
		To   string `json:"to"`
	}

	require.Equal(t,
		querycache.Key{"fields", "detail", 42}.String(),
		querycache.Key{"fields", "detail", int64(42)}.String())
	require.Equal(t,
		querycache.Key{"bookings", dateRange{"2025-06-01", "2025-06-07"}}.String(),
		querycache.Key{"bookings", map[string]string{"to": "2025-06-07", "from": "2025-06-01"}}.String())
	require.NotEqual(t,
		querycache.Key{"fields", 42}.String(),
		querycache.Key{"fields", "42"}.String())
	require.Equal(t, `["teams","list"]`, querycache.Key{"teams", "list"}.String())
}

func TestKey_AppendDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := make(querycache.Key, 1, 4)
	base[0] = "teams"
	a := base.Append("detail", 1)
	b := base.Append("list")

	require.Equal(t, querycache.Key{"teams", "detail", 1}, a)
	require.Equal(t, querycache.Key{"teams", "list"}, b)
	require.Len(t, base, 1)
}

func TestStore_ReadCachesWhileFresh(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := querycache.New(querycache.Config{Now: clock.Now})
	fetch, calls := counter()
	key := querycache.Key{"teams", "detail", 1}
	ctx := context.Background()

	res := s.Read(ctx, key, fetch, querycache.ReadOptions{})
	require.NoError(t, res.Err)
	require.Equal(t, 1, res.Data)
	require.False(t, res.Cached)

	clock.Advance(4 * time.Minute)
	res = s.Read(ctx, key, fetch, querycache.ReadOptions{})
	require.Equal(t, 1, res.Data)
	require.True(t, res.Cached)
	require.Equal(t, int32(1), calls.Load())

	clock.Advance(2 * time.Minute)
	res = s.Read(ctx, key, fetch, querycache.ReadOptions{})
	require.Equal(t, 2, res.Data)
	require.False(t, res.Cached)
}

func TestStore_ReadStaleTimeOverride(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := querycache.New(querycache.Config{Now: clock.Now})
	fetch, calls := counter()
	key := querycache.Key{"notifications", "unread"}
	opts := querycache.ReadOptions{StaleTime: 30 * time.Second}

	s.Read(context.Background(), key, fetch, opts)
	clock.Advance(31 * time.Second)
	s.Read(context.Background(), key, fetch, opts)
	require.Equal(t, int32(2), calls.Load())
}

func TestStore_DisabledRead(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	fetch, calls := counter()

	res := s.Read(context.Background(), querycache.Key{"teams", "detail", 0}, fetch, querycache.ReadOptions{Disabled: true})
	require.True(t, res.Disabled)
	require.Nil(t, res.Data)
	require.NoError(t, res.Err)
	require.Zero(t, calls.Load())
	require.Zero(t, s.Len())
}

func TestStore_ConcurrentReadsShareFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "roster", nil
	}
	key := querycache.Key{"roster", 7}

	const readers = 8
	var started, done sync.WaitGroup
	results := make([]querycache.Result, readers)
	for i := range readers {
		started.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			started.Done()
			results[i] = s.Read(context.Background(), key, fetch, querycache.ReadOptions{})
		}()
	}
	started.Wait()
	require.Eventually(t, func() bool { return s.IsFetching(key) }, time.Second, time.Millisecond)
	// Give the stragglers time to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, "roster", r.Data)
	}
}

func TestStore_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"fields", "detail", 3}
	boom := errors.New("boom")
	ctx := context.Background()

	res := s.Read(ctx, key, func(context.Context) (any, error) { return nil, boom }, querycache.ReadOptions{})
	require.ErrorIs(t, res.Err, boom)
	require.Nil(t, res.Data)
	require.Zero(t, s.Len())

	res = s.Read(ctx, key, func(context.Context) (any, error) { return "field", nil }, querycache.ReadOptions{})
	require.NoError(t, res.Err)
	require.Equal(t, "field", res.Data)
}

func TestStore_ErrorKeepsPreviousData(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"fields", "detail", 3}
	ctx := context.Background()

	s.Read(ctx, key, func(context.Context) (any, error) { return "v1", nil }, querycache.ReadOptions{})
	_, err := s.InvalidatePrefix(querycache.Key{"fields"})
	require.NoError(t, err)

	boom := errors.New("offline")
	res := s.Read(ctx, key, func(context.Context) (any, error) { return nil, boom }, querycache.ReadOptions{})
	require.ErrorIs(t, res.Err, boom)
	require.Equal(t, "v1", res.Data)
}

func TestStore_InvalidatePrefixScope(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	ctx := context.Background()

	keys := []querycache.Key{
		{"bookings", "calendar", 1, "2025-06"},
		{"bookings", "pending"},
		{"fields", "detail", 1},
		{"bookingsx"},
	}
	for _, k := range keys {
		require.NoError(t, s.Write(k, "v"))
	}

	n, err := s.InvalidatePrefix(querycache.Key{"bookings"})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	for _, tt := range []struct {
		key   querycache.Key
		stale bool
	}{
		{keys[0], true},
		{keys[1], true},
		{keys[2], false},
		{keys[3], false},
	} {
		e, ok := s.Get(tt.key)
		require.True(t, ok)
		require.Equal(t, tt.stale, e.Stale, "key %s", tt.key)
	}

	fetch, calls := counter()
	s.Read(ctx, keys[1], fetch, querycache.ReadOptions{})
	s.Read(ctx, keys[2], fetch, querycache.ReadOptions{})
	require.Equal(t, int32(1), calls.Load())
}

func TestStore_InvalidateDuringFetchStoresStale(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"matches", "detail", 5}
	entered := make(chan struct{})
	release := make(chan struct{})

	go func() {
		<-entered
		_, _ = s.InvalidatePrefix(querycache.Key{"matches"})
		close(release)
	}()

	res := s.Read(context.Background(), key, func(context.Context) (any, error) {
		close(entered)
		<-release
		return "old", nil
	}, querycache.ReadOptions{})
	require.Equal(t, "old", res.Data)

	e, ok := s.Get(key)
	require.True(t, ok)
	require.True(t, e.Stale)

	fetch, calls := counter()
	s.Read(context.Background(), key, fetch, querycache.ReadOptions{})
	require.Equal(t, int32(1), calls.Load())
}

// blockedRead starts a Read whose fetcher returns value once release is
// closed. It returns after the fetcher has started.
func blockedRead(s *querycache.Store, key querycache.Key, value any) (release chan struct{}, done <-chan querycache.Result) {
	entered := make(chan struct{})
	release = make(chan struct{})
	out := make(chan querycache.Result, 1)
	go func() {
		out <- s.Read(context.Background(), key, func(context.Context) (any, error) {
			close(entered)
			<-release
			return value, nil
		}, querycache.ReadOptions{})
	}()
	<-entered
	return release, out
}

func TestStore_ReadAfterInvalidateStartsNewFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"bookings", "owner", "pending"}

	release, done := blockedRead(s, key, "before approve")

	_, err := s.InvalidatePrefix(querycache.Key{"bookings"})
	require.NoError(t, err)

	var called atomic.Bool
	res := s.Read(context.Background(), key, func(context.Context) (any, error) {
		called.Store(true)
		return "after approve", nil
	}, querycache.ReadOptions{})
	require.NoError(t, res.Err)
	require.True(t, called.Load())
	require.Equal(t, "after approve", res.Data)

	close(release)
	require.Equal(t, "before approve", (<-done).Data)

	e, ok := s.Get(key)
	require.True(t, ok)
	require.Equal(t, "after approve", e.Data)
	require.False(t, e.Stale)
}

func TestStore_WriteWinsOverRunningFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"fields", "detail", 3}

	release, done := blockedRead(s, key, "fetched")
	require.NoError(t, s.Write(key, "written"))
	close(release)
	<-done

	e, ok := s.Get(key)
	require.True(t, ok)
	require.Equal(t, "written", e.Data)
}

func TestStore_ClearDiscardsRunningFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"teams", "list"}

	release, done := blockedRead(s, key, "alice's teams")
	s.Clear()
	require.False(t, s.IsFetching(key))
	close(release)
	<-done

	require.Zero(t, s.Len())

	noToken := errors.New("401 no token")
	res := s.Read(context.Background(), key, func(context.Context) (any, error) {
		return nil, noToken
	}, querycache.ReadOptions{})
	require.ErrorIs(t, res.Err, noToken)
	require.Nil(t, res.Data)
}

func TestStore_WriteServesWithoutFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"fields", "detail", 9}
	require.NoError(t, s.Write(key, "written"))

	fetch, calls := counter()
	res := s.Read(context.Background(), key, fetch, querycache.ReadOptions{})
	require.True(t, res.Cached)
	require.Equal(t, "written", res.Data)
	require.Zero(t, calls.Load())
}

func TestStore_WriteRejectsUnencodableKey(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	require.Error(t, s.Write(querycache.Key{"bad", make(chan int)}, 1))
}

func TestStore_ClearAndRemove(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	require.NoError(t, s.Write(querycache.Key{"teams", "detail", 1}, 1))
	require.NoError(t, s.Write(querycache.Key{"teams", "list"}, 2))
	require.NoError(t, s.Write(querycache.Key{"auth", "me"}, 3))

	require.NoError(t, s.Remove(querycache.Key{"teams"}))
	require.Equal(t, 1, s.Len())

	s.Clear()
	require.Zero(t, s.Len())
	_, ok := s.Get(querycache.Key{"auth", "me"})
	require.False(t, ok)
}

func TestStore_CallerCancellationDoesNotAbortSharedFetch(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	key := querycache.Key{"search", "red"}
	release := make(chan struct{})
	var fetchCtxErr atomic.Value

	ctx, cancel := context.WithCancel(context.Background())
	fetch := func(fctx context.Context) (any, error) {
		<-release
		if err := fctx.Err(); err != nil {
			fetchCtxErr.Store(err)
		}
		return "results", nil
	}

	done := make(chan querycache.Result)
	go func() { done <- s.Read(ctx, key, fetch, querycache.ReadOptions{}) }()
	require.Eventually(t, func() bool { return s.IsFetching(key) }, time.Second, time.Millisecond)

	cancel()
	res := <-done
	require.ErrorIs(t, res.Err, context.Canceled)

	close(release)
	require.Eventually(t, func() bool {
		_, ok := s.Get(key)
		return ok
	}, time.Second, time.Millisecond)
	require.Nil(t, fetchCtxErr.Load())
}
