package querycache_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/kickoff/pkg/querycache"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestJanitor_EvictsUnreadEntries(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := querycache.New(querycache.Config{GCTime: 2 * time.Second, Now: clock.Now})
	require.NoError(t, s.Write(querycache.Key{"teams", "list"}, "old"))

	s.Start(slogx.Discard())
	t.Cleanup(s.Stop)

	clock.Advance(3 * time.Second)
	require.NoError(t, s.Write(querycache.Key{"teams", "detail", 1}, "new"))

	require.Eventually(t, func() bool { return s.Len() == 1 }, 5*time.Second, 50*time.Millisecond)
	_, ok := s.Get(querycache.Key{"teams", "detail", 1})
	require.True(t, ok)
}

func TestJanitor_StartStopIdempotent(t *testing.T) {
	t.Parallel()

	s := querycache.New(querycache.Config{})
	s.Start(nil)
	s.Start(nil)
	s.Stop()
	s.Stop()
}
