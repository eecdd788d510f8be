package querycache

import (
	"log/slog"
	"time"
)

type janitor struct {
	interval time.Duration
	logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

// Start begins a background loop evicting entries that nobody has read for
// longer than the GC time. It is non-blocking; call Stop to end it. Calling
// Start on a running store is a no-op.
func (s *Store) Start(logger *slog.Logger) {
	s.mu.Lock()
	if s.janitor != nil {
		s.mu.Unlock()
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Sweep at half the GC time so an entry never outlives it by much.
	j := &janitor{
		interval: max(s.gcTime/2, time.Second),
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	s.janitor = j
	s.mu.Unlock()

	go s.runJanitor(j)
	logger.Debug("query cache janitor started", "interval", j.interval)
}

// Stop ends the janitor and waits for an in-progress sweep to finish.
func (s *Store) Stop() {
	s.mu.Lock()
	j := s.janitor
	s.janitor = nil
	s.mu.Unlock()

	if j == nil {
		return
	}
	close(j.stopCh)
	<-j.doneCh
	j.logger.Debug("query cache janitor stopped")
}

func (s *Store) runJanitor(j *janitor) {
	defer close(j.doneCh)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.collect(); n > 0 {
				j.logger.Debug("query cache entries evicted", "count", n)
			}
		case <-j.stopCh:
			return
		}
	}
}
