// Package async runs sync passes in the background on a fixed interval.
package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"log/slog"

	syncer "github.com/joseph-ayodele/spendsync/internal/sync"
)

type Scheduler struct {
	coordinator *syncer.Coordinator
	logger      *slog.Logger
	interval    time.Duration
	timeout     time.Duration

	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	stop   chan struct{}
	closed bool
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewScheduler starts the background loop immediately. Each tick triggers an
// incremental sync; a tick that lands while a manual run is in flight is
// skipped rather than queued.
func NewScheduler(coordinator *syncer.Coordinator, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		coordinator: coordinator,
		logger:      logger,
		interval:    15 * time.Minute,
		timeout:     3 * time.Minute,
		stop:        make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	s.start()
	return s
}

func (s *Scheduler) start() {
	s.once.Do(func() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.logger.Info("sync scheduler started", "interval", s.interval.String())

			ticker := time.NewTicker(s.interval)
			defer ticker.Stop()

			for {
				select {
				case <-s.stop:
					s.logger.Info("sync scheduler stopped")
					return
				case <-ticker.C:
					s.tick()
				}
			}
		}()
	})
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	summary, err := s.coordinator.Run(ctx, true)
	if err != nil {
		if errors.Is(err, syncer.ErrSyncInProgress) {
			s.logger.Debug("scheduled sync skipped, run already in flight")
			return
		}
		s.logger.Error("scheduled sync failed", "error", err)
		return
	}
	s.logger.Info("scheduled sync completed",
		"run_id", summary.RunID.String(),
		"saved", summary.Saved,
		"duplicates", summary.Duplicates)
}

// Shutdown stops the loop and waits for an in-flight tick to finish, bounded
// by the context deadline.
func (s *Scheduler) Shutdown(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.stop)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); s.wg.Wait() }()
	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("scheduler shutdown timed out", "error", ctx.Err())
	}
}
