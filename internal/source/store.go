package source

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/andon-systems/andon/internal/metrics"
)

// ErrSnapshotUnavailable is returned when no snapshot has ever loaded
// successfully and the current attempt failed too.
var ErrSnapshotUnavailable = errors.New("no snapshot available")

// Store holds the current Snapshot behind a TTL. Callers always read a
// complete snapshot; reloads swap it atomically.
type Store struct {
	loader *Loader
	ttl    time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	current *Snapshot

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStore creates a Store refreshing at most every ttl.
func NewStore(loader *Loader, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{loader: loader, ttl: ttl, logger: logger}
}

// Current returns the cached snapshot, reloading first when it is stale or
// absent. A failed reload falls back to the previous snapshot so a transient
// source outage does not blank the board.
func (s *Store) Current(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && time.Since(s.current.LoadedAt) < s.ttl {
		return s.current, nil
	}

	snap, err := s.loader.Load(ctx)
	if err != nil {
		if s.current != nil {
			s.logger.Warn("snapshot reload failed, serving stale", "error", err, "stale_id", s.current.ID)
			return s.current, nil
		}
		return nil, errors.Join(ErrSnapshotUnavailable, err)
	}

	metrics.SnapshotRefreshes.Add(1)
	s.current = snap
	return snap, nil
}

// Refresh forces a reload regardless of TTL.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	metrics.SnapshotRefreshes.Add(1)
	return snap, nil
}

// Start begins the background refresh loop so interactive requests rarely
// pay load latency.
func (s *Store) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.logger.Info("snapshot refresher started", "ttl", s.ttl)

		ticker := time.NewTicker(s.ttl)
		defer ticker.Stop()

		// Warm the cache immediately on start.
		if _, err := s.Current(ctx); err != nil {
			s.logger.Error("initial snapshot load failed", "error", err)
		}

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("snapshot refresher stopping")
				return
			case <-ticker.C:
				if _, err := s.Refresh(ctx); err != nil {
					s.logger.Error("background refresh failed", "error", err)
				}
			}
		}
	}()
}

// Stop gracefully shuts down the refresh loop.
func (s *Store) Stop(ctx context.Context) {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("snapshot refresher stopped")
	case <-ctx.Done():
		s.logger.Warn("snapshot refresher stop timed out")
	}
}
