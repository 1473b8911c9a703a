package content

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// State is the resolution state of the cached document.
type State int

const (
	StatePending State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Snapshot is an immutable view of the last resolution.
// A zero FetchedAt means no fetch has completed yet.
type Snapshot struct {
	State     State
	Doc       model.Document
	Err       error
	FetchedAt time.Time
}

// Resolved reports whether at least one fetch has completed.
func (s Snapshot) Resolved() bool { return !s.FetchedAt.IsZero() }

// StoreConfig controls fetch timing.
type StoreConfig struct {
	// FetchTimeout bounds a single upstream fetch.
	FetchTimeout time.Duration
	// RefreshInterval enables stale-while-revalidate; zero means fetch exactly once.
	RefreshInterval time.Duration
}

const (
	defaultFetchTimeout = 10 * time.Second
	documentKey         = "document"
)

// Store caches the document and de-duplicates concurrent fetches.
type Store struct {
	src   Source
	cfg   StoreConfig
	log   zerolog.Logger
	now   func() time.Time
	group singleflight.Group

	mu   sync.RWMutex
	snap Snapshot
}

func NewStore(src Source, cfg StoreConfig, logger zerolog.Logger) *Store {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	l := logger.With().Str("module", "content").Str("component", "store").Logger()
	return &Store{src: src, cfg: cfg, log: l, now: time.Now}
}

// Snapshot returns the current state without triggering a fetch.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Get returns the cached snapshot. Before the first resolution it joins (or
// starts) the fetch and waits until it lands or ctx is done, whichever comes
// first; on ctx expiry the still-pending snapshot is returned. Once resolved,
// stale snapshots are served while a background refresh runs.
func (s *Store) Get(ctx context.Context) Snapshot {
	snap := s.Snapshot()
	if !snap.Resolved() {
		return s.wait(ctx)
	}
	if s.stale(snap) {
		s.group.DoChan(documentKey, s.fetch)
	}
	return snap
}

// Refresh forces a fetch, joining one already in flight, and waits for it
// within ctx.
func (s *Store) Refresh(ctx context.Context) Snapshot {
	return s.wait(ctx)
}

// Ping implements the readiness contract: nil only once a document has resolved.
func (s *Store) Ping(_ context.Context) error {
	snap := s.Snapshot()
	switch snap.State {
	case StateReady:
		return nil
	case StateFailed:
		return snap.Err
	default:
		return ErrPending
	}
}

func (s *Store) wait(ctx context.Context) Snapshot {
	ch := s.group.DoChan(documentKey, s.fetch)
	select {
	case res := <-ch:
		return res.Val.(Snapshot)
	case <-ctx.Done():
		return s.Snapshot()
	}
}

func (s *Store) stale(snap Snapshot) bool {
	return s.cfg.RefreshInterval > 0 && s.now().Sub(snap.FetchedAt) >= s.cfg.RefreshInterval
}

// fetch runs detached from any request context so a cancelled caller never
// aborts a fetch other callers are waiting on.
func (s *Store) fetch() (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.FetchTimeout)
	defer cancel()

	start := s.now()
	doc, err := s.src.Fetch(ctx)
	snap := Snapshot{FetchedAt: s.now()}
	switch {
	case err == nil:
		snap.State = StateReady
		snap.Doc = doc
	case errors.Is(err, ErrPending):
		snap.State = StatePending
	default:
		snap.State = StateFailed
		snap.Err = err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	ev := s.log.Info()
	if snap.State == StateFailed {
		ev = s.log.Error().Err(err)
	}
	ev.Str("state", snap.State.String()).Dur("took", snap.FetchedAt.Sub(start)).Msg("content resolved")
	return snap, nil
}
