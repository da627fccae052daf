package ratelimit

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=ratelimit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/rafflemart/pkg/clock"
)

// Result describes the state of a key's window after an Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps fixed windows per key in process memory. A window opens
// on the first request for a key and lasts for the requested duration.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		clock:   clk,
	}
}

func (s *MemoryStore) Allow(_ context.Context, key string, limit int, d time.Duration) (Result, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(d)}
		s.windows[key] = w
	}
	if w.count >= limit {
		return Result{Allowed: false, Remaining: 0, ResetAt: w.resetAt}, nil
	}
	w.count++
	return Result{Allowed: true, Remaining: limit - w.count, ResetAt: w.resetAt}, nil
}

// Sweep drops expired windows and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, w := range s.windows {
		if !now.Before(w.resetAt) {
			delete(s.windows, key)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Start runs Sweep every interval until ctx is done.
func (s *MemoryStore) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					zap.L().Debug("rate limit windows evicted", zap.Int("count", n))
				}
			}
		}
	}()
}
