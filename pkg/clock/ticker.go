package clock

import (
	"sync"
	"time"
)

// Ticker delivers measured elapsed seconds to a callback at a nominal
// cadence. It exists for embedding the engine outside a Bubbletea
// program; the TUI drives the same DeltaMeter from its own tick loop
// instead.
type Ticker struct {
	clk      Clock
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker creates a Ticker reading from clk at the given interval. A
// non-positive interval defaults to one second.
func NewTicker(clk Clock, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{clk: clk, interval: interval}
}

// Start begins delivering measured deltas to fn from a new goroutine.
// The callback receives whole elapsed seconds per the DeltaMeter rules;
// zero deltas are suppressed. Starting an already running ticker is a
// no-op.
func (t *Ticker) Start(fn func(deltaSeconds int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop

	meter := NewDeltaMeter(t.clk)
	meter.Mark()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if d := meter.Tick(); d > 0 {
					fn(d)
				}
			}
		}
	}()
}

// Stop halts delivery. Stop is idempotent; a stopped ticker may be
// started again.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop == nil {
		return
	}
	close(t.stop)
	t.stop = nil
}
