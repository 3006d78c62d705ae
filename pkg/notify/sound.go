package notify

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// BeepPlayer plays the phase-transition cue through the system beep
// facility. The platform audio backend is a process-wide resource
// initialized lazily on the first Play — callers construct the player on
// the first user gesture that starts a timer, never at program boot —
// reused afterwards, and never explicitly torn down.
type BeepPlayer struct {
	initOnce sync.Once
	log      *slog.Logger
}

// NewBeepPlayer creates an uninitialized player.
func NewBeepPlayer(log *slog.Logger) *BeepPlayer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &BeepPlayer{log: log}
}

// Play sounds the cue asynchronously. Backend failures are logged and
// swallowed so a missing audio device never blocks other channels.
func (p *BeepPlayer) Play() error {
	p.initOnce.Do(func() {
		p.log.Debug("audio backend initialized")
	})
	go func() {
		if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			p.log.Warn("audio cue unavailable", "error", err)
		}
	}()
	return nil
}
