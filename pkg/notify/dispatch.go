// Package notify fans engine events out to the four notification
// channels: desktop toast, audio cue, in-view highlight, and the return
// banner shown outside the timer view. Channel failures are downgraded
// silently; nothing in this package may block or fail the engine.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
)

// Permission mirrors the desktop-notification permission state persisted
// in the preference store.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Prefs are the user preferences consulted on every dispatch.
type Prefs struct {
	NotificationsEnabled bool
	SoundEnabled         bool
	Permission           Permission
}

// Soft-timer lifetimes. Expiry never affects engine state.
const (
	HighlightDuration = 3 * time.Second
	BannerDuration    = 10 * time.Second
)

// Toast is a desktop notification payload.
type Toast struct {
	Title string
	Body  string
}

// Highlight asks the timer view to flash the display and swap the phase
// instruction for the transition message.
type Highlight struct {
	Message  string
	Duration time.Duration
}

// Banner is the dismissible re-entry notice shown outside the timer
// view. It carries enough state to rebuild or reposition the engine when
// the user returns.
type Banner struct {
	PatternID string
	NextPhase int
	Completed bool
	Duration  time.Duration
}

// Decision is everything one event produced. Exactly one of Highlight
// and Banner is set; Toast and Played are independent of both.
type Decision struct {
	Toast     *Toast
	Played    bool
	Highlight *Highlight
	Banner    *Banner
}

// Toaster pushes a desktop toast. Implementations must not block.
type Toaster interface {
	Push(Toast) error
}

// Player plays the audio cue. Implementations must not block.
type Player interface {
	Play() error
}

// Dispatcher translates engine events into channel actions. Toaster and
// Player may be nil when the capability is absent; the corresponding
// channel is then skipped without error.
type Dispatcher struct {
	toaster Toaster
	player  Player
	log     *slog.Logger
}

// New creates a Dispatcher. A nil logger discards.
func New(toaster Toaster, player Player, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{toaster: toaster, player: player, log: log}
}

// Dispatch routes one engine event. timerViewActive selects between the
// in-view highlight and the return banner; toast and sound fire
// independently based on prefs. A toast without granted permission is
// silently dropped, and a failing toaster or player is logged and
// ignored so the remaining channels still fire.
func (d *Dispatcher) Dispatch(ev engine.Event, timerViewActive bool, prefs Prefs) Decision {
	var dec Decision

	toast, highlightMsg, banner := describe(ev)

	if prefs.NotificationsEnabled && prefs.Permission == PermissionGranted && d.toaster != nil {
		if err := d.toaster.Push(toast); err != nil {
			d.log.Warn("desktop toast failed", "error", err)
		} else {
			dec.Toast = &toast
		}
	}

	if prefs.SoundEnabled && d.player != nil {
		if err := d.player.Play(); err != nil {
			d.log.Warn("audio cue failed", "error", err)
		} else {
			dec.Played = true
		}
	}

	if timerViewActive {
		dec.Highlight = &Highlight{Message: highlightMsg, Duration: HighlightDuration}
	} else {
		banner.Duration = BannerDuration
		dec.Banner = &banner
	}

	return dec
}

// describe builds the channel payloads for an event.
func describe(ev engine.Event) (Toast, string, Banner) {
	switch ev := ev.(type) {
	case engine.PhaseCompleted:
		msg := ev.Message
		if msg == "" {
			msg = "Phase complete"
		}
		toast := Toast{
			Title: "Phase complete",
			Body:  msg,
		}
		banner := Banner{PatternID: ev.PatternID, NextPhase: ev.NextPhase}
		return toast, msg, banner

	case engine.TimerFinished:
		toast := Toast{Title: "Timer finished", Body: "Your timer is done"}
		banner := Banner{PatternID: ev.PatternID, Completed: true}
		return toast, "Timer finished", banner
	}

	// Unknown event kinds still produce something visible.
	return Toast{Title: "Timer", Body: fmt.Sprintf("%v", ev)}, "Timer", Banner{}
}
