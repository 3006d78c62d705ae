// Package app provides the core Bubbletea application framework for
// pattern-timer. It defines the event types, root model, view interface,
// and route navigation that form the Elm-architecture skeleton. The root
// model owns the timer engine and drives it from the tick loop, so the
// engine keeps running whichever view is on screen.
package app

import (
	"time"

	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/notify"
)

// TickEvent is sent by the render ticker. The model measures the real
// wall-clock delta since the previous tick rather than trusting the
// nominal cadence, so a suspended terminal catches up in one tick.
type TickEvent struct {
	Time time.Time
}

// NavigateEvent requests a route change. Views emit it as a Cmd; for
// example the pattern catalog navigates to the timer after a selection.
type NavigateEvent struct {
	Route Route
}

// EngineEvent broadcasts one engine event to the views, together with
// the in-view highlight when the timer view was active at dispatch time.
type EngineEvent struct {
	Event     engine.Event
	Highlight *notify.Highlight
}

// PrefsChangedEvent signals that a view mutated the shared preference
// state; the model persists it.
type PrefsChangedEvent struct{}

// StatusEvent puts a transient message in the status bar. Views use it
// to surface non-fatal operation errors.
type StatusEvent struct {
	Message string
}
