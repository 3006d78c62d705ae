// Package engine implements the phase-sequenced interval timer: a state
// machine over three timer modes fed by measured one-second ticks. The
// engine is single-threaded by design; the Bubbletea update loop is its
// scheduler, so no locking is needed and every operation runs to
// completion before the next message is processed.
package engine

import (
	"fmt"

	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
)

// Status is the engine run state.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// ModeTag identifies the active timer mode.
type ModeTag string

const (
	// ModePreset counts down through the phases of a selected pattern.
	ModePreset ModeTag = "preset-countdown"
	// ModeCountdown counts down from a user-entered target.
	ModeCountdown ModeTag = "custom-countdown"
	// ModeCountUp counts up from zero with no bound.
	ModeCountUp ModeTag = "custom-count-up"
)

// MaxTargetSeconds is the largest custom countdown target: 99h59m59s.
const MaxTargetSeconds = 99*3600 + 59*60 + 59

// Engine owns the current mode, status, and position of the timer. It is
// not safe for concurrent use; all calls must come from one goroutine.
type Engine struct {
	status Status
	mode   ModeTag

	// Preset countdown state. hasPattern is false until SetPattern
	// succeeds; a preset mode without a pattern cannot be started.
	pat        pattern.Pattern
	hasPattern bool
	phaseIndex int
	remaining  int

	// Custom countdown state.
	target        int
	remainingDown int

	// Count-up state.
	elapsed int
}

// New creates an idle engine with no pattern selected.
func New() *Engine {
	return &Engine{status: StatusIdle, mode: ModePreset}
}

// Status returns the current run state.
func (e *Engine) Status() Status { return e.status }

// Mode returns the active mode tag.
func (e *Engine) Mode() ModeTag { return e.mode }

// SetPattern selects a pattern by id and rewinds to its first phase.
// Allowed whenever the engine is not running.
func (e *Engine) SetPattern(id string) error {
	if e.status == StatusRunning {
		return fmt.Errorf("set pattern %q: %w", id, ErrInvalidState)
	}
	p, ok := pattern.Get(id)
	if !ok {
		return fmt.Errorf("set pattern %q: %w", id, ErrNotFound)
	}
	e.pat = p
	e.hasPattern = true
	e.phaseIndex, e.remaining = pattern.InitPhase(p)
	e.mode = ModePreset
	e.status = StatusIdle
	return nil
}

// SetCustomCountdown switches to custom countdown mode with the given
// target in seconds. A zero target is legal but not startable.
func (e *Engine) SetCustomCountdown(target int) error {
	if e.status == StatusRunning {
		return fmt.Errorf("set countdown: %w", ErrInvalidState)
	}
	if target < 0 || target > MaxTargetSeconds {
		return fmt.Errorf("set countdown target %d: %w", target, ErrInvalidArgument)
	}
	e.mode = ModeCountdown
	e.target = target
	e.remainingDown = target
	e.status = StatusIdle
	return nil
}

// SetCountUp switches to count-up mode starting at zero.
func (e *Engine) SetCountUp() error {
	if e.status == StatusRunning {
		return fmt.Errorf("set count-up: %w", ErrInvalidState)
	}
	e.mode = ModeCountUp
	e.elapsed = 0
	e.status = StatusIdle
	return nil
}

// ToggleDirection flips between a zero custom countdown and count-up.
// Idle only.
func (e *Engine) ToggleDirection() error {
	if e.status != StatusIdle {
		return fmt.Errorf("toggle direction: %w", ErrInvalidState)
	}
	if e.mode == ModeCountUp {
		return e.SetCustomCountdown(0)
	}
	return e.SetCountUp()
}

// Start begins (or resumes) the run. The current mode must be startable:
// a preset needs a selected pattern, a custom countdown needs a non-zero
// target. A completed run must be Reset before it can start again.
func (e *Engine) Start() error {
	if e.status != StatusIdle && e.status != StatusPaused {
		return fmt.Errorf("start: %w", ErrInvalidState)
	}
	switch e.mode {
	case ModePreset:
		if !e.hasPattern {
			return fmt.Errorf("start: no pattern selected: %w", ErrInvalidState)
		}
	case ModeCountdown:
		if e.target == 0 {
			return fmt.Errorf("start: %w", ErrNoTimeSet)
		}
	}
	e.status = StatusRunning
	return nil
}

// Pause freezes the run. Remaining and elapsed values hold their current
// positions; subsequent ticks are suppressed until Start.
func (e *Engine) Pause() error {
	if e.status != StatusRunning {
		return fmt.Errorf("pause: %w", ErrInvalidState)
	}
	e.status = StatusPaused
	return nil
}

// Reset rewinds the current mode to its starting position and returns
// the engine to idle. Reset is idempotent in every mode and status.
func (e *Engine) Reset() {
	switch e.mode {
	case ModePreset:
		if e.hasPattern {
			e.phaseIndex, e.remaining = pattern.InitPhase(e.pat)
		}
	case ModeCountdown:
		e.remainingDown = e.target
	case ModeCountUp:
		e.elapsed = 0
	}
	e.status = StatusIdle
}

// JumpToPhase moves a non-running preset to the start of phase i.
func (e *Engine) JumpToPhase(i int) error {
	if e.mode != ModePreset || !e.hasPattern {
		return fmt.Errorf("jump to phase %d: %w", i, ErrInvalidState)
	}
	if e.status == StatusRunning {
		return fmt.Errorf("jump to phase %d: %w", i, ErrInvalidState)
	}
	idx, rem, err := pattern.Jump(i, e.pat)
	if err != nil {
		return fmt.Errorf("jump to phase %d: %w", i, ErrInvalidArgument)
	}
	e.phaseIndex = idx
	e.remaining = rem
	return nil
}

// Tick advances the run by delta measured seconds and returns the events
// that fired, in order. Outside the running status ticks are ignored, so
// a Pause issued mid-update suppresses everything after the in-progress
// tick. Negative deltas clamp to zero.
func (e *Engine) Tick(delta int) []Event {
	if e.status != StatusRunning || delta <= 0 {
		return nil
	}

	switch e.mode {
	case ModeCountUp:
		e.elapsed += delta
		return nil

	case ModeCountdown:
		e.remainingDown -= delta
		if e.remainingDown > 0 {
			return nil
		}
		e.remainingDown = 0
		e.status = StatusCompleted
		return []Event{TimerFinished{}}

	case ModePreset:
		return e.tickPreset(delta)
	}
	return nil
}

// tickPreset subtracts delta from the current phase and walks phase
// boundaries until remaining time is positive or the run completes. The
// overshoot past each boundary carries into the next phase, so a single
// late tick after a long suspension catches up to exactly the right
// position and emits one PhaseCompleted per phase actually finished.
func (e *Engine) tickPreset(delta int) []Event {
	var events []Event

	e.remaining -= delta
	for e.remaining <= 0 {
		over := -e.remaining
		cur := e.phaseIndex
		tr := pattern.Advance(cur, e.pat)

		ev := PhaseCompleted{
			PatternID:  e.pat.ID,
			PhaseIndex: cur,
			NextPhase:  tr.Next,
			Last:       tr.Last,
		}
		if !tr.Completed {
			ev.Message = e.pat.Phases[tr.Next].Message
		}
		events = append(events, ev)

		if tr.Completed {
			e.remaining = 0
			e.status = StatusCompleted
			events = append(events, TimerFinished{PatternID: e.pat.ID})
			return events
		}

		e.phaseIndex = tr.Next
		e.remaining = e.pat.Phases[tr.Next].Duration - over
	}
	return events
}

// Snapshot is the read-only projection the views render from.
type Snapshot struct {
	Status Status
	Mode   ModeTag

	// Preset fields. PatternID is empty when no pattern is selected.
	PatternID     string
	PatternName   string
	PhaseIndex    int
	PhaseCount    int
	PhaseMessage  string
	PhaseKind     pattern.Kind
	PhaseDuration int
	Repeat        bool
	Visualization string

	Remaining int // preset or custom countdown
	Target    int // custom countdown
	Elapsed   int // count-up

	// Startable mirrors the Start precondition so views can disable the
	// start control instead of surfacing ErrNoTimeSet.
	Startable bool
}

// Snapshot returns the current projection.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{Status: e.status, Mode: e.mode}
	switch e.mode {
	case ModePreset:
		if e.hasPattern {
			ph := e.pat.Phases[e.phaseIndex]
			s.PatternID = e.pat.ID
			s.PatternName = e.pat.Name
			s.PhaseIndex = e.phaseIndex
			s.PhaseCount = len(e.pat.Phases)
			s.PhaseMessage = ph.Message
			s.PhaseKind = ph.Kind
			s.PhaseDuration = ph.Duration
			s.Repeat = e.pat.Repeat
			s.Visualization = e.pat.Visualization
			s.Remaining = e.remaining
			s.Startable = true
		}
	case ModeCountdown:
		s.Remaining = e.remainingDown
		s.Target = e.target
		s.Startable = e.target > 0
	case ModeCountUp:
		s.Elapsed = e.elapsed
		s.Startable = true
	}
	if e.status == StatusRunning || e.status == StatusCompleted {
		s.Startable = false
	}
	return s
}
