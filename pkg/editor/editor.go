package editor

import "fmt"

// Segment identifies which part of the time the editor is writing into.
type Segment int

const (
	SegmentHours Segment = iota
	SegmentMinutes
	SegmentSeconds

	segmentCount
)

// String returns the segment name for display.
func (s Segment) String() string {
	switch s {
	case SegmentHours:
		return "hours"
	case SegmentMinutes:
		return "minutes"
	case SegmentSeconds:
		return "seconds"
	}
	return "unknown"
}

// Editor is a tiny interaction state machine for per-digit time entry.
// Digits shift into the active segment from the right and wrap on
// overflow, so typing never produces an out-of-range value. The editor
// holds a working copy only; the caller applies the confirmed total to
// the engine and discards the editor on cancel.
type Editor struct {
	active Segment
	time   SegmentedTime
}

// New creates an editor pre-loaded with the current target, starting on
// the hours segment.
func New(currentSeconds int) *Editor {
	return &Editor{active: SegmentHours, time: FromSeconds(currentSeconds)}
}

// Active returns the segment digits are currently entered into.
func (e *Editor) Active() Segment { return e.active }

// Time returns the working time value.
func (e *Editor) Time() SegmentedTime { return e.time }

// EnterDigit shifts d into the active segment: v' = (v*10 + d) mod (cap+1).
func (e *Editor) EnterDigit(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("editor: digit %d out of range", d)
	}
	v := e.segmentValue()
	cap := e.segmentCap()
	e.setSegmentValue((v*10 + d) % (cap + 1))
	return nil
}

// Next moves the active segment forward, wrapping seconds back to hours.
func (e *Editor) Next() {
	e.active = (e.active + 1) % segmentCount
}

// Prev moves the active segment backward, wrapping hours to seconds.
func (e *Editor) Prev() {
	e.active = (e.active - 1 + segmentCount) % segmentCount
}

// ClearSegment resets the active segment to zero.
func (e *Editor) ClearSegment() {
	e.setSegmentValue(0)
}

// Confirm returns the edited time as total seconds. The caller feeds it
// to the engine's SetCustomCountdown.
func (e *Editor) Confirm() int {
	return e.time.TotalSeconds()
}

func (e *Editor) segmentValue() int {
	switch e.active {
	case SegmentHours:
		return e.time.Hours
	case SegmentMinutes:
		return e.time.Minutes
	default:
		return e.time.Seconds
	}
}

func (e *Editor) segmentCap() int {
	if e.active == SegmentHours {
		return MaxHours
	}
	return MaxMinSec
}

func (e *Editor) setSegmentValue(v int) {
	switch e.active {
	case SegmentHours:
		e.time.Hours = v
	case SegmentMinutes:
		e.time.Minutes = v
	default:
		e.time.Seconds = v
	}
}
