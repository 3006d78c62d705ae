package pattern

import "errors"

// ErrInvalidIndex reports a phase index outside the pattern's range.
var ErrInvalidIndex = errors.New("pattern: phase index out of range")

// Transition is the result of advancing past the end of a phase.
type Transition struct {
	Next      int  // phase index the pattern moves to (unchanged on completion)
	Completed bool // the whole run is over (last phase of a non-repeating pattern)
	Last      bool // the completed phase was the final one in the sequence
}

// InitPhase returns the starting position for a pattern: phase zero with
// its full duration remaining.
func InitPhase(p Pattern) (index, remaining int) {
	return 0, p.Phases[0].Duration
}

// Advance computes the transition out of phase i. A repeating pattern
// wraps from the last phase back to the first; a non-repeating pattern
// completes instead. A single-phase pattern with Repeat restarts itself
// indefinitely.
func Advance(i int, p Pattern) Transition {
	last := i == len(p.Phases)-1
	completed := last && !p.Repeat
	next := i
	if !completed {
		next = (i + 1) % len(p.Phases)
	}
	return Transition{Next: next, Completed: completed, Last: last}
}

// Jump validates i against the pattern and returns the position at the
// start of that phase.
func Jump(i int, p Pattern) (index, remaining int, err error) {
	if i < 0 || i >= len(p.Phases) {
		return 0, 0, ErrInvalidIndex
	}
	return i, p.Phases[i].Duration, nil
}
