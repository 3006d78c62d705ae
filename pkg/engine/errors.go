package engine

import "errors"

// Sentinel errors returned by engine operations. All are non-fatal: the
// operation is rejected and engine state is left unchanged.
var (
	// ErrInvalidState reports an operation called in an incompatible
	// status, e.g. JumpToPhase while running.
	ErrInvalidState = errors.New("engine: operation not allowed in current state")

	// ErrInvalidArgument reports an out-of-range index or duration.
	ErrInvalidArgument = errors.New("engine: invalid argument")

	// ErrNotFound reports an unknown pattern id.
	ErrNotFound = errors.New("engine: pattern not found")

	// ErrNoTimeSet reports Start on a custom countdown whose target is
	// zero. The view keeps the start control disabled in this condition.
	ErrNoTimeSet = errors.New("engine: no time set")
)
