// Package clock abstracts wall-clock time so the timer engine can be
// tested deterministically. Production code uses RealClock; tests
// substitute FakeClock to control the passage of time.
package clock

import "time"

// Clock provides the current time and elapsed-time measurement.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the duration elapsed since t.
	Since(t time.Time) time.Duration
}

// RealClock is a zero-value Clock backed by the time package. It holds no
// mutable state and is safe for concurrent use.
type RealClock struct{}

// Now returns the current wall-clock time via time.Now.
func (RealClock) Now() time.Time { return time.Now() }

// Since returns the time elapsed since t via time.Since.
func (RealClock) Since(t time.Time) time.Duration { return time.Since(t) }
