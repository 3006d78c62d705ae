// Package editor implements the inline per-digit time editor used to set
// the custom countdown target while the engine is idle.
package editor

import "fmt"

// Segment caps. Hours go to 99; minutes and seconds wrap at 59.
const (
	MaxHours   = 99
	MaxMinSec  = 59
	MaxSeconds = MaxHours*3600 + MaxMinSec*60 + MaxMinSec
)

// SegmentedTime is an hours/minutes/seconds triple with the usual caps.
type SegmentedTime struct {
	Hours   int
	Minutes int
	Seconds int
}

// FromSeconds splits a total second count into segments. Totals beyond
// MaxSeconds clamp to the maximum representable time.
func FromSeconds(total int) SegmentedTime {
	if total < 0 {
		total = 0
	}
	if total > MaxSeconds {
		total = MaxSeconds
	}
	return SegmentedTime{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// TotalSeconds converts the segments back to a total second count.
func (t SegmentedTime) TotalSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

// String renders the time as HH:MM:SS.
func (t SegmentedTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}
