package clock

import "time"

// DeltaMeter converts an irregular stream of tick callbacks into whole
// elapsed seconds. The tick scheduler only promises a best-effort 1 Hz
// cadence: a suspended or throttled process delivers late ticks, and the
// meter reports the actual wall-clock gap rather than an assumed second.
// Sub-second remainders carry into the next measurement so no time is
// lost, and negative gaps (clock stepped backwards) clamp to zero.
type DeltaMeter struct {
	clk  Clock
	last time.Time
	rem  time.Duration
}

// NewDeltaMeter creates a DeltaMeter reading from clk.
func NewDeltaMeter(clk Clock) *DeltaMeter {
	return &DeltaMeter{clk: clk}
}

// Mark records the current instant as the measurement origin and clears
// any carried remainder. Call it when the timer starts or resumes so the
// paused interval is not counted.
func (m *DeltaMeter) Mark() {
	m.last = m.clk.Now()
	m.rem = 0
}

// Tick measures the wall-clock gap since the previous Tick (or Mark) and
// returns it as whole seconds. The fractional part is retained for the
// next call. Before the first Mark the meter reports zero.
func (m *DeltaMeter) Tick() int {
	now := m.clk.Now()
	if m.last.IsZero() {
		m.last = now
		return 0
	}

	gap := now.Sub(m.last)
	m.last = now
	if gap < 0 {
		// Wall clock stepped backwards; drop the remainder too so a
		// later forward step cannot double-count.
		m.rem = 0
		return 0
	}

	total := gap + m.rem
	secs := int(total / time.Second)
	m.rem = total - time.Duration(secs)*time.Second
	return secs
}
