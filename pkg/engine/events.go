package engine

// Event is emitted by Tick when a phase or the whole run finishes.
// Events from a single Tick are ordered: one PhaseCompleted per phase
// actually finished, then at most one TimerFinished per run.
type Event interface {
	event()
}

// PhaseCompleted marks the instant a phase's remaining time reached zero.
type PhaseCompleted struct {
	PatternID  string
	PhaseIndex int    // the phase that just finished
	NextPhase  int    // the phase the pattern moved to (unchanged on completion)
	Last       bool   // the finished phase was the final one in the sequence
	Message    string // instruction for the phase now beginning; empty on completion
}

func (PhaseCompleted) event() {}

// TimerFinished marks run completion: a non-repeating pattern finishing
// its last phase, or a custom countdown reaching zero. PatternID is empty
// for custom countdowns.
type TimerFinished struct {
	PatternID string
}

func (TimerFinished) event() {}
