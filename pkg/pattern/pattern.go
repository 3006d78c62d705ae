// Package pattern defines the phase-sequenced interval patterns that
// drive the timer: pomodoro cycles, guided-breathing sequences, and
// single-phase presets. Built-in patterns ship with the binary; users may
// define custom patterns via TOML files in the config directory.
package pattern

import (
	"fmt"
	"sort"
	"sync"
)

// Kind is the semantic tag on a phase. It drives styling and the
// breathing visualization only; it has no timing effect.
type Kind string

const (
	KindFocus  Kind = "focus"
	KindBreak  Kind = "break"
	KindInhale Kind = "inhale"
	KindHold   Kind = "hold"
	KindExhale Kind = "exhale"
	KindCustom Kind = "custom"
)

// validKinds is the canonical set of accepted phase kind strings.
var validKinds = map[Kind]bool{
	KindFocus: true, KindBreak: true, KindInhale: true,
	KindHold: true, KindExhale: true, KindCustom: true,
}

// Phase is one timed interval within a pattern.
type Phase struct {
	Duration int    `toml:"duration"` // whole seconds, >= 1
	Message  string `toml:"message"`  // instruction shown during the phase
	Kind     Kind   `toml:"kind"`
}

// Pattern is an ordered, non-empty sequence of phases plus flags.
// Patterns are immutable data: the engine references them and never
// mutates them.
type Pattern struct {
	ID            string  `toml:"id"`
	Name          string  `toml:"name"`
	Phases        []Phase `toml:"phases"`
	Repeat        bool    `toml:"repeat"`
	Visualization string  `toml:"visualization,omitempty"`

	// Reserved extension fields. Parsed and stored but never consulted
	// by the phase machine.
	LongBreak             int `toml:"long_break,omitempty"`
	CyclesBeforeLongBreak int `toml:"cycles_before_long_break,omitempty"`
}

// VisualizationBreathing marks patterns rendered with the breathing
// circle in the timer view.
const VisualizationBreathing = "breathing-circle"

// TotalSeconds returns the sum of all phase durations for one cycle.
func (p Pattern) TotalSeconds() int {
	total := 0
	for _, ph := range p.Phases {
		total += ph.Duration
	}
	return total
}

// Validate checks the pattern invariants: non-empty id and name, at
// least one phase, every duration a positive whole second, and known
// phase kinds. An empty kind is normalized by the loader, not here.
func (p Pattern) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("pattern: missing required field 'id'")
	}
	if p.Name == "" {
		return fmt.Errorf("pattern %q: missing required field 'name'", p.ID)
	}
	if len(p.Phases) == 0 {
		return fmt.Errorf("pattern %q: needs at least one phase", p.ID)
	}
	for i, ph := range p.Phases {
		if ph.Duration < 1 {
			return fmt.Errorf("pattern %q: phase %d duration %d, must be >= 1 second", p.ID, i, ph.Duration)
		}
		if !validKinds[ph.Kind] {
			return fmt.Errorf("pattern %q: phase %d has unknown kind %q", p.ID, i, ph.Kind)
		}
	}
	return nil
}

var (
	mu       sync.RWMutex
	registry map[string]Pattern
)

func init() {
	registry = builtins()
}

// Get returns the pattern with the given id. Unknown ids return ok=false;
// the caller decides whether that means "no pattern selected" or an error.
func Get(id string) (Pattern, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[id]
	return p, ok
}

// IDs returns all registered pattern ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Register adds or replaces a pattern in the registry. Custom patterns
// loaded at startup may shadow builtins of the same id.
func Register(p Pattern) error {
	if err := p.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	registry[p.ID] = p
	return nil
}
