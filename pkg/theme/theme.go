// Package theme defines the color palettes for the pattern-timer TUI
// and a small registry for selecting one by name.
package theme

import (
	"sort"
	"sync"
)

// Theme defines the complete color palette for the application.
type Theme struct {
	Name string

	// Base colors
	Foreground string // hex color e.g. "#c0caf5"
	Dim        string // de-emphasized text
	Accent     string // highlights, active tab, focused border

	// Chrome
	Border      string // unfocused view borders
	BorderFocus string
	Title       string

	// Status colors
	StatusIdle      string
	StatusRunning   string
	StatusPaused    string
	StatusCompleted string

	// Phase-kind colors keyed by the pattern kind strings.
	KindFocus  string
	KindBreak  string
	KindInhale string
	KindHold   string
	KindExhale string
	KindCustom string

	// Special
	HighlightFlash string // in-view highlight flash
	BannerBG       string // return banner background
	EditorActive   string // active editor segment
	HelpKey        string
	HelpDesc       string
	Error          string
}

// KindColor returns the color for a phase kind string, falling back to
// the custom kind color.
func (t Theme) KindColor(kind string) string {
	switch kind {
	case "focus":
		return t.KindFocus
	case "break":
		return t.KindBreak
	case "inhale":
		return t.KindInhale
	case "hold":
		return t.KindHold
	case "exhale":
		return t.KindExhale
	}
	return t.KindCustom
}

// StatusColor returns the color for an engine status string.
func (t Theme) StatusColor(status string) string {
	switch status {
	case "running":
		return t.StatusRunning
	case "paused":
		return t.StatusPaused
	case "completed":
		return t.StatusCompleted
	}
	return t.StatusIdle
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to the default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[name]; ok {
		return t
	}
	return registry["default"]
}

// SetCurrent switches the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Names returns all registered theme names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}
