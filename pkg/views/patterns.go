package views

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/components"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
)

// PatternsView lists the pattern catalog. Selecting an entry loads it
// into the engine and returns to the timer.
type PatternsView struct {
	eng   *engine.Engine
	state *config.State
	log   *slog.Logger

	ids    []string
	cursor int
}

// NewPatterns creates the catalog view over the current registry
// contents.
func NewPatterns(eng *engine.Engine, state *config.State, log *slog.Logger) *PatternsView {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	v := &PatternsView{eng: eng, state: state, log: log, ids: pattern.IDs()}
	for i, id := range v.ids {
		if id == state.LastPatternID {
			v.cursor = i
		}
	}
	return v
}

// Route implements app.View.
func (v *PatternsView) Route() app.Route { return app.RoutePatterns }

// Title implements app.View.
func (v *PatternsView) Title() string { return "Patterns" }

// Update implements app.View.
func (v *PatternsView) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey implements app.View.
func (v *PatternsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.ids)-1 {
			v.cursor++
		}
	case "enter":
		return v.selectCurrent()
	}
	return nil
}

// selectCurrent loads the highlighted pattern. A running engine refuses
// the swap; the user is told to pause first.
func (v *PatternsView) selectCurrent() tea.Cmd {
	if len(v.ids) == 0 {
		return nil
	}
	id := v.ids[v.cursor]
	if err := v.eng.SetPattern(id); err != nil {
		return app.StatusCmd("pause the timer before switching patterns")
	}
	v.state.LastPatternID = id
	return tea.Batch(
		app.NavigateCmd(app.RouteTimer),
		func() tea.Msg { return app.PrefsChangedEvent{} },
	)
}

// Selected returns the highlighted pattern id.
func (v *PatternsView) Selected() string {
	if len(v.ids) == 0 {
		return ""
	}
	return v.ids[v.cursor]
}

// View implements app.View.
func (v *PatternsView) View(width, height int) string {
	th := theme.Current
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Accent))
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	snap := v.eng.Snapshot()

	var lines []string
	for i, id := range v.ids {
		p, ok := pattern.Get(id)
		if !ok {
			continue
		}

		marker := "  "
		style := name
		if i == v.cursor {
			marker = "> "
			style = active
		}
		loaded := ""
		if id == snap.PatternID {
			loaded = " ●"
		}

		// The index column doubles as the quick-select digit on the
		// timer view.
		idx := dim.Render(components.PadLeft(fmt.Sprintf("%d", i+1), 2) + " ")
		line := marker + idx + style.Render(p.Name) + loaded
		line += dim.Render("  " + describePattern(p))
		lines = append(lines, components.TruncateWithTail(line, width-2, "…"))
	}
	if len(lines) == 0 {
		lines = append(lines, dim.Render("no patterns available"))
	}
	lines = append(lines, "", dim.Render("↑/↓ move · enter select"))

	return components.CenterBlock(strings.Join(lines, "\n"), width, height)
}

// describePattern summarizes a pattern's phase structure for the list.
func describePattern(p pattern.Pattern) string {
	parts := make([]string, 0, len(p.Phases))
	for _, ph := range p.Phases {
		parts = append(parts, formatSeconds(ph.Duration))
	}
	s := strings.Join(parts, " / ")
	if p.Repeat {
		s += " · repeats"
	}
	return s
}

// formatSeconds renders a duration compactly: 90 -> "1m30s", 4 -> "4s".
func formatSeconds(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	m, s := secs/60, secs%60
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm%ds", m, s)
}
