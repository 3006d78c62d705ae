// Package views contains the routed screens of the pattern-timer TUI:
// the timer itself, the pattern catalog, and the settings panel. Views
// render from engine snapshots and never mutate engine state outside
// their key handlers.
package views

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/components"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/editor"
	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
)

// TimerView is the main screen: the readout, the phase instruction, the
// progress bar, the breathing circle, and the inline time editor.
type TimerView struct {
	eng   *engine.Engine
	state *config.State
	log   *slog.Logger

	ed     *editor.Editor
	prog   progress.Model
	circle *breathCircle

	// Highlight state expires against the tick timestamps, so it holds
	// for its full lifetime whatever the configured tick cadence.
	highlightMsg   string
	highlightUntil time.Time
	now            time.Time
}

// NewTimer creates the timer view.
func NewTimer(eng *engine.Engine, state *config.State, log *slog.Logger) *TimerView {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	p := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	return &TimerView{
		eng:    eng,
		state:  state,
		log:    log,
		prog:   p,
		circle: newBreathCircle(),
	}
}

// Route implements app.View.
func (v *TimerView) Route() app.Route { return app.RouteTimer }

// Title implements app.View.
func (v *TimerView) Title() string { return "Timer" }

// CapturesInput reports whether the inline editor is open; while it is,
// every key goes to the editor instead of the global bindings.
func (v *TimerView) CapturesInput() bool { return v.ed != nil }

// Editing reports whether the time editor is open.
func (v *TimerView) Editing() bool { return v.ed != nil }

// Update implements app.View.
func (v *TimerView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.TickEvent:
		v.now = msg.Time
		if v.highlightActive() && v.now.After(v.highlightUntil) {
			v.highlightUntil = time.Time{}
			v.highlightMsg = ""
		}
		v.circle.step(v.eng.Snapshot())
	case app.EngineEvent:
		if msg.Highlight != nil {
			base := v.now
			if base.IsZero() {
				base = time.Now()
			}
			v.highlightMsg = msg.Highlight.Message
			v.highlightUntil = base.Add(msg.Highlight.Duration)
		}
	}
	return nil
}

func (v *TimerView) highlightActive() bool {
	return !v.highlightUntil.IsZero()
}

// HandleKey implements app.View.
func (v *TimerView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if v.ed != nil {
		return v.handleEditKey(msg)
	}

	switch msg.String() {
	case " ":
		return v.toggleRun()
	case "r":
		v.eng.Reset()
	case "e":
		return v.openEditor()
	case "d":
		if err := v.eng.ToggleDirection(); err != nil {
			return app.StatusCmd("stop the timer before changing direction")
		}
	case "[":
		return v.jump(-1)
	case "]":
		return v.jump(+1)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '9' {
			return v.quickSelect(int(r - '1'))
		}
	}
	return nil
}

// quickSelect loads the nth catalog pattern without leaving the timer.
func (v *TimerView) quickSelect(idx int) tea.Cmd {
	ids := pattern.IDs()
	if idx >= len(ids) {
		return nil
	}
	if err := v.eng.SetPattern(ids[idx]); err != nil {
		return app.StatusCmd("pause the timer before switching patterns")
	}
	v.state.LastPatternID = ids[idx]
	return func() tea.Msg { return app.PrefsChangedEvent{} }
}

func (v *TimerView) toggleRun() tea.Cmd {
	snap := v.eng.Snapshot()
	if snap.Status == engine.StatusRunning {
		if err := v.eng.Pause(); err != nil {
			v.log.Warn("pause failed", "error", err)
		}
		return nil
	}
	if err := v.eng.Start(); err != nil {
		switch {
		case errors.Is(err, engine.ErrNoTimeSet):
			return app.StatusCmd("set a time first (e)")
		case snap.Status == engine.StatusCompleted:
			return app.StatusCmd("finished; press r to reset")
		default:
			return app.StatusCmd("select a pattern first (tab)")
		}
	}
	return nil
}

// openEditor opens the inline editor. Editing is allowed only for an
// idle custom countdown: a paused run keeps its position, and presets
// have no editable target.
func (v *TimerView) openEditor() tea.Cmd {
	snap := v.eng.Snapshot()
	if snap.Status != engine.StatusIdle {
		return app.StatusCmd("reset the timer before editing (r)")
	}
	if snap.Mode != engine.ModeCountdown {
		return app.StatusCmd("switch to countdown first (d)")
	}
	v.ed = editor.New(snap.Target)
	return nil
}

// jump moves a non-running preset one phase forward or back, wrapping at
// the pattern ends.
func (v *TimerView) jump(dir int) tea.Cmd {
	snap := v.eng.Snapshot()
	if snap.Mode != engine.ModePreset || snap.PatternID == "" {
		return nil
	}
	if snap.Status == engine.StatusRunning {
		return app.StatusCmd("pause before jumping phases")
	}
	n := snap.PhaseCount
	idx := (snap.PhaseIndex + dir + n) % n
	if err := v.eng.JumpToPhase(idx); err != nil {
		v.log.Warn("phase jump failed", "error", err, "phase", idx)
	}
	return nil
}

// handleEditKey drives the inline editor. Digits shift into the active
// segment, arrows move between segments, enter confirms, esc discards.
func (v *TimerView) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		total := v.ed.Confirm()
		v.ed = nil
		if err := v.eng.SetCustomCountdown(total); err != nil {
			return app.StatusCmd("could not set time")
		}
		return nil
	case "esc":
		v.ed = nil
		return nil
	case "left", "h", "shift+tab":
		v.ed.Prev()
		return nil
	case "right", "l", "tab":
		v.ed.Next()
		return nil
	case "backspace", "delete":
		v.ed.ClearSegment()
		return nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '0' && r <= '9' {
			if err := v.ed.EnterDigit(int(r - '0')); err != nil {
				v.log.Warn("digit rejected", "error", err)
			}
		}
	}
	return nil
}

// View implements app.View.
func (v *TimerView) View(width, height int) string {
	snap := v.eng.Snapshot()
	th := theme.Current

	var lines []string

	lines = append(lines, v.headerLine(snap, th), "")

	if v.ed != nil {
		lines = append(lines, v.editorLine(th), "",
			lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).
				Render("type digits · ←/→ move · enter set · esc cancel"))
	} else {
		lines = append(lines, v.readoutLine(snap, th), "")
		if msg := v.instruction(snap); msg != "" {
			lines = append(lines, v.instructionLine(msg, th))
		}
		if bar := v.progressLine(snap, width); bar != "" {
			lines = append(lines, "", bar)
		}
		if snap.Visualization != "" && height > len(lines)+circleRows+1 {
			lines = append(lines, "", v.circle.render(th))
		}
	}

	return components.CenterBlock(strings.Join(lines, "\n"), width, height)
}

// headerLine names what is being timed.
func (v *TimerView) headerLine(snap engine.Snapshot, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Title)).Bold(true)
	switch snap.Mode {
	case engine.ModePreset:
		if snap.PatternID == "" {
			return style.Render("No pattern selected")
		}
		phase := fmt.Sprintf("%s · phase %d/%d", snap.PatternName, snap.PhaseIndex+1, snap.PhaseCount)
		return style.Render(phase)
	case engine.ModeCountUp:
		return style.Render("Stopwatch")
	default:
		return style.Render("Countdown")
	}
}

// readoutLine renders the HH:MM:SS readout colored by phase kind (or
// status for custom modes) and flashed while a highlight is active.
func (v *TimerView) readoutLine(snap engine.Snapshot, th theme.Theme) string {
	var secs int
	switch snap.Mode {
	case engine.ModeCountUp:
		secs = snap.Elapsed
	default:
		secs = snap.Remaining
	}
	text := editor.FromSeconds(secs).String()

	color := th.StatusColor(string(snap.Status))
	if snap.Mode == engine.ModePreset && snap.PatternID != "" {
		color = th.KindColor(string(snap.PhaseKind))
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	if v.highlightActive() {
		style = style.Background(lipgloss.Color(th.HighlightFlash))
	}
	return style.Render(" " + text + " ")
}

// instruction picks the message under the readout: the transition
// message while a highlight is active, the phase instruction otherwise.
func (v *TimerView) instruction(snap engine.Snapshot) string {
	if v.highlightActive() && v.highlightMsg != "" {
		return v.highlightMsg
	}
	if snap.Mode == engine.ModePreset {
		return snap.PhaseMessage
	}
	return ""
}

func (v *TimerView) instructionLine(msg string, th theme.Theme) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))
	if v.highlightActive() {
		style = style.Foreground(lipgloss.Color(th.Accent)).Bold(true)
	}
	return style.Render(msg)
}

// progressLine renders phase or countdown progress. Count-up has no
// bound, so it gets no bar.
func (v *TimerView) progressLine(snap engine.Snapshot, width int) string {
	var done, total int
	switch snap.Mode {
	case engine.ModePreset:
		if snap.PatternID == "" || snap.PhaseDuration == 0 {
			return ""
		}
		done, total = snap.PhaseDuration-snap.Remaining, snap.PhaseDuration
	case engine.ModeCountdown:
		if snap.Target == 0 {
			return ""
		}
		done, total = snap.Target-snap.Remaining, snap.Target
	default:
		return ""
	}

	w := width / 2
	if w < 10 {
		w = 10
	}
	v.prog.Width = w
	return v.prog.ViewAs(float64(done) / float64(total))
}

// editorLine renders the segmented time with the active segment marked.
func (v *TimerView) editorLine(th theme.Theme) string {
	t := v.ed.Time()
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(th.EditorActive)).
		Underline(true)
	plain := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))

	seg := func(val int, s editor.Segment) string {
		text := fmt.Sprintf("%02d", val)
		if v.ed.Active() == s {
			return active.Render(text)
		}
		return plain.Render(text)
	}
	colon := plain.Render(":")
	return seg(t.Hours, editor.SegmentHours) + colon +
		seg(t.Minutes, editor.SegmentMinutes) + colon +
		seg(t.Seconds, editor.SegmentSeconds)
}
