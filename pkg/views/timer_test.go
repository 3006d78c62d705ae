package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/notify"
	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeKeys(v *TimerView, keys ...tea.KeyMsg) {
	for _, k := range keys {
		v.HandleKey(k)
	}
}

func newTimerView(t *testing.T) (*TimerView, *engine.Engine) {
	t.Helper()
	eng := engine.New()
	st := config.DefaultState()
	return NewTimer(eng, &st, nil), eng
}

func TestTimerStartPauseReset(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetPattern("pomodoro"); err != nil {
		t.Fatal(err)
	}

	v.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	if eng.Status() != engine.StatusRunning {
		t.Fatalf("status after space = %q, want running", eng.Status())
	}

	v.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	if eng.Status() != engine.StatusPaused {
		t.Fatalf("status after second space = %q, want paused", eng.Status())
	}

	eng.Tick(1)
	v.HandleKey(runeKey('r'))
	snap := eng.Snapshot()
	if snap.Status != engine.StatusIdle || snap.PhaseIndex != 0 || snap.Remaining != 1500 {
		t.Fatalf("after reset snapshot = %+v", snap)
	}
}

func TestTimerStartWithoutPatternReportsStatus(t *testing.T) {
	v, eng := newTimerView(t)

	cmd := v.HandleKey(tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	if _, ok := cmd().(app.StatusEvent); !ok {
		t.Fatalf("command message = %T, want StatusEvent", cmd())
	}
	if eng.Status() != engine.StatusIdle {
		t.Fatal("engine must stay idle")
	}
}

func TestTimerEditFlow(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetCustomCountdown(0); err != nil {
		t.Fatal(err)
	}

	v.HandleKey(runeKey('e'))
	if !v.CapturesInput() {
		t.Fatal("editor did not open")
	}

	// 15 hours, 30 minutes, 5 seconds.
	typeKeys(v,
		runeKey('1'), runeKey('5'),
		tea.KeyMsg{Type: tea.KeyRight},
		runeKey('3'), runeKey('0'),
		tea.KeyMsg{Type: tea.KeyRight},
		runeKey('0'), runeKey('5'),
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if v.CapturesInput() {
		t.Fatal("editor still open after confirm")
	}
	snap := eng.Snapshot()
	if snap.Mode != engine.ModeCountdown {
		t.Fatalf("mode = %q, want countdown", snap.Mode)
	}
	if want := 15*3600 + 30*60 + 5; snap.Target != want {
		t.Fatalf("target = %d, want %d", snap.Target, want)
	}
}

func TestTimerEditEscDiscards(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetCustomCountdown(90); err != nil {
		t.Fatal(err)
	}

	v.HandleKey(runeKey('e'))
	typeKeys(v, runeKey('9'), runeKey('9'), tea.KeyMsg{Type: tea.KeyEsc})

	if v.CapturesInput() {
		t.Fatal("editor still open after esc")
	}
	if snap := eng.Snapshot(); snap.Target != 90 {
		t.Fatalf("target = %d, want unchanged 90", snap.Target)
	}
}

func TestTimerEditRefusedWhileRunning(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetPattern("pomodoro"); err != nil {
		t.Fatal(err)
	}
	if err := eng.Start(); err != nil {
		t.Fatal(err)
	}

	cmd := v.HandleKey(runeKey('e'))
	if v.CapturesInput() {
		t.Fatal("editor opened on a running engine")
	}
	if cmd == nil {
		t.Fatal("expected a status command")
	}
}

func TestTimerEditRefusedWhilePaused(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetCustomCountdown(60); err != nil {
		t.Fatal(err)
	}
	if err := eng.Start(); err != nil {
		t.Fatal(err)
	}
	eng.Tick(10)
	if err := eng.Pause(); err != nil {
		t.Fatal(err)
	}

	cmd := v.HandleKey(runeKey('e'))
	if v.CapturesInput() {
		t.Fatal("editor opened on a paused run")
	}
	if cmd == nil {
		t.Fatal("expected a status command")
	}

	// Keys that would have edited must leave the paused run intact.
	typeKeys(v, runeKey('9'), tea.KeyMsg{Type: tea.KeyEnter})
	snap := eng.Snapshot()
	if snap.Status != engine.StatusPaused || snap.Target != 60 || snap.Remaining != 50 {
		t.Fatalf("paused run disturbed: %+v", snap)
	}
}

func TestTimerEditRefusedOutsideCountdown(t *testing.T) {
	v, eng := newTimerView(t)

	// Preset mode, idle.
	if err := eng.SetPattern("pomodoro"); err != nil {
		t.Fatal(err)
	}
	if cmd := v.HandleKey(runeKey('e')); cmd == nil || v.CapturesInput() {
		t.Fatal("editor must refuse preset mode")
	}

	// Count-up mode, idle.
	if err := eng.SetCountUp(); err != nil {
		t.Fatal(err)
	}
	if cmd := v.HandleKey(runeKey('e')); cmd == nil || v.CapturesInput() {
		t.Fatal("editor must refuse count-up mode")
	}
}

func TestTimerPhaseJumpKeys(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetPattern("box-breathing"); err != nil {
		t.Fatal(err)
	}

	v.HandleKey(runeKey(']'))
	if snap := eng.Snapshot(); snap.PhaseIndex != 1 {
		t.Fatalf("phase = %d, want 1", snap.PhaseIndex)
	}

	v.HandleKey(runeKey('['))
	v.HandleKey(runeKey('['))
	if snap := eng.Snapshot(); snap.PhaseIndex != 3 {
		t.Fatalf("phase = %d, want wrap to 3", snap.PhaseIndex)
	}
}

func TestTimerToggleDirection(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetCustomCountdown(0); err != nil {
		t.Fatal(err)
	}

	v.HandleKey(runeKey('d'))
	if snap := eng.Snapshot(); snap.Mode != engine.ModeCountUp {
		t.Fatalf("mode = %q, want count-up", snap.Mode)
	}

	v.HandleKey(runeKey('d'))
	if snap := eng.Snapshot(); snap.Mode != engine.ModeCountdown {
		t.Fatalf("mode = %q, want countdown", snap.Mode)
	}
}

func TestTimerQuickSelect(t *testing.T) {
	v, eng := newTimerView(t)

	ids := pattern.IDs()
	cmd := v.HandleKey(runeKey('2'))
	if cmd == nil {
		t.Fatal("quick select must request persistence")
	}
	if snap := eng.Snapshot(); snap.PatternID != ids[1] {
		t.Fatalf("pattern = %q, want %q", snap.PatternID, ids[1])
	}

	// Out-of-range digits do nothing.
	if cmd := v.HandleKey(runeKey('9')); cmd != nil && len(ids) < 9 {
		t.Fatal("out-of-range digit must be ignored")
	}
}

func TestHighlightSwapsInstruction(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetPattern("box-breathing"); err != nil {
		t.Fatal(err)
	}

	t0 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	v.Update(app.TickEvent{Time: t0})
	v.Update(app.EngineEvent{Highlight: &notify.Highlight{
		Message:  "Hold",
		Duration: notify.HighlightDuration,
	}})

	out := v.View(60, 20)
	if !strings.Contains(out, "Hold") {
		t.Fatalf("highlight message not shown:\n%s", out)
	}

	// Expiry follows the clock, not the tick count: four sub-second
	// ticks land well inside the highlight lifetime.
	for i := 1; i <= 4; i++ {
		v.Update(app.TickEvent{Time: t0.Add(time.Duration(i) * 500 * time.Millisecond)})
	}
	if out := v.View(60, 20); !strings.Contains(out, "Hold") {
		t.Fatalf("highlight expired early on fast ticks:\n%s", out)
	}

	v.Update(app.TickEvent{Time: t0.Add(4 * time.Second)})
	out = v.View(60, 20)
	if !strings.Contains(out, "Breathe in") {
		t.Fatalf("phase instruction not restored:\n%s", out)
	}
}

func TestTimerViewRendersReadout(t *testing.T) {
	v, eng := newTimerView(t)
	if err := eng.SetCustomCountdown(5405); err != nil {
		t.Fatal(err)
	}

	out := v.View(60, 20)
	if !strings.Contains(out, "01:30:05") {
		t.Fatalf("readout missing:\n%s", out)
	}
}
