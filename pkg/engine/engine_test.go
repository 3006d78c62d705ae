package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
)

// register a throwaway pattern and return its id.
func registerTestPattern(t *testing.T, id string, repeat bool, durations ...int) string {
	t.Helper()
	phases := make([]pattern.Phase, len(durations))
	for i, d := range durations {
		phases[i] = pattern.Phase{Duration: d, Message: fmt.Sprintf("phase %d", i), Kind: pattern.KindCustom}
	}
	p := pattern.Pattern{ID: id, Name: id, Phases: phases, Repeat: repeat}
	if err := pattern.Register(p); err != nil {
		t.Fatalf("register %q: %v", id, err)
	}
	return id
}

func startedEngine(t *testing.T, id string) *Engine {
	t.Helper()
	e := New()
	if err := e.SetPattern(id); err != nil {
		t.Fatalf("SetPattern: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e
}

func TestNewEngineIsIdleWithNoPattern(t *testing.T) {
	e := New()
	s := e.Snapshot()
	if s.Status != StatusIdle {
		t.Errorf("status = %q, want idle", s.Status)
	}
	if s.PatternID != "" {
		t.Errorf("fresh engine has pattern %q", s.PatternID)
	}
	if s.Startable {
		t.Error("fresh engine with no pattern should not be startable")
	}
	if err := e.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start without pattern: %v, want ErrInvalidState", err)
	}
}

func TestSetPatternUnknownID(t *testing.T) {
	e := New()
	if err := e.SetPattern("definitely-not-a-pattern"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if e.Snapshot().PatternID != "" {
		t.Error("failed SetPattern changed state")
	}
}

func TestSetPatternWhileRunningIsBusy(t *testing.T) {
	id := registerTestPattern(t, "eng-busy", true, 10)
	e := startedEngine(t, id)
	if err := e.SetPattern("pomodoro"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
	if got := e.Snapshot().PatternID; got != id {
		t.Errorf("pattern changed to %q while running", got)
	}
}

// Property 1: conservation of time in count-up, including a pause.
func TestCountUpConservesTime(t *testing.T) {
	e := New()
	if err := e.SetCountUp(); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 30; i++ {
		e.Tick(1)
	}
	if err := e.Pause(); err != nil {
		t.Fatal(err)
	}
	// Ticks while paused are suppressed.
	e.Tick(100)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	e.Tick(12)

	if got := e.Snapshot().Elapsed; got != 42 {
		t.Errorf("elapsed = %d, want 42", got)
	}
	if e.Status() != StatusRunning {
		t.Errorf("count-up completed itself: %q", e.Status())
	}
}

// Property 2: feeding the total duration of a non-repeating pattern
// completes it; a repeating pattern re-enters phase 0 fully wound.
func TestPresetConservation(t *testing.T) {
	once := registerTestPattern(t, "eng-conserve-once", false, 3, 5, 2)
	e := startedEngine(t, once)
	e.Tick(10)
	s := e.Snapshot()
	if s.Status != StatusCompleted || s.Remaining != 0 {
		t.Errorf("non-repeating: status=%q remaining=%d, want completed/0", s.Status, s.Remaining)
	}

	loop := registerTestPattern(t, "eng-conserve-loop", true, 3, 5, 2)
	e = startedEngine(t, loop)
	e.Tick(10)
	s = e.Snapshot()
	if s.PhaseIndex != 0 || s.Remaining != 3 {
		t.Errorf("repeating: phase=%d remaining=%d, want 0/3", s.PhaseIndex, s.Remaining)
	}
	if s.Status != StatusRunning {
		t.Errorf("repeating pattern stopped: %q", s.Status)
	}
}

// Property 3: exact event sequence for a non-repeating pattern.
func TestEventSequenceNonRepeating(t *testing.T) {
	id := registerTestPattern(t, "eng-seq", false, 2, 2, 2)

	granularities := []struct {
		name  string
		ticks []int
	}{
		{"one big tick", []int{6}},
		{"per second", []int{1, 1, 1, 1, 1, 1}},
		{"uneven", []int{3, 1, 2}},
	}

	for _, g := range granularities {
		e := startedEngine(t, id)
		var events []Event
		for _, d := range g.ticks {
			events = append(events, e.Tick(d)...)
		}

		if len(events) != 4 {
			t.Fatalf("%s: got %d events, want 4", g.name, len(events))
		}
		for i := 0; i < 3; i++ {
			pc, ok := events[i].(PhaseCompleted)
			if !ok || pc.PhaseIndex != i {
				t.Errorf("%s: event %d = %+v, want PhaseCompleted(%d)", g.name, i, events[i], i)
			}
		}
		if _, ok := events[3].(TimerFinished); !ok {
			t.Errorf("%s: last event = %+v, want TimerFinished", g.name, events[3])
		}
	}
}

// Property 4: one tick of size delta equals delta ticks of size one.
func TestCatchUpEquivalence(t *testing.T) {
	id := registerTestPattern(t, "eng-catchup", true, 4, 7, 8)
	total := 19

	for delta := 1; delta <= total; delta++ {
		single := startedEngine(t, id)
		var singleEvents []Event
		singleEvents = append(singleEvents, single.Tick(delta)...)

		stepped := startedEngine(t, id)
		var steppedEvents []Event
		for i := 0; i < delta; i++ {
			steppedEvents = append(steppedEvents, stepped.Tick(1)...)
		}

		ss, ps := single.Snapshot(), stepped.Snapshot()
		if ss.PhaseIndex != ps.PhaseIndex || ss.Remaining != ps.Remaining {
			t.Errorf("delta=%d: single (%d,%d) != stepped (%d,%d)",
				delta, ss.PhaseIndex, ss.Remaining, ps.PhaseIndex, ps.Remaining)
		}
		if len(singleEvents) != len(steppedEvents) {
			t.Errorf("delta=%d: %d events vs %d", delta, len(singleEvents), len(steppedEvents))
			continue
		}
		for i := range singleEvents {
			if singleEvents[i] != steppedEvents[i] {
				t.Errorf("delta=%d event %d: %+v != %+v", delta, i, singleEvents[i], steppedEvents[i])
			}
		}
	}
}

// Property 5: reset is idempotent in every mode.
func TestResetIdempotent(t *testing.T) {
	id := registerTestPattern(t, "eng-reset", true, 10, 20)

	e := startedEngine(t, id)
	e.Tick(13)
	e.Reset()
	first := e.Snapshot()
	e.Reset()
	if second := e.Snapshot(); second != first {
		t.Errorf("double reset differs: %+v vs %+v", second, first)
	}
	if first.PhaseIndex != 0 || first.Remaining != 10 || first.Status != StatusIdle {
		t.Errorf("reset preset = %+v", first)
	}

	e = New()
	e.SetCustomCountdown(90)
	e.Start()
	e.Tick(25)
	e.Pause()
	e.Reset()
	s := e.Snapshot()
	if s.Remaining != 90 || s.Status != StatusIdle {
		t.Errorf("reset countdown: remaining=%d status=%q", s.Remaining, s.Status)
	}

	e = New()
	e.SetCountUp()
	e.Start()
	e.Tick(7)
	e.Reset()
	if s := e.Snapshot(); s.Elapsed != 0 || s.Status != StatusIdle {
		t.Errorf("reset count-up: %+v", s)
	}
}

// S1: pomodoro single cycle with repeat overridden off.
func TestScenarioPomodoroSingleCycle(t *testing.T) {
	id := registerTestPattern(t, "eng-s1", false, 1500, 300)
	e := startedEngine(t, id)

	events := e.Tick(1800)
	want := []Event{
		PhaseCompleted{PatternID: id, PhaseIndex: 0, NextPhase: 1, Message: "phase 1"},
		PhaseCompleted{PatternID: id, PhaseIndex: 1, NextPhase: 1, Last: true},
		TimerFinished{PatternID: id},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events %+v, want 3", len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
	if e.Status() != StatusCompleted {
		t.Errorf("status = %q, want completed", e.Status())
	}
}

// S2: box breathing driven by 17 one-second ticks.
func TestScenarioBoxBreathingTickPrecision(t *testing.T) {
	e := startedEngine(t, "box-breathing")

	completions := 0
	for i := 0; i < 17; i++ {
		for _, ev := range e.Tick(1) {
			if _, ok := ev.(PhaseCompleted); ok {
				completions++
			}
		}
	}

	if completions != 4 {
		t.Errorf("phase completions = %d, want 4", completions)
	}
	s := e.Snapshot()
	if s.PhaseIndex != 0 || s.Remaining != 3 {
		t.Errorf("position = (%d, %d), want (0, 3)", s.PhaseIndex, s.Remaining)
	}
}

// S3: 4-7-8 catch-up after a 20-second suspension.
func TestScenarioBackgroundCatchUp(t *testing.T) {
	e := startedEngine(t, "breathing-4-7-8")

	events := e.Tick(20)
	if len(events) != 3 {
		t.Fatalf("got %d events %+v, want 3 phase completions", len(events), events)
	}
	for i, ev := range events {
		pc, ok := ev.(PhaseCompleted)
		if !ok || pc.PhaseIndex != i {
			t.Errorf("event %d = %+v, want PhaseCompleted(%d)", i, ev, i)
		}
	}
	s := e.Snapshot()
	if s.PhaseIndex != 0 || s.Remaining != 3 {
		t.Errorf("position = (%d, %d), want (0, 3)", s.PhaseIndex, s.Remaining)
	}
}

// S4 (engine half): a 5405-second countdown runs to completion.
func TestScenarioCustomCountdownRun(t *testing.T) {
	e := New()
	if err := e.SetCustomCountdown(5405); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	events := e.Tick(5405)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if _, ok := events[0].(TimerFinished); !ok {
		t.Errorf("event = %+v, want TimerFinished", events[0])
	}
	s := e.Snapshot()
	if s.Remaining != 0 || s.Status != StatusCompleted {
		t.Errorf("remaining=%d status=%q, want 0/completed", s.Remaining, s.Status)
	}

	// A completed run emits nothing more and cannot restart without Reset.
	if extra := e.Tick(10); extra != nil {
		t.Errorf("tick after completion emitted %+v", extra)
	}
	if err := e.Start(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start after completion: %v, want ErrInvalidState", err)
	}
}

// S5: jump while idle, then run.
func TestScenarioJumpWhileIdle(t *testing.T) {
	id := registerTestPattern(t, "eng-s5", true, 10, 20)
	e := New()
	if err := e.SetPattern(id); err != nil {
		t.Fatal(err)
	}

	if err := e.JumpToPhase(1); err != nil {
		t.Fatalf("JumpToPhase: %v", err)
	}
	s := e.Snapshot()
	if s.PhaseIndex != 1 || s.Remaining != 20 {
		t.Fatalf("after jump: (%d, %d), want (1, 20)", s.PhaseIndex, s.Remaining)
	}

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	e.Tick(5)
	if got := e.Snapshot().Remaining; got != 15 {
		t.Errorf("remaining = %d, want 15", got)
	}
}

func TestJumpErrors(t *testing.T) {
	id := registerTestPattern(t, "eng-jump-err", true, 10, 20)
	e := New()
	e.SetPattern(id)

	if err := e.JumpToPhase(5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("out-of-range jump: %v, want ErrInvalidArgument", err)
	}

	e.Start()
	if err := e.JumpToPhase(1); !errors.Is(err, ErrInvalidState) {
		t.Errorf("jump while running: %v, want ErrInvalidState", err)
	}

	c := New()
	c.SetCountUp()
	if err := c.JumpToPhase(0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("jump in count-up mode: %v, want ErrInvalidState", err)
	}
}

func TestCountdownStartRequiresTime(t *testing.T) {
	e := New()
	if err := e.SetCustomCountdown(0); err != nil {
		t.Fatal(err)
	}
	if s := e.Snapshot(); s.Startable {
		t.Error("zero-target countdown reported startable")
	}
	if err := e.Start(); !errors.Is(err, ErrNoTimeSet) {
		t.Errorf("err = %v, want ErrNoTimeSet", err)
	}
}

func TestCountdownTargetBounds(t *testing.T) {
	e := New()
	if err := e.SetCustomCountdown(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative target: %v, want ErrInvalidArgument", err)
	}
	if err := e.SetCustomCountdown(MaxTargetSeconds + 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("oversized target: %v, want ErrInvalidArgument", err)
	}
	if err := e.SetCustomCountdown(MaxTargetSeconds); err != nil {
		t.Errorf("max target rejected: %v", err)
	}
}

func TestToggleDirection(t *testing.T) {
	e := New()
	if err := e.SetCountUp(); err != nil {
		t.Fatal(err)
	}
	if err := e.ToggleDirection(); err != nil {
		t.Fatal(err)
	}
	if e.Mode() != ModeCountdown {
		t.Errorf("mode = %q, want countdown", e.Mode())
	}
	if err := e.ToggleDirection(); err != nil {
		t.Fatal(err)
	}
	if e.Mode() != ModeCountUp {
		t.Errorf("mode = %q, want count-up", e.Mode())
	}

	e.Start()
	if err := e.ToggleDirection(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("toggle while running: %v, want ErrInvalidState", err)
	}
}

func TestPauseOnlyWhileRunning(t *testing.T) {
	e := New()
	e.SetCountUp()
	if err := e.Pause(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("pause while idle: %v, want ErrInvalidState", err)
	}
}

func TestNegativeDeltaClampsToZero(t *testing.T) {
	id := registerTestPattern(t, "eng-negdelta", true, 10)
	e := startedEngine(t, id)
	if evs := e.Tick(-5); evs != nil {
		t.Errorf("negative delta emitted %+v", evs)
	}
	if got := e.Snapshot().Remaining; got != 10 {
		t.Errorf("remaining = %d, want 10", got)
	}
}

func TestPhaseCompletedCarriesNextMessage(t *testing.T) {
	e := startedEngine(t, "breathing-4-7-8")
	events := e.Tick(4)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	pc := events[0].(PhaseCompleted)
	if pc.Message != "Hold your breath" {
		t.Errorf("transition message = %q", pc.Message)
	}
}
