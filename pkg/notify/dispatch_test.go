package notify

import (
	"errors"
	"testing"

	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
)

type fakeToaster struct {
	pushed []Toast
	err    error
}

func (f *fakeToaster) Push(t Toast) error {
	if f.err != nil {
		return f.err
	}
	f.pushed = append(f.pushed, t)
	return nil
}

type fakePlayer struct {
	plays int
	err   error
}

func (f *fakePlayer) Play() error {
	if f.err != nil {
		return f.err
	}
	f.plays++
	return nil
}

func allOn() Prefs {
	return Prefs{NotificationsEnabled: true, SoundEnabled: true, Permission: PermissionGranted}
}

func phaseEvent() engine.Event {
	return engine.PhaseCompleted{
		PatternID:  "box-breathing",
		PhaseIndex: 0,
		NextPhase:  1,
		Message:    "Hold",
	}
}

func TestHighlightWhenViewActive(t *testing.T) {
	d := New(&fakeToaster{}, &fakePlayer{}, nil)

	dec := d.Dispatch(phaseEvent(), true, allOn())

	if dec.Highlight == nil {
		t.Fatal("no highlight with timer view active")
	}
	if dec.Banner != nil {
		t.Error("banner fired together with highlight")
	}
	if dec.Highlight.Message != "Hold" {
		t.Errorf("highlight message = %q, want transition message", dec.Highlight.Message)
	}
	if dec.Highlight.Duration != HighlightDuration {
		t.Errorf("highlight duration = %v", dec.Highlight.Duration)
	}
}

func TestBannerWhenViewInactive(t *testing.T) {
	d := New(&fakeToaster{}, &fakePlayer{}, nil)

	dec := d.Dispatch(phaseEvent(), false, allOn())

	if dec.Banner == nil {
		t.Fatal("no banner with timer view inactive")
	}
	if dec.Highlight != nil {
		t.Error("highlight fired together with banner")
	}
	if dec.Banner.PatternID != "box-breathing" || dec.Banner.NextPhase != 1 {
		t.Errorf("banner = %+v", dec.Banner)
	}
	if dec.Banner.Completed {
		t.Error("phase completion marked run complete")
	}
	if dec.Banner.Duration != BannerDuration {
		t.Errorf("banner duration = %v", dec.Banner.Duration)
	}
}

func TestFinishedBanner(t *testing.T) {
	d := New(nil, nil, nil)

	dec := d.Dispatch(engine.TimerFinished{PatternID: "free-time"}, false, Prefs{})

	if dec.Banner == nil || !dec.Banner.Completed {
		t.Fatalf("finished banner = %+v, want Completed", dec.Banner)
	}
	if dec.Banner.PatternID != "free-time" {
		t.Errorf("banner pattern = %q", dec.Banner.PatternID)
	}
}

// S6: permission denied, sound on, timer view inactive. No toast, one
// audio cue, one return banner, no error.
func TestScenarioPermissionDeniedDowngrade(t *testing.T) {
	toaster := &fakeToaster{}
	player := &fakePlayer{}
	d := New(toaster, player, nil)

	prefs := Prefs{NotificationsEnabled: true, SoundEnabled: true, Permission: PermissionDenied}
	dec := d.Dispatch(phaseEvent(), false, prefs)

	if len(toaster.pushed) != 0 {
		t.Errorf("pushed %d toasts with permission denied", len(toaster.pushed))
	}
	if dec.Toast != nil {
		t.Error("decision reports a toast")
	}
	if player.plays != 1 || !dec.Played {
		t.Errorf("plays = %d, Played = %v, want one cue", player.plays, dec.Played)
	}
	if dec.Banner == nil {
		t.Error("no return banner")
	}
}

func TestNotificationsDisabledSkipsToast(t *testing.T) {
	toaster := &fakeToaster{}
	d := New(toaster, &fakePlayer{}, nil)

	prefs := allOn()
	prefs.NotificationsEnabled = false
	dec := d.Dispatch(phaseEvent(), true, prefs)

	if len(toaster.pushed) != 0 || dec.Toast != nil {
		t.Error("toast fired while notifications disabled")
	}
	if !dec.Played {
		t.Error("sound should be independent of the toast preference")
	}
}

func TestSoundDisabledSkipsCue(t *testing.T) {
	player := &fakePlayer{}
	d := New(&fakeToaster{}, player, nil)

	prefs := allOn()
	prefs.SoundEnabled = false
	dec := d.Dispatch(phaseEvent(), true, prefs)

	if player.plays != 0 || dec.Played {
		t.Error("cue played while sound disabled")
	}
	if dec.Toast == nil {
		t.Error("toast should be independent of the sound preference")
	}
}

func TestChannelFailuresDowngradeSilently(t *testing.T) {
	toaster := &fakeToaster{err: errors.New("daemon unreachable")}
	player := &fakePlayer{err: errors.New("no audio device")}
	d := New(toaster, player, nil)

	dec := d.Dispatch(phaseEvent(), true, allOn())

	if dec.Toast != nil || dec.Played {
		t.Error("failing channels reported success")
	}
	if dec.Highlight == nil {
		t.Error("highlight suppressed by unrelated channel failures")
	}
}

func TestNilChannelsAreSkipped(t *testing.T) {
	d := New(nil, nil, nil)

	dec := d.Dispatch(phaseEvent(), false, allOn())

	if dec.Toast != nil || dec.Played {
		t.Error("absent capabilities reported success")
	}
	if dec.Banner == nil {
		t.Error("banner suppressed by absent capabilities")
	}
}

func TestToastPayload(t *testing.T) {
	toaster := &fakeToaster{}
	d := New(toaster, nil, nil)

	d.Dispatch(phaseEvent(), true, allOn())
	d.Dispatch(engine.TimerFinished{}, true, allOn())

	if len(toaster.pushed) != 2 {
		t.Fatalf("pushed %d toasts, want 2", len(toaster.pushed))
	}
	if toaster.pushed[0].Body != "Hold" {
		t.Errorf("phase toast body = %q", toaster.pushed[0].Body)
	}
	if toaster.pushed[1].Title != "Timer finished" {
		t.Errorf("finish toast title = %q", toaster.pushed[1].Title)
	}
}
