package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
)

func TestSettingsTogglesPersist(t *testing.T) {
	st := config.DefaultState()
	v := NewSettings(&st)

	cmd := v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if st.NotificationsEnabled {
		t.Fatal("notifications toggle did not flip")
	}
	if cmd == nil {
		t.Fatal("toggle must request persistence")
	}
	if _, ok := cmd().(app.PrefsChangedEvent); !ok {
		t.Fatalf("command message = %T, want PrefsChangedEvent", cmd())
	}

	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if st.SoundEnabled {
		t.Fatal("sound toggle did not flip")
	}
}

func TestSettingsPermissionCycle(t *testing.T) {
	st := config.DefaultState()
	v := NewSettings(&st)
	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})

	want := []string{"granted", "denied", "default"}
	for _, w := range want {
		v.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
		if st.NotificationsPermission != w {
			t.Fatalf("permission = %q, want %q", st.NotificationsPermission, w)
		}
	}
}

func TestSettingsViewWarnsWithoutPermission(t *testing.T) {
	st := config.DefaultState()
	v := NewSettings(&st)

	out := v.View(80, 24)
	if !strings.Contains(out, "toasts stay silent") {
		t.Fatalf("missing permission hint:\n%s", out)
	}

	st.NotificationsPermission = "granted"
	out = v.View(80, 24)
	if strings.Contains(out, "toasts stay silent") {
		t.Fatal("hint should disappear once granted")
	}
}
