package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamesAreOverrated/pattern-timer/pkg/app"
	"github.com/NamesAreOverrated/pattern-timer/pkg/components"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/notify"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
)

// Settings rows, in display order.
const (
	rowNotifications = iota
	rowSound
	rowPermission
	rowCount
)

// SettingsView toggles the notification preferences. Every change is
// persisted immediately through the root model.
type SettingsView struct {
	state  *config.State
	cursor int
}

// NewSettings creates the settings view over the shared preference
// store.
func NewSettings(state *config.State) *SettingsView {
	return &SettingsView{state: state}
}

// Route implements app.View.
func (v *SettingsView) Route() app.Route { return app.RouteSettings }

// Title implements app.View.
func (v *SettingsView) Title() string { return "Settings" }

// Update implements app.View.
func (v *SettingsView) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey implements app.View.
func (v *SettingsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < rowCount-1 {
			v.cursor++
		}
	case "enter", " ":
		return v.toggleCurrent()
	}
	return nil
}

// toggleCurrent flips the highlighted preference and asks the model to
// persist the store.
func (v *SettingsView) toggleCurrent() tea.Cmd {
	switch v.cursor {
	case rowNotifications:
		v.state.NotificationsEnabled = !v.state.NotificationsEnabled
	case rowSound:
		v.state.SoundEnabled = !v.state.SoundEnabled
	case rowPermission:
		v.state.NotificationsPermission = nextPermission(v.state.NotificationsPermission)
	}
	return func() tea.Msg { return app.PrefsChangedEvent{} }
}

// nextPermission cycles default -> granted -> denied -> default.
func nextPermission(p string) string {
	switch notify.Permission(p) {
	case notify.PermissionDefault:
		return string(notify.PermissionGranted)
	case notify.PermissionGranted:
		return string(notify.PermissionDenied)
	default:
		return string(notify.PermissionDefault)
	}
}

// View implements app.View.
func (v *SettingsView) View(width, height int) string {
	th := theme.Current
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Accent))
	name := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Foreground))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))
	on := lipgloss.NewStyle().Foreground(lipgloss.Color(th.StatusRunning))
	off := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim))

	onOff := func(b bool) string {
		if b {
			return on.Render("on")
		}
		return off.Render("off")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Desktop notifications", onOff(v.state.NotificationsEnabled)},
		{"Sound cue", onOff(v.state.SoundEnabled)},
		{"Notification permission", name.Render(v.state.NotificationsPermission)},
	}

	var lines []string
	for i, row := range rows {
		marker := "  "
		style := name
		if i == v.cursor {
			marker = "> "
			style = active
		}
		label := components.PadRight(row.label, 26)
		lines = append(lines, marker+style.Render(label)+row.value)
	}

	if v.state.NotificationsEnabled &&
		notify.Permission(v.state.NotificationsPermission) != notify.PermissionGranted {
		lines = append(lines, "",
			dim.Render("toasts stay silent until permission is granted"))
	}
	lines = append(lines, "", dim.Render("↑/↓ move · enter toggle"))

	return components.CenterBlock(strings.Join(lines, "\n"), width, height)
}
