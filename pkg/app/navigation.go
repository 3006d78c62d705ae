package app

import tea "github.com/charmbracelet/bubbletea"

// Route identifies a view. The timer route is special: while it is
// active, phase completions flash in-view; on any other route they raise
// the return banner instead.
type Route string

const (
	RouteTimer    Route = "/timer"
	RoutePatterns Route = "/patterns"
	RouteSettings Route = "/settings"
)

// NavigateCmd returns a Cmd that requests a route change.
func NavigateCmd(r Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateEvent{Route: r}
	}
}

// StatusCmd returns a Cmd that posts a transient status-bar message.
func StatusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusEvent{Message: msg}
	}
}

// Navigate switches to the view registered for r. Unknown routes are
// ignored so a stale banner cannot strand the UI.
func (m *Model) Navigate(r Route) {
	if _, ok := m.views[r]; ok {
		m.route = r
	}
}

// NextRoute cycles to the next route in display order, wrapping around.
func (m *Model) NextRoute() {
	if len(m.order) == 0 {
		return
	}
	idx := m.routeIndex()
	m.route = m.order[(idx+1)%len(m.order)]
}

// PrevRoute cycles to the previous route, wrapping around.
func (m *Model) PrevRoute() {
	if len(m.order) == 0 {
		return
	}
	idx := m.routeIndex()
	m.route = m.order[(idx-1+len(m.order))%len(m.order)]
}

// routeIndex returns the index of the active route in the order list,
// or 0 if not found.
func (m *Model) routeIndex() int {
	for i, r := range m.order {
		if r == m.route {
			return i
		}
	}
	return 0
}
