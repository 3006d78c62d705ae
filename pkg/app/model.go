package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/NamesAreOverrated/pattern-timer/pkg/clock"
	"github.com/NamesAreOverrated/pattern-timer/pkg/components"
	"github.com/NamesAreOverrated/pattern-timer/pkg/config"
	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/notify"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
)

// statusDuration is how long a transient status-bar message stays up.
const statusDuration = 4 * time.Second

// defaultTickInterval is the tick cadence when the config does not set
// one.
const defaultTickInterval = time.Second

// View is one routed screen. The root model forwards messages and key
// events to the active view and asks it to render at a given size.
type View interface {
	Route() Route
	Title() string
	Update(msg tea.Msg) tea.Cmd
	HandleKey(msg tea.KeyMsg) tea.Cmd
	View(width, height int) string
}

// InputCapturer is an optional View extension. While CapturesInput
// reports true (e.g. the inline time editor is open) the model forwards
// every key except ctrl+c to the view instead of matching global
// bindings.
type InputCapturer interface {
	CapturesInput() bool
}

// Deps bundles the collaborators the root model drives.
type Deps struct {
	Engine     *engine.Engine
	Dispatcher *notify.Dispatcher
	Clock      clock.Clock  // nil means RealClock
	Logger     *slog.Logger // nil means discard
	StatePath  string       // where preference changes are persisted
}

// Model is the Bubbletea root model. It owns the engine, the tick loop,
// and the return banner; views own only presentation state.
type Model struct {
	cfg   *config.Config
	state *config.State

	eng        *engine.Engine
	dispatcher *notify.Dispatcher
	clk        clock.Clock
	meter      *clock.DeltaMeter
	log        *slog.Logger
	statePath  string

	route Route
	order []Route
	views map[Route]View

	banner      *notify.Banner
	bannerUntil time.Time

	status      string
	statusUntil time.Time

	keys KeyMap
	help help.Model
	zone *zone.Manager

	width    int
	height   int
	quitting bool
}

// NewModel creates the root model. The first view's route becomes the
// initial route; by convention that is the timer.
func NewModel(cfg *config.Config, state *config.State, deps Deps, views ...View) *Model {
	if deps.Clock == nil {
		deps.Clock = clock.RealClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		cfg:        cfg,
		state:      state,
		eng:        deps.Engine,
		dispatcher: deps.Dispatcher,
		clk:        deps.Clock,
		meter:      clock.NewDeltaMeter(deps.Clock),
		log:        deps.Logger,
		statePath:  deps.StatePath,
		views:      make(map[Route]View, len(views)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		zone:       zone.New(),
	}
	for _, v := range views {
		m.order = append(m.order, v.Route())
		m.views[v.Route()] = v
	}
	if len(m.order) > 0 {
		m.route = m.order[0]
	}
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.meter.Mark()
	return TickCmd(m.tickInterval())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickEvent:
		return m, tea.Batch(m.handleTick(msg)...)

	case NavigateEvent:
		m.Navigate(msg.Route)
		return m, nil

	case StatusEvent:
		m.status = msg.Message
		m.statusUntil = m.clk.Now().Add(statusDuration)
		return m, nil

	case PrefsChangedEvent:
		m.saveState()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}

	return m, m.broadcast(msg)
}

// handleTick advances the engine by the measured delta, dispatches any
// resulting events, expires soft timers, and schedules the next tick.
func (m *Model) handleTick(ev TickEvent) []tea.Cmd {
	var cmds []tea.Cmd

	delta := m.meter.Tick()
	for _, engEv := range m.eng.Tick(delta) {
		dec := m.dispatcher.Dispatch(engEv, m.route == RouteTimer, m.prefs())
		if dec.Banner != nil {
			m.banner = dec.Banner
			m.bannerUntil = m.clk.Now().Add(dec.Banner.Duration)
		}
		if cmd := m.broadcast(EngineEvent{Event: engEv, Highlight: dec.Highlight}); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	now := m.clk.Now()
	if m.banner != nil && now.After(m.bannerUntil) {
		m.banner = nil
	}
	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	if cmd := m.broadcast(ev); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, TickCmd(m.tickInterval()))
	return cmds
}

// handleKey matches global bindings, then forwards to the active view.
// A successful start or resume re-marks the delta meter so time spent
// paused never reaches the engine.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	if v, ok := m.activeView().(InputCapturer); ok && v.CapturesInput() {
		return m.forwardKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.NextView):
		m.NextRoute()
		return nil
	case key.Matches(msg, m.keys.PrevView):
		m.PrevRoute()
		return nil
	case key.Matches(msg, m.keys.ConsumeBanner):
		if m.banner != nil {
			m.consumeBanner()
			return nil
		}
	}

	return m.forwardKey(msg)
}

func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	view := m.activeView()
	if view == nil {
		return nil
	}
	before := m.eng.Status()
	cmd := view.HandleKey(msg)
	if before != engine.StatusRunning && m.eng.Status() == engine.StatusRunning {
		m.meter.Mark()
	}
	return cmd
}

// handleMouse resolves zone clicks on the tab bar and the banner.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return
	}
	for _, r := range m.order {
		if m.zone.Get("tab:" + string(r)).InBounds(msg) {
			m.Navigate(r)
			return
		}
	}
	if m.banner != nil && m.zone.Get("banner").InBounds(msg) {
		m.consumeBanner()
	}
}

// consumeBanner applies the banner's re-entry data and returns to the
// timer view. When the engine still holds the banner's pattern and is
// not running, the displayed phase moves to the banner's next phase; a
// running engine is left untouched to avoid a visible jump. An engine
// with no pattern at all is rebuilt from the banner; one holding a
// different pattern kept whatever the user selected in the meantime, so
// only the navigation happens.
func (m *Model) consumeBanner() {
	b := m.banner
	m.banner = nil
	m.Navigate(RouteTimer)
	if b.PatternID == "" || b.Completed {
		return
	}

	snap := m.eng.Snapshot()
	switch {
	case snap.PatternID == b.PatternID:
		if snap.Status != engine.StatusRunning {
			if err := m.eng.JumpToPhase(b.NextPhase); err != nil {
				m.log.Warn("banner re-entry jump failed", "error", err)
			}
		}
	case snap.PatternID == "":
		if err := m.eng.SetPattern(b.PatternID); err != nil {
			m.log.Warn("banner re-entry rebuild failed", "error", err)
			return
		}
		if err := m.eng.JumpToPhase(b.NextPhase); err != nil {
			m.log.Warn("banner re-entry jump failed", "error", err)
		}
	}
}

// broadcast forwards msg to every view and batches their commands.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range m.order {
		if cmd := m.views[r].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) activeView() View {
	return m.views[m.route]
}

func (m *Model) prefs() notify.Prefs {
	return notify.Prefs{
		NotificationsEnabled: m.state.NotificationsEnabled,
		SoundEnabled:         m.state.SoundEnabled,
		Permission:           notify.Permission(m.state.NotificationsPermission),
	}
}

func (m *Model) saveState() {
	if m.statePath == "" {
		return
	}
	if err := config.SaveState(m.statePath, *m.state); err != nil {
		m.log.Error("failed to persist preferences", "error", err)
	}
}

func (m *Model) tickInterval() time.Duration {
	if m.cfg != nil && m.cfg.General.TickInterval.Duration > 0 {
		return m.cfg.General.TickInterval.Duration
	}
	return defaultTickInterval
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	th := theme.Current
	tabBar := m.renderTabBar(th)

	bannerLine := ""
	bannerRows := 0
	if m.banner != nil && m.route != RouteTimer {
		bannerLine = m.renderBanner(th)
		bannerRows = 1
	}

	helpView := m.help.View(m.keys)
	helpRows := lipgloss.Height(helpView)

	contentH := m.height - 1 - bannerRows - 1 - helpRows
	if contentH < 1 {
		contentH = 1
	}
	content := ""
	if v := m.activeView(); v != nil {
		content = v.View(m.width, contentH)
	}

	statusBar := m.renderStatusBar(th)

	rows := []string{tabBar}
	if bannerRows > 0 {
		rows = append(rows, bannerLine)
	}
	rows = append(rows, content, statusBar, helpView)

	return m.zone.Scan(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderTabBar draws one clickable tab per route.
func (m *Model) renderTabBar(th theme.Theme) string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(th.Accent)).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(th.Dim)).
		Padding(0, 1)

	tabs := make([]string, 0, len(m.order))
	for _, r := range m.order {
		label := m.views[r].Title()
		style := inactive
		if r == m.route {
			style = active
		}
		tabs = append(tabs, m.zone.Mark("tab:"+string(r), style.Render(label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderBanner draws the dismissible return banner shown outside the
// timer view.
func (m *Model) renderBanner(th theme.Theme) string {
	var text string
	switch {
	case m.banner.Completed && m.banner.PatternID != "":
		text = fmt.Sprintf("⏱ %s finished", m.banner.PatternID)
	case m.banner.Completed:
		text = "⏱ timer finished"
	default:
		text = fmt.Sprintf("⏱ %s moved to phase %d", m.banner.PatternID, m.banner.NextPhase+1)
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(th.BannerBG)).
		Foreground(lipgloss.Color(th.Foreground)).
		Padding(0, 1).
		Width(m.width)
	text = components.Truncate(text+"  [b: back to timer]", m.width-2)
	return m.zone.Mark("banner", style.Render(text))
}

func (m *Model) renderStatusBar(th theme.Theme) string {
	msg := m.status
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.Dim)).Width(m.width)
	if msg == "" {
		snap := m.eng.Snapshot()
		msg = string(snap.Status)
		if snap.PatternID != "" {
			msg = fmt.Sprintf("%s · %s", snap.PatternID, snap.Status)
		}
		return style.Render(msg)
	}
	return style.Foreground(lipgloss.Color(th.Error)).Render(msg)
}

// Accessors used by tests and main.

// RouteActive returns the current route.
func (m *Model) RouteActive() Route { return m.route }

// Banner returns the pending return banner, or nil.
func (m *Model) Banner() *notify.Banner { return m.banner }

// Quitting reports whether the model received a quit key.
func (m *Model) Quitting() bool { return m.quitting }

// HelpVisible reports whether expanded help is shown.
func (m *Model) HelpVisible() bool { return m.help.ShowAll }

// Width returns the last seen terminal width.
func (m *Model) Width() int { return m.width }

// Height returns the last seen terminal height.
func (m *Model) Height() int { return m.height }
