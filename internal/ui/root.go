package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/effect"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/leighmacdonald/folio/internal/schedule"
	"github.com/leighmacdonald/folio/internal/ui/input"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app. It owns the navigator and every
// view the navigator drives.
type rootModel struct {
	config       config.Config
	mode         config.Mode
	sched        *teaScheduler
	navigator    *nav.Navigator
	sections     []*sectionView
	spans        []span
	indicator    indicatorModel
	viewport     viewport.Model
	helpModel    helpModel
	statusModel  statusBarModel
	showHelp     bool
	dragging     bool
	height       int
	width        int
	headerHeight int
	footerHeight int
}

func newRootModel(conf config.Config, prof profile.Profile, clock schedule.Clock, build BuildInfo) (*rootModel, error) {
	specs := profile.Layout(prof)
	sections := make([]*sectionView, len(specs))
	navSections := make([]nav.Section, len(specs))
	labels := make([]string, len(specs))

	for idx, spec := range specs {
		sections[idx] = newSectionView(spec)
		navSections[idx] = sections[idx]
		labels[idx] = spec.Title
	}

	model := &rootModel{
		config:       conf,
		mode:         conf.Mode,
		sched:        newTeaScheduler(clock),
		sections:     sections,
		indicator:    newIndicatorModel(labels),
		viewport:     viewport.New(0, 0),
		helpModel:    newHelpModel(build),
		statusModel:  newStatusBarModel(build.Version),
		headerHeight: 1,
		footerHeight: 2,
	}

	navigator, errNav := nav.New(navSections, conf.StartSection, model.sched,
		nav.WithTiming(conf.Timing()),
		nav.WithIndicatorListener(model.onIndicator),
		nav.WithTransitionListener(model.onTransition),
		nav.WithLogger(slog.Default().With(slog.String("component", "nav"))))
	if errNav != nil {
		return nil, errNav
	}

	model.navigator = navigator

	return model, nil
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("folio"), m.sched.commands())
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	var cmd tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.layout()
	case timerMsg:
		m.sched.fire(msg.id)
	case config.Config:
		m.applyConfig(msg)
	case tea.KeyMsg:
		if m.isInitialized() {
			cmd = m.onKey(msg)
		}
	case tea.MouseMsg:
		if m.isInitialized() {
			m.onMouse(msg)
		}
	}

	if m.mode == config.ModeScroll && m.isInitialized() {
		m.refreshScroll()
	}

	return m, tea.Batch(cmd, m.sched.commands())
}

func (m *rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	contentHeight := m.contentHeight()

	var content string
	switch {
	case m.showHelp:
		content = m.helpModel.View()
	case m.mode == config.ModeScroll:
		content = m.viewport.View()
	default:
		content = m.sections[m.navigator.Current()].Render(m.width, contentHeight, false)
	}

	current := m.navigator.Current()
	footer := lipgloss.JoinVertical(lipgloss.Left,
		m.indicator.Bar(),
		m.statusModel.View(m.width, current, m.navigator.Count(), m.sections[current].spec.Title, m.mode))
	ctr := styles.ContentContainerStyle.Width(m.width).Height(contentHeight).MaxHeight(contentHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, m.indicator.Dots(), ctr, footer))
}

func (m *rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m *rootModel) contentHeight() int {
	return max(m.height-m.headerHeight-m.footerHeight, 1)
}

func (m *rootModel) layout() {
	m.indicator.setWidth(m.width)
	m.viewport.Width = m.width
	m.viewport.Height = m.contentHeight()
	m.refreshScroll()
}

// refreshScroll renders every section into the scroll viewport and records the line span of each.
func (m *rootModel) refreshScroll() {
	contentHeight := m.contentHeight()
	rendered := make([]string, len(m.sections))
	m.spans = make([]span, len(m.sections))
	offset := 0

	for idx, section := range m.sections {
		rendered[idx] = section.Render(m.width, contentHeight, true)
		height := lipgloss.Height(rendered[idx])
		m.spans[idx] = span{start: offset, end: offset + height}
		offset += height
	}

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, rendered...))
}

func (m *rootModel) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, input.Default.Quit):
		return tea.Quit
	case key.Matches(msg, input.Default.Help):
		m.showHelp = !m.showHelp

		return nil
	case key.Matches(msg, input.Default.Back):
		m.showHelp = false

		return nil
	}

	if m.showHelp {
		return nil
	}

	if key.Matches(msg, input.Default.Mode) {
		if m.mode == config.ModeSnap {
			m.setMode(config.ModeScroll)
		} else {
			m.setMode(config.ModeSnap)
		}

		return nil
	}

	navKey := keyFor(msg)
	if m.mode == config.ModeScroll && !jumpKey(navKey) {
		// Line and page movement belongs to the viewport in scroll mode.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.observe()

		return cmd
	}

	if navKey != nav.KeyNone {
		m.navigator.OnInput(nav.KeyEvent{Key: navKey})
	}

	return nil
}

func (m *rootModel) onMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if m.mode == config.ModeScroll {
			m.viewport, _ = m.viewport.Update(msg)
			m.observe()

			return
		}

		delta := 1.0
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		m.navigator.OnInput(nav.WheelEvent{DeltaY: delta})
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if m.mode == config.ModeSnap {
			m.dragging = true
			m.navigator.OnInput(m.touchStart(msg))
		}
	case msg.Action == tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.navigator.OnInput(m.touchEnd(msg))
		}

		if idx, found := m.indicator.dotAt(msg); found {
			m.navigator.OnInput(nav.DotEvent{Index: idx})
		}
	}
}

func (m *rootModel) touchStart(msg tea.MouseMsg) nav.TouchStartEvent {
	cell := float64(m.config.CellHeightPx)

	return nav.TouchStartEvent{X: float64(msg.X) * cell, Y: float64(msg.Y) * cell}
}

func (m *rootModel) touchEnd(msg tea.MouseMsg) nav.TouchEndEvent {
	cell := float64(m.config.CellHeightPx)

	return nav.TouchEndEvent{X: float64(msg.X) * cell, Y: float64(msg.Y) * cell}
}

// observe reports the section brought into view by viewport scrolling.
func (m *rootModel) observe() {
	if idx := intersecting(m.spans, m.viewport.YOffset, m.viewport.Height, visibilityThreshold); idx >= 0 {
		m.navigator.OnSectionIntersected(idx)
	}
}

func (m *rootModel) setMode(mode config.Mode) {
	m.mode = mode
	if mode == config.ModeScroll {
		m.refreshScroll()
		m.scrollTo(m.navigator.Current())
		m.notify("Scroll mode", false)

		return
	}

	// Sections reached by scrolling were never revealed by the navigator.
	if !m.navigator.Transitioning() {
		for _, element := range m.sections[m.navigator.Current()].Elements() {
			nav.Show(element)
		}
	}

	m.notify("Snap mode", false)
}

func (m *rootModel) scrollTo(idx int) {
	if idx >= 0 && idx < len(m.spans) {
		m.viewport.SetYOffset(m.spans[idx].start)
	}
}

func (m *rootModel) applyConfig(conf config.Config) {
	m.config = conf
	m.navigator.Configure(conf.Timing())
	if conf.Mode != m.mode {
		m.setMode(conf.Mode)
	}

	m.notify("Config reloaded", false)
}

func (m *rootModel) notify(message string, isError bool) {
	if m.statusModel.notice != nil {
		m.statusModel.notice.Dismiss()
	}

	notice := effect.NewNotice(message, isError, nil)
	notice.Start(m.sched)
	m.statusModel.notice = notice
}

func (m *rootModel) onIndicator(indicator nav.Indicator) {
	m.indicator.set(indicator)
	m.sections[indicator.Current].visit(m.sched)
}

func (m *rootModel) onTransition(from int, to int) {
	slog.Debug("Section changed", slog.String("from", m.sections[from].spec.ID),
		slog.String("to", m.sections[to].spec.ID))

	if m.mode == config.ModeScroll {
		m.scrollTo(to)
	}
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case timerMsg:
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
