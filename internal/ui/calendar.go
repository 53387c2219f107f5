package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/session"
	scroll "github.com/chris-regnier/calscroll/internal/viewport"
)

const (
	// headerLines is the number of lines drawn above the grid viewport.
	headerLines = 2
	// footerLines is the number of lines drawn below it.
	footerLines = 2
	// defaultPanelWidth caps the panel when no max width is configured.
	defaultPanelWidth = 56
	// maxFill bounds the extensions made to fill a tall terminal.
	maxFill = 24
)

// TUIConfig holds configuration needed by the TUI.
type TUIConfig struct {
	MaxWidth int   // maximum panel width (0 = default)
	Theme    Theme // resolved theme
}

// loadTickMsg fires when a loading overlay timer expires.
type loadTickMsg struct {
	gen uint64
}

func loadTick(step session.LoadStep) tea.Cmd {
	return tea.Tick(step.Delay, func(time.Time) tea.Msg {
		return loadTickMsg{gen: step.Gen}
	})
}

// calendarModel hosts a session in a Bubble Tea program. Every message is
// handled on the program's single update loop, so session events are
// delivered one at a time in arrival order.
type calendarModel struct {
	sess     *session.Session
	cfg      TUIConfig
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	grid     grid
	cursor   calendar.Date
	status   string
	// Help overlay
	helpActive bool
	// Common
	width  int
	height int
	ready  bool
}

func newCalendarModel(sess *session.Session, cfg TUIConfig) calendarModel {
	h := help.New()
	h.Styles.ShortKey = cfg.Theme.AccentStyle()
	h.Styles.ShortDesc = cfg.Theme.HelpStyle()
	h.Styles.ShortSeparator = cfg.Theme.HelpStyle()
	h.Styles.Ellipsis = cfg.Theme.HelpStyle()

	return calendarModel{
		sess:   sess,
		cfg:    cfg,
		keys:   defaultKeys,
		help:   h,
		grid:   newGrid(sess.Days()),
		cursor: sess.Today(),
	}
}

func (m calendarModel) Init() tea.Cmd {
	return loadTick(m.sess.OnMounted())
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTickMsg:
		if step, ok := m.sess.AdvanceLoad(msg.gen); ok {
			return m, loadTick(step)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		anchor := m.topKey()
		if !m.ready {
			m.viewport = viewport.New(rowWidth, m.viewportHeight())
			m.viewport.MouseWheelEnabled = true
			m.ready = true
		} else {
			m.viewport.Height = m.viewportHeight()
		}
		m.help.Width = m.contentWidth()
		m.relayout(anchor)
		return m, nil

	case tea.MouseMsg:
		// Overlays hide the grid.
		if !m.ready || m.helpActive || m.sess.Loading() {
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if d, ok := m.dayAt(msg.X, msg.Y); ok {
				m.cursor = d.Date
				m.sess.OnDayClicked(d.Date)
				m.refresh()
			}
			return m, nil
		}
		before := m.viewport.YOffset
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.viewport.YOffset != before {
			m.afterScroll()
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m calendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.sess.Teardown()
		return m, tea.Quit
	}
	if m.helpActive {
		if key.Matches(msg, m.keys.Help, m.keys.Clear) {
			m.helpActive = false
		}
		return m, nil
	}
	if !m.ready {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.helpActive = true
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.Select):
		m.sess.OnDayClicked(m.cursor)
		m.refresh()
	case key.Matches(msg, m.keys.Clear):
		m.sess.ClearSelection()
		m.refresh()
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, m.keys.Today):
		m.scrollToToday()
	}
	return m, nil
}

func (m *calendarModel) viewportHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

// contentWidth returns the panel width, respecting maxWidth configuration.
func (m *calendarModel) contentWidth() int {
	limit := m.cfg.MaxWidth
	if limit <= 0 {
		limit = defaultPanelWidth
	}
	return max(min(m.width, limit), rowWidth)
}

func (m *calendarModel) metrics() scroll.Metrics {
	return scroll.Metrics{
		ScrollTop:    m.viewport.YOffset,
		ClientHeight: m.viewport.Height,
		ScrollHeight: m.grid.rows(),
	}
}

// topKey returns the key of the first day drawn on the top visible row.
func (m *calendarModel) topKey() string {
	if !m.ready {
		return ""
	}
	k, _ := m.sess.Tracker().FirstVisible(m.sess.Days(), m.grid.locate, m.viewport.YOffset)
	return k
}

// refresh redraws the grid into the viewport.
func (m *calendarModel) refresh() {
	m.viewport.SetContent(m.grid.render(m.sess, m.cfg.Theme, m.cursor))
}

// regrid rebuilds the grid after the window changed and keeps anchor on the
// same screen row.
func (m *calendarModel) regrid(anchor string) {
	oldRow, hadAnchor := m.grid.rowOf(anchor)
	m.grid = newGrid(m.sess.Days())
	m.clampCursor()
	m.refresh()
	if newRow, ok := m.grid.rowOf(anchor); ok && hadAnchor {
		m.viewport.SetYOffset(m.viewport.YOffset + newRow - oldRow)
	}
}

// relayout regrids, fills the screen when the window is shorter than the
// viewport, and reports the new layout to the session.
func (m *calendarModel) relayout(anchor string) {
	m.regrid(anchor)

	threshold := m.sess.Tracker().Threshold
	dir := calendar.Forward
	for i := 0; i < maxFill && m.grid.rows() <= m.viewport.Height+2*threshold; i++ {
		if m.sess.Window().Full() {
			break
		}
		top := m.topKey()
		m.sess.Extend(dir)
		m.regrid(top)
		if dir == calendar.Forward {
			dir = calendar.Backward
		} else {
			dir = calendar.Forward
		}
	}

	if intent, ok := m.sess.OnLayout(m.metrics(), m.topKey()); ok {
		m.apply(intent)
	}
}

// afterScroll reports the scroll position and applies any extension.
func (m *calendarModel) afterScroll() {
	anchor := m.topKey()
	if _, ok := m.sess.OnScroll(m.metrics(), anchor); ok {
		m.relayout(anchor)
	}
}

func (m *calendarModel) scrollTo(offset int) {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(offset)
	if m.viewport.YOffset != before {
		m.afterScroll()
	}
}

func (m *calendarModel) apply(intent scroll.Intent) {
	if intent.Type != scroll.IntentScrollTo {
		return
	}
	m.scrollTo(intent.TargetOffset)
}

func (m *calendarModel) scrollToToday() {
	intent, err := m.sess.OnScrollToTodayRequested(m.grid.locate, m.metrics())
	if errors.Is(err, scroll.ErrTargetNotFound) {
		m.status = fmt.Sprintf("%s is outside the loaded months", m.sess.Today())
		return
	}
	m.cursor = m.sess.Today()
	m.refresh()
	m.apply(intent)
}

// moveCursor moves the cursor by n days, growing the window when the cursor
// would leave it.
func (m *calendarModel) moveCursor(n int) {
	target := m.cursor.AddDays(n)
	if !m.sess.Window().Contains(target) {
		dir := calendar.Forward
		if target.Before(m.sess.Window().Start()) {
			dir = calendar.Backward
		}
		anchor := m.topKey()
		m.sess.Extend(dir)
		m.relayout(anchor)
		if !m.sess.Window().Contains(target) {
			return
		}
	}
	m.cursor = target
	m.refresh()

	row, ok := m.grid.rowOf(target.Key())
	if !ok {
		return
	}
	switch {
	case row < m.viewport.YOffset:
		m.scrollTo(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.scrollTo(row - m.viewport.Height + 1)
	}
}

// clampCursor keeps the cursor inside the window after an eviction.
func (m *calendarModel) clampCursor() {
	w := m.sess.Window()
	switch {
	case m.cursor.Before(w.Start()):
		m.cursor = w.Start()
	case m.cursor.After(w.End()):
		m.cursor = w.End()
	}
}

// dayAt maps a screen cell to the day drawn there.
func (m *calendarModel) dayAt(x, y int) (calendar.Day, bool) {
	cw := m.contentWidth()
	leftPad := 0
	if cw < m.width {
		leftPad = (m.width - cw) / 2
	}
	x -= leftPad + gutterWidth
	y -= headerLines
	if x < 0 || y < 0 || y >= m.viewport.Height {
		return calendar.Day{}, false
	}
	return m.grid.at(y+m.viewport.YOffset, x/cellWidth)
}

func (m calendarModel) View() string {
	if !m.ready {
		// No PaintScreen here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}
	if m.helpActive {
		return m.cfg.Theme.ClearLineEnds(m.helpOverlay())
	}
	if m.sess.Loading() {
		return m.cfg.Theme.ClearLineEnds(m.loadingOverlay())
	}

	cw := m.contentWidth()
	theme := m.cfg.Theme

	title := m.sess.Label()
	if title == "" {
		title = m.cursor.MonthLabel()
	}
	header := theme.HeaderStyle().Width(cw).Render(fmt.Sprintf("%s  (%s)", title, m.sess.Mode()))
	weekdays := theme.GutterStyle().Width(cw).Render(weekdayHeader)
	body := theme.ViewPaneStyle().Width(cw).Render(m.viewport.View())
	summary := theme.AccentStyle().Width(cw).Render(selectionSummary(m.sess.Selection()))

	var footer string
	if m.status != "" {
		footer = theme.StatusStyle().Width(cw).Render(m.status)
	} else {
		footer = theme.HelpStyle().Width(cw).Render(m.help.View(m.keys))
	}

	result := header + "\n" + weekdays + "\n" + body + "\n" + summary + "\n" + footer
	return theme.PaintScreen(result, m.width, m.height, cw)
}

func (m calendarModel) helpOverlay() string {
	body := RenderHelp(48, m.cfg.Theme.MarkdownStyle)
	box := m.cfg.Theme.BorderStyle().
		Padding(0, 1).
		Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(m.cfg.Theme.Background))
}

func (m calendarModel) loadingOverlay() string {
	style := m.cfg.Theme.AccentStyle()
	if m.sess.FadingOut() {
		style = m.cfg.Theme.HelpStyle()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		style.Render("Loading calendar..."),
		lipgloss.WithWhitespaceBackground(m.cfg.Theme.Background))
}

// RunTUI launches the interactive calendar and returns the selection held
// when the user quits.
func RunTUI(sess *session.Session, cfg TUIConfig) (selection.State, error) {
	m := newCalendarModel(sess, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return selection.State{}, err
	}
	return sess.Selection(), nil
}
