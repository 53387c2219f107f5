// Package session ties the date window, the viewport tracker and the
// selection together for one calendar view.
//
// A Session is driven by discrete events (mount, layout, scroll, click) that
// the host delivers one at a time in arrival order. It holds no locks; hosts
// that receive events concurrently must serialise them.
package session

import (
	"time"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/viewport"
)

// Loading sequence timings.
const (
	DefaultFadeDelay = 500 * time.Millisecond
	DefaultHideDelay = 250 * time.Millisecond
)

// Options configures a Session.
type Options struct {
	// Today is the injected current date. It anchors the initial window and
	// the IsToday flag.
	Today       calendar.Date
	Mode        selection.Mode
	Threshold   int
	LabelOffset int
	MaxMonths   int
	FadeDelay   time.Duration
	HideDelay   time.Duration
}

// Session is the core state of one calendar view.
type Session struct {
	opts      Options
	window    *calendar.Window
	selection *selection.Selection
	tracker   *viewport.Tracker
	guard     viewport.Guard
	loader    loader
	centered  bool
}

// New creates a session with the three-month window around opts.Today. A
// zero Today falls back to the local calendar day.
func New(opts Options) *Session {
	if opts.Today.IsZero() {
		opts.Today = calendar.Today()
	}
	if opts.FadeDelay <= 0 {
		opts.FadeDelay = DefaultFadeDelay
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}
	return &Session{
		opts:      opts,
		window:    calendar.NewWindow(opts.Today, calendar.WindowOptions{MaxMonths: opts.MaxMonths}),
		selection: selection.New(opts.Mode),
		tracker:   viewport.NewTracker(opts.Threshold, opts.LabelOffset),
	}
}

// Today returns the injected current date.
func (s *Session) Today() calendar.Date { return s.opts.Today }

// Days returns the materialised days in order.
func (s *Session) Days() []calendar.Day { return s.window.Days() }

// Window exposes the underlying window for read-only queries.
func (s *Session) Window() *calendar.Window { return s.window }

// Selection returns the current selection endpoints.
func (s *Session) Selection() selection.State { return s.selection.State() }

// Mode returns the selection mode.
func (s *Session) Mode() selection.Mode { return s.selection.Mode() }

// Label returns the visible "Month Year" label.
func (s *Session) Label() string { return s.tracker.Label() }

// Tracker returns the viewport tracker, for hosts that locate visible days.
func (s *Session) Tracker() *viewport.Tracker { return s.tracker }

// Flags derives the render predicates for one day.
func (s *Session) Flags(day calendar.Date) selection.Flags {
	return selection.Derive(s.selection.State(), day, s.opts.Today)
}

// OnLayout is delivered after the host renders a new day list. It refreshes
// the label and, the first time it is called while the loading overlay is
// up, asks the host to scroll to the middle of the content.
func (s *Session) OnLayout(m viewport.Metrics, visibleTopKey string) (viewport.Intent, bool) {
	s.guard.Settle()
	s.tracker.CurrentLabel(s.window.Days(), visibleTopKey)
	if s.centered || !s.Loading() {
		return viewport.Intent{}, false
	}
	s.centered = true
	return viewport.ScrollToMiddle(m), true
}

// OnScroll refreshes the label and extends the window when the scroll
// position is near either end. It returns the applied extension. A direction
// extends at most once between two OnLayout calls.
func (s *Session) OnScroll(m viewport.Metrics, visibleTopKey string) (calendar.Extension, bool) {
	s.tracker.CurrentLabel(s.window.Days(), visibleTopKey)
	action := s.tracker.OnScroll(m)
	if !s.guard.Allow(action, s.window.Days()) {
		return calendar.Extension{}, false
	}
	dir, _ := action.Direction()
	return s.window.Extend(dir), true
}

// Extend grows the window unconditionally, bypassing the scroll thresholds.
func (s *Session) Extend(dir calendar.Direction) calendar.Extension {
	return s.window.Extend(dir)
}

// OnDayClicked applies a click to the selection.
func (s *Session) OnDayClicked(day calendar.Date) selection.State {
	return s.selection.Click(day)
}

// ClearSelection resets the selection to Empty.
func (s *Session) ClearSelection() {
	s.selection.Clear()
}

// OnScrollToTodayRequested returns the intent centring today's cell, or
// viewport.ErrTargetNotFound when today is outside the window.
func (s *Session) OnScrollToTodayRequested(locate viewport.Locator, m viewport.Metrics) (viewport.Intent, error) {
	return viewport.ScrollToToday(s.window.Days(), s.opts.Today, locate, m)
}
