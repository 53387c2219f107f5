package session

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/viewport"
)

var march10 = calendar.Date{Year: 2024, Month: time.March, Day: 10}

func newTestSession() *Session {
	return New(Options{Today: march10, Threshold: 100, LabelOffset: 30})
}

// rowLocator lays days out in a continuous Sunday-first grid, 40 units a row.
func rowLocator(days []calendar.Day) viewport.Locator {
	return viewport.WeekRows(days, 40)
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()
	if s.Today() != march10 {
		t.Errorf("Today() = %s", s.Today())
	}
	if s.Window().Months() != 3 {
		t.Errorf("expected 3 months, got %d", s.Window().Months())
	}
	if s.Mode() != selection.ModeRange {
		t.Errorf("Mode() = %v", s.Mode())
	}
	if s.Phase() != PhaseIdle || s.Loading() {
		t.Errorf("phase = %v before mount", s.Phase())
	}
	if s.Label() != "" {
		t.Errorf("Label() = %q before layout", s.Label())
	}
}

func TestLoadingSequence(t *testing.T) {
	s := New(Options{Today: march10, FadeDelay: 10 * time.Millisecond})

	step := s.OnMounted()
	if step.Delay != 10*time.Millisecond {
		t.Errorf("fade delay = %v", step.Delay)
	}
	if !s.Loading() || s.FadingOut() {
		t.Fatalf("expected loading, got %v", s.Phase())
	}

	next, ok := s.AdvanceLoad(step.Gen)
	if !ok || next.Delay != DefaultHideDelay {
		t.Fatalf("expected hide step, got %+v, %v", next, ok)
	}
	if !s.FadingOut() || !s.Loading() {
		t.Fatalf("expected fading out, got %v", s.Phase())
	}

	if _, ok := s.AdvanceLoad(next.Gen); ok {
		t.Error("no step expected after hide")
	}
	if s.Loading() || s.Phase() != PhaseLoaded {
		t.Errorf("expected loaded, got %v", s.Phase())
	}
}

func TestTeardownCancelsPendingStep(t *testing.T) {
	s := newTestSession()
	step := s.OnMounted()
	s.Teardown()

	if _, ok := s.AdvanceLoad(step.Gen); ok {
		t.Error("stale step should not schedule another")
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("stale step changed phase to %v", s.Phase())
	}
}

func TestOnLayoutCentersOnce(t *testing.T) {
	s := newTestSession()
	s.OnMounted()
	m := viewport.Metrics{ClientHeight: 200, ScrollHeight: 560}

	intent, ok := s.OnLayout(m, "2024-3-1")
	if !ok || intent.TargetOffset != 280 || intent.Type != viewport.IntentScrollTo {
		t.Fatalf("first layout intent = %+v, %v", intent, ok)
	}
	if s.Label() != "March 2024" {
		t.Errorf("Label() = %q", s.Label())
	}
	if _, ok := s.OnLayout(m, ""); ok {
		t.Error("second layout should not scroll again")
	}
	if s.Label() != "March 2024" {
		t.Errorf("label reverted to %q", s.Label())
	}
}

func TestOnLayoutBeforeMountDoesNotScroll(t *testing.T) {
	s := newTestSession()
	if _, ok := s.OnLayout(viewport.Metrics{ClientHeight: 200, ScrollHeight: 560}, ""); ok {
		t.Error("layout without loading overlay should not scroll")
	}
}

func TestOnScrollExtends(t *testing.T) {
	s := newTestSession()

	ext, ok := s.OnScroll(viewport.Metrics{ScrollTop: 10, ClientHeight: 200, ScrollHeight: 560}, "")
	if !ok || ext.Direction != calendar.Backward || len(ext.Added) != 31 {
		t.Fatalf("expected January prepended, got %v %d", ext.Direction, len(ext.Added))
	}
	if s.Window().Start() != (calendar.Date{Year: 2024, Month: 1, Day: 1}) {
		t.Errorf("Start() = %s", s.Window().Start())
	}
	s.OnLayout(viewport.Metrics{ScrollTop: 10, ClientHeight: 200, ScrollHeight: 760}, "")

	ext, ok = s.OnScroll(viewport.Metrics{ScrollTop: 900, ClientHeight: 200, ScrollHeight: 1000}, "")
	if !ok || ext.Direction != calendar.Forward || len(ext.Added) != 31 {
		t.Fatalf("expected May appended, got %v %d", ext.Direction, len(ext.Added))
	}

	if _, ok := s.OnScroll(viewport.Metrics{ScrollTop: 400, ClientHeight: 200, ScrollHeight: 1000}, ""); ok {
		t.Error("middle scroll should not extend")
	}
	if s.Window().Months() != 5 {
		t.Errorf("Months() = %d, want 5", s.Window().Months())
	}
}

func TestOnScrollExtendsOncePerLayout(t *testing.T) {
	s := newTestSession()
	top := viewport.Metrics{ScrollTop: 0, ClientHeight: 200, ScrollHeight: 560}

	if _, ok := s.OnScroll(top, ""); !ok {
		t.Fatal("first event should extend")
	}
	// Stale metrics from before the re-render must not extend again.
	if _, ok := s.OnScroll(top, ""); ok {
		t.Fatal("duplicate event should be dropped until layout")
	}
	if s.Window().Months() != 4 {
		t.Errorf("Months() = %d, want 4", s.Window().Months())
	}

	s.OnLayout(viewport.Metrics{ScrollTop: 0, ClientHeight: 200, ScrollHeight: 760}, "")
	if _, ok := s.OnScroll(top, ""); !ok {
		t.Fatal("event after layout should extend")
	}
	if s.Window().Months() != 5 {
		t.Errorf("Months() = %d, want 5", s.Window().Months())
	}
}

func TestOnDayClickedAndFlags(t *testing.T) {
	s := newTestSession()
	s.OnDayClicked(calendar.Date{Year: 2024, Month: 3, Day: 10})
	got := s.OnDayClicked(calendar.Date{Year: 2024, Month: 3, Day: 5})
	want := selection.State{
		First:  calendar.Date{Year: 2024, Month: 3, Day: 5},
		Second: calendar.Date{Year: 2024, Month: 3, Day: 10},
	}
	if got != want || s.Selection() != want {
		t.Fatalf("selection = %s, want %s", got, want)
	}

	f := s.Flags(calendar.Date{Year: 2024, Month: 3, Day: 7})
	if !f.IsBetween || f.IsToday {
		t.Errorf("flags(03-07) = %+v", f)
	}
	f = s.Flags(march10)
	if !f.IsSecond || !f.IsToday || f.IsBetween {
		t.Errorf("flags(03-10) = %+v", f)
	}

	s.ClearSelection()
	if s.Selection().Kind() != selection.Empty {
		t.Errorf("after clear: %s", s.Selection())
	}
}

func TestScrollToTodayRequested(t *testing.T) {
	s := newTestSession()
	m := viewport.Metrics{ClientHeight: 200, ScrollHeight: 560}

	intent, err := s.OnScrollToTodayRequested(rowLocator(s.Days()), m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.TargetKey != "2024-3-10" {
		t.Errorf("TargetKey = %q", intent.TargetKey)
	}
}

func TestScrollToTodayOutsideWindow(t *testing.T) {
	s := New(Options{Today: march10, MaxMonths: 3})
	for i := 0; i < 3; i++ {
		s.Extend(calendar.Forward)
	}
	if s.Window().Contains(march10) {
		t.Fatal("expected today to be evicted")
	}
	_, err := s.OnScrollToTodayRequested(rowLocator(s.Days()), viewport.Metrics{ClientHeight: 200, ScrollHeight: 560})
	if !errors.Is(err, viewport.ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}
}
