package mcptools

import (
	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/chris-regnier/calscroll/internal/viewport"
)

func windowResult(s *session.Session) WindowResult {
	w := s.Window()
	return WindowResult{
		Start:  w.Start().String(),
		End:    w.End().String(),
		Months: w.Months(),
		Days:   w.Len(),
		Today:  s.Today().String(),
		Label:  s.Label(),

		Loading:   s.Loading(),
		FadingOut: s.FadingOut(),
	}
}

func dayResult(s *session.Session, d calendar.Day) DayResult {
	f := s.Flags(d.Date)
	return DayResult{
		Key:     d.Key,
		Date:    d.Date.String(),
		Flags:   f,
		Classes: f.Classes(),
	}
}

func extensionResult(ext calendar.Extension) ExtensionResult {
	r := ExtensionResult{
		Direction: ext.Direction.String(),
		Added:     len(ext.Added),
		Evicted:   len(ext.Evicted),
	}
	if n := len(ext.Added); n > 0 {
		r.AddedStart = ext.Added[0].Date.String()
		r.AddedEnd = ext.Added[n-1].Date.String()
	}
	if n := len(ext.Evicted); n > 0 {
		r.EvictedStart = ext.Evicted[0].Date.String()
		r.EvictedEnd = ext.Evicted[n-1].Date.String()
	}
	return r
}

func selectionResult(st selection.State) SelectionResult {
	return SelectionResult{
		Kind:   st.Kind().String(),
		First:  st.First.String(),
		Second: st.Second.String(),
		Days:   st.Days(),
	}
}

func intentResult(in viewport.Intent) *IntentResult {
	if in.Type != viewport.IntentScrollTo {
		return nil
	}
	return &IntentResult{
		TargetOffset: in.TargetOffset,
		TargetKey:    in.TargetKey,
		Smooth:       in.Smooth,
	}
}

func metrics(in MetricsInput) viewport.Metrics {
	return viewport.Metrics{
		ScrollTop:    in.ScrollTop,
		ClientHeight: in.ClientHeight,
		ScrollHeight: in.ScrollHeight,
	}
}
