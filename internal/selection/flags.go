package selection

import "github.com/chris-regnier/calscroll/internal/calendar"

// Flags are the per-day predicates a view renders from.
type Flags struct {
	IsFirst   bool `json:"is_first"`
	IsSecond  bool `json:"is_second"`
	IsBetween bool `json:"is_between"`
	IsToday   bool `json:"is_today"`
}

// Derive computes the flags for day. Between is strict: endpoints are never
// between. Derive is pure; the same inputs always give the same flags.
func Derive(s State, day, today calendar.Date) Flags {
	f := Flags{
		IsToday: day.Equal(today),
	}
	if !s.First.IsZero() {
		f.IsFirst = day.Equal(s.First)
	}
	if !s.Second.IsZero() {
		f.IsSecond = day.Equal(s.Second)
	}
	if s.Kind() == RangeSelected {
		f.IsBetween = s.First.Before(day) && day.Before(s.Second)
	}
	return f
}

// Selected reports whether the day is an endpoint or inside the range.
func (f Flags) Selected() bool {
	return f.IsFirst || f.IsSecond || f.IsBetween
}

// Class names used by views that style cells with CSS-like classes.
const (
	ClassCurrentDay        = "current-day"
	ClassFirstSelected     = "first-selected"
	ClassSecondSelected    = "second-selected"
	ClassBetweenSelected   = "between-selected"
	ClassCurrentDayBetween = "current-day-between"
)

// Classes projects the flags onto class names, in a fixed order.
func (f Flags) Classes() []string {
	var classes []string
	if f.IsToday {
		classes = append(classes, ClassCurrentDay)
	}
	if f.IsFirst {
		classes = append(classes, ClassFirstSelected)
	}
	if f.IsSecond {
		classes = append(classes, ClassSecondSelected)
	}
	if f.IsBetween {
		classes = append(classes, ClassBetweenSelected)
	}
	if f.IsToday && f.IsBetween {
		classes = append(classes, ClassCurrentDayBetween)
	}
	return classes
}
