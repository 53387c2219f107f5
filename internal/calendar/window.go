package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range's start falls after its end.
var ErrInvalidRange = errors.New("invalid date range")

// Day is one materialised calendar day. Key is unique within a window and
// stable across extensions.
type Day struct {
	Date Date   `json:"date"`
	Key  string `json:"key"`
}

// NewDay builds the Day for d, deriving its key.
func NewDay(d Date) Day {
	return Day{Date: d, Key: d.Key()}
}

// Direction selects which side of a window to extend.
type Direction int

const (
	Backward Direction = iota
	Forward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// ParseDirection accepts "backward"/"forward" (or "prev"/"next").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "backward", "prev", "previous":
		return Backward, nil
	case "forward", "next":
		return Forward, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GenerateRange returns every day from start to end inclusive, ascending.
func GenerateRange(start, end Date) ([]Day, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, start, end)
	}
	days := make([]Day, 0, int(end.Time().Sub(start.Time()).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		days = append(days, NewDay(d))
	}
	return days, nil
}

// Initialize returns the three whole months centred on ref's month: the
// first of the previous month through the last day of the next month.
func Initialize(ref Date) []Day {
	start := NewDate(ref.Year, ref.Month-1, 1)
	end := NewDate(ref.Year, ref.Month+2, 0)
	return mustRange(start, end)
}

// ExtendBackward returns the whole month before the first day in days, for
// prepending. It returns nil when days is empty.
func ExtendBackward(days []Day) []Day {
	if len(days) == 0 {
		return nil
	}
	first := days[0].Date
	start := NewDate(first.Year, first.Month-1, 1)
	end := NewDate(first.Year, first.Month, 0)
	return mustRange(start, end)
}

// ExtendForward returns the whole month after the last day in days, for
// appending. It returns nil when days is empty.
func ExtendForward(days []Day) []Day {
	if len(days) == 0 {
		return nil
	}
	last := days[len(days)-1].Date
	start := NewDate(last.Year, last.Month+1, 1)
	end := NewDate(last.Year, last.Month+2, 0)
	return mustRange(start, end)
}

// mustRange is used where month-boundary arithmetic guarantees start <= end.
func mustRange(start, end Date) []Day {
	days, err := GenerateRange(start, end)
	if err != nil {
		panic(err)
	}
	return days
}

// WindowOptions configures a Window.
type WindowOptions struct {
	// MaxMonths caps the number of retained months. Zero keeps every month
	// ever materialised.
	MaxMonths int
}

// Extension describes one call to Window.Extend.
type Extension struct {
	Direction Direction `json:"direction"`
	Added     []Day     `json:"added"`
	// Evicted holds days dropped from the opposite side when MaxMonths is set.
	Evicted []Day `json:"evicted,omitempty"`
}

// Window owns the ordered, contiguous, month-aligned sequence of days.
type Window struct {
	days  []Day
	index map[string]int
	opts  WindowOptions
}

// NewWindow creates a window holding the three months around ref.
func NewWindow(ref Date, opts WindowOptions) *Window {
	if opts.MaxMonths > 0 && opts.MaxMonths < 3 {
		opts.MaxMonths = 3
	}
	w := &Window{days: Initialize(ref), opts: opts}
	w.reindex()
	return w
}

// Days returns the current sequence. Callers must not modify it.
func (w *Window) Days() []Day { return w.days }

// Len returns the number of days in the window.
func (w *Window) Len() int { return len(w.days) }

// Start returns the first day of the window.
func (w *Window) Start() Date { return w.days[0].Date }

// End returns the last day of the window.
func (w *Window) End() Date { return w.days[len(w.days)-1].Date }

// Months returns how many whole months the window spans.
func (w *Window) Months() int {
	s, e := w.Start(), w.End()
	return (e.Year-s.Year)*12 + int(e.Month-s.Month) + 1
}

// Full reports whether the window holds MaxMonths months, so that any further
// extension evicts a month.
func (w *Window) Full() bool {
	return w.opts.MaxMonths > 0 && w.Months() >= w.opts.MaxMonths
}

// IndexOf returns the position of key in the window, or -1.
func (w *Window) IndexOf(key string) int {
	if i, ok := w.index[key]; ok {
		return i
	}
	return -1
}

// Contains reports whether d is materialised in the window.
func (w *Window) Contains(d Date) bool {
	return w.IndexOf(d.Key()) >= 0
}

// Extend grows the window by exactly one month in the given direction and
// returns what changed.
func (w *Window) Extend(dir Direction) Extension {
	ext := Extension{Direction: dir}
	switch dir {
	case Backward:
		ext.Added = ExtendBackward(w.days)
		w.days = append(append(make([]Day, 0, len(ext.Added)+len(w.days)), ext.Added...), w.days...)
	case Forward:
		ext.Added = ExtendForward(w.days)
		w.days = append(w.days, ext.Added...)
	}
	if w.opts.MaxMonths > 0 {
		for w.Months() > w.opts.MaxMonths {
			ext.Evicted = append(ext.Evicted, w.evictMonth(dir)...)
		}
	}
	w.reindex()
	return ext
}

// evictMonth drops the whole month at the side opposite dir.
func (w *Window) evictMonth(dir Direction) []Day {
	if dir == Forward {
		first := w.days[0].Date
		n := first.LastOfMonth().Day
		evicted := append([]Day(nil), w.days[:n]...)
		w.days = w.days[n:]
		return evicted
	}
	last := w.days[len(w.days)-1].Date
	n := last.Day
	evicted := append([]Day(nil), w.days[len(w.days)-n:]...)
	w.days = append([]Day(nil), w.days[:len(w.days)-n]...)
	return evicted
}

func (w *Window) reindex() {
	w.index = make(map[string]int, len(w.days))
	for i, d := range w.days {
		w.index[d.Key] = i
	}
}
