// Package selection implements the click-driven date selection state machine.
//
// A selection has two endpoint slots, First and Second. In range mode clicks
// fill, reorder, replace and clear those slots; in single mode only First is
// ever used. The machine accepts every date and has no terminal state.
package selection

import (
	"fmt"

	"github.com/chris-regnier/calscroll/internal/calendar"
)

// Mode selects how clicks are interpreted.
type Mode int

const (
	// ModeRange picks a two-endpoint range.
	ModeRange Mode = iota
	// ModeSingle picks one date.
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "range"
}

// ParseMode accepts "range" or "single".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "range":
		return ModeRange, nil
	case "single":
		return ModeSingle, nil
	}
	return ModeRange, fmt.Errorf("unknown selection mode %q (want range|single)", s)
}

// Kind names the three states of the machine.
type Kind int

const (
	Empty Kind = iota
	OneSelected
	RangeSelected
)

func (k Kind) String() string {
	switch k {
	case OneSelected:
		return "one_selected"
	case RangeSelected:
		return "range_selected"
	}
	return "empty"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "empty":
		*k = Empty
	case "one_selected":
		*k = OneSelected
	case "range_selected":
		*k = RangeSelected
	default:
		return fmt.Errorf("unknown selection kind %q", b)
	}
	return nil
}

// State holds the two endpoints. A zero Date means the slot is empty.
// Whenever both are set, First is not after Second.
type State struct {
	First  calendar.Date `json:"first"`
	Second calendar.Date `json:"second"`
}

// Kind reports which state the selection is in.
func (s State) Kind() Kind {
	switch {
	case s.First.IsZero():
		return Empty
	case s.Second.IsZero():
		return OneSelected
	}
	return RangeSelected
}

// Days returns the number of days covered, endpoints included.
func (s State) Days() int {
	switch s.Kind() {
	case OneSelected:
		return 1
	case RangeSelected:
		return int(s.Second.Time().Sub(s.First.Time()).Hours()/24) + 1
	}
	return 0
}

func (s State) String() string {
	switch s.Kind() {
	case OneSelected:
		return fmt.Sprintf("OneSelected(%s)", s.First)
	case RangeSelected:
		return fmt.Sprintf("RangeSelected(%s, %s)", s.First, s.Second)
	}
	return "Empty"
}

// Apply returns the state after clicking date in range mode.
//
// Rules, in order:
//   - clicking First clears everything
//   - clicking Second clears only Second
//   - with nothing selected, date becomes First
//   - otherwise date becomes the other endpoint, swapping with First when it
//     is earlier; an existing Second is replaced
func Apply(s State, date calendar.Date) State {
	switch {
	case s.First.Equal(date):
		return State{}
	case !s.Second.IsZero() && s.Second.Equal(date):
		return State{First: s.First}
	case s.First.IsZero():
		return State{First: date}
	case date.Before(s.First):
		return State{First: date, Second: s.First}
	default:
		return State{First: s.First, Second: date}
	}
}

// ApplySingle returns the state after clicking date in single mode: the same
// date toggles off, any other date replaces the selection.
func ApplySingle(s State, date calendar.Date) State {
	if s.First.Equal(date) {
		return State{}
	}
	return State{First: date}
}

// Selection is the single authoritative selection for a calendar session.
type Selection struct {
	mode  Mode
	state State
}

// New returns an empty selection in the given mode.
func New(mode Mode) *Selection {
	return &Selection{mode: mode}
}

// Mode returns the click interpretation mode.
func (s *Selection) Mode() Mode { return s.mode }

// State returns the current endpoints.
func (s *Selection) State() State { return s.state }

// Click applies one day-click event and returns the new state.
func (s *Selection) Click(date calendar.Date) State {
	if s.mode == ModeSingle {
		s.state = ApplySingle(s.state, date)
	} else {
		s.state = Apply(s.state, date)
	}
	return s.state
}

// Clear resets to Empty.
func (s *Selection) Clear() {
	s.state = State{}
}
