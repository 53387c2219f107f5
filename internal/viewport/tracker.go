// Package viewport maps scroll positions over the calendar onto window
// extensions, the visible month label and scroll instructions for the host.
//
// The tracker never touches a rendering surface. Distances are in whatever
// unit the host measures (pixels in a browser, lines in a terminal); hosts
// pick thresholds in the same unit.
package viewport

import (
	"errors"
	"fmt"

	"github.com/chris-regnier/calscroll/internal/calendar"
)

// Default distances, in host units.
const (
	DefaultThreshold   = 100
	DefaultLabelOffset = 30
)

// ErrTargetNotFound is returned when a scroll target is not materialised in
// the current window.
var ErrTargetNotFound = errors.New("scroll target not found")

// Metrics is a snapshot of the host scroll container.
type Metrics struct {
	ScrollTop    int `json:"scroll_top"`
	ClientHeight int `json:"client_height"`
	ScrollHeight int `json:"scroll_height"`
}

// Action is the tracker's decision for one scroll event.
type Action int

const (
	None Action = iota
	ExtendBackward
	ExtendForward
)

func (a Action) String() string {
	switch a {
	case ExtendBackward:
		return "extend_backward"
	case ExtendForward:
		return "extend_forward"
	}
	return "none"
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Direction converts an extension action to a window direction. The boolean
// is false for None.
func (a Action) Direction() (calendar.Direction, bool) {
	switch a {
	case ExtendBackward:
		return calendar.Backward, true
	case ExtendForward:
		return calendar.Forward, true
	}
	return 0, false
}

// Locator reports the top edge and height of the rendered cell for a day key,
// in the same coordinate space as Metrics.ScrollTop. ok is false when the cell
// is not rendered.
type Locator func(key string) (top, height int, ok bool)

// Tracker holds the thresholds and the last computed month label.
type Tracker struct {
	Threshold   int
	LabelOffset int

	label string
}

// NewTracker returns a tracker with the given distances. A non-positive
// threshold or a negative label offset falls back to the default; a label
// offset of 0 is kept.
func NewTracker(threshold, labelOffset int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if labelOffset < 0 {
		labelOffset = DefaultLabelOffset
	}
	return &Tracker{Threshold: threshold, LabelOffset: labelOffset}
}

// OnScroll decides whether the window must grow. Content that does not fill
// the viewport is treated as the degenerate case and never extends; otherwise
// the top check wins over the bottom check.
func (t *Tracker) OnScroll(m Metrics) Action {
	if m.ScrollHeight <= m.ClientHeight {
		return None
	}
	if m.ScrollTop < t.Threshold {
		return ExtendBackward
	}
	if m.ScrollTop+m.ClientHeight > m.ScrollHeight-t.Threshold {
		return ExtendForward
	}
	return None
}

// Label returns the last computed month label.
func (t *Tracker) Label() string { return t.label }

// CurrentLabel updates the label from the day identified by visibleTopKey.
// When the key is empty or unknown the previous label is kept.
func (t *Tracker) CurrentLabel(days []calendar.Day, visibleTopKey string) string {
	if visibleTopKey == "" {
		return t.label
	}
	for _, day := range days {
		if day.Key == visibleTopKey {
			t.label = day.Date.MonthLabel()
			break
		}
	}
	return t.label
}

// FirstVisible returns the key of the first day whose cell top sits at least
// LabelOffset below the viewport's top edge.
func (t *Tracker) FirstVisible(days []calendar.Day, locate Locator, scrollTop int) (string, bool) {
	edge := scrollTop + t.LabelOffset
	for _, day := range days {
		top, _, ok := locate(day.Key)
		if ok && top >= edge {
			return day.Key, true
		}
	}
	return "", false
}

// IntentType distinguishes outbound host instructions.
type IntentType int

const (
	IntentNone IntentType = iota
	IntentScrollTo
	IntentExtend
)

func (i IntentType) String() string {
	switch i {
	case IntentScrollTo:
		return "scroll_to"
	case IntentExtend:
		return "extend"
	}
	return "none"
}

func (i IntentType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Intent is an instruction for the host scroll container.
type Intent struct {
	Type         IntentType `json:"type"`
	TargetOffset int        `json:"target_offset"`
	TargetKey    string     `json:"target_key,omitempty"`
	Smooth       bool       `json:"smooth"`
}

// ScrollToToday centres today's cell in the viewport. If today is not in the
// window it returns an IntentNone together with ErrTargetNotFound.
func ScrollToToday(days []calendar.Day, today calendar.Date, locate Locator, m Metrics) (Intent, error) {
	key := today.Key()
	found := false
	for _, day := range days {
		if day.Key == key {
			found = true
			break
		}
	}
	if !found {
		return Intent{}, fmt.Errorf("%w: %s outside window", ErrTargetNotFound, today)
	}
	top, height, ok := locate(key)
	if !ok {
		return Intent{}, fmt.Errorf("%w: %s not rendered", ErrTargetNotFound, today)
	}
	offset := top - m.ClientHeight/2 + height/2
	return Intent{
		Type:         IntentScrollTo,
		TargetOffset: clamp(offset, 0, max(m.ScrollHeight-m.ClientHeight, 0)),
		TargetKey:    key,
		Smooth:       true,
	}, nil
}

// ScrollToMiddle scrolls to half the total scrollable height.
func ScrollToMiddle(m Metrics) Intent {
	return Intent{
		Type:         IntentScrollTo,
		TargetOffset: m.ScrollHeight / 2,
		Smooth:       true,
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
