package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
)

// FlagsFunc derives the render predicates for one day.
type FlagsFunc func(calendar.Date) selection.Flags

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// cellMark returns the one-character marker drawn after a day number in
// plain output. Endpoints win over today, today wins over the range.
func cellMark(f selection.Flags) byte {
	switch {
	case f.IsFirst || f.IsSecond:
		return '#'
	case f.IsToday:
		return '*'
	case f.IsBetween:
		return '-'
	}
	return ' '
}

// FormatMonth writes one month as a plain Sunday-first grid. Only days present
// in days are drawn; the rest of the month is left blank.
func FormatMonth(w io.Writer, days []calendar.Day, flags FlagsFunc) {
	if len(days) == 0 {
		return
	}
	first := days[0].Date
	fmt.Fprintln(w, first.MonthLabel())
	for d := time.Sunday; d <= time.Saturday; d++ {
		fmt.Fprintf(w, "%*s", cellWidth, d.String()[:2]+" ")
	}
	fmt.Fprintln(w)

	col := int(first.FirstOfMonth().Weekday())
	present := make(map[int]calendar.Day, len(days))
	for _, d := range days {
		present[d.Date.Day] = d
	}

	var line strings.Builder
	line.WriteString(strings.Repeat(" ", col*cellWidth))
	last := first.LastOfMonth().Day
	for n := 1; n <= last; n++ {
		if d, ok := present[n]; ok {
			fmt.Fprintf(&line, "%*d%c", cellWidth-1, n, cellMark(flags(d.Date)))
		} else {
			line.WriteString(strings.Repeat(" ", cellWidth))
		}
		col++
		if col == 7 || n == last {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
			col = 0
		}
	}
}

// FormatWindow writes every month of the window as a plain grid, separated by
// blank lines, followed by a legend.
func FormatWindow(w io.Writer, days []calendar.Day, flags FlagsFunc) {
	for i, month := range splitMonths(days) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		FormatMonth(w, month, flags)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "* today  # selected  - in range")
}

// splitMonths groups consecutive days by calendar month.
func splitMonths(days []calendar.Day) [][]calendar.Day {
	var out [][]calendar.Day
	start := 0
	for i := 1; i <= len(days); i++ {
		if i == len(days) || days[i].Date.Month != days[start].Date.Month || days[i].Date.Year != days[start].Date.Year {
			out = append(out, days[start:i])
			start = i
		}
	}
	return out
}

// FormatSelection writes a one-line summary of the selection.
func FormatSelection(w io.Writer, s selection.State) {
	fmt.Fprintln(w, selectionSummary(s))
}

func selectionSummary(s selection.State) string {
	switch s.Kind() {
	case selection.OneSelected:
		return fmt.Sprintf("Selected: %s", s.First)
	case selection.RangeSelected:
		return fmt.Sprintf("Range: %s .. %s (%d days)", s.First, s.Second, s.Days())
	}
	return "Nothing selected"
}

// SelectionJSON is a JSON representation of a selection.
type SelectionJSON struct {
	Kind   selection.Kind `json:"kind"`
	First  string         `json:"first,omitempty"`
	Second string         `json:"second,omitempty"`
	Days   int            `json:"days"`
}

// ToSelectionJSON converts a selection state for JSON output.
func ToSelectionJSON(s selection.State) SelectionJSON {
	return SelectionJSON{
		Kind:   s.Kind(),
		First:  s.First.String(),
		Second: s.Second.String(),
		Days:   s.Days(),
	}
}

// DayJSON is one day of the window with its derived flags.
type DayJSON struct {
	Key   string          `json:"key"`
	Date  string          `json:"date"`
	Flags selection.Flags `json:"flags"`
}

// WindowJSON is a JSON representation of the materialised window.
type WindowJSON struct {
	Start     string        `json:"start"`
	End       string        `json:"end"`
	Months    int           `json:"months"`
	Today     string        `json:"today"`
	Selection SelectionJSON `json:"selection"`
	Days      []DayJSON     `json:"days"`
}

// BuildWindowJSON converts a window and its selection for JSON output.
func BuildWindowJSON(days []calendar.Day, today calendar.Date, s selection.State) WindowJSON {
	out := WindowJSON{
		Today:     today.String(),
		Selection: ToSelectionJSON(s),
		Days:      make([]DayJSON, len(days)),
	}
	if len(days) > 0 {
		out.Start = days[0].Date.String()
		out.End = days[len(days)-1].Date.String()
		out.Months = len(splitMonths(days))
	}
	for i, d := range days {
		out.Days[i] = DayJSON{
			Key:   d.Key,
			Date:  d.Date.String(),
			Flags: selection.Derive(s, d.Date, today),
		}
	}
	return out
}
