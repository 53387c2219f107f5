// Package calendar provides calendar-day values and the month-aligned window of
// days that backs the infinitely scrolling calendar.
//
// Everything in this package works at day granularity. A Date never carries a
// time of day or a location, so two dates compare equal exactly when their
// year, month and day match.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day (year, month, day) with no time-of-day semantics.
// The zero value means "no date" and is used for empty selection endpoints.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, normalising out-of-range components the same way
// time.Date does (for example day 0 of March is the last day of February).
func NewDate(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime extracts the calendar day of t in t's own location.
//
// Example:
//
//	input:  2024-01-15 23:59:59 (local)
//	output: Date{2024, January, 15}
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day. Only hosts call this; the
// core always receives "today" as an explicit value.
func Today() Date {
	return FromTime(time.Now())
}

// ParseDate parses a "2006-01-02" formatted string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Time returns midnight UTC of the day. UTC keeps day arithmetic free of
// daylight-saving gaps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Equal reports calendar-day equality.
func (d Date) Equal(o Date) bool {
	return d == o
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o in chronological order.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// AddDays returns the day n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of the week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month: day 0 of the following month.
func (d Date) LastOfMonth() Date {
	return NewDate(d.Year, d.Month+1, 0)
}

// Key returns the identity used for lookups into the rendered view, in the
// form "YYYY-M-D" without zero padding.
func (d Date) Key() string {
	return fmt.Sprintf("%d-%d-%d", d.Year, int(d.Month), d.Day)
}

// String formats the date as "2006-01-02".
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthLabel returns a human-readable "Month Year" label, e.g. "March 2024".
func (d Date) MonthLabel() string {
	return fmt.Sprintf("%s %d", d.Month, d.Year)
}

// MarshalText implements encoding.TextMarshaler so dates serialise as
// "2006-01-02" in JSON output.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty string yields
// the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
