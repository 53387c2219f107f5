package calendar_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/calscroll/internal/calendar"
)

func d(y int, m time.Month, day int) calendar.Date {
	return calendar.Date{Year: y, Month: m, Day: day}
}

// assertContiguous checks the window invariants: unique keys, no gaps,
// strictly ascending dates.
func assertContiguous(t *testing.T, days []calendar.Day) {
	t.Helper()
	seen := make(map[string]bool, len(days))
	for i, day := range days {
		if seen[day.Key] {
			t.Fatalf("duplicate key %q at %d", day.Key, i)
		}
		seen[day.Key] = true
		if day.Key != day.Date.Key() {
			t.Fatalf("key %q does not match date %s", day.Key, day.Date)
		}
		if i > 0 && days[i-1].Date.AddDays(1) != day.Date {
			t.Fatalf("gap between %s and %s", days[i-1].Date, day.Date)
		}
	}
}

func TestDateKeyAndString(t *testing.T) {
	date := d(2024, time.March, 5)
	if got := date.Key(); got != "2024-3-5" {
		t.Errorf("Key() = %q, want 2024-3-5", got)
	}
	if got := date.String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want 2024-03-05", got)
	}
	if got := date.MonthLabel(); got != "March 2024" {
		t.Errorf("MonthLabel() = %q, want March 2024", got)
	}
}

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	morning := calendar.FromTime(time.Date(2024, 1, 15, 0, 0, 1, 0, time.Local))
	night := calendar.FromTime(time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.Local))
	if !morning.Equal(night) {
		t.Errorf("expected %s to equal %s", morning, night)
	}
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b calendar.Date
		want int
	}{
		{"same day", d(2024, 3, 10), d(2024, 3, 10), 0},
		{"earlier day", d(2024, 3, 5), d(2024, 3, 10), -1},
		{"later month", d(2024, 4, 1), d(2024, 3, 31), 1},
		{"earlier year", d(2023, 12, 31), d(2024, 1, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := calendar.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != d(2024, 2, 29) {
		t.Errorf("ParseDate() = %v", got)
	}
	if _, err := calendar.ParseDate("2023-02-29"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D calendar.Date `json:"d"`
	}{d(2024, 3, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"d":"2024-03-05"}` {
		t.Errorf("got %s", data)
	}
}

func TestGenerateRangeMonthLengths(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			first := d(tt.year, tt.month, 1)
			days, err := calendar.GenerateRange(first, first.LastOfMonth())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(days) != tt.want {
				t.Errorf("%d-%d: got %d days, want %d", tt.year, tt.month, len(days), tt.want)
			}
			assertContiguous(t, days)
		})
	}
}

func TestGenerateRangeEveryMonth(t *testing.T) {
	for year := 2020; year <= 2028; year++ {
		for m := time.January; m <= time.December; m++ {
			first := d(year, m, 1)
			days, err := calendar.GenerateRange(first, first.LastOfMonth())
			if err != nil {
				t.Fatalf("%d-%d: %v", year, m, err)
			}
			want := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if len(days) != want {
				t.Fatalf("%d-%d: got %d days, want %d", year, m, len(days), want)
			}
		}
	}
}

func TestGenerateRangeSingleDay(t *testing.T) {
	days, err := calendar.GenerateRange(d(2024, 3, 10), d(2024, 3, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Key != "2024-3-10" {
		t.Errorf("got %+v", days)
	}
}

func TestGenerateRangeInvalid(t *testing.T) {
	_, err := calendar.GenerateRange(d(2024, 3, 11), d(2024, 3, 10))
	if !errors.Is(err, calendar.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		ref        calendar.Date
		start, end calendar.Date
		length     int
	}{
		{"mid year", d(2024, 3, 10), d(2024, 2, 1), d(2024, 4, 30), 29 + 31 + 30},
		{"january wraps back", d(2024, 1, 15), d(2023, 12, 1), d(2024, 2, 29), 31 + 31 + 29},
		{"december wraps forward", d(2023, 12, 31), d(2023, 11, 1), d(2024, 1, 31), 30 + 31 + 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := calendar.Initialize(tt.ref)
			if len(days) != tt.length {
				t.Errorf("got %d days, want %d", len(days), tt.length)
			}
			if days[0].Date != tt.start {
				t.Errorf("start = %s, want %s", days[0].Date, tt.start)
			}
			if days[len(days)-1].Date != tt.end {
				t.Errorf("end = %s, want %s", days[len(days)-1].Date, tt.end)
			}
			assertContiguous(t, days)
		})
	}
}

func TestExtendEmpty(t *testing.T) {
	if got := calendar.ExtendBackward(nil); len(got) != 0 {
		t.Errorf("ExtendBackward(nil) = %d days", len(got))
	}
	if got := calendar.ExtendForward(nil); len(got) != 0 {
		t.Errorf("ExtendForward(nil) = %d days", len(got))
	}
}

func TestExtendBothDirectionsPreservesOrder(t *testing.T) {
	initial := calendar.Initialize(d(2024, 3, 10))
	before := calendar.ExtendBackward(initial)
	after := calendar.ExtendForward(initial)

	if before[0].Date != d(2024, 1, 1) || before[len(before)-1].Date != d(2024, 1, 31) {
		t.Errorf("backward month = %s..%s", before[0].Date, before[len(before)-1].Date)
	}
	if after[0].Date != d(2024, 5, 1) || after[len(after)-1].Date != d(2024, 5, 31) {
		t.Errorf("forward month = %s..%s", after[0].Date, after[len(after)-1].Date)
	}

	all := append(append(append([]calendar.Day{}, before...), initial...), after...)
	assertContiguous(t, all)
	for i, day := range initial {
		if all[len(before)+i] != day {
			t.Fatalf("original day %d moved", i)
		}
	}
}

func TestWindowExtend(t *testing.T) {
	w := calendar.NewWindow(d(2024, 3, 10), calendar.WindowOptions{})
	if w.Months() != 3 {
		t.Fatalf("Months() = %d, want 3", w.Months())
	}

	ext := w.Extend(calendar.Backward)
	if ext.Direction != calendar.Backward || len(ext.Added) != 31 {
		t.Errorf("backward extension = %v with %d days", ext.Direction, len(ext.Added))
	}
	ext = w.Extend(calendar.Forward)
	if len(ext.Added) != 31 || len(ext.Evicted) != 0 {
		t.Errorf("forward extension added %d, evicted %d", len(ext.Added), len(ext.Evicted))
	}

	if w.Start() != d(2024, 1, 1) || w.End() != d(2024, 5, 31) {
		t.Errorf("window = %s..%s", w.Start(), w.End())
	}
	if w.Months() != 5 {
		t.Errorf("Months() = %d, want 5", w.Months())
	}
	if i := w.IndexOf("2024-1-1"); i != 0 {
		t.Errorf("IndexOf(2024-1-1) = %d, want 0", i)
	}
	if !w.Contains(d(2024, 5, 31)) || w.Contains(d(2024, 6, 1)) {
		t.Error("Contains() disagrees with window bounds")
	}
	assertContiguous(t, w.Days())
}

func TestWindowRepeatedExtensionStaysContiguous(t *testing.T) {
	w := calendar.NewWindow(d(2024, 1, 1), calendar.WindowOptions{})
	for i := 0; i < 14; i++ {
		w.Extend(calendar.Backward)
		w.Extend(calendar.Forward)
	}
	assertContiguous(t, w.Days())
	if w.Start().Day != 1 || w.End() != w.End().LastOfMonth() {
		t.Errorf("window not month aligned: %s..%s", w.Start(), w.End())
	}
}

func TestWindowMaxMonthsEvictsOppositeSide(t *testing.T) {
	w := calendar.NewWindow(d(2024, 3, 10), calendar.WindowOptions{MaxMonths: 4})

	ext := w.Extend(calendar.Forward) // Feb..May
	if len(ext.Evicted) != 0 {
		t.Fatalf("unexpected eviction: %d", len(ext.Evicted))
	}
	ext = w.Extend(calendar.Forward) // Mar..Jun, Feb evicted
	if len(ext.Evicted) != 29 || ext.Evicted[0].Date != d(2024, 2, 1) {
		t.Fatalf("evicted %d days starting %v", len(ext.Evicted), ext.Evicted)
	}
	if w.Start() != d(2024, 3, 1) || w.Months() != 4 {
		t.Errorf("window = %s..%s (%d months)", w.Start(), w.End(), w.Months())
	}

	ext = w.Extend(calendar.Backward) // Feb..May, Jun evicted
	if len(ext.Evicted) != 30 || ext.Evicted[0].Date != d(2024, 6, 1) {
		t.Fatalf("evicted %d days starting %v", len(ext.Evicted), ext.Evicted)
	}
	if w.IndexOf("2024-6-1") != -1 {
		t.Error("evicted day still indexed")
	}
	assertContiguous(t, w.Days())
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]calendar.Direction{
		"backward": calendar.Backward,
		"prev":     calendar.Backward,
		"forward":  calendar.Forward,
		"next":     calendar.Forward,
	} {
		got, err := calendar.ParseDirection(in)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := calendar.ParseDirection("sideways"); err == nil {
		t.Error("expected error")
	}
}
