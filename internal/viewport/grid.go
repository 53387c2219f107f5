package viewport

import "github.com/chris-regnier/calscroll/internal/calendar"

// WeekRows returns a Locator for days laid out as continuous Sunday-first
// week rows, each rowHeight units tall. The first row starts at 0.
func WeekRows(days []calendar.Day, rowHeight int) Locator {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	offset := 0
	if len(days) > 0 {
		offset = int(days[0].Date.Weekday())
	}
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Key] = i
	}
	return func(key string) (int, int, bool) {
		i, ok := index[key]
		if !ok {
			return 0, 0, false
		}
		return (i + offset) / 7 * rowHeight, rowHeight, true
	}
}

// WeekRowsHeight returns the total height of days laid out by WeekRows.
func WeekRowsHeight(days []calendar.Day, rowHeight int) int {
	if len(days) == 0 {
		return 0
	}
	if rowHeight <= 0 {
		rowHeight = 1
	}
	offset := int(days[0].Date.Weekday())
	return (len(days) + offset + 6) / 7 * rowHeight
}
