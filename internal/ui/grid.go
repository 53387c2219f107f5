package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/session"
	scroll "github.com/chris-regnier/calscroll/internal/viewport"
)

// Cell geometry, in terminal columns.
const (
	gutterWidth = 5
	cellWidth   = 4
	rowWidth    = gutterWidth + 7*cellWidth
)

var weekdayHeader = func() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for d := time.Sunday; d <= time.Saturday; d++ {
		fmt.Fprintf(&b, "%*s", cellWidth, d.String()[:2])
	}
	return b.String()
}()

// grid lays the window out as continuous Sunday-first week rows, one
// terminal line per week. Each day's column is its weekday.
type grid struct {
	days   []calendar.Day
	offset int // weekday of the first day
	index  map[string]int
}

func newGrid(days []calendar.Day) grid {
	g := grid{days: days, index: make(map[string]int, len(days))}
	if len(days) > 0 {
		g.offset = int(days[0].Date.Weekday())
	}
	for i, d := range days {
		g.index[d.Key] = i
	}
	return g
}

// rows returns the number of week lines.
func (g grid) rows() int {
	if len(g.days) == 0 {
		return 0
	}
	return (len(g.days) + g.offset + 6) / 7
}

// rowOf returns the line holding key.
func (g grid) rowOf(key string) (int, bool) {
	i, ok := g.index[key]
	if !ok {
		return 0, false
	}
	return (i + g.offset) / 7, true
}

// locate implements scroll.Locator with one line per row.
func (g grid) locate(key string) (int, int, bool) {
	row, ok := g.rowOf(key)
	return row, 1, ok
}

var _ scroll.Locator = grid{}.locate

// at returns the day drawn at (row, col), if any.
func (g grid) at(row, col int) (calendar.Day, bool) {
	if col < 0 || col > 6 || row < 0 {
		return calendar.Day{}, false
	}
	i := row*7 + col - g.offset
	if i < 0 || i >= len(g.days) {
		return calendar.Day{}, false
	}
	return g.days[i], true
}

// render draws every row. The gutter carries the month abbreviation on the
// row where a month starts.
func (g grid) render(sess *session.Session, theme Theme, cursor calendar.Date) string {
	lines := make([]string, 0, g.rows())
	for row := 0; row < g.rows(); row++ {
		var b strings.Builder
		gutter := ""
		for col := 0; col < 7; col++ {
			if d, ok := g.at(row, col); ok && d.Date.Day == 1 {
				gutter = d.Date.Month.String()[:3]
			}
		}
		b.WriteString(theme.GutterStyle().Render(fmt.Sprintf("%-*s", gutterWidth, gutter)))
		for col := 0; col < 7; col++ {
			d, ok := g.at(row, col)
			if !ok {
				b.WriteString(theme.ViewPaneStyle().Render(strings.Repeat(" ", cellWidth)))
				continue
			}
			style := theme.CellStyle(sess.Flags(d.Date), d.Date.Equal(cursor))
			b.WriteString(style.Render(fmt.Sprintf("%*d ", cellWidth-1, d.Date.Day)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
