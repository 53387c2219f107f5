package viewport

import "github.com/chris-regnier/calscroll/internal/calendar"

// Guard suppresses duplicate extensions. Scroll events can arrive faster than
// the host re-renders, so several events may be computed against metrics that
// predate the last extension. Once a direction has been extended it stays
// pending, and further requests for it are dropped, until the host settles
// the guard after laying out the grown window.
type Guard struct {
	pending [2]bool
}

// Allow reports whether an extension for action a should run against days.
// It marks the direction pending when it returns true.
func (g *Guard) Allow(a Action, days []calendar.Day) bool {
	dir, ok := a.Direction()
	if !ok || len(days) == 0 || g.pending[dir] {
		return false
	}
	g.pending[dir] = true
	return true
}

// Pending reports whether an extension in dir awaits layout.
func (g *Guard) Pending(dir calendar.Direction) bool {
	return g.pending[dir]
}

// Settle clears pending extensions. Hosts call it after rendering the grown
// window with fresh metrics.
func (g *Guard) Settle() {
	g.pending = [2]bool{}
}
