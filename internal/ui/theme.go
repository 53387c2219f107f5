package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chris-regnier/calscroll/internal/config"
	"github.com/chris-regnier/calscroll/internal/selection"
)

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Today         lipgloss.Color
	Selected      lipgloss.Color
	Range         lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

// Built-in presets.
var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Today:         lipgloss.Color("214"),
		Selected:      lipgloss.Color("33"),
		Range:         lipgloss.Color("237"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Today:         lipgloss.Color("166"),
		Selected:      lipgloss.Color("27"),
		Range:         lipgloss.Color("252"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Today:         lipgloss.Color("#FFB86C"),
		Selected:      lipgloss.Color("#BD93F9"),
		Range:         lipgloss.Color("#44475A"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	"ayu-dark": {
		Primary:       lipgloss.Color("#BFBDB6"),
		Secondary:     lipgloss.Color("#565B66"),
		Accent:        lipgloss.Color("#E6B450"),
		Muted:         lipgloss.Color("#565B66"),
		Today:         lipgloss.Color("#FF8F40"),
		Selected:      lipgloss.Color("#E6B450"),
		Range:         lipgloss.Color("#1F2430"),
		Background:    lipgloss.Color("#0D1017"),
		MarkdownStyle: "dark",
	},
	"ayu-light": {
		Primary:       lipgloss.Color("#575F66"),
		Secondary:     lipgloss.Color("#8A9199"),
		Accent:        lipgloss.Color("#F2AE49"),
		Muted:         lipgloss.Color("#8A9199"),
		Today:         lipgloss.Color("#FA8D3E"),
		Selected:      lipgloss.Color("#F2AE49"),
		Range:         lipgloss.Color("#E7EAED"),
		Background:    lipgloss.Color("#FAFAFA"),
		MarkdownStyle: "light",
	},
	"catppuccin-mocha": {
		Primary:       lipgloss.Color("#CDD6F4"),
		Secondary:     lipgloss.Color("#585B70"),
		Accent:        lipgloss.Color("#CBA6F7"),
		Muted:         lipgloss.Color("#6C7086"),
		Today:         lipgloss.Color("#FAB387"),
		Selected:      lipgloss.Color("#CBA6F7"),
		Range:         lipgloss.Color("#313244"),
		Background:    lipgloss.Color("#1E1E2E"),
		MarkdownStyle: "dark",
	},
	"catppuccin-latte": {
		Primary:       lipgloss.Color("#4C4F69"),
		Secondary:     lipgloss.Color("#9CA0B0"),
		Accent:        lipgloss.Color("#8839EF"),
		Muted:         lipgloss.Color("#9CA0B0"),
		Today:         lipgloss.Color("#FE640B"),
		Selected:      lipgloss.Color("#8839EF"),
		Range:         lipgloss.Color("#CCD0DA"),
		Background:    lipgloss.Color("#EFF1F5"),
		MarkdownStyle: "light",
	},
	"gruvbox-dark": {
		Primary:       lipgloss.Color("#EBDBB2"),
		Secondary:     lipgloss.Color("#665C54"),
		Accent:        lipgloss.Color("#FABD2F"),
		Muted:         lipgloss.Color("#928374"),
		Today:         lipgloss.Color("#FE8019"),
		Selected:      lipgloss.Color("#FABD2F"),
		Range:         lipgloss.Color("#3C3836"),
		Background:    lipgloss.Color("#282828"),
		MarkdownStyle: "dark",
	},
	"gruvbox-light": {
		Primary:       lipgloss.Color("#3C3836"),
		Secondary:     lipgloss.Color("#A89984"),
		Accent:        lipgloss.Color("#D79921"),
		Muted:         lipgloss.Color("#928374"),
		Today:         lipgloss.Color("#AF3A03"),
		Selected:      lipgloss.Color("#D79921"),
		Range:         lipgloss.Color("#EBDBB2"),
		Background:    lipgloss.Color("#FBF1C7"),
		MarkdownStyle: "light",
	},
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	preset := cfg.Preset
	if preset == "" {
		preset = "default-dark"
	}

	theme, ok := presets[preset]
	if !ok {
		theme = presets["default-dark"]
	}

	if cfg.Primary != "" {
		theme.Primary = lipgloss.Color(cfg.Primary)
	}
	if cfg.Secondary != "" {
		theme.Secondary = lipgloss.Color(cfg.Secondary)
	}
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Today != "" {
		theme.Today = lipgloss.Color(cfg.Today)
	}
	if cfg.Selected != "" {
		theme.Selected = lipgloss.Color(cfg.Selected)
	}
	if cfg.Range != "" {
		theme.Range = lipgloss.Color(cfg.Range)
	}
	if cfg.Background != "" {
		theme.Background = lipgloss.Color(cfg.Background)
	}
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}

	return theme
}

// HelpStyle returns a lipgloss style for help/footer text.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Background(t.Background)
}

// HeaderStyle returns a lipgloss style for headers.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.Background)
}

// AccentStyle returns a lipgloss style for accented/focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
}

// StatusStyle returns a lipgloss style for transient diagnostics.
func (t Theme) StatusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Italic(true).Foreground(t.Today).Background(t.Background)
}

// GutterStyle returns a lipgloss style for the month markers left of the grid.
func (t Theme) GutterStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Background)
}

// CellStyle returns the style for one day cell. Endpoints take the selected
// color, days strictly inside the range take the range background, and today
// keeps its own foreground even inside a range.
func (t Theme) CellStyle(f selection.Flags, cursor bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.Primary).Background(t.Background)
	switch {
	case f.IsFirst || f.IsSecond:
		s = s.Bold(true).Foreground(t.Background).Background(t.Selected)
	case f.IsBetween:
		s = s.Background(t.Range)
	}
	if f.IsToday {
		s = s.Underline(true)
		if !f.IsFirst && !f.IsSecond {
			s = s.Bold(true).Foreground(t.Today)
		}
	}
	if cursor {
		s = s.Reverse(true)
	}
	return s
}

// BorderStyle returns a lipgloss style with a rounded border using secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary)
}

// bgEscapeCode returns the raw ANSI escape sequence to set the theme's
// background color, for use with terminal control codes like \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen fills every line to termWidth (with optional centering) and pads
// vertically to termHeight, using the theme background color. Each line is
// padded with background-colored spaces AND a terminal-level \x1b[K (erase to
// end of line) as a safety net, ensuring the background fills the full terminal
// width even if lipgloss.Width measurement is slightly off.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}

	leftStr := ""
	if leftPad > 0 {
		leftStr = bgPad.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		w := lipgloss.Width(line)
		rightPad := max(termWidth-leftPad-w, 0)

		var b strings.Builder
		if leftPad > 0 {
			b.WriteString(leftStr)
		}
		b.WriteString(line)
		if rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}

	return strings.Join(lines[:termHeight], "\n")
}

// ClearLineEnds appends a terminal-level erase-to-end-of-line (\x1b[K) to
// every line, ensuring the theme background fills to the right terminal edge.
// Use this for output produced by lipgloss.Place or similar that may not
// extend to the full terminal width.
func (t Theme) ClearLineEnds(content string) string {
	clearEOL := t.bgEscapeCode() + "\x1b[K"
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = line + clearEOL
	}
	return strings.Join(lines, "\n")
}

// ViewPaneStyle returns a lipgloss style for content view panes with themed background.
func (t Theme) ViewPaneStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Background).
		Foreground(t.Primary)
}
