package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// The help overlay is re-rendered on every resize, so the glamour renderer
// is cached and rebuilt only when the width or style changes.
var (
	markdownRenderer *glamour.TermRenderer
	cachedWidth      int
	cachedStyle      string
)

func rendererFor(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	if markdownRenderer != nil && width == cachedWidth && style == cachedStyle {
		return markdownRenderer, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderer, cachedWidth, cachedStyle = renderer, width, style
	return renderer, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour
// style. It returns the content unchanged when rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := rendererFor(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// helpMarkdown is the body of the help overlay.
const helpMarkdown = `# Keys

| Key | Action |
|-----|--------|
| ←/→ h/l | previous / next day |
| ↑/↓ k/j | previous / next week |
| enter, space | select the day under the cursor |
| click | select a day |
| wheel, pgup/pgdn | scroll |
| t | jump to today |
| esc | clear the selection |
| ? | toggle this help |
| q | quit |

In **range** mode the first click picks a start date and the second an end
date. Clicking an endpoint again removes it. In **single** mode each click
replaces the selected day.
`

// RenderHelp renders the help overlay body with the given glamour style.
func RenderHelp(width int, style string) string {
	return RenderMarkdownWithStyle(helpMarkdown, width, style)
}
