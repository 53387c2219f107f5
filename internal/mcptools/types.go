package mcptools

import "github.com/chris-regnier/calscroll/internal/selection"

// SessionInput names the session a tool acts on.
type SessionInput struct {
	SessionID string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
}

// MetricsInput is the scroll container geometry reported by the host.
type MetricsInput struct {
	SessionID     string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	ScrollTop     int    `json:"scroll_top" jsonschema-description:"Current vertical scroll offset"`
	ClientHeight  int    `json:"client_height" jsonschema-description:"Visible height of the scroll container"`
	ScrollHeight  int    `json:"scroll_height" jsonschema-description:"Total scrollable height of the content"`
	VisibleTopKey string `json:"visible_top_key,omitempty" jsonschema-description:"Key of the first day at the top of the viewport"`
}

// OpenCalendarInput is the input schema for the open_calendar MCP tool.
type OpenCalendarInput struct {
	Today     string `json:"today,omitempty" jsonschema-description:"ISO date used as today (default: the server's today)"`
	Mode      string `json:"mode,omitempty" jsonschema-description:"Selection mode: range or single"`
	MaxMonths int    `json:"max_months,omitempty" jsonschema-description:"Maximum months kept in the window (0 = unbounded)"`
}

// OpenCalendarOutput is the output schema for the open_calendar MCP tool.
type OpenCalendarOutput struct {
	SessionID string       `json:"session_id"`
	Mode      string       `json:"mode"`
	Window    WindowResult `json:"window"`
}

// WindowResult summarises the materialised window.
type WindowResult struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Months int    `json:"months"`
	Days   int    `json:"days"`
	Today  string `json:"today"`
	Label  string `json:"label"`

	// Loading is true while the loading overlay is shown, including its
	// fade-out.
	Loading   bool `json:"loading"`
	FadingOut bool `json:"fading_out"`
}

// GetWindowInput is the input schema for the get_window MCP tool.
type GetWindowInput struct {
	SessionID   string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	IncludeDays bool   `json:"include_days,omitempty" jsonschema-description:"Include every day with its flags"`
}

// GetWindowOutput is the output schema for the get_window MCP tool.
type GetWindowOutput struct {
	Window WindowResult `json:"window"`
	Days   []DayResult  `json:"days,omitempty"`
}

// DayResult is one day with its derived flags.
type DayResult struct {
	Key     string          `json:"key"`
	Date    string          `json:"date"`
	Flags   selection.Flags `json:"flags"`
	Classes []string        `json:"classes,omitempty"`
}

// ExtendWindowInput is the input schema for the extend_window MCP tool.
type ExtendWindowInput struct {
	SessionID string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	Direction string `json:"direction" jsonschema-description:"backward or forward"`
}

// ExtensionResult describes one applied extension.
type ExtensionResult struct {
	Direction    string `json:"direction"`
	AddedStart   string `json:"added_start"`
	AddedEnd     string `json:"added_end"`
	Added        int    `json:"added"`
	Evicted      int    `json:"evicted"`
	EvictedStart string `json:"evicted_start,omitempty"`
	EvictedEnd   string `json:"evicted_end,omitempty"`
}

// ExtendWindowOutput is the output schema for the extend_window MCP tool.
type ExtendWindowOutput struct {
	Extension ExtensionResult `json:"extension"`
	Window    WindowResult    `json:"window"`
}

// ScrollOutput is the output schema for the scroll MCP tool.
type ScrollOutput struct {
	Extended  bool             `json:"extended"`
	Extension *ExtensionResult `json:"extension,omitempty"`
	Window    WindowResult     `json:"window"`
}

// IntentResult is a scroll request for the host to perform.
type IntentResult struct {
	TargetOffset int    `json:"target_offset"`
	TargetKey    string `json:"target_key,omitempty"`
	Smooth       bool   `json:"smooth"`
}

// LayoutOutput is the output schema for the layout MCP tool.
type LayoutOutput struct {
	Label  string        `json:"label"`
	Scroll *IntentResult `json:"scroll,omitempty"`
}

// ScrollToTodayInput is the input schema for the scroll_to_today MCP tool.
type ScrollToTodayInput struct {
	SessionID    string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	RowHeight    int    `json:"row_height" jsonschema-description:"Height of one week row"`
	ClientHeight int    `json:"client_height" jsonschema-description:"Visible height of the scroll container"`
}

// ScrollToTodayOutput is the output schema for the scroll_to_today MCP tool.
type ScrollToTodayOutput struct {
	Found   bool          `json:"found"`
	Scroll  *IntentResult `json:"scroll,omitempty"`
	Message string        `json:"message,omitempty"`
}

// ClickDayInput is the input schema for the click_day MCP tool.
type ClickDayInput struct {
	SessionID string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	Date      string `json:"date" jsonschema-description:"ISO date that was clicked"`
}

// SelectionResult is the selection state.
type SelectionResult struct {
	Kind   string `json:"kind"`
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`
	Days   int    `json:"days"`
}

// DayFlagsInput is the input schema for the day_flags MCP tool.
type DayFlagsInput struct {
	SessionID string `json:"session_id" jsonschema-description:"Session id returned by open_calendar"`
	Date      string `json:"date" jsonschema-description:"ISO date to inspect"`
}

// DayFlagsOutput is the output schema for the day_flags MCP tool.
type DayFlagsOutput struct {
	Date     string          `json:"date"`
	InWindow bool            `json:"in_window"`
	Flags    selection.Flags `json:"flags"`
	Classes  []string        `json:"classes,omitempty"`
}

// CloseCalendarOutput is the output schema for the close_calendar MCP tool.
type CloseCalendarOutput struct {
	Closed bool `json:"closed"`
}
