package mcptools

import (
	"context"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClickDayHandler returns the handler function for the click_day MCP tool.
func ClickDayHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input ClickDayInput) (*mcp.CallToolResult, SelectionResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClickDayInput) (*mcp.CallToolResult, SelectionResult, error) {
		date, err := calendar.ParseDate(input.Date)
		if err != nil {
			return nil, SelectionResult{}, err
		}

		var out SelectionResult
		err = reg.With(input.SessionID, func(s *session.Session) error {
			out = selectionResult(s.OnDayClicked(date))
			return nil
		})
		return nil, out, err
	}
}

// GetSelectionHandler returns the handler function for the get_selection MCP tool.
func GetSelectionHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, SelectionResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, SelectionResult, error) {
		var out SelectionResult
		err := reg.With(input.SessionID, func(s *session.Session) error {
			out = selectionResult(s.Selection())
			return nil
		})
		return nil, out, err
	}
}

// ClearSelectionHandler returns the handler function for the clear_selection MCP tool.
func ClearSelectionHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, SelectionResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, SelectionResult, error) {
		var out SelectionResult
		err := reg.With(input.SessionID, func(s *session.Session) error {
			s.ClearSelection()
			out = selectionResult(s.Selection())
			return nil
		})
		return nil, out, err
	}
}

// DayFlagsHandler returns the handler function for the day_flags MCP tool.
// Flags are derived for any date, inside the window or not.
func DayFlagsHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input DayFlagsInput) (*mcp.CallToolResult, DayFlagsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DayFlagsInput) (*mcp.CallToolResult, DayFlagsOutput, error) {
		date, err := calendar.ParseDate(input.Date)
		if err != nil {
			return nil, DayFlagsOutput{}, err
		}

		var out DayFlagsOutput
		err = reg.With(input.SessionID, func(s *session.Session) error {
			f := s.Flags(date)
			out = DayFlagsOutput{
				Date:     date.String(),
				InWindow: s.Window().Contains(date),
				Flags:    f,
				Classes:  f.Classes(),
			}
			return nil
		})
		return nil, out, err
	}
}
