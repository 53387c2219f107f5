package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// OpenCalendarHandler returns the handler function for the open_calendar MCP tool.
func OpenCalendarHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input OpenCalendarInput) (*mcp.CallToolResult, OpenCalendarOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input OpenCalendarInput) (*mcp.CallToolResult, OpenCalendarOutput, error) {
		opts := reg.Base()
		if input.Today != "" {
			today, err := calendar.ParseDate(input.Today)
			if err != nil {
				return nil, OpenCalendarOutput{}, err
			}
			opts.Today = today
		}
		if input.Mode != "" {
			mode, err := selection.ParseMode(input.Mode)
			if err != nil {
				return nil, OpenCalendarOutput{}, err
			}
			opts.Mode = mode
		}
		if input.MaxMonths > 0 {
			opts.MaxMonths = input.MaxMonths
		}

		id, err := reg.Open(opts)
		if err != nil {
			return nil, OpenCalendarOutput{}, err
		}
		if err := reg.Mount(id); err != nil {
			return nil, OpenCalendarOutput{}, err
		}

		var out OpenCalendarOutput
		err = reg.With(id, func(s *session.Session) error {
			out = OpenCalendarOutput{
				SessionID: id,
				Mode:      s.Mode().String(),
				Window:    windowResult(s),
			}
			return nil
		})
		return nil, out, err
	}
}

// GetWindowHandler returns the handler function for the get_window MCP tool.
func GetWindowHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input GetWindowInput) (*mcp.CallToolResult, GetWindowOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetWindowInput) (*mcp.CallToolResult, GetWindowOutput, error) {
		var out GetWindowOutput
		err := reg.With(input.SessionID, func(s *session.Session) error {
			out.Window = windowResult(s)
			if input.IncludeDays {
				days := s.Days()
				out.Days = make([]DayResult, len(days))
				for i, d := range days {
					out.Days[i] = dayResult(s, d)
				}
			}
			return nil
		})
		return nil, out, err
	}
}

// ExtendWindowHandler returns the handler function for the extend_window MCP tool.
// It extends unconditionally, without consulting the scroll thresholds.
func ExtendWindowHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input ExtendWindowInput) (*mcp.CallToolResult, ExtendWindowOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExtendWindowInput) (*mcp.CallToolResult, ExtendWindowOutput, error) {
		dir, err := calendar.ParseDirection(input.Direction)
		if err != nil {
			return nil, ExtendWindowOutput{}, err
		}

		var out ExtendWindowOutput
		err = reg.With(input.SessionID, func(s *session.Session) error {
			out.Extension = extensionResult(s.Extend(dir))
			out.Window = windowResult(s)
			return nil
		})
		return nil, out, err
	}
}

// CloseCalendarHandler returns the handler function for the close_calendar MCP tool.
func CloseCalendarHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, CloseCalendarOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SessionInput) (*mcp.CallToolResult, CloseCalendarOutput, error) {
		if err := reg.Close(input.SessionID); err != nil {
			return nil, CloseCalendarOutput{}, fmt.Errorf("closing calendar: %w", err)
		}
		return nil, CloseCalendarOutput{Closed: true}, nil
	}
}
