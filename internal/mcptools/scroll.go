package mcptools

import (
	"context"
	"errors"

	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/chris-regnier/calscroll/internal/viewport"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScrollHandler returns the handler function for the scroll MCP tool. The host
// reports its scroll geometry; the window grows by one month when the position
// is within the threshold of either end. A direction extends at most once until
// the host reports the new layout.
func ScrollHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, ScrollOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, ScrollOutput, error) {
		var out ScrollOutput
		err := reg.With(input.SessionID, func(s *session.Session) error {
			if ext, ok := s.OnScroll(metrics(input), input.VisibleTopKey); ok {
				r := extensionResult(ext)
				out.Extended = true
				out.Extension = &r
			}
			out.Window = windowResult(s)
			return nil
		})
		return nil, out, err
	}
}

// LayoutHandler returns the handler function for the layout MCP tool, which the
// host calls after rendering a new day list.
func LayoutHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, LayoutOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MetricsInput) (*mcp.CallToolResult, LayoutOutput, error) {
		var out LayoutOutput
		err := reg.With(input.SessionID, func(s *session.Session) error {
			intent, ok := s.OnLayout(metrics(input), input.VisibleTopKey)
			if ok {
				out.Scroll = intentResult(intent)
			}
			out.Label = s.Label()
			return nil
		})
		return nil, out, err
	}
}

// ScrollToTodayHandler returns the handler function for the scroll_to_today MCP
// tool. Days are assumed to be laid out as Sunday-first week rows of
// row_height units. Today outside the window is reported, not failed.
func ScrollToTodayHandler(reg *Registry) func(ctx context.Context, req *mcp.CallToolRequest, input ScrollToTodayInput) (*mcp.CallToolResult, ScrollToTodayOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScrollToTodayInput) (*mcp.CallToolResult, ScrollToTodayOutput, error) {
		var out ScrollToTodayOutput
		err := reg.With(input.SessionID, func(s *session.Session) error {
			days := s.Days()
			m := viewport.Metrics{
				ClientHeight: input.ClientHeight,
				ScrollHeight: viewport.WeekRowsHeight(days, input.RowHeight),
			}
			intent, err := s.OnScrollToTodayRequested(viewport.WeekRows(days, input.RowHeight), m)
			if errors.Is(err, viewport.ErrTargetNotFound) {
				out.Message = err.Error()
				return nil
			}
			if err != nil {
				return err
			}
			out.Found = true
			out.Scroll = intentResult(intent)
			return nil
		})
		return nil, out, err
	}
}
