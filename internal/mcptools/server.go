package mcptools

import (
	"context"

	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewCalendarMCPServer creates an in-memory MCP server exposing calendar tools.
// Returns the server, its registry and a client transport for connecting to it.
func NewCalendarMCPServer(base session.Options) (*mcp.Server, *Registry, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	reg := NewRegistry(base)
	server := CreateMCPServer(reg)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, reg, clientTransport
}

// CreateMCPServer creates an MCP server with registered calendar tools backed
// by reg.
func CreateMCPServer(reg *Registry) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "calscroll",
		Version: "1.0.0",
	}, nil)

	// Session lifecycle
	mcp.AddTool(server, &mcp.Tool{
		Name:        "open_calendar",
		Description: "Open a calendar session holding the three months around today",
	}, OpenCalendarHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "close_calendar",
		Description: "Close a calendar session",
	}, CloseCalendarHandler(reg))

	// Window
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_window",
		Description: "Describe the materialised date window, optionally with every day's flags",
	}, GetWindowHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extend_window",
		Description: "Add one whole month before or after the window",
	}, ExtendWindowHandler(reg))

	// Viewport
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scroll",
		Description: "Report a scroll position; extends the window near either end",
	}, ScrollHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "layout",
		Description: "Report that the day list was re-rendered; returns the month label and any pending scroll",
	}, LayoutHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scroll_to_today",
		Description: "Compute the scroll offset that centres today's row",
	}, ScrollToTodayHandler(reg))

	// Selection
	mcp.AddTool(server, &mcp.Tool{
		Name:        "click_day",
		Description: "Click a day, updating the range or single selection",
	}, ClickDayHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_selection",
		Description: "Return the current selection",
	}, GetSelectionHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clear_selection",
		Description: "Clear the selection",
	}, ClearSelectionHandler(reg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "day_flags",
		Description: "Return the today/selection flags and style classes for a date",
	}, DayFlagsHandler(reg))

	return server
}
