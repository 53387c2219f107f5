package cmd

import (
	"context"
	"log"
	"os"

	"github.com/chris-regnier/calscroll/internal/mcptools"
	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes calendar tools
over stdio transport. Each client opens one or more calendar sessions and
drives them with scroll, layout and click events.

Available tools:
  - open_calendar / close_calendar: session lifecycle
  - get_window / extend_window: inspect or grow the date window
  - scroll / layout / scroll_to_today: viewport events
  - click_day / get_selection / clear_selection: date selection
  - day_flags: today and selection flags for a date

Example usage in an MCP client config:
  {
    "mcpServers": {
      "calscroll": {
        "command": "/path/to/calscroll",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

// mcpSessionOptions builds the base options for MCP sessions. MCP hosts
// report geometry in their own units, so the scroll distances come from the
// mcp section instead of the terminal-line scroll section.
func mcpSessionOptions() (session.Options, error) {
	opts, err := sessionOptions()
	if err != nil {
		return session.Options{}, err
	}
	opts.Threshold = appConfig.MCP.Threshold
	opts.LabelOffset = appConfig.MCP.LabelOffset
	return opts, nil
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	base, err := mcpSessionOptions()
	if err != nil {
		return err
	}

	server := mcptools.CreateMCPServer(mcptools.NewRegistry(base))

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting calscroll MCP server (stdio transport)")
	log.Printf("Selection mode: %s", base.Mode)
	log.Printf("Scroll threshold: %d, label offset: %d", base.Threshold, base.LabelOffset)
	if base.MaxMonths > 0 {
		log.Printf("Window capped at %d months", base.MaxMonths)
	}

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
