package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/ui"
	"github.com/spf13/cobra"
)

var selectShowWindow bool

var selectCmd = &cobra.Command{
	Use:   "select DATE...",
	Short: "Replay day clicks and print the resulting selection",
	Long: `Apply each DATE (YYYY-MM-DD) as a click, in order, and print the final
selection. In range mode the first click picks a start, the second an end,
and clicking an endpoint again removes it.`,
	Example: `  calscroll select 2024-03-05 2024-03-10
  calscroll select --mode single 2024-03-05
  calscroll select --window 2024-03-05 2024-03-10
  calscroll select --json 2024-03-10 2024-03-05`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return selectRun(cmd.OutOrStdout(), args, selectShowWindow)
	},
}

func init() {
	selectCmd.Flags().BoolVar(&selectShowWindow, "window", false, "also print the window with the selection marked")
	rootCmd.AddCommand(selectCmd)
}

func selectRun(w io.Writer, dates []string, showWindow bool) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	for _, s := range dates {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return err
		}
		sess.OnDayClicked(d)
	}

	if jsonOutput {
		if showWindow {
			return ui.FormatJSON(w, ui.BuildWindowJSON(sess.Days(), sess.Today(), sess.Selection()))
		}
		return printSelection(w, sess.Selection(), true)
	}

	if !showWindow {
		return printSelection(w, sess.Selection(), true)
	}
	var buf bytes.Buffer
	ui.FormatWindow(&buf, sess.Days(), sess.Flags)
	fmt.Fprintln(&buf)
	ui.FormatSelection(&buf, sess.Selection())
	return ui.OutputOrPage(w, buf.String(), false, ui.ResolveTheme(appConfig.Theme))
}
