package cmd

import (
	"bytes"
	"errors"
	"io"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/ui"
	"github.com/spf13/cobra"
)

var errNegativeMonths = errors.New("month counts must not be negative")

var (
	monthsBefore int
	monthsAfter  int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the calendar window as month grids",
	Long: `Print the months around today as plain month grids. The window starts as
the previous, current and next month and can be widened with --months-before
and --months-after.`,
	Example: `  calscroll window
  calscroll window --months-before 2 --months-after 6
  calscroll window --today 2024-03-10 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return windowRun(cmd.OutOrStdout(), monthsBefore, monthsAfter)
	},
}

func init() {
	windowCmd.Flags().IntVar(&monthsBefore, "months-before", 0, "extra months before the initial window")
	windowCmd.Flags().IntVar(&monthsAfter, "months-after", 0, "extra months after the initial window")
	rootCmd.AddCommand(windowCmd)
}

func windowRun(w io.Writer, before, after int) error {
	if before < 0 || after < 0 {
		return errNegativeMonths
	}
	sess, err := newSession()
	if err != nil {
		return err
	}
	for i := 0; i < before; i++ {
		sess.Extend(calendar.Backward)
	}
	for i := 0; i < after; i++ {
		sess.Extend(calendar.Forward)
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.BuildWindowJSON(sess.Days(), sess.Today(), sess.Selection()))
	}

	var buf bytes.Buffer
	ui.FormatWindow(&buf, sess.Days(), sess.Flags)
	return ui.OutputOrPage(w, buf.String(), false, ui.ResolveTheme(appConfig.Theme))
}
