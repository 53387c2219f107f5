package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/calscroll/internal/calendar"
	"github.com/chris-regnier/calscroll/internal/config"
	"github.com/chris-regnier/calscroll/internal/selection"
	"github.com/chris-regnier/calscroll/internal/session"
	"github.com/chris-regnier/calscroll/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile    string
	jsonOutput bool
	todayFlag  string
	modeFlag   string
	appConfig  *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "calscroll",
	Short: "An infinitely scrolling calendar with date range selection",
	Long: `calscroll shows a continuously scrolling calendar that grows a month at a
time as you approach either end. Click or press enter on two days to select a
range; the chosen range is printed when you quit.`,
	Example: `  calscroll
  calscroll --mode single
  calscroll --today 2024-03-10 --json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to the plain window
			return windowRun(cmd.OutOrStdout(), 0, 0)
		}
		sess, err := newSession()
		if err != nil {
			return err
		}
		state, err := ui.RunTUI(sess, ui.TUIConfig{
			MaxWidth: appConfig.MaxWidth,
			Theme:    ui.ResolveTheme(appConfig.Theme),
		})
		if err != nil {
			return err
		}
		return printSelection(cmd.OutOrStdout(), state, false)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "treat this date (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "selection mode (range|single)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// sessionOptions builds session options from the loaded config and the
// persistent flags. Flags win over config.
func sessionOptions() (session.Options, error) {
	opts := session.Options{
		Threshold:   appConfig.Scroll.Threshold,
		LabelOffset: appConfig.Scroll.LabelOffset,
		MaxMonths:   appConfig.Window.MaxMonths,
		FadeDelay:   appConfig.Loading.FadeDelay,
		HideDelay:   appConfig.Loading.HideDelay,
	}

	if todayFlag != "" {
		today, err := calendar.ParseDate(todayFlag)
		if err != nil {
			return session.Options{}, fmt.Errorf("invalid --today: %w", err)
		}
		opts.Today = today
	}

	mode := appConfig.Mode
	if modeFlag != "" {
		mode = modeFlag
	}
	m, err := selection.ParseMode(mode)
	if err != nil {
		return session.Options{}, err
	}
	opts.Mode = m
	return opts, nil
}

func newSession() (*session.Session, error) {
	opts, err := sessionOptions()
	if err != nil {
		return nil, err
	}
	return session.New(opts), nil
}

// printSelection writes the selection. An empty selection prints nothing
// unless always is set or JSON output is requested.
func printSelection(w io.Writer, state selection.State, always bool) error {
	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSelectionJSON(state))
	}
	if state.Kind() == selection.Empty && !always {
		return nil
	}
	ui.FormatSelection(w, state)
	return nil
}
