package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/vcal-notify/internal/config"
	"github.com/pfrederiksen/vcal-notify/internal/event"
	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/pipeline"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const invalidModeMessage = `Invalid argument. Use "today", "tomorrow", or "week".`

var (
	flagDryRun  bool
	flagEnvFile string
	flagFormat  string
	flagVerbose bool
	flagNoColor bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcal-notify <today|tomorrow|week>",
		Short: "Send Vaiṣṇava calendar events to a Telegram chat",
		Long: `Fetches the Vaiṣṇava calendar feed, selects the events for today,
tomorrow, or the current Sunday to Saturday week, and posts them to a
Telegram chat. Nothing is sent when the window has no events.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runNotify,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the message instead of sending it")
	cmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file loaded before the environment is parsed")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored summary output")

	return cmd
}

// runNotify is the main command logic
func runNotify(cmd *cobra.Command, args []string) error {
	// An unknown mode is reported but is not a failure
	if len(args) != 1 {
		fmt.Fprintln(cmd.ErrOrStderr(), invalidModeMessage)
		return nil
	}
	mode, err := event.ParseMode(args[0])
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), invalidModeMessage)
		return nil
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagNoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return err
	}

	level := cfg.Level()
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	var dryRunOut io.Writer
	if flagDryRun {
		dryRunOut = cmd.OutOrStdout()
	}

	runner, err := pipeline.New(cmd.Context(), cfg, dryRunOut)
	if err != nil {
		return err
	}

	logger.ResetMetrics()
	result := runner.Run(cmd.Context(), mode)
	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return WriteOutput(cmd.OutOrStdout(), mode, &result, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
