package app

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/RolandGoud/bikescaper/pkg/logging"
)

// Execute runs the bikescaper CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bikescaper",
		Short:   "Bike catalog lifecycle tracker",
		Version: a.version,
		Long: `Bikescaper maintains a master database of bike models per brand.

Each brand's scraper drops a current snapshot CSV into the data directory;
the update command folds it into the brand's master store, classifying
every model ever observed as New, Available, or Discontinued, and
regenerates the per-brand status reports.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.bikescaper.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.config.DataDir, "data-dir", "d", a.config.DataDir, "data directory holding snapshots and master stores")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("bikescaper {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand,
	// so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	dataDir := mustGetString(cmd, "data-dir")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, dataDir, logLevel)

	// Reinitialize logger with updated config and propagate it down to
	// the tracker through the command context
	logger := NewLogger(a.config)
	a.logger = &logger
	cmd.SetContext(logging.WithLogger(cmd.Context(), &logger))

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewUpdateCommand())
	rootCmd.AddCommand(a.NewReportCommand())
	rootCmd.AddCommand(a.NewStatusCommand())
	rootCmd.AddCommand(a.NewBrandsCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitError carries an explicit process exit code through the command
// error path. The update command uses it to distinguish partial brand
// failure from total failure.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// Unwrap implements errors.Unwrap.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitOnError prints an error and exits with its status code, defaulting
// to 1. Meant for top-level error handling in main.go.
func ExitOnError(err error) {
	if err == nil {
		return
	}

	//nolint:errcheck // Ignoring write error since we're exiting anyway
	_, _ = os.Stderr.WriteString(err.Error() + "\n")

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
