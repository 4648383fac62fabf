package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/RolandGoud/bikescaper/internal/output"
)

// NewUpdateCommand creates the update command.
func (a *App) NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update [brand...]",
		Short: "Fold current snapshots into the master stores",
		Long: `Update reconciles each brand's current snapshot against its master store.

For every brand it:
1. Loads the current snapshot (data/<brand>_bikes_latest.csv)
2. Loads the existing master store, if any
3. Selects the most complete archived snapshot as extra evidence
4. Classifies each model as New, Available, or Discontinued
5. Writes the updated master store and regenerates status reports

Without arguments, brands are detected from the current snapshot files
in the data directory. One brand's failure never aborts the others.`,
		Example: `  bikescaper update                 # Update all detected brands
  bikescaper update Canyon          # Update one brand
  bikescaper update Canyon Trek     # Update specific brands`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := a.Tracker()
			if err != nil {
				return err
			}

			summary, err := tracker.Update(cmd.Context(), args...)
			if err != nil {
				return err
			}

			for _, result := range summary.Results {
				fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			}
			for _, failure := range summary.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: update failed: %v\n", failure.Brand, failure.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d brand(s) updated, %d failed\n",
				summary.Succeeded(), summary.Failed())

			switch {
			case summary.AllFailed():
				return &ExitError{Code: 1, Err: fmt.Errorf("all %d brand(s) failed", summary.Failed())}
			case summary.Failed() > 0:
				return &ExitError{Code: 2, Err: fmt.Errorf("%d of %d brand(s) failed",
					summary.Failed(), summary.Failed()+summary.Succeeded())}
			}
			return nil
		},
	}
}

// NewReportCommand creates the report command.
func (a *App) NewReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report [brand...]",
		Short: "Regenerate status reports from the master stores",
		Long: `Report rebuilds the per-brand status CSVs, the status summaries, and
the combined summary from the persisted master stores. The master
stores themselves are not modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := a.Tracker()
			if err != nil {
				return err
			}
			if err := tracker.Report(cmd.Context(), args...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reports regenerated")
			return nil
		},
	}
}

// NewStatusCommand creates the status command.
func (a *App) NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status [brand...]",
		Short: "Show per-brand lifecycle counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := a.Tracker()
			if err != nil {
				return err
			}

			statuses, err := tracker.Status(cmd.Context(), args...)
			if err != nil {
				return err
			}

			rows := make([]output.BrandRow, 0, len(statuses))
			for _, status := range statuses {
				rows = append(rows, output.NewBrandRow(status.Brand, status.Counts))
			}

			format, err := output.ParseFormat(a.config.Format)
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			formatter := output.NewFormatter(format)
			var data any = rows
			if format == output.FormatTable {
				data = output.BrandRowsToTableData(rows)
			}
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}
}

// NewBrandsCommand creates the brands command.
func (a *App) NewBrandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List brands detected from current snapshot files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, err := a.Tracker()
			if err != nil {
				return err
			}

			brands, err := tracker.Brands()
			if err != nil {
				return err
			}
			for _, brand := range brands {
				fmt.Fprintln(cmd.OutOrStdout(), brand)
			}
			return nil
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bikescaper version %s\n", a.version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", a.commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", a.date)
			fmt.Fprintf(cmd.OutOrStdout(), "built by: %s\n", a.builtBy)
			fmt.Fprintf(cmd.OutOrStdout(), "go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
