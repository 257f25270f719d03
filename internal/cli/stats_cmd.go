package cli

import (
	"fmt"

	"github.com/alexanderramin/tomato/internal/cli/formatter"
	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completed intervals and focused time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Timer.Snapshot()
			stats := domain.TimerStats{
				CompletedWorkIntervals:  snap.CompletedWorkIntervals,
				CompletedBreakIntervals: snap.CompletedBreakIntervals,
				SoundEnabled:            snap.SoundEnabled,
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats, app.Timer.Durations()))
			return nil
		},
	}

	cmd.AddCommand(newStatsResetCmd(app))
	return cmd
}

func newStatsResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Zero the interval counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := app.confirm("Reset all statistics?", yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			app.Timer.ResetStats()
			fmt.Fprintln(cmd.OutOrStdout(), "Statistics reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
