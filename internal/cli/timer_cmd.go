package cli

import (
	"fmt"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/cobra"
)

type timerOptions struct {
	mode      string
	autoStart bool
}

func newTimerCmd(app *App) *cobra.Command {
	var opts timerOptions

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Open the interactive Pomodoro timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimerTUI(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Start in this mode (work or break)")
	cmd.Flags().BoolVar(&opts.autoStart, "start", false, "Start the countdown immediately")

	return cmd
}

func runTimerTUI(cmd *cobra.Command, app *App, opts timerOptions) error {
	if opts.mode != "" {
		mode, ok := domain.ParseTimerMode(opts.mode)
		if !ok {
			return fmt.Errorf("invalid mode %q (use work or break)", opts.mode)
		}
		if err := app.Timer.SwitchMode(mode); err != nil {
			return err
		}
	}
	if opts.autoStart {
		app.Timer.Start()
	}

	m := newTimerModel(app.Timer)
	err := app.runTUI(m)

	snap := app.Timer.Snapshot()
	app.Timer.Close()
	if err != nil {
		return fmt.Errorf("running timer: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Completed %d work and %d break intervals so far.\n",
		snap.CompletedWorkIntervals, snap.CompletedBreakIntervals)
	return nil
}
