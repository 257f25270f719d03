package cli

import (
	"github.com/alexanderramin/tomato/internal/service"
	"github.com/alexanderramin/tomato/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds everything the commands need. Tasks, Checklists and Timer are
// required; the remaining fields have defaults suited to a real terminal.
type App struct {
	Tasks      service.TaskService
	Checklists service.ChecklistService
	Timer      *timer.IntervalTimer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Defaults to a huh confirm form.
	Confirm func(title string) (bool, error)
	// RunTUI runs a bubbletea model to completion.
	RunTUI func(m tea.Model) error

	// Flags are added to the root as persistent flags.
	Flags *pflag.FlagSet
}

// NewRootCmd creates the top-level "tomato" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tomato",
		Short:         "Pomodoro timer, task list and checklists for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimerTUI(cmd, app, timerOptions{})
		},
	}
	if app.Flags != nil {
		root.PersistentFlags().AddFlagSet(app.Flags)
	}

	root.AddCommand(
		newTimerCmd(app),
		newStatsCmd(app),
		newSoundCmd(app),
		newTaskCmd(app),
		newChecklistCmd(app),
	)

	return root
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) runTUI(m tea.Model) error {
	if app.RunTUI != nil {
		return app.RunTUI(m)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
