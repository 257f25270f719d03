package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSoundCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "sound [on|off|toggle]",
		Short:     "Show or change the completion sound setting",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				switch args[0] {
				case "on":
					app.Timer.SetSound(true)
				case "off":
					app.Timer.SetSound(false)
				case "toggle":
					app.Timer.ToggleSound()
				}
			}
			state := "off"
			if app.Timer.Snapshot().SoundEnabled {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sound is %s.\n", state)
			return nil
		},
	}
}
