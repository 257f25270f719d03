package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tomato/internal/cli/formatter"
	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/cobra"
)

func newChecklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Track progress through the seeded build and QA checklists",
		Long: "Track progress through the seeded checklists: " +
			strings.Join(domain.ChecklistNames(), ", ") + ".",
	}

	cmd.AddCommand(
		newChecklistNamesCmd(),
		newChecklistListCmd(app),
		newChecklistToggleCmd(app),
		newChecklistResetCmd(app),
	)
	return cmd
}

func newChecklistNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the available checklists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(domain.ChecklistNames()))
			for _, name := range domain.ChecklistNames() {
				c, err := domain.NewChecklist(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{name, c.Title, strconv.Itoa(len(c.Items))})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"NAME", "TITLE", "ITEMS"}, rows))
			return nil
		},
	}
}

func newChecklistListCmd(app *App) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:       "list <name>",
		Aliases:   []string{"ls"},
		Short:     "Show a checklist with its progress",
		Example:   "  tomato checklist list build --filter pending\n  tomato checklist list qa -f high",
		Args:      cobra.ExactArgs(1),
		ValidArgs: domain.ChecklistNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Checklists.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			items, err := c.Filter(filter)
			if err != nil {
				return fmt.Errorf("%w (use all, completed, pending, high, medium, low or one of: %s)",
					err, strings.Join(c.Groups(), "; "))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatChecklistProgress(c))
			fmt.Fprint(out, formatter.FormatChecklistItems(c, items))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, completed, pending, high, medium, low or a phase/category name")
	return cmd
}

func newChecklistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <name> <item-id>...",
		Short: "Mark checklist items done, or open again",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("item id %q is not a number", arg)
				}
				ids = append(ids, id)
			}

			for _, id := range ids {
				item, err := app.Checklists.Toggle(context.Background(), args[0], id)
				if err != nil {
					return err
				}
				verb := "Reopened"
				if item.Completed {
					verb = "Completed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s step %d: %s\n", verb, item.ID, item.Description)
				if item.Completed && item.ResourceURL != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s <%s>\n", formatter.Dim("resource"), item.Resource, item.ResourceURL)
				}
			}
			return nil
		},
	}
}

func newChecklistResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <name>",
		Short: "Clear every completion mark on a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.NewChecklist(args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(fmt.Sprintf("Reset all items in %s? This cannot be undone.", c.Title), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Checklists.Reset(context.Background(), c.Name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s.\n", c.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
