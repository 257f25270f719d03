package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tomato/internal/cli/formatter"
	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskShowCmd(app),
		newTaskEditCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
		newTaskSummaryCmd(app),
	)

	return cmd
}

// taskFields collects the flags shared by add and edit.
type taskFields struct {
	description string
	priority    string
	status      string
	category    string
	estimate    int
	due         string
}

func (f *taskFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Priority (low, medium, high)")
	cmd.Flags().StringVar(&f.status, "status", "", "Status (pending, in_progress, completed)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category")
	cmd.Flags().IntVar(&f.estimate, "estimate", 0, "Estimated minutes")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD, empty to clear)")
}

// apply copies every flag the user actually set onto t.
func (f *taskFields) apply(cmd *cobra.Command, t *domain.Task) error {
	changed := cmd.Flags().Changed
	if changed("desc") {
		t.Description = f.description
	}
	if changed("priority") {
		t.Priority = domain.TaskPriority(strings.ToLower(f.priority))
	}
	if changed("status") {
		t.Status = domain.TaskStatus(strings.ToLower(f.status))
	}
	if changed("category") {
		t.Category = f.category
	}
	if changed("estimate") {
		est := f.estimate
		t.EstimatedMin = &est
	}
	if changed("due") {
		if f.due == "" {
			t.DueDate = nil
		} else {
			d, err := time.Parse("2006-01-02", f.due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: use YYYY-MM-DD", f.due)
			}
			t.DueDate = &d
		}
	}
	return nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var fields taskFields

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{Title: strings.Join(args, " ")}
			if err := fields.apply(cmd, t); err != nil {
				return err
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %s %s\n", t.DisplayID(), t.Title)
			return nil
		},
	}

	fields.register(cmd)
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var filter, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.TaskFilterKind(strings.ToLower(filter))
			if !domain.ValidTaskFilters[string(kind)] {
				return fmt.Errorf("invalid filter %q (use all, pending, completed, high, medium, low)", filter)
			}

			ctx := context.Background()
			tasks, err := app.Tasks.List(ctx, domain.TaskFilter{Kind: kind, Search: search})
			if err != nil {
				return err
			}
			summary, err := app.Tasks.Summary(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatTaskSummary(summary))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatTaskList(tasks, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(domain.FilterAll), "Filter (all, pending, completed, high, medium, low)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only tasks whose title or description contains this text")
	return cmd
}

func newTaskShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(t))
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var fields taskFields
	var title string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if err := fields.apply(cmd, t); err != nil {
				return err
			}
			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s %s\n", t.DisplayID(), t.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title")
	fields.register(cmd)
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done ID",
		Aliases: []string{"toggle"},
		Short:   "Mark a task completed, or reopen a completed one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Tasks.ToggleStatus(context.Background(), args[0])
			if err != nil {
				return err
			}
			verb := "Reopened"
			if t.IsCompleted() {
				verb = "Completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s task %s %s\n", verb, t.DisplayID(), t.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			t, err := app.Tasks.Get(ctx, args[0])
			if err != nil {
				return err
			}
			ok, err := app.confirm(fmt.Sprintf("Delete task %q?", t.Title), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if _, err := app.Tasks.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s %s\n", t.DisplayID(), t.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newTaskSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tasks.Summary(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskSummary(s))
			return nil
		},
	}
}
