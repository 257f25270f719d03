package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
)

// FormatTaskList renders tasks as a table, or a hint when there are none.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks found.") + "\n"
	}

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		title := t.Title
		if t.IsCompleted() {
			title = StyleDim.Strikethrough(true).Render(title)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			title,
			PriorityBadge(t.Priority),
			TaskStatusPill(t.Status),
			categoryOrDash(t.Category),
			dueText(t.DueDate),
			HumanTimestampFrom(t.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "PRIORITY", "STATUS", "CATEGORY", "DUE", "CREATED"}, rows)
}

// FormatTaskDetail renders every field of one task.
func FormatTaskDetail(t *domain.Task) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-12s %s\n", Dim(label), value)
	}

	line("ID", t.ID)
	line("Priority", PriorityBadge(t.Priority))
	line("Status", TaskStatusPill(t.Status))
	line("Category", categoryOrDash(t.Category))
	if t.EstimatedMin != nil {
		line("Estimate", FormatMinutes(*t.EstimatedMin))
	}
	line("Due", dueText(t.DueDate))
	line("Created", t.CreatedAt.Local().Format("Jan 2, 2006 15:04"))
	line("Updated", t.UpdatedAt.Local().Format("Jan 2, 2006 15:04"))
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}
	return RenderBox(t.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatTaskSummary renders the counts shown above the task list.
func FormatTaskSummary(s domain.TaskSummary) string {
	return fmt.Sprintf("%s %d  %s %d  %s %d  %s %d\n%s\n",
		Dim("total"), s.Total,
		Dim("done"), s.Completed,
		Dim("open"), s.Outstanding,
		Dim("high priority"), s.OutstandingHighPrio,
		RenderProgress(s.CompletionFraction, progressWidth, StyleGreen))
}

func categoryOrDash(c string) string {
	if c == "" {
		return Dim("--")
	}
	return c
}

func dueText(d *time.Time) string {
	if d == nil {
		return Dim("--")
	}
	return d.Format("2006-01-02")
}
