package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tomato/internal/domain"
)

// FormatChecklistItems renders checklist items as a table. Lists with time
// estimates get a TIME column; lists with priorities get a PRIORITY column.
func FormatChecklistItems(c *domain.Checklist, items []domain.ChecklistItem) string {
	if len(items) == 0 {
		return Dim("No items match.") + "\n"
	}

	withTime := c.Progress().TotalMinutes > 0
	withPriority := hasPriority(c.Items)

	headers := []string{"#", "STATUS", strings.ToUpper(c.GroupLabel), "STEP"}
	if withTime {
		headers = append(headers, "TIME")
	}
	if withPriority {
		headers = append(headers, "PRIORITY")
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		step := it.Description
		if it.Completed {
			step = StyleDim.Strikethrough(true).Render(step)
		}
		row := []string{strconv.Itoa(it.ID), ChecklistStatusPill(it.Completed), it.Group, step}
		if withTime {
			row = append(row, FormatMinutes(it.Minutes))
		}
		if withPriority {
			row = append(row, PriorityBadge(domain.TaskPriority(strings.ToLower(string(it.Priority)))))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatChecklistProgress renders completion counts, the progress bar and,
// when the list carries estimates, completed against total time.
func FormatChecklistProgress(c *domain.Checklist) string {
	p := c.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d  %s\n", Dim("completed"), p.Completed, p.Total, Bold(fmt.Sprintf("%.1f%%", p.Percent)))
	b.WriteString(RenderProgress(p.Percent/100, progressWidth, StyleGreen) + "\n")
	if p.TotalMinutes > 0 {
		fmt.Fprintf(&b, "%s %s  %s %s  %s %.1fh\n",
			Dim("done"), FormatMinutes(p.CompletedMinutes),
			Dim("remaining"), FormatMinutes(p.RemainingMinutes()),
			Dim("invested"), float64(p.CompletedMinutes)/60)
	}
	if p.HighTotal > 0 {
		fmt.Fprintf(&b, "%s %d/%d\n", Dim("high priority"), p.HighCompleted, p.HighTotal)
	}
	if p.Total > 0 && p.Completed == p.Total {
		b.WriteString(StyleGreen.Render("Complete!") + "\n")
	}
	return RenderBox(c.Title, strings.TrimRight(b.String(), "\n"))
}

// ChecklistStatusPill marks an item done or open.
func ChecklistStatusPill(completed bool) string {
	if completed {
		return StyleGreen.Render("✔ Done")
	}
	return StyleBlue.Render("○ Open")
}

func hasPriority(items []domain.ChecklistItem) bool {
	for _, it := range items {
		if it.Priority != "" {
			return true
		}
	}
	return false
}
