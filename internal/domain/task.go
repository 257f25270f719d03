package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTask marks task validation failures.
var ErrInvalidTask = errors.New("invalid task")

type Task struct {
	ID           string
	Title        string
	Description  string
	Priority     TaskPriority
	Status       TaskStatus
	Category     string
	EstimatedMin *int
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyDefaults fills in the priority and status a new task starts with.
func (t *Task) ApplyDefaults() {
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = TaskPending
	}
}

// Validate checks the fields a task must carry before it is stored.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	if !ValidTaskPriorities[string(t.Priority)] {
		return fmt.Errorf("%w: priority %q must be low, medium, or high", ErrInvalidTask, t.Priority)
	}
	if !ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("%w: status %q must be pending, in_progress, or completed", ErrInvalidTask, t.Status)
	}
	if t.EstimatedMin != nil && *t.EstimatedMin < 0 {
		return fmt.Errorf("%w: estimated time cannot be negative", ErrInvalidTask)
	}
	return nil
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// ToggleStatus flips a completed task back to pending and anything else to completed.
func (t *Task) ToggleStatus(now time.Time) {
	if t.Status == TaskCompleted {
		t.Status = TaskPending
	} else {
		t.Status = TaskCompleted
	}
	t.UpdatedAt = now
}

// DisplayID returns the first 8 characters of the ID.
func (t *Task) DisplayID() string {
	if len(t.ID) >= 8 {
		return t.ID[:8]
	}
	return t.ID
}

// TaskFilter narrows a task listing by status/priority and a search term.
type TaskFilter struct {
	Kind   TaskFilterKind
	Search string
}

// Matches reports whether t passes the filter. The search term is matched
// case-insensitively against title and description.
func (f TaskFilter) Matches(t *Task) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	switch f.Kind {
	case FilterCompleted:
		return t.Status == TaskCompleted
	case FilterPending:
		return t.Status != TaskCompleted
	case FilterHigh:
		return t.Priority == PriorityHigh
	case FilterMedium:
		return t.Priority == PriorityMedium
	case FilterLow:
		return t.Priority == PriorityLow
	}
	return true
}

// Apply returns the tasks that match, preserving order.
func (f TaskFilter) Apply(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// TaskSummary aggregates counts shown above the task list.
type TaskSummary struct {
	Total               int
	Completed           int
	Outstanding         int
	OutstandingHighPrio int
	CompletionFraction  float64
}

// SummarizeTasks counts completed and outstanding tasks.
func SummarizeTasks(tasks []*Task) TaskSummary {
	var s TaskSummary
	for _, t := range tasks {
		s.Total++
		if t.IsCompleted() {
			s.Completed++
			continue
		}
		s.Outstanding++
		if t.Priority == PriorityHigh {
			s.OutstandingHighPrio++
		}
	}
	if s.Total > 0 {
		s.CompletionFraction = float64(s.Completed) / float64(s.Total)
	}
	return s
}
