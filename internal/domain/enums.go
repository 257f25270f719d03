package domain

type TimerMode string

const (
	ModeWork  TimerMode = "work"
	ModeBreak TimerMode = "break"
)

// Other returns the mode that follows m when an interval completes.
func (m TimerMode) Other() TimerMode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// ParseTimerMode accepts work, w or focus for work mode and break, b or rest
// for break mode.
func ParseTimerMode(s string) (TimerMode, bool) {
	switch s {
	case "work", "w", "focus":
		return ModeWork, true
	case "break", "b", "rest":
		return ModeBreak, true
	}
	return "", false
}

type TimerStatus string

const (
	StatusIdle    TimerStatus = "idle"
	StatusRunning TimerStatus = "running"
	StatusPaused  TimerStatus = "paused"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ValidTaskPriorities is the canonical set of accepted priority strings.
var ValidTaskPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true,
}

// TaskFilterKind selects which tasks a listing shows.
type TaskFilterKind string

const (
	FilterAll       TaskFilterKind = "all"
	FilterPending   TaskFilterKind = "pending"
	FilterCompleted TaskFilterKind = "completed"
	FilterHigh      TaskFilterKind = "high"
	FilterMedium    TaskFilterKind = "medium"
	FilterLow       TaskFilterKind = "low"
)

// ValidTaskFilters is the canonical set of accepted filter strings.
var ValidTaskFilters = map[string]bool{
	"all": true, "pending": true, "completed": true,
	"high": true, "medium": true, "low": true,
}
