package domain

import "math"

const (
	DefaultWorkSeconds  = 25 * 60
	DefaultBreakSeconds = 5 * 60
)

// Durations holds the full length of each interval mode in seconds.
type Durations struct {
	WorkSeconds  int
	BreakSeconds int
}

// DefaultDurations returns the classic 25/5 Pomodoro split.
func DefaultDurations() Durations {
	return Durations{WorkSeconds: DefaultWorkSeconds, BreakSeconds: DefaultBreakSeconds}
}

// Normalize replaces non-positive lengths with the defaults.
func (d Durations) Normalize() Durations {
	if d.WorkSeconds <= 0 {
		d.WorkSeconds = DefaultWorkSeconds
	}
	if d.BreakSeconds <= 0 {
		d.BreakSeconds = DefaultBreakSeconds
	}
	return d
}

// For returns the full length of the given mode.
func (d Durations) For(mode TimerMode) int {
	if mode == ModeBreak {
		return d.BreakSeconds
	}
	return d.WorkSeconds
}

// TimerSession is the transient countdown state. It is never persisted.
type TimerSession struct {
	Mode             TimerMode
	Status           TimerStatus
	RemainingSeconds int
}

// TimerStats is the durable part of the timer: counters and the sound setting.
type TimerStats struct {
	CompletedWorkIntervals  int
	CompletedBreakIntervals int
	SoundEnabled            bool
}

// DefaultTimerStats returns the state used when nothing has been persisted yet.
func DefaultTimerStats() TimerStats {
	return TimerStats{SoundEnabled: true}
}

// FocusedMinutes is the total time spent in completed work intervals.
func (s TimerStats) FocusedMinutes(d Durations) int {
	return s.CompletedWorkIntervals * d.WorkSeconds / 60
}

// RestedMinutes is the total time spent in completed break intervals.
func (s TimerStats) RestedMinutes(d Durations) int {
	return s.CompletedBreakIntervals * d.BreakSeconds / 60
}

// TotalHours sums focused and rested time, rounded to one decimal place.
func (s TimerStats) TotalHours(d Durations) float64 {
	seconds := s.CompletedWorkIntervals*d.WorkSeconds + s.CompletedBreakIntervals*d.BreakSeconds
	return math.Round(float64(seconds)/3600*10) / 10
}

// Progress returns the elapsed fraction of an interval of length full with
// remaining seconds left, clamped to [0,1].
func Progress(full, remaining int) float64 {
	if full <= 0 {
		return 1
	}
	p := float64(full-remaining) / float64(full)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
