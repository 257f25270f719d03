package timer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
)

// Notifier plays a single tone. Implementations may block for the tone's
// duration; the timer always calls them off the state-machine lock.
type Notifier interface {
	Play(frequencyHz float64, duration time.Duration) error
}

// Tone is one step of a completion alert, Offset after the alert starts.
type Tone struct {
	Offset      time.Duration
	FrequencyHz float64
	Duration    time.Duration
}

// CompletionTones returns the alert for the mode that just finished: an
// ascending three-tone sequence for work, a single tone for a break.
func CompletionTones(finished domain.TimerMode) []Tone {
	first := Tone{Offset: 0, FrequencyHz: 800, Duration: time.Second}
	if finished != domain.ModeWork {
		return []Tone{first}
	}
	return []Tone{
		first,
		{Offset: 300 * time.Millisecond, FrequencyHz: 600, Duration: 500 * time.Millisecond},
		{Offset: 600 * time.Millisecond, FrequencyHz: 1000, Duration: 500 * time.Millisecond},
	}
}

// alert schedules the completion tones. The sound setting was sampled by
// the caller, so toggling it mid-sequence does not cut the alert short.
func (t *IntervalTimer) alert(finished domain.TimerMode) {
	for _, tone := range CompletionTones(finished) {
		t.sched.After(tone.Offset, func() { t.play(tone) })
	}
}

func (t *IntervalTimer) play(tone Tone) {
	defer func() {
		if p := recover(); p != nil {
			t.logger.Warn("alert tone panicked", "frequency_hz", tone.FrequencyHz, "panic", fmt.Sprint(p))
		}
	}()
	if err := t.notifier.Play(tone.FrequencyHz, tone.Duration); err != nil {
		t.logger.Warn("alert tone failed", "frequency_hz", tone.FrequencyHz, "error", err)
	}
}

type silentNotifier struct{}

func (silentNotifier) Play(float64, time.Duration) error { return nil }
