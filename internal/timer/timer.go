// Package timer implements the Pomodoro interval timer: a countdown with an
// idle/running/paused status, a work/break mode, and durable counters.
//
// All operations, including the scheduled tick, are serialized by one mutex.
// The tick is a cancellable callback owned by the timer. Every tick source
// carries a generation number, and every operation that stops the countdown
// bumps the generation before returning, so a tick already in flight when
// the source is cancelled finds a stale generation and does nothing.
package timer

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// ErrUnknownMode is returned by SwitchMode for anything but work or break.
var ErrUnknownMode = errors.New("unknown timer mode")

// Options configures an IntervalTimer. Zero values select a wall-clock
// scheduler, a silent notifier, in-memory stats and a discarding logger.
type Options struct {
	Durations domain.Durations
	Scheduler Scheduler
	Notifier  Notifier
	Store     StatsStore
	Logger    *slog.Logger
}

// Snapshot is everything a host UI needs to render the timer.
type Snapshot struct {
	Mode                    domain.TimerMode
	Status                  domain.TimerStatus
	RemainingSeconds        int
	CompletedWorkIntervals  int
	CompletedBreakIntervals int
	SoundEnabled            bool
	Progress                float64
}

// IntervalTimer is the Pomodoro state machine.
type IntervalTimer struct {
	mu        sync.Mutex
	durations domain.Durations
	session   domain.TimerSession
	stats     domain.TimerStats

	sched    Scheduler
	notifier Notifier
	store    StatsStore
	logger   *slog.Logger

	cancelTick func()
	generation uint64

	events []chan Snapshot
	closed bool
}

// New builds an idle timer in work mode and loads stats from the store.
// A load failure is logged and the defaults are used.
func New(opts Options) *IntervalTimer {
	t := &IntervalTimer{
		durations: opts.Durations.Normalize(),
		sched:     opts.Scheduler,
		notifier:  opts.Notifier,
		store:     opts.Store,
		logger:    opts.Logger,
	}
	if t.sched == nil {
		t.sched = ClockScheduler{}
	}
	if t.notifier == nil {
		t.notifier = silentNotifier{}
	}
	if t.store == nil {
		t.store = memoryStore{}
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	stats, err := t.store.Load()
	if err != nil {
		t.logger.Warn("timer stats load failed, using defaults", "error", err)
	}
	t.stats = stats
	t.session = domain.TimerSession{
		Mode:             domain.ModeWork,
		Status:           domain.StatusIdle,
		RemainingSeconds: t.durations.For(domain.ModeWork),
	}
	return t
}

// Start begins or resumes the countdown. It is a no-op while running, so a
// double start never creates a second tick source.
func (t *IntervalTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.startLocked()
}

func (t *IntervalTimer) startLocked() {
	if t.closed || t.session.Status == domain.StatusRunning {
		return
	}
	t.session.Status = domain.StatusRunning
	t.generation++
	gen := t.generation
	t.cancelTick = t.sched.Every(TickInterval, func() { t.tick(gen) })
	t.emitLocked()
}

// Pause freezes a running countdown. It is a no-op otherwise.
func (t *IntervalTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pauseLocked()
}

func (t *IntervalTimer) pauseLocked() {
	if t.session.Status != domain.StatusRunning {
		return
	}
	t.stopTickLocked()
	t.session.Status = domain.StatusPaused
	t.emitLocked()
}

// Toggle pauses a running timer and starts it otherwise, deciding under the
// same lock that applies the change.
func (t *IntervalTimer) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session.Status == domain.StatusRunning {
		t.pauseLocked()
		return
	}
	t.startLocked()
}

// Reset returns to idle with the current mode's full duration. Stats are
// not touched.
func (t *IntervalTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopTickLocked()
	t.session.Status = domain.StatusIdle
	t.session.RemainingSeconds = t.durations.For(t.session.Mode)
	t.emitLocked()
}

// SwitchMode discards any countdown in progress and goes idle in mode.
func (t *IntervalTimer) SwitchMode(mode domain.TimerMode) error {
	if mode != domain.ModeWork && mode != domain.ModeBreak {
		return ErrUnknownMode
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopTickLocked()
	t.session.Mode = mode
	t.session.Status = domain.StatusIdle
	t.session.RemainingSeconds = t.durations.For(mode)
	t.emitLocked()
	return nil
}

// ToggleSound flips the sound setting. An alert already playing is unaffected.
func (t *IntervalTimer) ToggleSound() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.SoundEnabled = !t.stats.SoundEnabled
	t.saveLocked()
	t.emitLocked()
}

// SetSound sets the sound setting, saving only when it changes.
func (t *IntervalTimer) SetSound(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stats.SoundEnabled == enabled {
		return
	}
	t.stats.SoundEnabled = enabled
	t.saveLocked()
	t.emitLocked()
}

// ResetStats zeroes both counters. The caller is expected to have obtained
// confirmation. Mode, status and remaining time are left alone.
func (t *IntervalTimer) ResetStats() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stats.CompletedWorkIntervals = 0
	t.stats.CompletedBreakIntervals = 0
	t.saveLocked()
	t.emitLocked()
}

// Snapshot returns a consistent copy of the current state.
func (t *IntervalTimer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Durations returns the normalized work and break lengths in seconds.
func (t *IntervalTimer) Durations() domain.Durations {
	return t.durations
}

// Subscribe returns a channel that receives a snapshot after every state
// change. Sends never block; a full channel drops the update.
func (t *IntervalTimer) Subscribe(buffer int) <-chan Snapshot {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		close(ch)
		return ch
	}
	t.events = append(t.events, ch)
	return ch
}

// Close cancels any pending tick and closes subscriber channels. The timer
// ignores Start afterwards.
func (t *IntervalTimer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.stopTickLocked()
	if t.session.Status == domain.StatusRunning {
		t.session.Status = domain.StatusPaused
	}
	t.closed = true
	for _, ch := range t.events {
		close(ch)
	}
	t.events = nil
}

func (t *IntervalTimer) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.generation || t.session.Status != domain.StatusRunning {
		t.mu.Unlock()
		return
	}

	t.session.RemainingSeconds--
	if t.session.RemainingSeconds > 0 {
		t.emitLocked()
		t.mu.Unlock()
		return
	}

	finished := t.session.Mode
	t.stopTickLocked()
	t.session.Status = domain.StatusIdle
	if finished == domain.ModeWork {
		t.stats.CompletedWorkIntervals++
	} else {
		t.stats.CompletedBreakIntervals++
	}
	t.session.Mode = finished.Other()
	t.session.RemainingSeconds = t.durations.For(t.session.Mode)
	soundOn := t.stats.SoundEnabled

	t.logger.Info("interval completed", "mode", string(finished),
		"completed_work", t.stats.CompletedWorkIntervals,
		"completed_break", t.stats.CompletedBreakIntervals)

	t.saveLocked()
	t.emitLocked()
	t.mu.Unlock()

	if soundOn {
		t.alert(finished)
	}
}

func (t *IntervalTimer) stopTickLocked() {
	if t.cancelTick != nil {
		t.cancelTick()
		t.cancelTick = nil
	}
	t.generation++
}

// saveLocked is best effort: a failed write is logged and memory stays
// authoritative.
func (t *IntervalTimer) saveLocked() {
	if err := t.store.Save(t.stats); err != nil {
		t.logger.Warn("timer stats save failed", "error", err)
	}
}

func (t *IntervalTimer) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:                    t.session.Mode,
		Status:                  t.session.Status,
		RemainingSeconds:        t.session.RemainingSeconds,
		CompletedWorkIntervals:  t.stats.CompletedWorkIntervals,
		CompletedBreakIntervals: t.stats.CompletedBreakIntervals,
		SoundEnabled:            t.stats.SoundEnabled,
		Progress:                domain.Progress(t.durations.For(t.session.Mode), t.session.RemainingSeconds),
	}
}

func (t *IntervalTimer) emitLocked() {
	snap := t.snapshotLocked()
	for _, ch := range t.events {
		select {
		case ch <- snap:
		default:
		}
	}
}
