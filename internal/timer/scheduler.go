package timer

import (
	"sync"
	"time"
)

// Scheduler owns the clock. Both methods return a cancel func that is safe
// to call more than once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
	After(delay time.Duration, fn func()) (cancel func())
}

// ClockScheduler schedules callbacks on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(stopCh) })
	}
}

func (ClockScheduler) After(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
