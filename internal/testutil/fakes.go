package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a clock-free scheduler for timer tests. Repeating
// callbacks fire only on Tick; one-shot callbacks fire only on RunPending.
type ManualScheduler struct {
	mu       sync.Mutex
	every    []*scheduled
	after    []*scheduled
	everyReg int
}

type scheduled struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Every(interval time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &scheduled{delay: interval, fn: fn}
	s.every = append(s.every, item)
	s.everyReg++
	return s.canceller(item)
}

func (s *ManualScheduler) After(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &scheduled{delay: delay, fn: fn}
	s.after = append(s.after, item)
	return s.canceller(item)
}

func (s *ManualScheduler) canceller(item *scheduled) func() {
	return func() {
		s.mu.Lock()
		item.cancelled = true
		s.mu.Unlock()
	}
}

// Tick fires every live repeating callback once.
func (s *ManualScheduler) Tick() {
	for _, fn := range s.live(s.every) {
		fn()
	}
}

// TickN calls Tick n times.
func (s *ManualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// FireStale invokes every repeating callback ever registered, including
// cancelled ones. It simulates a tick that was already in flight when the
// source was cancelled.
func (s *ManualScheduler) FireStale() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.every))
	for _, item := range s.every {
		fns = append(fns, item.fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ActiveTickers counts repeating callbacks that have not been cancelled.
func (s *ManualScheduler) ActiveTickers() int {
	return len(s.live(s.every))
}

// Registrations counts every Every call made so far.
func (s *ManualScheduler) Registrations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.everyReg
}

// PendingDelays lists the delays of one-shot callbacks not yet run, in order.
func (s *ManualScheduler) PendingDelays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Duration
	for _, item := range s.after {
		if !item.cancelled {
			out = append(out, item.delay)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RunPending runs all one-shot callbacks in delay order and returns how many ran.
func (s *ManualScheduler) RunPending() int {
	s.mu.Lock()
	items := make([]*scheduled, 0, len(s.after))
	for _, item := range s.after {
		if !item.cancelled {
			items = append(items, item)
		}
	}
	s.after = nil
	s.mu.Unlock()

	sort.SliceStable(items, func(i, j int) bool { return items[i].delay < items[j].delay })
	for _, item := range items {
		item.fn()
	}
	return len(items)
}

func (s *ManualScheduler) live(items []*scheduled) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var fns []func()
	for _, item := range items {
		if !item.cancelled {
			fns = append(fns, item.fn)
		}
	}
	return fns
}

// Tone is one recorded notifier call.
type Tone struct {
	FrequencyHz float64
	Duration    time.Duration
}

// RecordingNotifier records every tone it is asked to play. Err is returned
// from each call; PanicWith makes each call panic instead.
type RecordingNotifier struct {
	mu        sync.Mutex
	tones     []Tone
	Err       error
	PanicWith any
}

func (n *RecordingNotifier) Play(frequencyHz float64, duration time.Duration) error {
	n.mu.Lock()
	n.tones = append(n.tones, Tone{FrequencyHz: frequencyHz, Duration: duration})
	n.mu.Unlock()
	if n.PanicWith != nil {
		panic(n.PanicWith)
	}
	return n.Err
}

func (n *RecordingNotifier) Tones() []Tone {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Tone(nil), n.tones...)
}

// MemoryKV is an in-memory key-value store that counts writes.
type MemoryKV struct {
	mu     sync.Mutex
	data   map[string][]byte
	Writes int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	m.Writes++
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// ErrKVUnavailable is returned by FailingKV.
var ErrKVUnavailable = errors.New("kv store unavailable")

// FailingKV fails every call.
type FailingKV struct{}

func (FailingKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrKVUnavailable
}

func (FailingKV) Put(context.Context, string, []byte) error { return ErrKVUnavailable }

func (FailingKV) Delete(context.Context, string) error { return ErrKVUnavailable }
