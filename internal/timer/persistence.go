package timer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
)

// StatsKey is the fixed key the stats record lives under.
const StatsKey = "pomodoro-timer-data"

const defaultStoreTimeout = 2 * time.Second

// StatsStore loads and saves the durable timer stats. Load returns the
// defaults alongside any error, so callers can always use its result.
type StatsStore interface {
	Load() (domain.TimerStats, error)
	Save(stats domain.TimerStats) error
}

// KVStore is the subset of a key-value repository the stats bridge needs.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// KVStatsStore keeps the stats as one JSON record in a key-value store.
type KVStatsStore struct {
	kv      KVStore
	key     string
	timeout time.Duration
}

func NewKVStatsStore(kv KVStore) *KVStatsStore {
	return &KVStatsStore{kv: kv, key: StatsKey, timeout: defaultStoreTimeout}
}

type statsRecord struct {
	CompletedWorkIntervals  int  `json:"completedWorkIntervals"`
	CompletedBreakIntervals int  `json:"completedBreakIntervals"`
	SoundEnabled            bool `json:"soundEnabled"`
}

// storedStats accepts partial records and the older completedSessions /
// completedBreaks field names.
type storedStats struct {
	CompletedWorkIntervals  *int  `json:"completedWorkIntervals"`
	CompletedBreakIntervals *int  `json:"completedBreakIntervals"`
	CompletedSessions       *int  `json:"completedSessions"`
	CompletedBreaks         *int  `json:"completedBreaks"`
	SoundEnabled            *bool `json:"soundEnabled"`
}

func (s *KVStatsStore) Load() (domain.TimerStats, error) {
	defaults := domain.DefaultTimerStats()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return defaults, fmt.Errorf("loading timer stats: %w", err)
	}
	if !ok {
		return defaults, nil
	}

	var stored storedStats
	if err := json.Unmarshal(raw, &stored); err != nil {
		return defaults, fmt.Errorf("decoding timer stats: %w", err)
	}

	return domain.TimerStats{
		CompletedWorkIntervals:  nonNegative(domain.FirstSet(0, stored.CompletedWorkIntervals, stored.CompletedSessions)),
		CompletedBreakIntervals: nonNegative(domain.FirstSet(0, stored.CompletedBreakIntervals, stored.CompletedBreaks)),
		SoundEnabled:            domain.FirstSet(defaults.SoundEnabled, stored.SoundEnabled),
	}, nil
}

// Save writes the full record with a single Put.
func (s *KVStatsStore) Save(stats domain.TimerStats) error {
	raw, err := json.Marshal(statsRecord{
		CompletedWorkIntervals:  stats.CompletedWorkIntervals,
		CompletedBreakIntervals: stats.CompletedBreakIntervals,
		SoundEnabled:            stats.SoundEnabled,
	})
	if err != nil {
		return fmt.Errorf("encoding timer stats: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("saving timer stats: %w", err)
	}
	return nil
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

type memoryStore struct{}

func (memoryStore) Load() (domain.TimerStats, error) { return domain.DefaultTimerStats(), nil }

func (memoryStore) Save(domain.TimerStats) error { return nil }
