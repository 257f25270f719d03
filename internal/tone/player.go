package tone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// ErrNoPlayer means no audio player command could be found.
var ErrNoPlayer = errors.New("no audio player available")

// knownPlayers are tried in order by auto-detection. Each takes a WAV path
// as its last argument.
var knownPlayers = [][]string{
	{"paplay"},
	{"aplay", "-q"},
	{"afplay"},
}

// Player is satisfied by every notifier in this package.
type Player interface {
	Play(frequencyHz float64, duration time.Duration) error
}

// CommandPlayer renders each tone to a temporary WAV file and hands it to an
// external player command.
type CommandPlayer struct {
	Command    string
	Args       []string
	SampleRate int

	// lookPath and run are swapped out in tests.
	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewCommandPlayer parses a command line such as "aplay -q".
func NewCommandPlayer(commandLine string) *CommandPlayer {
	fields := strings.Fields(commandLine)
	p := &CommandPlayer{SampleRate: DefaultSampleRate}
	if len(fields) > 0 {
		p.Command = fields[0]
		p.Args = fields[1:]
	}
	return p
}

// DetectCommandPlayer returns the first known player on PATH.
func DetectCommandPlayer() (*CommandPlayer, error) {
	return detectWith(exec.LookPath)
}

func detectWith(lookPath func(string) (string, error)) (*CommandPlayer, error) {
	for _, candidate := range knownPlayers {
		if _, err := lookPath(candidate[0]); err == nil {
			p := NewCommandPlayer(strings.Join(candidate, " "))
			p.lookPath = lookPath
			return p, nil
		}
	}
	return nil, ErrNoPlayer
}

func (p *CommandPlayer) Play(frequencyHz float64, duration time.Duration) error {
	if p.Command == "" {
		return ErrNoPlayer
	}
	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(p.Command); err != nil {
		return fmt.Errorf("%w: %s", ErrNoPlayer, p.Command)
	}

	f, err := os.CreateTemp("", "tomato-tone-*.wav")
	if err != nil {
		return fmt.Errorf("creating tone file: %w", err)
	}
	defer os.Remove(f.Name())

	samples := Synthesize(frequencyHz, duration, p.SampleRate)
	if err := EncodeWAV(f, samples, p.SampleRate); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing tone file: %w", err)
	}

	// Leave the player some slack past the tone itself before giving up.
	ctx, cancel := context.WithTimeout(context.Background(), duration+5*time.Second)
	defer cancel()

	run := p.run
	if run == nil {
		run = runCommand
	}
	args := append(append([]string(nil), p.Args...), f.Name())
	if err := run(ctx, p.Command, args...); err != nil {
		return fmt.Errorf("running %s: %w", p.Command, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// BellPlayer rings the terminal bell once per tone.
type BellPlayer struct {
	mu sync.Mutex
	W  io.Writer
}

func (b *BellPlayer) Play(float64, time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w := b.W
	if w == nil {
		w = os.Stderr
	}
	_, err := io.WriteString(w, "\a")
	return err
}

// SilentPlayer discards every tone.
type SilentPlayer struct{}

func (SilentPlayer) Play(float64, time.Duration) error { return nil }

const (
	KindAuto = "auto"
	KindBell = "bell"
	KindNone = "none"
)

// NewPlayer picks a player from a configuration value: "auto" detects a
// command player and falls back to the bell, "bell" and "none" select those
// players, anything else is treated as a command line.
func NewPlayer(kind string, bell io.Writer) Player {
	switch strings.TrimSpace(kind) {
	case "", KindAuto:
		if p, err := DetectCommandPlayer(); err == nil {
			return p
		}
		return &BellPlayer{W: bell}
	case KindBell:
		return &BellPlayer{W: bell}
	case KindNone:
		return SilentPlayer{}
	default:
		return NewCommandPlayer(kind)
	}
}
