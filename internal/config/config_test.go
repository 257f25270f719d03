package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a temp dir so the developer's own config
// and environment never leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	for _, k := range []string{
		"TOMATO_CONFIG", "TOMATO_DB", "TOMATO_WORK_SECONDS", "TOMATO_BREAK_SECONDS",
		"TOMATO_PLAYER", "TOMATO_LOG_FILE", "TOMATO_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("TOMATO_CONFIG", path)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tomato", "tomato.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".tomato", "tomato.log"), cfg.LogFile)
	assert.Equal(t, domain.DefaultWorkSeconds, cfg.WorkSeconds)
	assert.Equal(t, domain.DefaultBreakSeconds, cfg.BreakSeconds)
	assert.Equal(t, "auto", cfg.Player)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	isolate(t)
	writeConfig(t, "work_seconds: 3000\nplayer: bell\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.WorkSeconds)
	assert.Equal(t, "bell", cfg.Player)
	assert.Equal(t, domain.DefaultBreakSeconds, cfg.BreakSeconds, "omitted keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	writeConfig(t, "work_seconds: 3000\nlog_level: debug\n")
	t.Setenv("TOMATO_WORK_SECONDS", "60")
	t.Setenv("TOMATO_BREAK_SECONDS", "not-a-number")
	t.Setenv("TOMATO_DB", "/tmp/x.db")
	t.Setenv("TOMATO_PLAYER", "none")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.WorkSeconds)
	assert.Equal(t, domain.DefaultBreakSeconds, cfg.BreakSeconds)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "none", cfg.Player)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	isolate(t)
	t.Setenv("TOMATO_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "work_seconds: [oops\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFilePath_UsesUserConfigDir(t *testing.T) {
	isolate(t)
	if _, err := os.UserConfigDir(); err != nil {
		t.Skip("no user config dir on this platform")
	}

	got, err := FilePath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(got))
	assert.Equal(t, "tomato", filepath.Base(filepath.Dir(got)))
}

func TestDurations_Normalizes(t *testing.T) {
	cfg := Config{WorkSeconds: 0, BreakSeconds: 120}
	d := cfg.Durations()
	assert.Equal(t, domain.DefaultWorkSeconds, d.WorkSeconds)
	assert.Equal(t, 120, d.BreakSeconds)
}

func TestLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Config{LogLevel: in}.Level(), in)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := defaultsIn("/base")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--db", "/other.db"}))
	assert.Equal(t, "/other.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}
