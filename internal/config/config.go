// Package config resolves runtime settings from defaults, an optional YAML
// file and TOMATO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings.
type Config struct {
	DBPath       string `yaml:"db_path"`
	WorkSeconds  int    `yaml:"work_seconds"`
	BreakSeconds int    `yaml:"break_seconds"`
	Player       string `yaml:"player"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns a Config rooted at ~/.tomato.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return defaultsIn(filepath.Join(home, ".tomato")), nil
}

func defaultsIn(dir string) Config {
	return Config{
		DBPath:       filepath.Join(dir, "tomato.db"),
		WorkSeconds:  domain.DefaultWorkSeconds,
		BreakSeconds: domain.DefaultBreakSeconds,
		Player:       "auto",
		LogFile:      filepath.Join(dir, "tomato.log"),
		LogLevel:     "info",
	}
}

// FilePath returns the config file location: $TOMATO_CONFIG when set,
// otherwise tomato/config.yaml under the user config directory.
func FilePath() (string, error) {
	if p := os.Getenv("TOMATO_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(dir, "tomato", "config.yaml"), nil
}

// Load resolves the full configuration. A missing config file is not an
// error; a malformed one is.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	path, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	// Unmarshalling onto the defaults keeps every key the file omits.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TOMATO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TOMATO_WORK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WorkSeconds = n
		}
	}
	if v := os.Getenv("TOMATO_BREAK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BreakSeconds = n
		}
	}
	if v := os.Getenv("TOMATO_PLAYER"); v != "" {
		cfg.Player = v
	}
	if v := os.Getenv("TOMATO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TOMATO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Durations converts the interval settings, falling back to defaults for
// non-positive values.
func (c Config) Durations() domain.Durations {
	return domain.Durations{WorkSeconds: c.WorkSeconds, BreakSeconds: c.BreakSeconds}.Normalize()
}

// Level maps LogLevel onto slog. Unknown values select info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// BindFlags registers the overridable settings on fs. Values parsed into fs
// write straight into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DBPath, "db", c.DBPath, "path to the SQLite database")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}
