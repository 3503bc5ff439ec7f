// Package config loads studytimer settings: built-in defaults, then an
// optional YAML file, then STUDYTIMER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studytimer/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath        = "STUDYTIMER_CONFIG"
	EnvStudyMin          = "STUDYTIMER_STUDY_MIN"
	EnvBreakMin          = "STUDYTIMER_BREAK_MIN"
	EnvLongBreakMin      = "STUDYTIMER_LONG_BREAK_MIN"
	EnvReviewPollSeconds = "STUDYTIMER_REVIEW_POLL_SECONDS"
	EnvLogFile           = "STUDYTIMER_LOG_FILE"
	EnvLogLevel          = "STUDYTIMER_LOG_LEVEL"

	DefaultReviewPollSeconds = 60
)

var ErrInvalidConfig = errors.New("invalid configuration")

type ReviewConfig struct {
	PollSeconds int `yaml:"poll_seconds"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Config holds every tunable. It never carries subjects or session state.
type Config struct {
	Timer  domain.Durations `yaml:"timer"`
	Review ReviewConfig     `yaml:"review"`
	Log    LogConfig        `yaml:"log"`
}

// Default returns 25/5/15 minute periods, a 60s review poll and no log file.
func Default() Config {
	return Config{
		Timer:  domain.DefaultDurations(),
		Review: ReviewConfig{PollSeconds: DefaultReviewPollSeconds},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath is ~/.studytimer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".studytimer", "config.yaml"), nil
}

// Load resolves the effective configuration. An empty path falls back to
// $STUDYTIMER_CONFIG, then to DefaultPath; a missing default file is not an
// error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv(EnvConfigPath); v != "" {
			path, explicit = v, true
		} else if p, err := DefaultPath(); err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides cfg from the environment. Unparseable values are
// ignored.
func applyEnv(cfg *Config) {
	if n, ok := envInt(EnvStudyMin); ok {
		cfg.Timer.StudyMin = n
	}
	if n, ok := envInt(EnvBreakMin); ok {
		cfg.Timer.BreakMin = n
	}
	if n, ok := envInt(EnvLongBreakMin); ok {
		cfg.Timer.LongBreakMin = n
	}
	if n, ok := envInt(EnvReviewPollSeconds); ok {
		cfg.Review.PollSeconds = n
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate checks durations against the editing bounds and the poll and
// level fields.
func (c Config) Validate() error {
	if err := c.Timer.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Review.PollSeconds <= 0 {
		return fmt.Errorf("%w: review poll_seconds must be positive, got %d", ErrInvalidConfig, c.Review.PollSeconds)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ReviewPoll is the review scan period.
func (c Config) ReviewPoll() time.Duration {
	return time.Duration(c.Review.PollSeconds) * time.Second
}

// LogLevel returns the parsed log level, defaulting to Info.
func (c Config) LogLevel() slog.Level {
	lvl, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel accepts debug, info, warn and error. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// YAML renders the configuration as it would appear in a config file.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
