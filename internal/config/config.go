// Package config loads the jobmatch application settings from a YAML file,
// an optional .env file and JOBMATCH_* environment variables, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobmatch/internal/match"
)

// Environment variables that override the file settings.
const (
	EnvTables    = "JOBMATCH_TABLES"
	EnvDatabase  = "JOBMATCH_DB"
	EnvWorkers   = "JOBMATCH_WORKERS"
	EnvLogLevel  = "JOBMATCH_LOG_LEVEL"
	EnvLogFormat = "JOBMATCH_LOG_FORMAT"
)

// Config is the application configuration.
type Config struct {
	// Tables is the matching tables file; empty means the embedded defaults.
	Tables string `yaml:"tables,omitempty"`
	// Database is the company registry SQLite file.
	Database string `yaml:"database"`
	// Workers bounds batch scoring concurrency; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`

	// NameMatcher tunes the fuzzy company name rules.
	NameMatcher match.NameMatcherConfig `yaml:"name_matcher"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:    "jobmatch.db",
		Log:         LogConfig{Level: "info", Format: "text"},
		NameMatcher: match.DefaultNameMatcherConfig(),
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then environment overrides. Environment variables may
// come from envFiles; with no envFiles a .env file in the working directory
// is loaded when present. Variables already set in the environment win over
// the files.
func Load(path string, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// Try to load .env if it exists; ignore error if file not found
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Tables = getEnv(EnvTables, cfg.Tables)
	cfg.Database = getEnv(EnvDatabase, cfg.Database)
	cfg.Workers = getEnvInt(EnvWorkers, cfg.Workers)
	cfg.Log.Level = getEnv(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = getEnv(EnvLogFormat, cfg.Log.Format)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return def
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Database) == "" {
		errs = append(errs, errors.New("database path is empty"))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.Log.Format))
	}

	nm := c.NameMatcher
	if nm.MinContainmentLen <= 0 || nm.MaxDistance <= 0 || nm.MaxLengthDelta <= 0 || nm.MinFuzzyInputLen <= 0 {
		errs = append(errs, fmt.Errorf("name_matcher thresholds must be positive, got %+v", nm))
	}

	return errors.Join(errs...)
}

// SlogLevel parses the configured level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(l.Level) == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", l.Level, err)
	}

	return level, nil
}

// NewLogger builds a logger writing to w. Invalid settings fall back to
// info level text output.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
