package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"thread-conductor/internal/logger"
)

// Config holds runtime settings. Each field can be overridden by an
// environment variable carrying the command's prefix, e.g. JOKES_LOG_LEVEL.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	PunchlineDelay  time.Duration `env:"PUNCHLINE_DELAY"`
	QueueSize       int           `env:"QUEUE_SIZE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	WindowWidth  float32 `env:"WINDOW_WIDTH"`
	WindowHeight float32 `env:"WINDOW_HEIGHT"`

	// Headless prints to stdout instead of opening a window and exits after
	// Count punchlines. Zero means run until interrupted.
	Headless bool `env:"HEADLESS"`
	Count    int  `env:"COUNT"`
}

func Default() Config {
	return Config{
		LogLevel:        "info",
		LogFormat:       logger.FormatConsole,
		PunchlineDelay:  time.Second,
		QueueSize:       64,
		ShutdownTimeout: 10 * time.Second,
		WindowWidth:     520,
		WindowHeight:    160,
		Count:           3,
	}
}

// Load overlays prefixed environment variables on defaults and validates the
// result. Variables that are not set leave the default in place.
func Load(prefix string, defaults Config) (Config, error) {
	cfg := defaults
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log format must be %q or %q, got %q", logger.FormatConsole, logger.FormatJSON, c.LogFormat))
	}
	if c.PunchlineDelay < 0 {
		errs = append(errs, fmt.Errorf("punchline delay must not be negative, got %s", c.PunchlineDelay))
	}
	if c.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("queue size must be at least 1, got %d", c.QueueSize))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", c.Count))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %.0fx%.0f", c.WindowWidth, c.WindowHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
