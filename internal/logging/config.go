// Package logging configures the zerolog loggers used by the adapters, the demo and the
// tests. The core staticcell package never logs.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "STATICCELL_LOG_LEVEL"
	EnvLogTimestamp = "STATICCELL_LOG_TIMESTAMP"
	EnvLogNoColor   = "STATICCELL_LOG_NOCOLOR"
	EnvLogJSON      = "STATICCELL_LOG_JSON"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logger setup. Fields absent from the environment keep the
// profile default.
type Config struct {
	Level     string `env:"STATICCELL_LOG_LEVEL"`
	Timestamp bool   `env:"STATICCELL_LOG_TIMESTAMP"`
	NoColor   bool   `env:"STATICCELL_LOG_NOCOLOR"`
	JSON      bool   `env:"STATICCELL_LOG_JSON"`
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: "debug", NoColor: true}
	default:
		return Config{Level: "info", Timestamp: true}
	}
}

// LoadConfig applies environment overrides to the profile defaults. A nil environ reads
// the process environment.
func LoadConfig(profile Profile, environ map[string]string) (Config, error) {
	cfg := DefaultConfig(profile)
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return DefaultConfig(profile), fmt.Errorf("parse log env: %w", err)
	}
	return cfg, nil
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if !cfg.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
	}
	zctx := zerolog.New(w).Level(level).With()
	if cfg.Timestamp {
		zctx = zctx.Timestamp()
	}
	return zctx.Logger(), nil
}

// ParseLevel accepts zerolog level names plus a few aliases.
func ParseLevel(raw string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, nil
	case "diagnostics":
		return zerolog.TraceLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none", "disable", "inactive":
		return zerolog.Disabled, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", raw, err)
	}
	return level, nil
}

var (
	configureOnce sync.Once
	runtimeLogger zerolog.Logger
)

// ConfigureRuntime installs the process logger on first call and returns it on every
// call. Bad environment values fall back to the runtime defaults with a warning.
func ConfigureRuntime() zerolog.Logger {
	configureOnce.Do(func() {
		cfg, envErr := LoadConfig(ProfileRuntime, nil)
		logger, err := New(cfg, os.Stderr)
		if err != nil {
			envErr = err
			logger, _ = New(DefaultConfig(ProfileRuntime), os.Stderr)
		}
		if envErr != nil {
			logger.Warn().Err(envErr).Msg("log config ignored")
		}
		log.Logger = logger
		runtimeLogger = logger
	})
	return runtimeLogger
}
