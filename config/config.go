// SPDX-License-Identifier: MIT

// Package config loads the evaluator settings: numeric policy, display
// precision, history limit and logging.
//
// Precedence, lowest first: Default() → YAML file → MATRIXDESK_* environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/dispatch"
	"github.com/ETsETs777/Matrix-Desktop/history"
)

// EnvPrefix is prepended to every env tag.
const EnvPrefix = "MATRIXDESK_"

// Log output encodings.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree. Zero RankTolerance and HistoryLimit mean
// "automatic" and "unlimited".
type Config struct {
	SymmetryTolerance float64 `yaml:"symmetry_tolerance" env:"SYMMETRY_TOLERANCE"`
	PivotEpsilon      float64 `yaml:"pivot_epsilon"      env:"PIVOT_EPSILON"`
	RankTolerance     float64 `yaml:"rank_tolerance"     env:"RANK_TOLERANCE"`
	MaxIter           int     `yaml:"max_iter"           env:"MAX_ITER"`
	Precision         int     `yaml:"precision"          env:"PRECISION"`
	HistoryLimit      int     `yaml:"history_limit"      env:"HISTORY_LIMIT"`
	LogLevel          string  `yaml:"log_level"          env:"LOG_LEVEL"`
	LogFormat         string  `yaml:"log_format"         env:"LOG_FORMAT"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SymmetryTolerance: dispatch.DefaultSymmetryTolerance,
		PivotEpsilon:      dispatch.DefaultPivotEpsilon,
		RankTolerance:     0,
		MaxIter:           dispatch.DefaultMaxIter,
		Precision:         codec.DefaultPrecision,
		HistoryLimit:      history.Unlimited,
		LogLevel:          "info",
		LogFormat:         LogFormatJSON,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field; the first offending one is reported.
func (c *Config) Validate() error {
	for _, t := range []struct {
		name string
		v    float64
	}{
		{"symmetry_tolerance", c.SymmetryTolerance},
		{"pivot_epsilon", c.PivotEpsilon},
		{"rank_tolerance", c.RankTolerance},
	} {
		if math.IsNaN(t.v) || math.IsInf(t.v, 0) || t.v < 0 {
			return fmt.Errorf("%w: %s = %g, want finite >= 0", ErrInvalid, t.name, t.v)
		}
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%w: max_iter = %d, want > 0", ErrInvalid, c.MaxIter)
	}
	if c.Precision == 0 || c.Precision < codec.ShortestPrecision {
		return fmt.Errorf("%w: precision = %d, want > 0 or %d", ErrInvalid, c.Precision, codec.ShortestPrecision)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit = %d, want >= 0", ErrInvalid, c.HistoryLimit)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatConsole {
		return fmt.Errorf("%w: log_format = %q, want %q or %q", ErrInvalid, c.LogFormat, LogFormatJSON, LogFormatConsole)
	}

	return nil
}

// Level is the parsed LogLevel; Validate has already vetted it.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// Formatter builds the display formatter.
func (c *Config) Formatter() codec.Formatter {
	return codec.NewFormatter(codec.WithPrecision(c.Precision))
}

// DispatchOptions maps the numeric policy onto dispatcher options.
func (c *Config) DispatchOptions() []dispatch.Option {
	return []dispatch.Option{
		dispatch.WithSymmetryTolerance(c.SymmetryTolerance),
		dispatch.WithPivotEpsilon(c.PivotEpsilon),
		dispatch.WithRankTolerance(c.RankTolerance),
		dispatch.WithMaxIter(c.MaxIter),
		dispatch.WithFormatter(c.Formatter()),
	}
}

// History builds a history manager honouring HistoryLimit.
func (c *Config) History() *history.Manager {
	return history.New(history.WithLimit(c.HistoryLimit))
}
