// SPDX-License-Identifier: MIT

// Package config loads a forecast description from YAML and applies
// environment overrides.
//
// Precedence, lowest first: built-in defaults (the PEER non-planar fault
// forecast), the YAML file, RUPCAST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rupcast/erf"
	"github.com/katalvlaran/rupcast/logging"
	"github.com/katalvlaran/rupcast/source"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RUPCAST_"

// ErrInvalid indicates a configuration that parsed but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the content of a forecast file.
type Config struct {
	Log      Log            `yaml:"log"`
	Forecast erf.Parameters `yaml:"forecast"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// overrides holds the environment variables; nil means unset.
type overrides struct {
	Duration  *float64 `env:"DURATION"`
	MinMag    *float64 `env:"MIN_MAG"`
	Seed      *uint64  `env:"SEED"`
	LogLevel  *string  `env:"LOG_LEVEL"`
	LogFormat *string  `env:"LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      Log{Level: "info", Format: logging.FormatText},
		Forecast: erf.DefaultParameters(),
	}
}

// Parse decodes YAML. Omitted duration and min_mag take the source
// defaults; an omitted kind selects the built-in forecast, keeping any
// name, duration, min_mag and seed given in the file.
func Parse(data []byte) (Config, error) {
	cfg := Config{
		Log: Default().Log,
		Forecast: erf.Parameters{
			Duration: source.DefaultDuration,
			MinMag:   source.DefaultMinMag,
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Forecast.Kind == "" {
		given := cfg.Forecast
		cfg.Forecast = erf.DefaultParameters()
		cfg.Forecast.Duration, cfg.Forecast.MinMag, cfg.Forecast.Seed = given.Duration, given.MinMag, given.Seed
		if given.Name != "" {
			cfg.Forecast.Name = given.Name
		}
	}
	return cfg, nil
}

// Load reads path (defaults only when path is empty), applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = Parse(data); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from RUPCAST_* environment variables.
func (c *Config) ApplyEnv() error {
	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Duration != nil {
		c.Forecast.Duration = *o.Duration
	}
	if o.MinMag != nil {
		c.Forecast.MinMag = *o.MinMag
	}
	if o.Seed != nil {
		c.Forecast.Seed = *o.Seed
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		c.Log.Format = *o.LogFormat
	}
	return nil
}

// Validate checks the log settings and the forecast parameters.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Forecast.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
