// Package config loads solver settings for the tiepath command.
//
// Priority: environment > file > defaults. Command-line flags are applied by
// the caller on top of the loaded Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiepath/tiepath"
)

// Environment variables read by Load.
const (
	EnvFrontier     = "TIEPATH_FRONTIER"
	EnvStorage      = "TIEPATH_STORAGE"
	EnvReverseStart = "TIEPATH_REVERSE_START"
	EnvLogLevel     = "TIEPATH_LOG_LEVEL"
	EnvMetricsOut   = "TIEPATH_METRICS_OUT"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of one tiepath invocation.
type Config struct {
	Frontier     string `yaml:"frontier"`      // "bucket" or "heap"
	Storage      string `yaml:"storage"`       // "dense" or "sparse"
	ReverseStart bool   `yaml:"reverse_start"` // allow reversing out of the start cell
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
	MetricsOut   string `yaml:"metrics_out"`   // Prometheus textfile path; empty disables
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Frontier:     "bucket",
		Storage:      "dense",
		ReverseStart: true,
		LogLevel:     "warn",
	}
}

// Load reads path (if non-empty and present) over the defaults, applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // file doesn't exist, keep defaults
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv(EnvFrontier); v != "" {
		cfg.Frontier = v
	}
	if v := os.Getenv(EnvStorage); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv(EnvReverseStart); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvReverseStart, v, err)
		}
		cfg.ReverseStart = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvMetricsOut); v != "" {
		cfg.MetricsOut = v
	}
	return nil
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, err := tiepath.ParseFrontier(c.Frontier); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := tiepath.ParseStorage(c.Storage); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}

// Options converts the settings to search options. c must be valid.
func (c Config) Options() []tiepath.Option {
	kind, _ := tiepath.ParseFrontier(c.Frontier)
	storage, _ := tiepath.ParseStorage(c.Storage)
	return []tiepath.Option{
		tiepath.WithFrontier(kind),
		tiepath.WithStorage(storage),
		tiepath.WithReverseStart(c.ReverseStart),
	}
}
