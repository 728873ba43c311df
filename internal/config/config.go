// Package config loads the settings of the flintgen demo program from
// FLINT_ prefixed environment variables.
//
// Environment Variables:
//   - FLINT_OUTPUT, FLINT_JSON, FLINT_TIMESTAMP_UNIT, FLINT_NAMES
//   - FLINT_BUFFER_SIZE, FLINT_SPANS, FLINT_DEPTH, FLINT_THREADS
//   - FLINT_LOG_LEVEL, FLINT_LOG_DEV
package config

import (
	"fmt"
	"strings"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/format"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "flint"

// Config holds all demo program configuration.
type Config struct {
	Output        string  `envconfig:"OUTPUT" default:"trace.bin"`
	JSON          bool    `envconfig:"JSON" default:"false"`
	TimestampUnit float64 `envconfig:"TIMESTAMP_UNIT" default:"1e-9"`
	Names         string  `envconfig:"NAMES" default:"copy"`
	BufferSize    int     `envconfig:"BUFFER_SIZE" default:"65536"`
	Spans         int     `envconfig:"SPANS" default:"1000"`
	Depth         int     `envconfig:"DEPTH" default:"4"`
	Threads       int     `envconfig:"THREADS" default:"1"`
	LogLevel      string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDev        bool    `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}

	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Output:        "trace.bin",
		JSON:          false,
		TimestampUnit: 1e-9,
		Names:         "copy",
		BufferSize:    buffer.DefaultSize,
		Spans:         1000,
		Depth:         4,
		Threads:       1,
		LogLevel:      "info",
		LogDev:        false,
	}
}

// Validate reports the first setting that cannot drive a trace run.
func (c *Config) Validate() error {
	switch {
	case c.Output == "":
		return fmt.Errorf("config: output path is empty")
	case c.BufferSize < 0:
		return fmt.Errorf("config: buffer size %d is negative", c.BufferSize)
	case c.Spans <= 0:
		return fmt.Errorf("config: span count %d must be positive", c.Spans)
	case c.Depth <= 0:
		return fmt.Errorf("config: depth %d must be positive", c.Depth)
	case c.Threads <= 0:
		return fmt.Errorf("config: thread count %d must be positive", c.Threads)
	}

	if _, err := c.NameStrategy(); err != nil {
		return err
	}

	return nil
}

// Mode returns the stream mode selected by FLINT_JSON.
func (c *Config) Mode() format.Mode {
	if c.JSON {
		return format.ModeJSON
	}

	return format.ModeBinary
}

// NameStrategy parses FLINT_NAMES, either "copy" or "borrow".
func (c *Config) NameStrategy() (format.NameStrategy, error) {
	switch strings.ToLower(c.Names) {
	case "copy", "":
		return format.NameCopy, nil
	case "borrow":
		return format.NameBorrow, nil
	default:
		return 0, fmt.Errorf("config: unknown name strategy %q", c.Names)
	}
}
