package stream

import (
	"fmt"

	"github.com/arloliu/flint/errs"
	"github.com/arloliu/flint/format"
	"github.com/arloliu/flint/internal/options"
	"go.uber.org/zap"
)

// Config holds the settings of a stream that are fixed at open time.
type Config struct {
	mode   format.Mode
	names  format.NameStrategy
	logger *zap.Logger
}

// Option configures a stream at open time.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		mode:   format.ModeBinary,
		names:  format.NameCopy,
		logger: zap.NewNop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// WithMode selects the output format. The default is format.ModeBinary.
func WithMode(mode format.Mode) Option {
	return options.New(func(c *Config) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: invalid stream mode %s", errs.ErrInvalidArgument, mode)
		}
		c.mode = mode

		return nil
	})
}

// WithJSON is shorthand for WithMode(format.ModeJSON).
func WithJSON() Option {
	return WithMode(format.ModeJSON)
}

// WithNameStrategy selects how begin event names are handed to the write
// buffer in binary mode. The default is format.NameCopy. Both strategies
// produce identical bytes.
func WithNameStrategy(strategy format.NameStrategy) Option {
	return options.New(func(c *Config) error {
		if !strategy.Valid() {
			return fmt.Errorf("%w: invalid name strategy %s", errs.ErrInvalidArgument, strategy)
		}
		c.names = strategy

		return nil
	})
}

// WithLogger sets the logger for lifecycle and fault messages. A nil logger
// disables logging, which is also the default.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
