package elf

import (
	"errors"
	"io"
	"log/slog"

	"github.com/arloliu/elfeat/internal/options"
)

// DefaultMaxSections bounds the section header scan when e_shnum is zero.
const DefaultMaxSections = 1 << 16

// Config holds Reader settings.
type Config struct {
	logger      *slog.Logger
	maxSections int
}

// Option configures a Reader.
type Option = options.Option[*Config]

// WithLogger sets the logger used to report skipped or insane records.
func WithLogger(l *slog.Logger) Option {
	return options.New(func(c *Config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l

		return nil
	})
}

// WithMaxSections bounds the number of section headers scanned.
func WithMaxSections(n int) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return errors.New("max sections must be positive")
		}
		c.maxSections = n

		return nil
	})
}

func defaultConfig() Config {
	return Config{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxSections: DefaultMaxSections,
	}
}
