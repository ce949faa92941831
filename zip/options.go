package zip

import (
	"errors"
	"log/slog"

	"github.com/arloliu/elfeat/internal/options"
)

// Config holds Walker settings.
type Config struct {
	logger    *slog.Logger
	verifyCRC bool
}

// Option configures a Walker.
type Option = options.Option[*Config]

// WithLogger sets the logger used to report unusual entries.
func WithLogger(l *slog.Logger) Option {
	return options.New(func(c *Config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l

		return nil
	})
}

// WithVerifyCRC enables the CRC-32 check of stored entries.
func WithVerifyCRC(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.verifyCRC = enabled
	})
}
