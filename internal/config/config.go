// Package config provides configuration for knight-moves.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/knight-moves-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=results only, 1=summary line, 2=per-query diagnostics
	Verbosity int

	Output  *OutputConfig
	Logging *LoggingConfig
	Batch   *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Logging:    NewLoggingConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first inconsistent setting as ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d is negative", c.Verbosity)
	}
	if c.Batch.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "worker count %d is negative", c.Batch.Workers)
	}
	if c.Batch.CacheCapacity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "cache capacity %d is negative", c.Batch.CacheCapacity)
	}
	if c.Batch.BufferSize < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "buffer size %d must be at least 1", c.Batch.BufferSize)
	}
	if _, ok := ParseLogFormat(c.Logging.Format); !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown log format %q", c.Logging.Format)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output writer")
	}
	return nil
}
