// Package config provides configuration for knightgrid.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lgbarn/knightgrid/internal/errors"
	"github.com/lgbarn/knightgrid/internal/grid"
)

// Config holds all program configuration.
type Config struct {
	// BoardSize is the edge length N of the board, fixed for a session.
	BoardSize grid.Size

	// Verbosity: 0=nothing, 1=summary, 2=running commentary.
	Verbosity int

	// Strict makes a refused command fatal instead of logging it.
	Strict bool

	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BoardSize:  grid.DefaultSize,
		Verbosity:  1,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.BoardSize.Validate(); err != nil {
		return fmt.Errorf("%w: %w", err, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity >= level.
// It may be called from several goroutines.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics writer.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}
