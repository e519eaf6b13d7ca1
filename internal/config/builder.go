package config

import (
	"io"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithBoardSize sets the board edge length.
func (b *ConfigBuilder) WithBoardSize(n grid.Size) *ConfigBuilder {
	b.cfg.BoardSize = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStrict makes refused commands fatal.
func (b *ConfigBuilder) WithStrict(enabled bool) *ConfigBuilder {
	b.cfg.Strict = enabled
	return b
}

// WithOutputFormat sets the rendering format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithCoordinates toggles row and column labels on the text board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCoordinates = enabled
	return b
}

// WithEveryStep renders after each accepted command.
func (b *ConfigBuilder) WithEveryStep(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowEveryStep = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log file writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
