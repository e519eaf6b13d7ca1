// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/grid"
)

var (
	// Board options
	boardSize = flag.Int("n", int(grid.DefaultSize), "Board size (N for an N x N board)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noCoords     = flag.Bool("nocoords", false, "Don't print row and column numbers")
	everyStep    = flag.Bool("every", false, "Render the board after every accepted command")

	// Validation
	strictMode = flag.Bool("strict", false, "Stop at the first refused or malformed command")

	// Processing
	separate = flag.Bool("separate", false, "Replay each script file in a session of its own")
	workers  = flag.Int("workers", 0, "Number of worker goroutines for -separate (0 = number of CPUs)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=silent, 1=summary, 2=running commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.BoardSize = grid.Size(*boardSize)
	cfg.Verbosity = *verbosity
	cfg.Strict = *strictMode

	applyOutputFormatFlags(cfg)

	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFormatFlags configures rendering settings.
func applyOutputFormatFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSONFormat
	}
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowEveryStep = *everyStep
}
