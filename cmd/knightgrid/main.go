// knightgrid replays click scripts against a knight-and-blockers board and
// renders the resulting legal moves and exclusion zones.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/output"
	"github.com/lgbarn/knightgrid/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("knightgrid version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	sessions := session.NewManager(cfg)
	var st Stats
	var runErr error

	if *separate && len(flag.Args()) > 0 {
		st, runErr = processSeparately(cfg, sessions, flag.Args(), *workers)
	} else {
		sess, err := sessions.Create()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		proc := NewProcessor(cfg, sess, output.NewWriter(cfg.OutputFile, cfg), cfg.OutputFile)
		runErr = processAllInputs(proc)
		if err := proc.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		st = proc.Stats()
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, st)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLogFile(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// processAllInputs runs every script named on the command line, or stdin,
// against the same session.
func processAllInputs(proc *Processor) error {
	args := flag.Args()

	if len(args) == 0 {
		return proc.Run(os.Stdin, "stdin")
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}

		err = proc.Run(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file

		if err != nil {
			return err
		}
	}
	return nil
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, st Stats) {
	cfg.Logf(1, "%d command(s): %d accepted, %d refused.", st.Commands, st.Accepted, st.Refused)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: knightgrid [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays board clicks and shows the knight's legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript commands (one per line, # starts a comment):\n")
	fmt.Fprintf(os.Stderr, "  knight R,C   place the knight, or move it to a legal destination\n")
	fmt.Fprintf(os.Stderr, "  block R,C    add a blocker, or remove the one already there\n")
	fmt.Fprintf(os.Stderr, "  moves        list the knight's legal moves\n")
	fmt.Fprintf(os.Stderr, "  show         render the board\n")
	fmt.Fprintf(os.Stderr, "  reset        clear the knight and all blockers\n")
	fmt.Fprintf(os.Stderr, "\nBoard symbols:\n")
	fmt.Fprintf(os.Stderr, "  N knight  # blocker  o legal move  x exclusion zone  . : light/dark\n")
}
