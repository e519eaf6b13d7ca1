// script.go - Command script parsing and replay
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/errors"
	"github.com/lgbarn/knightgrid/internal/grid"
	"github.com/lgbarn/knightgrid/internal/output"
	"github.com/lgbarn/knightgrid/internal/session"
)

// Verb identifies a script command.
type Verb int

const (
	VerbKnight Verb = iota // primary click
	VerbBlock              // secondary click
	VerbShow
	VerbMoves
	VerbReset
)

var verbNames = map[string]Verb{
	"knight": VerbKnight,
	"k":      VerbKnight,
	"block":  VerbBlock,
	"b":      VerbBlock,
	"show":   VerbShow,
	"moves":  VerbMoves,
	"reset":  VerbReset,
}

// takesPosition reports whether the verb needs a cell argument.
func (v Verb) takesPosition() bool {
	return v == VerbKnight || v == VerbBlock
}

// Command is one parsed script line.
type Command struct {
	Verb Verb
	At   grid.Position
	Line int
}

// parseCommand parses a single script line. ok is false for blank and
// comment-only lines.
func parseCommand(text string) (cmd Command, ok bool, err error) {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Command{}, false, nil
	}

	word, rest := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		word, rest = text[:i], text[i+1:]
	}
	verb, known := verbNames[strings.ToLower(word)]
	if !known {
		return Command{}, false, &errors.ParseError{Err: errors.ErrParseFailure, Got: word}
	}
	rest = strings.TrimSpace(rest)

	if !verb.takesPosition() {
		if rest != "" {
			return Command{}, false, &errors.ParseError{Err: errors.ErrParseFailure, Got: rest}
		}
		return Command{Verb: verb}, true, nil
	}

	// "r c" is accepted as well as "r,c".
	if !strings.Contains(rest, ",") {
		if f := strings.Fields(rest); len(f) == 2 {
			rest = f[0] + "," + f[1]
		}
	}
	at, err := grid.ParsePosition(rest)
	if err != nil {
		return Command{}, false, err
	}
	return Command{Verb: verb, At: at}, true, nil
}

// Stats counts what happened while replaying scripts.
type Stats struct {
	Commands int
	Accepted int
	Refused  int
}

func (s *Stats) add(o Stats) {
	s.Commands += o.Commands
	s.Accepted += o.Accepted
	s.Refused += o.Refused
}

// Processor replays command scripts against one session.
type Processor struct {
	cfg    *config.Config
	sess   *session.Session
	writer output.BoardWriter
	out    io.Writer // move listings
	stats  Stats

	dirty   bool // state changed since the last render
	written bool // at least one board was rendered
}

// NewProcessor creates a processor that renders boards through w and
// writes move listings to out.
func NewProcessor(cfg *config.Config, sess *session.Session, w output.BoardWriter, out io.Writer) *Processor {
	return &Processor{cfg: cfg, sess: sess, writer: w, out: out}
}

// Stats returns the counters accumulated so far.
func (p *Processor) Stats() Stats {
	return p.stats
}

// Run replays every command read from r. name is used in diagnostics.
// Refused or malformed commands are logged and skipped, or returned when
// the configuration is strict.
func (p *Processor) Run(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, ok, err := parseCommand(scanner.Text())
		if err != nil {
			var pe *errors.ParseError
			if errors.As(err, &pe) {
				pe.File = name
				pe.Line = lineNo
			}
			p.stats.Commands++
			if err := p.refuse(err); err != nil {
				return err
			}
			continue
		}
		if !ok {
			continue
		}

		cmd.Line = lineNo
		p.stats.Commands++
		if err := p.execute(cmd); err != nil {
			if err := p.refuse(fmt.Errorf("%s:%d: %w", name, lineNo, err)); err != nil {
				return err
			}
			continue
		}
		p.stats.Accepted++
	}
	return scanner.Err()
}

// refuse records a rejected command. It returns err only in strict mode.
func (p *Processor) refuse(err error) error {
	p.stats.Refused++
	if p.cfg.Strict {
		return err
	}
	p.cfg.Logf(1, "refused: %v", err)
	return nil
}

func (p *Processor) execute(cmd Command) error {
	switch cmd.Verb {
	case VerbKnight:
		if err := p.sess.SelectCell(cmd.At); err != nil {
			return err
		}
		return p.changed()
	case VerbBlock:
		if _, err := p.sess.ToggleBlocker(cmd.At); err != nil {
			return err
		}
		return p.changed()
	case VerbReset:
		p.sess.Reset()
		return p.changed()
	case VerbShow:
		return p.render()
	case VerbMoves:
		return p.listMoves()
	}
	return fmt.Errorf("verb %d: %w", cmd.Verb, errors.ErrParseFailure)
}

func (p *Processor) changed() error {
	p.dirty = true
	if p.cfg.Output.ShowEveryStep {
		return p.render()
	}
	return nil
}

func (p *Processor) render() error {
	if err := p.writer.WriteView(p.sess.Snapshot()); err != nil {
		return err
	}
	p.dirty = false
	p.written = true
	return nil
}

// listMoves prints the legal destinations on one line. JSON output already
// carries them, so there the board is rendered instead.
func (p *Processor) listMoves() error {
	if p.cfg.Output.Format == config.JSONFormat {
		return p.render()
	}
	n := p.sess.Board.Size
	moves := p.sess.LegalMoves()
	var sb strings.Builder
	sb.WriteString("moves:")
	for _, m := range moves {
		sb.WriteByte(' ')
		sb.WriteString(grid.IndexToPosition(m, n).String())
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(p.out, sb.String())
	return err
}

// Close renders the final board if it has not been shown yet and closes
// the writer.
func (p *Processor) Close() error {
	if p.dirty || !p.written {
		if err := p.render(); err != nil {
			return err
		}
	}
	return p.writer.Close()
}
