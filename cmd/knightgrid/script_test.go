package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/errors"
	"github.com/lgbarn/knightgrid/internal/grid"
	"github.com/lgbarn/knightgrid/internal/output"
	"github.com/lgbarn/knightgrid/internal/session"
	"github.com/lgbarn/knightgrid/internal/testutil"
)

type testRun struct {
	proc *Processor
	sess *session.Session
	out  *bytes.Buffer
	log  *bytes.Buffer
}

// newTestRun wires a processor for a 5x5 board to in-memory buffers.
func newTestRun(t *testing.T, configure func(*config.ConfigBuilder)) *testRun {
	t.Helper()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	b := config.NewConfigBuilder().
		WithBoardSize(5).
		WithVerbosity(1).
		WithOutput(out).
		WithLogFile(log)
	if configure != nil {
		configure(b)
	}
	cfg := b.Build()

	sess, err := session.New(cfg)
	testutil.AssertNoError(t, err, "session.New")
	return &testRun{
		proc: NewProcessor(cfg, sess, output.NewWriter(out, cfg), out),
		sess: sess,
		out:  out,
		log:  log,
	}
}

func (r *testRun) run(t *testing.T, script string) error {
	t.Helper()
	return r.proc.Run(strings.NewReader(script), "script")
}

// ---------------------------------------------------------------------------
// parseCommand
// ---------------------------------------------------------------------------

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantOK  bool
		wantErr bool
	}{
		{"blank", "   ", Command{}, false, false},
		{"comment", "# set up the board", Command{}, false, false},
		{"knight", "knight 3,4", Command{Verb: VerbKnight, At: grid.Position{Row: 3, Column: 4}}, true, false},
		{"short knight", "k (3,4)", Command{Verb: VerbKnight, At: grid.Position{Row: 3, Column: 4}}, true, false},
		{"space separated", "block 7 2", Command{Verb: VerbBlock, At: grid.Position{Row: 7, Column: 2}}, true, false},
		{"trailing comment", "b 1, 1  # corner guard", Command{Verb: VerbBlock, At: grid.Position{Row: 1, Column: 1}}, true, false},
		{"upper case verb", "SHOW", Command{Verb: VerbShow}, true, false},
		{"moves", "moves", Command{Verb: VerbMoves}, true, false},
		{"reset", "reset", Command{Verb: VerbReset}, true, false},
		{"unknown verb", "jump 1,2", Command{}, false, true},
		{"missing cell", "knight", Command{}, false, true},
		{"bad cell", "knight a,b", Command{}, false, true},
		{"extra argument", "show 1,2", Command{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseCommand(tt.line)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, ok, tt.wantOK)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Processor
// ---------------------------------------------------------------------------

func TestProcessor_Moves(t *testing.T) {
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.run(t, "knight 0,0\nmoves\n"))
	testutil.AssertNoError(t, r.proc.Close())

	testutil.AssertContains(t, r.out.String(), "moves: (1,2) (2,1)\n")
	testutil.AssertContains(t, r.out.String(), "knight (0,0), 0 blocker(s), 2 legal move(s), 0 move(s) made")
	testutil.AssertEqual(t, r.proc.Stats(), Stats{Commands: 2, Accepted: 2})
}

func TestProcessor_MovesBeforeKnight(t *testing.T) {
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.run(t, "moves\n"))
	testutil.AssertTrue(t, strings.HasPrefix(r.out.String(), "moves:\n"), "got %q", r.out.String())
}

func TestProcessor_Refusals(t *testing.T) {
	script := `# blocker in the middle
block 2,2
knight 1,1
knight 2,2
bogus
knight 0,0
`
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.run(t, script))

	testutil.AssertEqual(t, r.proc.Stats(), Stats{Commands: 5, Accepted: 2, Refused: 3})
	testutil.AssertEqual(t, r.sess.State.Piece, grid.Index(0))

	log := r.log.String()
	testutil.AssertEqual(t, strings.Count(log, "refused:"), 3)
	testutil.AssertContains(t, log, "script:3:")
	testutil.AssertContains(t, log, "script:4:")
	testutil.AssertContains(t, log, "script:5:")
}

func TestProcessor_Strict(t *testing.T) {
	strict := func(b *config.ConfigBuilder) { b.WithStrict(true) }

	t.Run("refused move stops the run", func(t *testing.T) {
		r := newTestRun(t, strict)
		err := r.run(t, "block 2,2\nknight 1,1\nknight 0,0\n")
		testutil.AssertErrorIs(t, err, errors.ErrExcluded)
		testutil.AssertContains(t, err.Error(), "script:2:")
		testutil.AssertEqual(t, r.proc.Stats(), Stats{Commands: 2, Accepted: 1, Refused: 1})
		testutil.AssertFalse(t, r.sess.State.HasPiece())
		testutil.AssertEqual(t, r.log.Len(), 0, "strict refusals are returned, not logged")
	})

	t.Run("parse error carries location", func(t *testing.T) {
		r := newTestRun(t, strict)
		err := r.run(t, "\n\nknight x\n")
		testutil.AssertErrorIs(t, err, errors.ErrParseFailure)

		var pe *errors.ParseError
		testutil.AssertTrue(t, errors.As(err, &pe), "want *ParseError, got %T", err)
		testutil.AssertEqual(t, pe.File, "script")
		testutil.AssertEqual(t, pe.Line, 3)
	})
}

func TestProcessor_Rendering(t *testing.T) {
	tests := []struct {
		name      string
		everyStep bool
		script    string
		wantBoard int
	}{
		{"empty script renders once", false, "", 1},
		{"final board only", false, "knight 0,0\nblock 4,4\n", 1},
		{"show is not repeated", false, "knight 0,0\nshow\n", 1},
		{"change after show", false, "knight 0,0\nshow\nblock 4,4\n", 2},
		{"every step", true, "knight 0,0\nblock 4,4\n", 2},
		{"refusals do not render", true, "knight 0,0\nknight 4,4\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRun(t, func(b *config.ConfigBuilder) { b.WithEveryStep(tt.everyStep) })
			testutil.AssertNoError(t, r.run(t, tt.script))
			testutil.AssertNoError(t, r.proc.Close())
			testutil.AssertEqual(t, strings.Count(r.out.String(), "move(s) made"), tt.wantBoard)
		})
	}
}

func TestProcessor_EmptyBoard(t *testing.T) {
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.proc.Close())
	testutil.AssertContains(t, r.out.String(), "knight unplaced, 0 blocker(s), 0 legal move(s), 0 move(s) made")
}

func TestProcessor_JSON(t *testing.T) {
	r := newTestRun(t, func(b *config.ConfigBuilder) { b.WithOutputFormat(config.JSONFormat) })
	testutil.AssertNoError(t, r.run(t, "knight 0,0\nmoves\nblock 4,4\n"))
	testutil.AssertNoError(t, r.proc.Close())

	var got output.JSONOutput
	if err := json.Unmarshal(r.out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, r.out.String())
	}
	testutil.AssertEqual(t, len(got.Boards), 2)
	testutil.AssertEqual(t, len(got.Boards[0].Blockers), 0)
	testutil.AssertEqual(t, len(got.Boards[0].LegalMoves), 2)
	testutil.AssertEqual(t, got.Boards[1].Blockers, []output.JSONPosition{{Index: 24, Row: 4, Column: 4}})
	testutil.AssertEqual(t, got.Boards[1].Session, r.sess.ID)
}

func TestProcessor_ScriptsShareSession(t *testing.T) {
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.proc.Run(strings.NewReader("knight 0,0\n"), "first"))
	testutil.AssertNoError(t, r.proc.Run(strings.NewReader("knight 1,2\nknight 3,3\n"), "second"))

	testutil.AssertEqual(t, r.sess.Moves, 2)
	testutil.AssertEqual(t, r.sess.State.Piece, grid.Index(18))
	testutil.AssertEqual(t, r.proc.Stats().Accepted, 3)
}

func TestProcessor_Reset(t *testing.T) {
	r := newTestRun(t, nil)
	testutil.AssertNoError(t, r.run(t, "knight 0,0\nblock 4,4\nreset\nknight 4,4\n"))
	testutil.AssertEqual(t, r.sess.State.Piece, grid.Index(24))
	testutil.AssertEqual(t, r.sess.State.Blockers.Len(), 0)
	testutil.AssertEqual(t, r.sess.Moves, 0)
}

func TestProcessor_JSONEveryStepStreams(t *testing.T) {
	r := newTestRun(t, func(b *config.ConfigBuilder) {
		b.WithOutputFormat(config.JSONFormat).WithEveryStep(true)
	})
	testutil.AssertNoError(t, r.run(t, "knight 0,0\nblock 4,4\n"))
	testutil.AssertTrue(t, r.out.Len() > 0, "each step is written before Close")
	testutil.AssertNoError(t, r.proc.Close())

	dec := json.NewDecoder(r.out)
	var blockers []int
	for dec.More() {
		var jb output.JSONBoard
		if err := dec.Decode(&jb); err != nil {
			t.Fatalf("decode: %v\n%s", err, r.out.String())
		}
		blockers = append(blockers, len(jb.Blockers))
	}
	testutil.AssertEqual(t, blockers, []int{0, 1})
}
