package main

import (
	"testing"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/grid"
	"github.com/lgbarn/knightgrid/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)

	testutil.AssertEqual(t, cfg.BoardSize, grid.DefaultSize)
	testutil.AssertEqual(t, cfg.Verbosity, 1)
	testutil.AssertFalse(t, cfg.Strict)
	testutil.AssertEqual(t, cfg.Output.Format, config.TextFormat)
	testutil.AssertTrue(t, cfg.Output.ShowCoordinates)
	testutil.AssertFalse(t, cfg.Output.ShowEveryStep)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		set   func() func()
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "board size",
			set:  func() func() { return saveRestoreInt(boardSize, 8) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertEqual(t, cfg.BoardSize, grid.Size(8))
			},
		},
		{
			name: "invalid board size fails validation",
			set:  func() func() { return saveRestoreInt(boardSize, 0) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertTrue(t, cfg.Validate() != nil)
			},
		},
		{
			name: "json",
			set:  func() func() { return saveRestoreBool(jsonOutput, true) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertEqual(t, cfg.Output.Format, config.JSONFormat)
			},
		},
		{
			name: "no coordinates",
			set:  func() func() { return saveRestoreBool(noCoords, true) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertFalse(t, cfg.Output.ShowCoordinates)
			},
		},
		{
			name: "every step",
			set:  func() func() { return saveRestoreBool(everyStep, true) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertTrue(t, cfg.Output.ShowEveryStep)
			},
		},
		{
			name: "strict",
			set:  func() func() { return saveRestoreBool(strictMode, true) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertTrue(t, cfg.Strict)
			},
		},
		{
			name: "verbosity",
			set:  func() func() { return saveRestoreInt(verbosity, 2) },
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertEqual(t, cfg.Verbosity, 2)
			},
		},
		{
			name: "quiet overrides verbosity",
			set: func() func() {
				restoreV := saveRestoreInt(verbosity, 2)
				restoreQ := saveRestoreBool(quiet, true)
				return func() { restoreQ(); restoreV() }
			},
			check: func(t *testing.T, cfg *config.Config) {
				testutil.AssertEqual(t, cfg.Verbosity, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.set()()
			cfg := config.NewConfig()
			applyFlags(cfg)
			tt.check(t, cfg)
		})
	}
}
