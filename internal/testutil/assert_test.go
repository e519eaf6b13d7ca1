package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/knightgrid/internal/grid"
)

// Only success paths are exercised here since *testing.T cannot be mocked.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertSameSet_Success(t *testing.T) {
	AssertSameSet(t, []int{3, 1, 2}, []int{1, 2, 3})
	AssertSameSet(t, []grid.Index{12, 21}, []grid.Index{21, 12}, "knight moves")
	AssertSameSet(t, []grid.Index(nil), []grid.Index{})
	AssertSameSet[int](t, nil, nil)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel, "wrapped %s", "sentinel")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, false)
	AssertFalse(t, len("hello") == 0)
}

func TestCells(t *testing.T) {
	got := Cells(t, 10, "0,0", "1,2", "(9,9)")
	AssertEqual(t, got, []grid.Index{0, 12, 99})
	AssertEqual(t, Cell(t, 8, 2, 3), grid.Index(19))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string first", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
