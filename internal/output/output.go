// Package output renders board snapshots as text or JSON.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/knightgrid/internal/session"
)

// Cell symbols used by the text board.
const (
	SymbolKnight   = 'N'
	SymbolBlocker  = '#'
	SymbolExcluded = 'x'
	SymbolLegal    = 'o'
	SymbolDark     = ':'
	SymbolLight    = '.'
)

// CellSymbol returns the character drawn for c. The knight and blockers
// are drawn over the cell shade.
func CellSymbol(c session.Cell) byte {
	switch {
	case c.Piece:
		return SymbolKnight
	case c.Blocker:
		return SymbolBlocker
	}
	switch c.Shade() {
	case session.ShadeExcluded:
		return SymbolExcluded
	case session.ShadeLegal:
		return SymbolLegal
	case session.ShadeDark:
		return SymbolDark
	}
	return SymbolLight
}

// RowStrings returns one string of cell symbols per board row.
func RowStrings(v session.View) []string {
	n := int(v.Size)
	rows := make([]string, n)
	buf := make([]byte, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf[c] = CellSymbol(v.Cells[r*n+c])
		}
		rows[r] = string(buf)
	}
	return rows
}

// WriteText draws the board, optionally with row and column numbers.
func WriteText(w io.Writer, v session.View, coordinates bool) error {
	bw := bufio.NewWriter(w)
	n := int(v.Size)
	width := len(strconv.Itoa(n - 1))

	if coordinates {
		bw.WriteString(strings.Repeat(" ", width))
		for c := 0; c < n; c++ {
			fmt.Fprintf(bw, " %*d", width, c)
		}
		bw.WriteByte('\n')
	}

	for r, row := range RowStrings(v) {
		if coordinates {
			fmt.Fprintf(bw, "%*d", width, r)
		}
		for i := 0; i < len(row); i++ {
			if coordinates || i > 0 {
				bw.WriteByte(' ')
			}
			if width > 1 {
				bw.WriteString(strings.Repeat(" ", width-1))
			}
			bw.WriteByte(row[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteSummary prints a one-line description of the session state.
func WriteSummary(w io.Writer, v session.View) error {
	knight := "unplaced"
	if v.Size.ContainsIndex(v.Piece) {
		knight = indexPosition(v, v.Piece).String()
	}
	_, err := fmt.Fprintf(w, "knight %s, %d blocker(s), %d legal move(s), %d move(s) made\n",
		knight, len(v.Blockers), len(v.LegalMoves), v.Moves)
	return err
}
