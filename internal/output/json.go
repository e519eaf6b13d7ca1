package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/knightgrid/internal/grid"
	"github.com/lgbarn/knightgrid/internal/session"
)

// JSONPosition is a cell in JSON form.
type JSONPosition struct {
	Index  int `json:"index"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

// JSONBoard represents a board snapshot in JSON format.
type JSONBoard struct {
	Session       string         `json:"session,omitempty"`
	Size          int            `json:"size"`
	Knight        *JSONPosition  `json:"knight,omitempty"`
	Moves         int            `json:"moves"`
	Blockers      []JSONPosition `json:"blockers"`
	LegalMoves    []JSONPosition `json:"legalMoves"`
	ExclusionZone []JSONPosition `json:"exclusionZone"`
	Rows          []string       `json:"rows"` // one symbol per cell, see CellSymbol
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Boards []*JSONBoard `json:"boards"`
}

// ViewToJSON converts a snapshot to JSON form.
func ViewToJSON(v session.View) *JSONBoard {
	jb := &JSONBoard{
		Session:       v.SessionID,
		Size:          int(v.Size),
		Moves:         v.Moves,
		Blockers:      positions(v, v.Blockers),
		LegalMoves:    positions(v, v.LegalMoves),
		ExclusionZone: positions(v, v.ExclusionZone),
		Rows:          RowStrings(v),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.Size.ContainsIndex(v.Piece) {
		p := toJSONPosition(v, v.Piece)
		jb.Knight = &p
	}
	return jb
}

// WriteJSON writes a single snapshot as an indented JSON document.
func WriteJSON(w io.Writer, v session.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ViewToJSON(v))
}

// positions converts indices to JSON positions. The result is never nil so
// empty sets encode as [].
func positions(v session.View, cells []grid.Index) []JSONPosition {
	out := make([]JSONPosition, 0, len(cells))
	for _, c := range cells {
		out = append(out, toJSONPosition(v, c))
	}
	return out
}

func toJSONPosition(v session.View, c grid.Index) JSONPosition {
	p := indexPosition(v, c)
	return JSONPosition{Index: int(c), Row: p.Row, Column: p.Column}
}

func indexPosition(v session.View, c grid.Index) grid.Position {
	return grid.IndexToPosition(c, v.Size)
}
