package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/knightgrid/internal/config"
	"github.com/lgbarn/knightgrid/internal/session"
)

// BoardWriter is the interface for writing board snapshots to output.
type BoardWriter interface {
	// WriteView writes a single snapshot.
	WriteView(v session.View) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers emit pending output here.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format. JSON output
// that shows every step is streamed one document per snapshot.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	if cfg.Output.Format == config.JSONFormat {
		if cfg.Output.ShowEveryStep {
			return NewJSONWriterSingle(w)
		}
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg.Output.ShowCoordinates)
}

// TextWriter writes snapshots as ASCII boards followed by a summary line.
type TextWriter struct {
	w           io.Writer
	coordinates bool
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, coordinates bool) *TextWriter {
	return &TextWriter{w: w, coordinates: coordinates}
}

// WriteView writes the board and its summary.
func (tw *TextWriter) WriteView(v session.View) error {
	if err := WriteText(tw.w, v, tw.coordinates); err != nil {
		return err
	}
	return WriteSummary(tw.w, v)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	boards []*JSONBoard
	single bool // write each snapshot immediately instead of batching
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		boards: make([]*JSONBoard, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteView buffers a snapshot (or writes it immediately in single mode).
func (jw *JSONWriter) WriteView(v session.View) error {
	if jw.single {
		return WriteJSON(jw.w, v)
	}
	jw.boards = append(jw.boards, ViewToJSON(v))
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Boards: jw.boards})

	jw.boards = jw.boards[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
