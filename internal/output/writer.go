// Package output renders knight path results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/config"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
)

// ResultWriter is the interface for writing query results to output.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes one successful query result. Found may be false.
	WriteResult(res pathfind.Result) error

	// WriteFailure writes a query that could not be answered.
	WriteFailure(start, end board.Square, err error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the ResultWriter selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w, cfg.Output)
	}
	return NewTextWriter(w, cfg.Output)
}

// TextWriter writes results in the human-readable report format.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes a result as a move count header followed by one square per line.
func (tw *TextWriter) WriteResult(res pathfind.Result) error {
	_, err := io.WriteString(tw.w, FormatText(res, tw.cfg))
	return err
}

// WriteFailure writes an error line for the query.
func (tw *TextWriter) WriteFailure(start, end board.Square, err error) error {
	_, werr := fmt.Fprintf(tw.w, "Error: %v\n", err)
	return werr
}

// Flush is a no-op for text output, which writes immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	results []JSONResult
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		results: make([]JSONResult, 0),
	}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(res pathfind.Result) error {
	jw.results = append(jw.results, ResultToJSON(res, jw.cfg))
	return nil
}

// WriteFailure buffers a failed query for JSON output.
func (jw *JSONWriter) WriteFailure(start, end board.Square, err error) error {
	jw.results = append(jw.results, FailureToJSON(start, end, err))
	return nil
}

// Flush writes all buffered results as one JSON document.
func (jw *JSONWriter) Flush() error {
	if len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
