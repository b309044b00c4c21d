// Package writer implements the output of conversion results.
package writer

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogenie/internal/converter"
)

// Format selects how results are written.
type Format int

// Output formats.
const (
	Text  Format = iota // input, result and system on one line
	Plain               // only the result
)

// Writer writes conversion results line by line.
type Writer struct {
	format Format
	writer io.Writer

	last    string
	written int
}

// New creates a new writer.
func New(writer io.Writer, format Format) *Writer {
	return &Writer{
		format: format,
		writer: writer,
	}
}

// WriteResult writes a single conversion result.
func (w *Writer) WriteResult(result converter.Result) error {
	output := result.Output()

	var line string
	switch w.format {
	case Plain:
		line = output
	default:
		line = fmt.Sprintf("%s -> %s (%s)", result.Source(), output, result.System)
		if result.Verified {
			line += " [verified]"
		}
	}

	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	w.last = output
	w.written++
	return nil
}

// WriteLine writes an informational line that is not a result.
func (w *Writer) WriteLine(format string, args ...any) error {
	if _, err := fmt.Fprintf(w.writer, format+"\n", args...); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// Last returns the output of the last written result.
func (w *Writer) Last() string {
	return w.last
}

// Written returns the number of written results.
func (w *Writer) Written() int {
	return w.written
}

// Reset forgets the last written result.
func (w *Writer) Reset() {
	w.last = ""
}
