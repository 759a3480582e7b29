// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"cellsign/internal/engine"
)

// Options are the presentation knobs shared by all formats.
type Options struct {
	Header  bool // TSV header lines (text only)
	BufSize int  // channel buffer for streaming writers
}

// WriteFunc serializes one result.
type WriteFunc func(w io.Writer, res engine.Result, opt Options) error

// ResultWriters maps format → handler. Register in init() blocks.
var ResultWriters = map[string]WriteFunc{}

// Register adds a writer (idempotent last-wins).
func Register(format string, fn WriteFunc) { ResultWriters[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, res engine.Result, opt Options) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, res, opt)
}
