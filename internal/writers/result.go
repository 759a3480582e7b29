// internal/writers/result.go
package writers

import (
	"io"

	"cellsign/internal/engine"
	"cellsign/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, res engine.Result, opt Options) error {
		return output.WriteText(w, res, opt.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, res engine.Result, _ Options) error {
		return output.WriteJSON(w, res)
	})
	Register(output.FormatJSONL, writeEvidenceJSONL)
}
