// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"cellsign/internal/engine"
)

// WriteActiveTSV prints the active-interactions table, one line per row.
// A nil table prints nothing.
func WriteActiveTSV(w io.Writer, t *engine.ActiveTable, header bool) error {
	if t == nil {
		return nil
	}
	if header {
		if _, err := fmt.Fprintln(w, ActiveTSVHeader(t.Columns(), t.Ranked)); err != nil {
			return err
		}
	}
	for _, r := range t.Rows {
		if _, err := fmt.Fprintln(w, FormatActiveRowTSV(r, t.Ranked)); err != nil {
			return err
		}
	}
	return nil
}

// WriteEvidenceTSV prints the deconvoluted table, one line per evidence row.
func WriteEvidenceTSV(w io.Writer, list []engine.Evidence, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, DeconvolutedTSVHeader); err != nil {
			return err
		}
	}
	for _, e := range list {
		if _, err := fmt.Fprintln(w, FormatEvidenceRowTSV(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints both tables separated by a blank line. The evidence
// section is only printed when there is evidence.
func WriteText(w io.Writer, res engine.Result, header bool) error {
	if err := WriteActiveTSV(w, res.Active, header); err != nil {
		return err
	}
	if res.Outcome != engine.OutcomeActive {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return WriteEvidenceTSV(w, res.Evidence, header)
}
