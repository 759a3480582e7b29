// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"cellsign/internal/engine"
	"cellsign/internal/interaction"
)

func metadataFields(r interaction.Record) []string {
	return []string{r.ID, r.InteractingPair, r.PartnerA, r.PartnerB, r.GeneA, r.GeneB}
}

// FormatActiveRowTSV returns metadata, the rank when ranked, and one 0/1 per
// column (no trailing newline).
func FormatActiveRowTSV(r engine.ActiveRow, ranked bool) string {
	f := metadataFields(r.Interaction)
	if ranked {
		f = append(f, strconv.FormatFloat(r.Rank, 'g', -1, 64))
	}
	for _, v := range r.Flags {
		f = append(f, strconv.Itoa(int(v)))
	}
	return strings.Join(f, "\t")
}

// FormatEvidenceRowTSV returns the 9 evidence columns (no trailing newline).
func FormatEvidenceRowTSV(e engine.Evidence) string {
	f := append(metadataFields(e.Interaction), e.ActiveTF, e.CellTypePair, e.ActiveCellType)
	return strings.Join(f, "\t")
}
