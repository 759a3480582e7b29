// internal/output/json.go
package output

import (
	"io"

	"cellsign/internal/engine"
	"cellsign/internal/jsonutil"
	"cellsign/pkg/api"
)

// ToAPIEvidence converts one evidence row to the stable wire schema (v1).
func ToAPIEvidence(e engine.Evidence) api.DeconvolutedActiveV1 {
	return api.DeconvolutedActiveV1{
		IDCPInteraction: e.Interaction.ID,
		InteractingPair: e.Interaction.InteractingPair,
		PartnerA:        e.Interaction.PartnerA,
		PartnerB:        e.Interaction.PartnerB,
		GeneA:           e.Interaction.GeneA,
		GeneB:           e.Interaction.GeneB,
		ActiveTF:        e.ActiveTF,
		CellTypePair:    e.CellTypePair,
		ActiveCellType:  e.ActiveCellType,
	}
}

// ToAPIResult converts a Result to the stable wire schema (v1). Absent
// tables stay nil so they encode as null.
func ToAPIResult(res engine.Result) api.ResultV1 {
	v := api.ResultV1{Outcome: res.Outcome.String()}
	if res.Active != nil {
		cols := res.Active.Columns()
		v.CellTypePairs = cols
		v.ActiveInteractions = make([]api.ActiveInteractionV1, 0, len(res.Active.Rows))
		for _, r := range res.Active.Rows {
			flags := make(map[string]int, len(cols))
			for j, c := range cols {
				flags[c] = int(r.Flags[j])
			}
			row := api.ActiveInteractionV1{
				IDCPInteraction: r.Interaction.ID,
				InteractingPair: r.Interaction.InteractingPair,
				PartnerA:        r.Interaction.PartnerA,
				PartnerB:        r.Interaction.PartnerB,
				GeneA:           r.Interaction.GeneA,
				GeneB:           r.Interaction.GeneB,
				Flags:           flags,
			}
			if res.Active.Ranked {
				rank := r.Rank
				row.Rank = &rank
			}
			v.ActiveInteractions = append(v.ActiveInteractions, row)
		}
	}
	if res.Evidence != nil {
		v.Deconvoluted = make([]api.DeconvolutedActiveV1, 0, len(res.Evidence))
		for _, e := range res.Evidence {
			v.Deconvoluted = append(v.Deconvoluted, ToAPIEvidence(e))
		}
	}
	return v
}

// WriteJSON writes a single v1 result document (pretty-indented).
func WriteJSON(w io.Writer, res engine.Result) error {
	return jsonutil.EncodePretty(w, ToAPIResult(res))
}
