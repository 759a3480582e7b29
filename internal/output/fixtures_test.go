package output

import (
	"cellsign/internal/engine"
	"cellsign/internal/interaction"
	"cellsign/internal/relevance"
)

var rec = interaction.Record{
	ID: "I1", InteractingPair: "RECA_CPLX1",
	PartnerA: "simple:P1", PartnerB: "complex:CPLX1",
	GeneA: "RECA", GeneB: "",
}

func activeResult() engine.Result {
	return engine.Result{
		Outcome: engine.OutcomeActive,
		Active: &engine.ActiveTable{
			Separator: "|",
			Pairs:     []relevance.CellTypePair{{A: "T1", B: "T2"}, {A: "T2", B: "T1"}},
			Rows:      []engine.ActiveRow{{Interaction: rec, Flags: []uint8{1, 0}}},
		},
		Evidence: []engine.Evidence{{Interaction: rec, ActiveTF: "TF1", CellTypePair: "T1|T2", ActiveCellType: "T1"}},
	}
}
