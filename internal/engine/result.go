// internal/engine/result.go
package engine

import (
	"cellsign/internal/interaction"
	"cellsign/internal/relevance"
)

// ReceptorToTFs maps a partner key (gene symbol or complex id) to the TFs
// downstream of it. TFs are tried in slice order.
type ReceptorToTFs map[string][]string

// ActiveTFCellTypes maps a TF to the cell types where it is active.
type ActiveTFCellTypes map[string][]string

// Outcome tells the three result shapes apart.
type Outcome uint8

const (
	// OutcomeNoActiveTFs: the active-TF map was empty; nothing was scanned
	// and both tables are nil.
	OutcomeNoActiveTFs Outcome = iota
	// OutcomeNoEvidence: the scan ran but produced no evidence; Evidence is nil.
	OutcomeNoEvidence
	// OutcomeActive: at least one evidence row.
	OutcomeActive
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoActiveTFs:
		return "no_active_tfs"
	case OutcomeNoEvidence:
		return "no_evidence"
	case OutcomeActive:
		return "active"
	}
	return "unknown"
}

// ActiveRow is one interaction kept in the active table.
// Flags are indexed like ActiveTable.Pairs and hold 0 or 1.
type ActiveRow struct {
	Interaction interaction.Record
	Rank        float64 // meaningful only when ActiveTable.Ranked
	Flags       []uint8
}

// ActiveTable is the pruned binary relevance table.
type ActiveTable struct {
	Separator string
	Ranked    bool
	Pairs     []relevance.CellTypePair
	Rows      []ActiveRow
}

// Columns returns the cell-type-pair column names in order.
func (t *ActiveTable) Columns() []string {
	out := make([]string, len(t.Pairs))
	for j, p := range t.Pairs {
		out[j] = p.Column(t.Separator)
	}
	return out
}

// Evidence is one deconvoluted record: the (TF, cell type) that made an
// interaction active for one cell-type pair.
type Evidence struct {
	Interaction    interaction.Record
	ActiveTF       string
	CellTypePair   string // column name, "<A><sep><B>"
	ActiveCellType string
}

// Result carries both outputs of one FindActive call.
type Result struct {
	Outcome  Outcome
	Active   *ActiveTable // nil for OutcomeNoActiveTFs
	Evidence []Evidence   // nil unless OutcomeActive
}
