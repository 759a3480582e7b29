// internal/engine/aggregate.go
package engine

import "cellsign/internal/relevance"

// aggregate drops rows with no active column and concatenates the evidence
// in column order. Evidence stays nil when no column produced any.
func aggregate(m *relevance.Matrix, flags [][]uint8, perCol [][]Evidence) Result {
	active := &ActiveTable{
		Separator: m.Separator,
		Ranked:    m.Ranked,
		Pairs:     append([]relevance.CellTypePair(nil), m.Pairs...),
		Rows:      make([]ActiveRow, 0, len(m.Rows)),
	}
	for i, row := range m.Rows {
		sum := 0
		for _, f := range flags[i] {
			sum += int(f)
		}
		if sum == 0 {
			continue
		}
		active.Rows = append(active.Rows, ActiveRow{Interaction: row.Interaction, Rank: row.Rank, Flags: flags[i]})
	}

	var n int
	for _, ev := range perCol {
		n += len(ev)
	}
	if n == 0 {
		return Result{Outcome: OutcomeNoEvidence, Active: active}
	}
	evidence := make([]Evidence, 0, n)
	for _, ev := range perCol {
		evidence = append(evidence, ev...)
	}
	return Result{Outcome: OutcomeActive, Active: active, Evidence: evidence}
}
