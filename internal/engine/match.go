// internal/engine/match.go
package engine

import (
	"cellsign/internal/interaction"
	"cellsign/internal/relevance"
)

// overlap returns the cell types of pair (A first, then B) present in
// active. An autocrine pair (A == B) contributes once.
func overlap(active []string, pair relevance.CellTypePair) []string {
	var hasA, hasB bool
	for _, ct := range active {
		if ct == pair.A {
			hasA = true
		}
		if ct == pair.B {
			hasB = true
		}
	}
	var out []string
	if hasA {
		out = append(out, pair.A)
	}
	if hasB && pair.B != pair.A {
		out = append(out, pair.B)
	}
	return out
}

// match walks partner → TF → active cell types for one cell.
// Partner a is tried before partner b; within a partner the first TF with
// any overlap wins and all of its overlapping cell types are returned.
func match(partners [2]interaction.Partner, pair relevance.CellTypePair, r2tf ReceptorToTFs, tf2ct ActiveTFCellTypes) (string, []string, bool) {
	for _, p := range partners {
		tfs, ok := r2tf[p.Key()]
		if !ok {
			continue
		}
		for _, tf := range tfs {
			cts, ok := tf2ct[tf]
			if !ok {
				continue
			}
			if hits := overlap(cts, pair); len(hits) > 0 {
				return tf, hits, true
			}
		}
	}
	return "", nil, false
}
