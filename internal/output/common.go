package output

import "strings"

// Output format names shared by cli, config and writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// MetadataColumns lead every row of the active-interactions table.
var MetadataColumns = []string{"id_cp_interaction", "interacting_pair", "partner_a", "partner_b", "gene_a", "gene_b"}

// DeconvolutedTSVHeader is the canonical header of the evidence table.
// Keep this as the single source of truth; all writers should use it.
const DeconvolutedTSVHeader = "id_cp_interaction\tinteracting_pair\tpartner_a\tpartner_b\tgene_a\tgene_b\tactive_TF\tcelltype_pair\tactive_celltype"

// RankColumn sits between the metadata and the cell-type-pair columns when
// the request carried ranks.
const RankColumn = "rank"

// ActiveTSVHeader returns the active-table header for the given
// cell-type-pair columns.
func ActiveTSVHeader(columns []string, ranked bool) string {
	h := append([]string(nil), MetadataColumns...)
	if ranked {
		h = append(h, RankColumn)
	}
	return strings.Join(append(h, columns...), "\t")
}
