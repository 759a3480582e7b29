// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON schema of a run's outputs.
// Deconvoluted is null (not []) when there is no evidence; ActiveInteractions
// is null when no TF was active at all (outcome "no_active_tfs").
type ResultV1 struct {
	Outcome            string                 `json:"outcome"` // "active" | "no_evidence" | "no_active_tfs"
	CellTypePairs      []string               `json:"celltype_pairs,omitempty"`
	ActiveInteractions []ActiveInteractionV1  `json:"active_interactions"`
	Deconvoluted       []DeconvolutedActiveV1 `json:"active_interactions_deconvoluted"`
}

// ActiveInteractionV1 is one row of the pruned binary relevance table.
type ActiveInteractionV1 struct {
	IDCPInteraction string         `json:"id_cp_interaction"`
	InteractingPair string         `json:"interacting_pair"`
	PartnerA        string         `json:"partner_a"`
	PartnerB        string         `json:"partner_b"`
	GeneA           string         `json:"gene_a"`
	GeneB           string         `json:"gene_b"`
	Rank            *float64       `json:"rank,omitempty"` // present when the request carried ranks
	Flags           map[string]int `json:"flags"`          // column -> 0|1
}

// DeconvolutedActiveV1 is one unit of (TF, cell type) evidence.
type DeconvolutedActiveV1 struct {
	IDCPInteraction string `json:"id_cp_interaction"`
	InteractingPair string `json:"interacting_pair"`
	PartnerA        string `json:"partner_a"`
	PartnerB        string `json:"partner_b"`
	GeneA           string `json:"gene_a"`
	GeneB           string `json:"gene_b"`
	ActiveTF        string `json:"active_TF"`
	CellTypePair    string `json:"celltype_pair"`
	ActiveCellType  string `json:"active_celltype"`
}
