// pkg/api/request_v1.go
package api

// RequestV1 is the stable JSON/YAML schema of one cellsign run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RequestV1 struct {
	Separator           string              `json:"separator,omitempty" yaml:"separator,omitempty"`
	Encoding            string              `json:"encoding,omitempty" yaml:"encoding,omitempty"` // "auto" | "means" | "flags"
	Columns             []string            `json:"columns" yaml:"columns"`
	Interactions        []InteractionV1     `json:"interactions" yaml:"interactions"`
	ReceptorToTFs       map[string][]string `json:"receptor_to_tfs" yaml:"receptor_to_tfs"`
	ActiveTFToCellTypes map[string][]string `json:"active_tf_to_cell_types" yaml:"active_tf_to_cell_types"`
}

// InteractionV1 is one relevance table row. A null value is a gap.
type InteractionV1 struct {
	IDCPInteraction string     `json:"id_cp_interaction" yaml:"id_cp_interaction"`
	InteractingPair string     `json:"interacting_pair" yaml:"interacting_pair"`
	PartnerA        string     `json:"partner_a" yaml:"partner_a"`
	PartnerB        string     `json:"partner_b" yaml:"partner_b"`
	GeneA           string     `json:"gene_a" yaml:"gene_a"`
	GeneB           string     `json:"gene_b" yaml:"gene_b"`
	Rank            float64    `json:"rank,omitempty" yaml:"rank,omitempty"`
	Values          []*float64 `json:"values" yaml:"values"`
}
