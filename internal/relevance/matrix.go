// Package relevance canonicalizes the per cell-type-pair relevance table
// handed over by the upstream statistical analysis.
//
// Upstream may pass either raw means with gaps (NaN = not significant) or
// pre-computed 0/1 flags. Normalize turns both into a Matrix of typed cells.
package relevance

import (
	"errors"
	"fmt"
	"math"

	"cellsign/internal/interaction"
)

var (
	ErrNotBinary            = errors.New("value is not a binary relevance flag")
	ErrShape                = errors.New("relevance table shape mismatch")
	ErrDuplicateInteraction = errors.New("duplicate id_cp_interaction")
	ErrUnknownEncoding      = errors.New("unknown relevance encoding")
)

// Encoding tags how the values of a RawTable are to be read.
type Encoding uint8

const (
	// EncodingAuto infers the encoding: any NaN means raw means.
	// A means matrix without a single gap is misread as binary.
	EncodingAuto Encoding = iota
	EncodingRawMeans
	EncodingBinaryFlags
)

var encodingNames = map[Encoding]string{
	EncodingAuto:        "auto",
	EncodingRawMeans:    "means",
	EncodingBinaryFlags: "flags",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding accepts "auto", "means" or "flags" ("" means auto).
func ParseEncoding(s string) (Encoding, error) {
	if s == "" {
		return EncodingAuto, nil
	}
	for e, name := range encodingNames {
		if name == s {
			return e, nil
		}
	}
	return EncodingAuto, fmt.Errorf("%w %q (want auto | means | flags)", ErrUnknownEncoding, s)
}

// State is the two-valued relevance of one cell.
type State uint8

const (
	NotRelevant State = iota
	Relevant
)

// Flag returns the 0/1 encoding of s.
func (s State) Flag() uint8 {
	if s == Relevant {
		return 1
	}
	return 0
}

// Cell is one (interaction, cell-type-pair) value.
type Cell struct {
	State   State
	Mean    float64
	HasMean bool
}

// RawTable is the relevance table as received: one value per row and
// column, NaN where upstream left a gap.
type RawTable struct {
	Separator string
	Columns   []string
	Records   []interaction.Record
	Ranks     []float64 // optional; len 0 or len(Records)
	Values    [][]float64
	Encoding  Encoding
}

// Row is one interaction with its typed cells (indexed like Matrix.Pairs).
type Row struct {
	Interaction interaction.Record
	Rank        float64
	Cells       []Cell
}

// Matrix is a normalized relevance table.
type Matrix struct {
	Separator string
	Pairs     []CellTypePair
	Rows      []Row
	Encoding  Encoding // resolved, never EncodingAuto
	Ranked    bool     // rows carry upstream ranks
}

// Column returns the column name of pair j.
func (m *Matrix) Column(j int) string { return m.Pairs[j].Column(m.Separator) }

// Columns returns all cell-type-pair column names in order.
func (m *Matrix) Columns() []string {
	out := make([]string, len(m.Pairs))
	for j := range m.Pairs {
		out[j] = m.Column(j)
	}
	return out
}

// DetectEncoding reports EncodingRawMeans if any value is NaN and
// EncodingBinaryFlags otherwise.
func DetectEncoding(values [][]float64) Encoding {
	for _, row := range values {
		for _, v := range row {
			if math.IsNaN(v) {
				return EncodingRawMeans
			}
		}
	}
	return EncodingBinaryFlags
}

// Normalize validates raw and converts it into a Matrix. The raw table is
// not modified and no storage is shared with it.
func Normalize(raw RawTable) (*Matrix, error) {
	sep := raw.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	pairs, err := ParseColumns(raw.Columns, sep)
	if err != nil {
		return nil, err
	}
	if len(raw.Values) != len(raw.Records) {
		return nil, fmt.Errorf("%w: %d records, %d value rows", ErrShape, len(raw.Records), len(raw.Values))
	}
	if len(raw.Ranks) != 0 && len(raw.Ranks) != len(raw.Records) {
		return nil, fmt.Errorf("%w: %d records, %d ranks", ErrShape, len(raw.Records), len(raw.Ranks))
	}

	enc := raw.Encoding
	detected := false
	switch enc {
	case EncodingAuto:
		enc = DetectEncoding(raw.Values)
		detected = true
	case EncodingRawMeans, EncodingBinaryFlags:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEncoding, enc)
	}

	m := &Matrix{
		Separator: sep,
		Pairs:     pairs,
		Rows:      make([]Row, len(raw.Records)),
		Encoding:  enc,
		Ranked:    len(raw.Ranks) > 0,
	}
	seen := make(map[string]struct{}, len(raw.Records))
	for i, rec := range raw.Records {
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateInteraction, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		vals := raw.Values[i]
		if len(vals) != len(pairs) {
			return nil, fmt.Errorf("%w: interaction %s has %d values for %d columns", ErrShape, rec.ID, len(vals), len(pairs))
		}
		cells := make([]Cell, len(vals))
		for j, v := range vals {
			c, err := toCell(v, enc)
			if err != nil {
				if detected {
					return nil, fmt.Errorf("interaction %s column %s: %w (table has no gaps so it was read as flags; use encoding \"means\" for raw means)", rec.ID, raw.Columns[j], err)
				}
				return nil, fmt.Errorf("interaction %s column %s: %w", rec.ID, raw.Columns[j], err)
			}
			cells[j] = c
		}
		m.Rows[i] = Row{Interaction: rec, Cells: cells}
		if len(raw.Ranks) > 0 {
			m.Rows[i].Rank = raw.Ranks[i]
		}
	}
	return m, nil
}

func toCell(v float64, enc Encoding) (Cell, error) {
	if enc == EncodingRawMeans {
		if math.IsNaN(v) {
			return Cell{State: NotRelevant}, nil
		}
		return Cell{State: Relevant, Mean: v, HasMean: true}, nil
	}
	switch v {
	case 1:
		return Cell{State: Relevant}, nil
	case 0:
		return Cell{State: NotRelevant}, nil
	}
	return Cell{}, fmt.Errorf("%w: %v", ErrNotBinary, v)
}
