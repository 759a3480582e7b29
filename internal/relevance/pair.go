package relevance

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSeparator joins cell types in column names ("T1|T2").
const DefaultSeparator = "|"

// ErrMalformedColumn is returned when a column name is not "<A><sep><B>".
var ErrMalformedColumn = errors.New("malformed cell-type-pair column")

// CellTypePair is an ordered pair of cell population labels.
type CellTypePair struct {
	A, B string
}

// Column renders the pair as a column name.
func (p CellTypePair) Column(sep string) string { return p.A + sep + p.B }

// Has reports whether ct is one of the two cell types.
func (p CellTypePair) Has(ct string) bool { return ct == p.A || ct == p.B }

// ParseColumn splits a column name into exactly two non-empty cell types.
func ParseColumn(name, sep string) (CellTypePair, error) {
	if sep == "" {
		return CellTypePair{}, fmt.Errorf("%w: empty separator", ErrMalformedColumn)
	}
	parts := strings.Split(name, sep)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CellTypePair{}, fmt.Errorf("%w: %q (separator %q)", ErrMalformedColumn, name, sep)
	}
	return CellTypePair{A: parts[0], B: parts[1]}, nil
}

// ParseColumns parses every column name, preserving order. A pair may only
// appear once: outputs are keyed by column name.
func ParseColumns(names []string, sep string) ([]CellTypePair, error) {
	out := make([]CellTypePair, 0, len(names))
	seen := make(map[CellTypePair]struct{}, len(names))
	for _, n := range names {
		p, err := ParseColumn(n, sep)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformedColumn, n)
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
