// Package interaction holds the ligand–receptor interaction record and the
// resolution of its partners to lookup keys.
package interaction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPartner is returned when a complex side does not carry a
// "<prefix>:<id>" descriptor.
var ErrMalformedPartner = errors.New("malformed partner descriptor")

// ComplexDelimiter separates the prefix from the id in "complex:<id>".
const ComplexDelimiter = ":"

// Record is one row of interaction metadata as produced upstream.
type Record struct {
	ID              string // id_cp_interaction
	InteractingPair string
	PartnerA        string // gene symbol or "complex:<id>"
	PartnerB        string
	GeneA           string // empty when side a is a complex
	GeneB           string
}

// Kind tells a plain gene apart from a complex.
type Kind uint8

const (
	KindGene Kind = iota
	KindComplex
)

func (k Kind) String() string {
	if k == KindComplex {
		return "complex"
	}
	return "gene"
}

// Partner is one resolved side of an interaction.
type Partner struct {
	Kind Kind
	ID   string
}

// Gene returns a gene partner.
func Gene(name string) Partner { return Partner{Kind: KindGene, ID: name} }

// Complex returns a complex partner.
func Complex(id string) Partner { return Partner{Kind: KindComplex, ID: id} }

// Key is the identifier used against the receptor→TF map.
func (p Partner) Key() string { return p.ID }

func (p Partner) String() string { return p.Kind.String() + ":" + p.ID }

// Resolve maps one side of a record to its canonical partner.
// A non-empty gene wins; otherwise partner must look like "complex:<id>"
// and the id is everything after the first delimiter.
func Resolve(gene, partner string) (Partner, error) {
	if gene != "" {
		return Gene(gene), nil
	}
	_, id, ok := strings.Cut(partner, ComplexDelimiter)
	if !ok || id == "" {
		return Partner{}, fmt.Errorf("%w: %q", ErrMalformedPartner, partner)
	}
	return Complex(id), nil
}

// Partners resolves side a then side b.
func (r Record) Partners() ([2]Partner, error) {
	a, err := Resolve(r.GeneA, r.PartnerA)
	if err != nil {
		return [2]Partner{}, fmt.Errorf("interaction %s partner_a: %w", r.ID, err)
	}
	b, err := Resolve(r.GeneB, r.PartnerB)
	if err != nil {
		return [2]Partner{}, fmt.Errorf("interaction %s partner_b: %w", r.ID, err)
	}
	return [2]Partner{a, b}, nil
}
