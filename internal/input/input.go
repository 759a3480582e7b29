// Package input decodes a run request (JSON or YAML, pkg/api v1) into the
// domain values the engine consumes.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"cellsign/internal/common"
	"cellsign/internal/engine"
	"cellsign/internal/interaction"
	"cellsign/internal/relevance"
	"cellsign/pkg/api"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrEmpty is returned when the request stream holds no document.
var ErrEmpty = errors.New("empty request")

// Request is a decoded run request.
type Request struct {
	Table           relevance.RawTable
	ReceptorToTFs   engine.ReceptorToTFs
	ActiveCellTypes engine.ActiveTFCellTypes

	// Set when the document itself carried these; callers fall back to
	// their configured defaults otherwise.
	HasSeparator bool
	HasEncoding  bool
	HasRanks     bool
}

// Decode reads one request document in the given format.
// Unknown fields are rejected.
func Decode(r io.Reader, format string) (Request, error) {
	var doc api.RequestV1
	switch format {
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Request{}, ErrEmpty
			}
			return Request{}, fmt.Errorf("decode json request: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Request{}, ErrEmpty
			}
			return Request{}, fmt.Errorf("decode yaml request: %w", err)
		}
	default:
		return Request{}, fmt.Errorf("unknown input format %q (want json | yaml)", format)
	}
	return FromAPI(doc)
}

// FromAPI converts the wire request into domain values.
func FromAPI(doc api.RequestV1) (Request, error) {
	enc, err := relevance.ParseEncoding(doc.Encoding)
	if err != nil {
		return Request{}, err
	}
	req := Request{
		Table: relevance.RawTable{
			Separator: doc.Separator,
			Columns:   append([]string(nil), doc.Columns...),
			Records:   make([]interaction.Record, len(doc.Interactions)),
			Values:    make([][]float64, len(doc.Interactions)),
			Encoding:  enc,
		},
		ReceptorToTFs:   copyMap(doc.ReceptorToTFs),
		ActiveCellTypes: copyMap(doc.ActiveTFToCellTypes),
		HasSeparator:    doc.Separator != "",
		HasEncoding:     doc.Encoding != "",
	}

	ranks := make([]float64, len(doc.Interactions))
	for i, it := range doc.Interactions {
		req.Table.Records[i] = interaction.Record{
			ID:              it.IDCPInteraction,
			InteractingPair: it.InteractingPair,
			PartnerA:        it.PartnerA,
			PartnerB:        it.PartnerB,
			GeneA:           it.GeneA,
			GeneB:           it.GeneB,
		}
		vals := make([]float64, len(it.Values))
		for j, v := range it.Values {
			if v == nil {
				vals[j] = math.NaN()
			} else {
				vals[j] = *v
			}
		}
		req.Table.Values[i] = vals
		ranks[i] = it.Rank
		if it.Rank != 0 {
			req.HasRanks = true
		}
	}
	if req.HasRanks {
		req.Table.Ranks = ranks
	}
	return req, nil
}

// copyMap copies a lookup map, de-duplicating each list. Keys and values
// are kept byte-exact; order within a list decides which TF wins.
func copyMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = common.Unique(v)
	}
	return out
}
