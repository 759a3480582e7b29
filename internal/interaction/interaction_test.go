package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name, gene, partner string
		want                Partner
	}{
		{"gene wins", "RECA", "complex:IGNORED", Gene("RECA")},
		{"gene with plain partner", "LIGB", "P01234", Gene("LIGB")},
		{"complex", "", "complex:CPLX1", Complex("CPLX1")},
		{"first delimiter only", "", "complex:a:b", Complex("a:b")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.gene, tc.partner)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveMalformed(t *testing.T) {
	for _, partner := range []string{"", "CPLX1", "complex:"} {
		_, err := Resolve("", partner)
		assert.ErrorIs(t, err, ErrMalformedPartner, "partner %q", partner)
	}
}

func TestRecordPartners(t *testing.T) {
	r := Record{ID: "I1", PartnerA: "simple:P1", PartnerB: "complex:CPLX1", GeneA: "RECA"}
	ps, err := r.Partners()
	require.NoError(t, err)
	assert.Equal(t, "RECA", ps[0].Key())
	assert.Equal(t, KindGene, ps[0].Kind)
	assert.Equal(t, "CPLX1", ps[1].Key())
	assert.Equal(t, "complex:CPLX1", ps[1].String())

	r.PartnerB = "CPLX1"
	_, err = r.Partners()
	assert.ErrorIs(t, err, ErrMalformedPartner)
	assert.Contains(t, err.Error(), "I1 partner_b")
}
