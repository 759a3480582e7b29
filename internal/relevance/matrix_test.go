package relevance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellsign/internal/interaction"
)

var nan = math.NaN()

func recs(ids ...string) []interaction.Record {
	out := make([]interaction.Record, len(ids))
	for i, id := range ids {
		out[i] = interaction.Record{ID: id, GeneA: "G" + id, GeneB: "H" + id}
	}
	return out
}

func states(m *Matrix) [][]uint8 {
	out := make([][]uint8, len(m.Rows))
	for i, r := range m.Rows {
		out[i] = make([]uint8, len(r.Cells))
		for j, c := range r.Cells {
			out[i][j] = c.State.Flag()
		}
	}
	return out
}

func TestParseColumn(t *testing.T) {
	p, err := ParseColumn("T1|T2", "|")
	require.NoError(t, err)
	assert.Equal(t, CellTypePair{A: "T1", B: "T2"}, p)
	assert.Equal(t, "T1|T2", p.Column("|"))
	assert.True(t, p.Has("T2"))
	assert.False(t, p.Has("T3"))

	for _, bad := range []string{"T1", "T1|T2|T3", "|T2", "T1|", ""} {
		_, err := ParseColumn(bad, "|")
		assert.ErrorIs(t, err, ErrMalformedColumn, "column %q", bad)
	}
	_, err = ParseColumn("T1|T2", "")
	assert.ErrorIs(t, err, ErrMalformedColumn)
}

func TestDetectEncoding(t *testing.T) {
	assert.Equal(t, EncodingRawMeans, DetectEncoding([][]float64{{1.2, 0.3}, {nan, 2}}))
	assert.Equal(t, EncodingBinaryFlags, DetectEncoding([][]float64{{1, 0}, {0, 1}}))
	assert.Equal(t, EncodingBinaryFlags, DetectEncoding(nil))
}

func TestNormalizeAutoMeans(t *testing.T) {
	raw := RawTable{
		Columns: []string{"T1|T2", "T2|T1"},
		Records: recs("I1", "I2"),
		Values:  [][]float64{{0.75, nan}, {nan, 0}},
	}
	m, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, EncodingRawMeans, m.Encoding)
	assert.Equal(t, DefaultSeparator, m.Separator)
	assert.Equal(t, [][]uint8{{1, 0}, {0, 1}}, states(m))
	assert.True(t, m.Rows[0].Cells[0].HasMean)
	assert.Equal(t, 0.75, m.Rows[0].Cells[0].Mean)
	assert.Equal(t, []string{"T1|T2", "T2|T1"}, m.Columns())
	assert.False(t, m.Ranked)

	raw.Ranks = []float64{0.2, 0}
	m, err = Normalize(raw)
	require.NoError(t, err)
	assert.True(t, m.Ranked)
	assert.Equal(t, 0.2, m.Rows[0].Rank)
}

func TestNormalizeAutoFlags(t *testing.T) {
	raw := RawTable{
		Separator: "/",
		Columns:   []string{"T1/T2"},
		Records:   recs("I1", "I2"),
		Values:    [][]float64{{1}, {0}},
	}
	m, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, EncodingBinaryFlags, m.Encoding)
	assert.Equal(t, [][]uint8{{1}, {0}}, states(m))
	assert.False(t, m.Rows[0].Cells[0].HasMean)
}

func TestNormalizeExplicitEncoding(t *testing.T) {
	// No gaps: auto would read these as flags; the tag says means.
	raw := RawTable{
		Columns:  []string{"A|B"},
		Records:  recs("I1"),
		Values:   [][]float64{{0.2}},
		Encoding: EncodingRawMeans,
	}
	m, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{{1}}, states(m))

	raw.Encoding = EncodingBinaryFlags
	_, err = Normalize(raw)
	assert.ErrorIs(t, err, ErrNotBinary)

	raw.Values = [][]float64{{nan}}
	_, err = Normalize(raw)
	assert.ErrorIs(t, err, ErrNotBinary)
}

func TestNormalizeDoesNotTouchInput(t *testing.T) {
	vals := [][]float64{{0.5, nan}}
	raw := RawTable{Columns: []string{"A|B", "B|A"}, Records: recs("I1"), Values: vals}
	_, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 0.5, vals[0][0])
	assert.True(t, math.IsNaN(vals[0][1]))
}

func TestNormalizeErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  RawTable
		want error
	}{
		{"bad column", RawTable{Columns: []string{"AB"}, Records: recs("I1"), Values: [][]float64{{1}}}, ErrMalformedColumn},
		{"duplicate column", RawTable{Columns: []string{"A|B", "A|B"}, Records: recs("I1"), Values: [][]float64{{0.5, nan}}}, ErrMalformedColumn},
		{"row count", RawTable{Columns: []string{"A|B"}, Records: recs("I1", "I2"), Values: [][]float64{{1}}}, ErrShape},
		{"ragged", RawTable{Columns: []string{"A|B"}, Records: recs("I1"), Values: [][]float64{{1, 0}}}, ErrShape},
		{"ranks", RawTable{Columns: []string{"A|B"}, Records: recs("I1"), Values: [][]float64{{1}}, Ranks: []float64{1, 2}}, ErrShape},
		{"duplicate", RawTable{Columns: []string{"A|B"}, Records: recs("I1", "I1"), Values: [][]float64{{1}, {0}}}, ErrDuplicateInteraction},
		{"encoding", RawTable{Columns: []string{"A|B"}, Records: recs("I1"), Values: [][]float64{{1}}, Encoding: Encoding(9)}, ErrUnknownEncoding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseEncoding(t *testing.T) {
	for s, want := range map[string]Encoding{"": EncodingAuto, "auto": EncodingAuto, "means": EncodingRawMeans, "flags": EncodingBinaryFlags} {
		got, err := ParseEncoding(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseEncoding("binary")
	assert.ErrorIs(t, err, ErrUnknownEncoding)
	assert.Equal(t, "flags", EncodingBinaryFlags.String())
}

func TestOrderByRank(t *testing.T) {
	m := &Matrix{Rows: []Row{
		{Interaction: interaction.Record{ID: "unranked1"}},
		{Interaction: interaction.Record{ID: "r3"}, Rank: 0.3},
		{Interaction: interaction.Record{ID: "r1"}, Rank: 0.1},
		{Interaction: interaction.Record{ID: "unranked2"}},
	}}
	m.OrderByRank()

	var ids []string
	for _, r := range m.Rows {
		ids = append(ids, r.Interaction.ID)
	}
	assert.Equal(t, []string{"r1", "r3", "unranked1", "unranked2"}, ids)
	assert.InDelta(t, 1.3, m.Rows[2].Rank, 1e-9)
}

func TestNormalizeAutoFlagsHintsAtMeans(t *testing.T) {
	_, err := Normalize(RawTable{Columns: []string{"A|B"}, Records: recs("I1"), Values: [][]float64{{0.7}}})
	require.ErrorIs(t, err, ErrNotBinary)
	assert.Contains(t, err.Error(), `encoding "means"`)

	_, err = Normalize(RawTable{Columns: []string{"A|B"}, Records: recs("I1"), Values: [][]float64{{0.7}}, Encoding: EncodingBinaryFlags})
	require.ErrorIs(t, err, ErrNotBinary)
	assert.NotContains(t, err.Error(), `encoding "means"`)
}

func TestParseColumnsRejectsDuplicates(t *testing.T) {
	_, err := ParseColumns([]string{"T1|T2", "T2|T1", "T1|T2"}, "|")
	assert.ErrorIs(t, err, ErrMalformedColumn)
	assert.ErrorContains(t, err, `duplicate column "T1|T2"`)

	pairs, err := ParseColumns([]string{"T1|T2", "T2|T1"}, "|")
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
}
