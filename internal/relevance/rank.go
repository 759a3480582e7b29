package relevance

import "sort"

// OrderByRank moves unranked rows (rank 0) behind every ranked one by
// rewriting their rank as max+1, then stable-sorts rows by ascending rank.
func (m *Matrix) OrderByRank() {
	if len(m.Rows) == 0 {
		return
	}
	maxRank := m.Rows[0].Rank
	for _, r := range m.Rows[1:] {
		if r.Rank > maxRank {
			maxRank = r.Rank
		}
	}
	for i := range m.Rows {
		if m.Rows[i].Rank == 0 {
			m.Rows[i].Rank = maxRank + 1
		}
	}
	sort.SliceStable(m.Rows, func(i, j int) bool { return m.Rows[i].Rank < m.Rows[j].Rank })
}
