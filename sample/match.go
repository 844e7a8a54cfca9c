package sample

import (
	"fmt"
)

// Pair binds a metadata record to the expression-matrix column that holds its
// counts.
type Pair struct {
	Record Record
	Column string
}

// Mapping is an ordered pairing of metadata records with matrix columns. It
// is constructed once by MatchToMatrix, is not modified afterward, and its
// order is exactly the order the caller must use when subsetting the matrix.
type Mapping struct {
	entries []Pair
}

// MatchToMatrix pairs each record with a matrix column by exact string
// equality between the record's identifier and the column identifier. No
// normalization is applied: no case-folding, no whitespace trimming, no
// suffix stripping. Identifiers that differ in any byte do not match; that is
// the naming contract between the two sources, and papering over it here
// would hide real curation problems.
//
// Records without a verbatim column are dropped rather than treated as an
// error, since the two datasets are curated independently and perfect overlap
// cannot be expected. The dropped identifiers are returned so the caller can
// report them. Entry order follows the input record order, not the matrix
// column order.
func MatchToMatrix(records []Record, matrixColumns []string) (*Mapping, []string) {
	present := make(map[string]struct{}, len(matrixColumns))
	for _, col := range matrixColumns {
		present[col] = struct{}{}
	}

	m := &Mapping{}
	var dropped []string

	for _, rec := range records {
		if _, ok := present[rec.Identifier]; ok {
			m.entries = append(m.entries, Pair{Record: rec, Column: rec.Identifier})
		} else {
			dropped = append(dropped, rec.Identifier)
		}
	}

	return m, dropped
}

// Len reports the number of matched pairs.
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Pairs returns a copy of the ordered pairings.
func (m *Mapping) Pairs() []Pair {
	out := make([]Pair, len(m.entries))
	copy(out, m.entries)

	return out
}

// Records returns the matched metadata records in mapping order.
func (m *Mapping) Records() []Record {
	out := make([]Record, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Record)
	}

	return out
}

// Columns returns the matched matrix column identifiers in mapping order.
// Subsetting the matrix with this slice yields columns aligned with Records.
func (m *Mapping) Columns() []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Column)
	}

	return out
}

// GroupCounts tallies mapping entries by provenance.
func (m *Mapping) GroupCounts() map[Provenance]int {
	counts := make(map[Provenance]int)
	for _, e := range m.entries {
		counts[e.Record.Provenance()]++
	}

	return counts
}

// VerifyAlignment checks the hard invariant that row i of the mapped metadata
// names the same physical sample as column i of the mapped matrix. A failure
// here means downstream statistics would run with wrong labels on wrong data
// and no symptom, so callers must abort on error and never downgrade it to a
// warning.
func (m *Mapping) VerifyAlignment() error {
	for i, e := range m.entries {
		if e.Record.Identifier != e.Column {
			return fmt.Errorf("alignment violated at position %d: metadata sample %q but matrix column %q", i, e.Record.Identifier, e.Column)
		}
	}

	return nil
}

// RequireGroups returns an error naming the first listed provenance group
// with no members in the mapping. A comparison with an empty arm cannot be
// modeled, so this is terminal for the run.
func RequireGroups(m *Mapping, groups ...Provenance) error {
	counts := m.GroupCounts()
	for _, g := range groups {
		if counts[g] == 0 {
			return fmt.Errorf("no samples remain in the %s group after matching; cannot compare", g)
		}
	}

	return nil
}
