package countmat

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
)

// LibrarySizes sums each sample column across all remaining rows of the
// matrix. Wildly uneven totals are the usual first hint that a sample was
// mislabeled or truncated upstream, so the audit tool reports them before any
// modeling happens.
func LibrarySizes(m *Matrix) (map[string]float64, error) {
	totals := make([]float64, len(m.Header().Columns))

	for row := m.Read(); row != nil; row = m.Read() {
		for i, v := range row.Counts {
			n, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("gene %s, column %q: %v", row.Gene, m.Header().Columns[i], err)
			}
			totals[i] += n
		}
	}
	if err := m.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(totals))
	for i, col := range m.Header().Columns {
		out[col] = totals[i]
	}

	return out, nil
}

// SizeSummary describes the spread of library sizes across samples.
type SizeSummary struct {
	Min    float64
	Median float64
	Mean   float64
	Max    float64
}

// SummarizeSizes computes summary statistics over per-sample totals.
func SummarizeSizes(sizes map[string]float64) (SizeSummary, error) {
	data := make(stats.Float64Data, 0, len(sizes))
	for _, v := range sizes {
		data = append(data, v)
	}

	var s SizeSummary
	var err error

	if s.Min, err = stats.Min(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}

	return s, nil
}
