package countmat

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// WriteAligned streams the matrix into w keeping only the requested columns,
// reordered to match the requested order. The emitted header is checked
// field-by-field against the request before any data row is written: the
// downstream model trusts that column i of this output is the sample the
// caller's metadata row i describes, and a quiet reordering here would poison
// everything after it.
func WriteAligned(m *Matrix, columns []string, w io.Writer, delim rune) error {
	indices, err := m.Header().Indices(columns)
	if err != nil {
		return err
	}

	// Re-derive each output column from its resolved index and compare to
	// the request. Indices already guarantees this today, but this assertion
	// is what stands between a future indexing bug and silently mislabeled
	// columns.
	for i, idx := range indices {
		if got := m.Header().Columns[idx]; got != columns[i] {
			return fmt.Errorf("output column %d resolves to %q; expected %q", i, got, columns[i])
		}
	}

	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := append([]string{m.Header().GeneColumn}, columns...)
	if err := cw.Write(header); err != nil {
		return pfx.Err(err)
	}

	for row := m.Read(); row != nil; row = m.Read() {
		out := append([]string{row.Gene}, row.Subset(indices)...)
		if err := cw.Write(out); err != nil {
			return pfx.Err(err)
		}
	}
	if err := m.Err(); err != nil {
		return pfx.Err(err)
	}

	cw.Flush()

	return cw.Error()
}
