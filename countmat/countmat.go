// Package countmat reads gene-by-sample expression count matrices and
// restricts them to a reconciled sample set. Only the header row carries
// sample identity; the package treats count values as opaque strings and
// passes them through unparsed, except where an audit explicitly asks for
// numbers.
package countmat

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
)

// Header is the first row of a count matrix: the gene-identifier column name
// followed by the ordered sample column identifiers. The column order is
// owned by the matrix source and is never modified here, only queried.
type Header struct {
	GeneColumn string
	Columns    []string

	index map[string]int
}

// Contains reports whether an identifier names a sample column.
func (h Header) Contains(column string) bool {
	_, ok := h.index[column]

	return ok
}

// Indices resolves column identifiers to their positions among the sample
// columns, in the order given. Asking for a column the matrix does not have
// is an error: by the time indices are needed, the caller has already matched
// against this header, so a miss means the caller's bookkeeping is broken.
func (h Header) Indices(columns []string) ([]int, error) {
	out := make([]int, 0, len(columns))
	for _, col := range columns {
		i, ok := h.index[col]
		if !ok {
			return nil, fmt.Errorf("column %q is not present in the matrix", col)
		}
		out = append(out, i)
	}

	return out, nil
}

// Row is one gene's counts, ordered as the header's sample columns.
type Row struct {
	Gene   string
	Counts []string
}

// Subset returns the row's counts at the given positions, in the given order.
func (r *Row) Subset(indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, r.Counts[i])
	}

	return out
}

// Matrix streams a count matrix row by row.
type Matrix struct {
	file   *os.File
	reader *csv.Reader
	header Header
	err    error
}

// New prepares a Matrix from a reader, consuming the header row.
func New(r io.Reader, delim rune) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true

	head, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(head) < 2 {
		return nil, fmt.Errorf("matrix header has %d fields; expected a gene column plus at least one sample column", len(head))
	}

	header := Header{
		GeneColumn: head[0],
		Columns:    head[1:],
		index:      make(map[string]int, len(head)-1),
	}
	for i, col := range header.Columns {
		header.index[col] = i
	}

	return &Matrix{reader: cr, header: header}, nil
}

// Open prepares a Matrix from a file on disk.
func Open(path string, delim rune) (*Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	m, err := New(file, delim)
	if err != nil {
		file.Close()
		return nil, err
	}
	m.file = file

	return m, nil
}

func (m *Matrix) Header() Header {
	return m.header
}

// Read returns the next gene row, or nil at the end of the matrix or on
// error. Check Err after a nil return.
func (m *Matrix) Read() *Row {
	fields, err := m.reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		m.err = err
		return nil
	}

	return &Row{Gene: fields[0], Counts: fields[1:]}
}

func (m *Matrix) Err() error {
	return m.err
}

func (m *Matrix) Close() error {
	if m.file == nil {
		return nil
	}

	return m.file.Close()
}
