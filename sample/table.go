package sample

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// ReadTable imports a sample metadata table. Columns are located by header
// name, so the table may carry its columns in any order and may include
// columns we do not model. Every row must carry a non-empty specimenID; a
// blank one means the table is malformed upstream and nothing downstream
// could match it anyway.
func ReadTable(data []byte, delim rune) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.LazyQuotes = true

	var records []Record
	if err := gocsv.UnmarshalCSV(r, &records); err != nil {
		return nil, pfx.Err(err)
	}

	for i, rec := range records {
		if rec.Identifier == "" {
			// +2: one for the header row, one for 1-based line numbers
			return nil, fmt.Errorf("metadata line %d has an empty specimenID", i+2)
		}
	}

	return records, nil
}

// WriteTable emits records as a delimited table with a header row.
func WriteTable(records []Record, w io.Writer, delim rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	return nil
}
