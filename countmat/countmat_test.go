package countmat

import (
	"bytes"
	"strings"
	"testing"
)

const matrixTSV = "gene_id\tcNF1\tcNF2\ticNF1\n" +
	"NF1\t10\t20\t30\n" +
	"SOX10\t1\t2\t3\n" +
	"EGFR\t100\t200\t300\n"

func TestNewHeader(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	h := m.Header()
	if h.GeneColumn != "gene_id" {
		t.Errorf("gene column %q", h.GeneColumn)
	}
	if len(h.Columns) != 3 || h.Columns[0] != "cNF1" || h.Columns[2] != "icNF1" {
		t.Errorf("columns wrong: %v", h.Columns)
	}
	if !h.Contains("cNF2") || h.Contains("cNF3") {
		t.Error("Contains wrong")
	}
}

func TestIndices(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	idx, err := m.Header().Indices([]string{"icNF1", "cNF1"})
	if err != nil {
		t.Fatal(err)
	}
	if idx[0] != 2 || idx[1] != 0 {
		t.Errorf("indices wrong: %v", idx)
	}

	if _, err := m.Header().Indices([]string{"missing"}); err == nil {
		t.Error("expected an error for a missing column")
	}
}

func TestReadRows(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	var genes []string
	for row := m.Read(); row != nil; row = m.Read() {
		genes = append(genes, row.Gene)
		if len(row.Counts) != 3 {
			t.Errorf("gene %s has %d counts", row.Gene, len(row.Counts))
		}
	}
	if err := m.Err(); err != nil {
		t.Fatal(err)
	}
	if len(genes) != 3 || genes[0] != "NF1" || genes[2] != "EGFR" {
		t.Errorf("genes wrong: %v", genes)
	}
}

func TestWriteAligned(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	// Request a subset in an order different from the matrix's own
	if err := WriteAligned(m, []string{"icNF1", "cNF1"}, &buf, '\t'); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "gene_id\ticNF1\tcNF1" {
		t.Errorf("header wrong: %q", lines[0])
	}
	if lines[1] != "NF1\t30\t10" {
		t.Errorf("first row wrong: %q", lines[1])
	}
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestWriteAlignedMissingColumn(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteAligned(m, []string{"cNF1", "ghost"}, &buf, '\t'); err == nil {
		t.Error("expected an error for an absent column")
	}
}

func TestLibrarySizes(t *testing.T) {
	m, err := New(strings.NewReader(matrixTSV), '\t')
	if err != nil {
		t.Fatal(err)
	}

	sizes, err := LibrarySizes(m)
	if err != nil {
		t.Fatal(err)
	}

	if sizes["cNF1"] != 111 || sizes["cNF2"] != 222 || sizes["icNF1"] != 333 {
		t.Errorf("sizes wrong: %v", sizes)
	}

	summary, err := SummarizeSizes(sizes)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Min != 111 || summary.Max != 333 || summary.Median != 222 || summary.Mean != 222 {
		t.Errorf("summary wrong: %+v", summary)
	}
}

func TestLibrarySizesNonNumeric(t *testing.T) {
	bad := "gene_id\tcNF1\nNF1\tnot-a-number\n"
	m, err := New(strings.NewReader(bad), '\t')
	if err != nil {
		t.Fatal(err)
	}

	if _, err := LibrarySizes(m); err == nil {
		t.Error("expected an error for a non-numeric count")
	}
}
