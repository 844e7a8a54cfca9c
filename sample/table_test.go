package sample

import (
	"bytes"
	"strings"
	"testing"
)

const metadataCSV = `specimenID,tumorType,individualID,age,sex,tissue,assay,studyName
cNF97.2a,Cutaneous Neurofibroma,patient97,34,Female,skin,rnaSeq,cNF Cell Line Study
icNF97.2a,Cutaneous Neurofibroma,patient97,34,Female,skin,rnaSeq,cNF Cell Line Study
xyz123,Plexiform Neurofibroma,patient12,,,nerve,rnaSeq,cNF Cell Line Study
`

func TestReadTable(t *testing.T) {
	records, err := ReadTable([]byte(metadataCSV), ',')
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Identifier != "cNF97.2a" ||
		first.Category != "Cutaneous Neurofibroma" ||
		first.IndividualID != "patient97" ||
		!first.Age.Valid || first.Age.Int64 != 34 ||
		!first.Sex.Valid || first.Sex.String != "Female" {
		t.Errorf("first record parsed wrong: %+v", first)
	}

	// Missing descriptive fields stay null rather than zero
	third := records[2]
	if third.Age.Valid || third.Sex.Valid {
		t.Errorf("expected null age and sex, got %+v", third)
	}
}

func TestReadTableEmptyIdentifier(t *testing.T) {
	table := "specimenID,tumorType\ncNF1,Cutaneous Neurofibroma\n,Cutaneous Neurofibroma\n"
	if _, err := ReadTable([]byte(table), ','); err == nil {
		t.Error("expected an error for an empty specimenID")
	}
}

func TestWriteTable(t *testing.T) {
	records, err := ReadTable([]byte(metadataCSV), ',')
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTable(records[:1], &buf, '\t'); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "specimenID\t") {
		t.Errorf("header wrong: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "cNF97.2a\t") {
		t.Errorf("row wrong: %q", lines[1])
	}
}
