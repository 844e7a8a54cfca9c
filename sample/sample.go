// Package sample classifies cutaneous neurofibroma cell-culture metadata by
// provenance and reconciles it against the column order of an independently
// produced expression count matrix. The metadata table and the matrix come
// from different curation pipelines, so their sample sets overlap only
// partially and nothing guarantees a shared ordering; every downstream model
// assumes that row i of the metadata describes column i of the matrix, and a
// silent misalignment corrupts all of it with no visible symptom. This
// package exists to make that alignment explicit and checkable.
package sample

import (
	"gopkg.in/guregu/null.v3"
)

// Provenance says where a cultured sample came from: a primary culture, an
// immortalized line, or something outside the comparison. It is always
// derived from the sample identifier via Classify and never stored on its
// own.
type Provenance string

const (
	Primary      Provenance = "Primary"
	Immortalized Provenance = "Immortalized"
	Other        Provenance = "Other"
)

// Record is one row of the sample metadata table. Identifier is the raw
// sample name as recorded by the metadata source. The source does not
// guarantee uniqueness; duplicate identifiers are tolerated and classified
// independently. The remaining fields are descriptive and pass through to the
// aligned output unmodified.
type Record struct {
	Identifier   string      `csv:"specimenID"`
	Category     string      `csv:"tumorType"`
	IndividualID string      `csv:"individualID"`
	Age          null.Int    `csv:"age"`
	Sex          null.String `csv:"sex"`
	Tissue       null.String `csv:"tissue"`
	Assay        null.String `csv:"assay"`
	StudyName    null.String `csv:"studyName"`
}

// Provenance classifies the record by its identifier.
func (r Record) Provenance() Provenance {
	return Classify(r.Identifier)
}
