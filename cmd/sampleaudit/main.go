// sampleaudit reports how a metadata table will fare in reconciliation
// before anyone runs it: provenance tallies per tumor type, the identifiers
// that classify as Other (and would vanish from the analysis), the samples
// with no matrix column, and the spread of per-sample library sizes. Run it
// whenever a reconciliation drops more samples than expected.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/nfworkshop/cnfexpr"
	"github.com/nfworkshop/cnfexpr/buildinfo"
	"github.com/nfworkshop/cnfexpr/countmat"
	"github.com/nfworkshop/cnfexpr/sample"
)

func main() {
	buildinfo.Stamp()

	var metadataInput, matrixInput, category string

	flag.StringVar(&metadataInput, "metadata", "", "Sample metadata table: local path, http(s) URL, or gs:// object.")
	flag.StringVar(&matrixInput, "matrix", "", "Optional count matrix to audit matching and library sizes against.")
	flag.StringVar(&category, "category", "", "Optional tumor type label; when set, the match audit is restricted to it.")
	flag.Parse()

	if metadataInput == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	metadataBytes, err := cnfexpr.OpenAny(metadataInput)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	records, err := sample.ReadTable(metadataBytes, cnfexpr.DetermineDelimiter(bytes.NewReader(metadataBytes)))
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	printProvenanceTallies(records)
	printOther(records)

	if matrixInput == "" {
		return
	}

	matrixBytes, err := cnfexpr.OpenAny(matrixInput)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	delim := cnfexpr.DetermineDelimiter(bytes.NewReader(matrixBytes))
	matrix, err := countmat.New(bytes.NewReader(matrixBytes), delim)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	scoped := records
	if category != "" {
		scoped, _ = sample.FilterInScope(records, category)
	}

	_, unmatched := sample.MatchToMatrix(scoped, matrix.Header().Columns)
	fmt.Printf("%d of %d samples have no matrix column", len(unmatched), len(scoped))
	if len(unmatched) > 0 {
		fmt.Printf(": %s", strings.Join(unmatched, ", "))
	}
	fmt.Println()

	// Reopen so library sizing sees every row; the header read above already
	// consumed the first line of this reader.
	matrix, err = countmat.New(bytes.NewReader(matrixBytes), delim)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	sizes, err := countmat.LibrarySizes(matrix)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	summary, err := countmat.SummarizeSizes(sizes)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	fmt.Printf("library sizes across %d columns: min %.0f, median %.0f, mean %.0f, max %.0f\n",
		len(sizes), summary.Min, summary.Median, summary.Mean, summary.Max)
}

func printProvenanceTallies(records []sample.Record) {
	type key struct {
		category string
		prov     sample.Provenance
	}

	tallies := make(map[key]int)
	for _, rec := range records {
		tallies[key{rec.Category, rec.Provenance()}]++
	}

	keys := make([]key, 0, len(tallies))
	for k := range tallies {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].prov < keys[j].prov
	})

	for _, k := range keys {
		fmt.Printf("%-40s %-14s %d\n", k.category, k.prov, tallies[k])
	}
}

func printOther(records []sample.Record) {
	var other []string
	for _, rec := range records {
		if rec.Provenance() == sample.Other {
			other = append(other, rec.Identifier)
		}
	}

	if len(other) == 0 {
		return
	}

	fmt.Printf("%d identifiers classify as Other and are excluded from any comparison: %s\n",
		len(other), strings.Join(other, ", "))
}
