// reconcile prepares the inputs for a differential-expression comparison of
// immortalized versus primary cNF cell cultures. It fetches a sample metadata
// table and a gene-by-sample count matrix, classifies samples by provenance,
// pairs metadata rows with matrix columns by exact identifier match, verifies
// the pairing, and writes three aligned files: the metadata subset, the
// matrix subset (columns reordered to the metadata row order), and a design
// table with the provenance factor for the downstream model.
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/nfworkshop/cnfexpr"
	"github.com/nfworkshop/cnfexpr/buildinfo"
	"github.com/nfworkshop/cnfexpr/countmat"
	"github.com/nfworkshop/cnfexpr/portal"
	"github.com/nfworkshop/cnfexpr/sample"
)

func main() {
	buildinfo.Stamp()

	var metadataInput, matrixInput, category, portalURL, token, cacheDir, outPrefix string

	flag.StringVar(&metadataInput, "metadata", "", "Sample metadata table: a portal entity ID, local path, http(s) URL, or gs:// object.")
	flag.StringVar(&matrixInput, "matrix", "", "Gene-by-sample count matrix: a portal entity ID, local path, http(s) URL, or gs:// object.")
	flag.StringVar(&category, "category", "Cutaneous Neurofibroma", "Tumor type label that samples must carry, exactly as spelled in the metadata.")
	flag.StringVar(&portalURL, "portal", "", "Base URL of the research data portal, required when -metadata or -matrix is an entity ID.")
	flag.StringVar(&token, "token", "", "Portal access token.")
	flag.StringVar(&cacheDir, "cache", "portal-cache", "Directory for downloaded portal entities.")
	flag.StringVar(&outPrefix, "out", "aligned", "Prefix for the three output files (<out>.metadata.tsv, <out>.counts.tsv, <out>.design.tsv).")
	flag.Parse()

	if metadataInput == "" || matrixInput == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	client := portal.New(portalURL, token, cacheDir)

	metadataBytes, err := resolve(metadataInput, client)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	matrixBytes, err := resolve(matrixInput, client)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	metaDelim := cnfexpr.DetermineDelimiter(bytes.NewReader(metadataBytes))
	records, err := sample.ReadTable(metadataBytes, metaDelim)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Read", len(records), "metadata rows")

	inScope, otherCount := sample.FilterInScope(records, category)
	log.Printf("%d rows match category %q; %d of those classified Other and were excluded\n", len(inScope)+otherCount, category, otherCount)

	matrixDelim := cnfexpr.DetermineDelimiter(bytes.NewReader(matrixBytes))
	matrix, err := countmat.New(bytes.NewReader(matrixBytes), matrixDelim)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Matrix has", len(matrix.Header().Columns), "sample columns")

	mapping, unmatched := sample.MatchToMatrix(inScope, matrix.Header().Columns)
	if len(unmatched) > 0 {
		log.Printf("%d samples had no matrix column and were dropped: %s\n", len(unmatched), strings.Join(unmatched, ", "))
	}
	log.Println("Matched", mapping.Len(), "samples to matrix columns")

	// Both invariants are terminal. A misaligned mapping means wrong labels
	// on wrong data; an empty comparison arm means nothing to model.
	if err := mapping.VerifyAlignment(); err != nil {
		log.Fatalln(pfx.Err(err))
	}
	if err := sample.RequireGroups(mapping, sample.Primary, sample.Immortalized); err != nil {
		counts := mapping.GroupCounts()
		log.Printf("group counts after matching: Primary=%d Immortalized=%d\n", counts[sample.Primary], counts[sample.Immortalized])
		log.Fatalln(pfx.Err(err))
	}

	if err := writeOutputs(mapping, matrix, outPrefix); err != nil {
		log.Fatalln(pfx.Err(err))
	}

	counts := mapping.GroupCounts()
	log.Printf("Done: %d Primary and %d Immortalized samples written with prefix %s\n", counts[sample.Primary], counts[sample.Immortalized], outPrefix)
}

// resolve treats input as a portal entity ID when it looks like one (no path
// separator, no scheme) and a portal was configured; otherwise it is opened
// directly as a path or URL.
func resolve(input string, client *portal.Client) ([]byte, error) {
	if client.BaseURL != "" && !strings.ContainsAny(input, "/\\") {
		path, err := client.Fetch(input)
		if err != nil {
			return nil, err
		}

		return os.ReadFile(path)
	}

	return cnfexpr.OpenAny(input)
}

func writeOutputs(mapping *sample.Mapping, matrix *countmat.Matrix, prefix string) error {
	metaFile, err := os.Create(prefix + ".metadata.tsv")
	if err != nil {
		return pfx.Err(err)
	}
	defer metaFile.Close()

	if err := sample.WriteTable(mapping.Records(), metaFile, '\t'); err != nil {
		return err
	}

	countsFile, err := os.Create(prefix + ".counts.tsv")
	if err != nil {
		return pfx.Err(err)
	}
	defer countsFile.Close()

	if err := countmat.WriteAligned(matrix, mapping.Columns(), countsFile, '\t'); err != nil {
		return err
	}

	designFile, err := os.Create(prefix + ".design.tsv")
	if err != nil {
		return pfx.Err(err)
	}
	defer designFile.Close()

	return writeDesign(mapping, designFile)
}

// writeDesign emits the covariate table the statistical model consumes: one
// row per sample, in mapping order, with the provenance factor.
func writeDesign(mapping *sample.Mapping, f *os.File) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write([]string{"specimenID", "provenance"}); err != nil {
		return pfx.Err(err)
	}
	for _, pair := range mapping.Pairs() {
		if err := w.Write([]string{pair.Column, string(pair.Record.Provenance())}); err != nil {
			return pfx.Err(err)
		}
	}
	w.Flush()

	if err := w.Error(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
