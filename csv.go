package allelegraph

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

type csvRow struct {
	Sample       string `csv:"sample"`
	Genotype     string `csv:"genotype"`
	Allele1Count int    `csv:"allele_1_count"`
	Allele2Count int    `csv:"allele_2_count"`
}

// ReadCSV decodes a delimited table with a sample,genotype,allele_1_count,allele_2_count
// header. Comma and tab delimiters are both accepted.
func ReadCSV(r io.Reader) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = determineDelimiter(raw)
	cr.TrimLeadingSpace = true

	rows := []*csvRow{}
	if err := gocsv.UnmarshalCSV(cr, &rows); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	d := make(Dataset, len(rows))
	for _, row := range rows {
		if _, exists := d[row.Sample]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSample, row.Sample)
		}
		d[row.Sample] = Record{
			Genotype:     Genotype(row.Genotype),
			Allele1Count: row.Allele1Count,
			Allele2Count: row.Allele2Count,
		}
	}

	return d, nil
}

// determineDelimiter picks comma or tab, preferring a detector candidate that
// also splits the header. Candidate order from the detector is not stable.
func determineDelimiter(raw []byte) rune {
	header, _, _ := bytes.Cut(raw, []byte("\n"))

	d := detector.New()
	candidates := d.DetectDelimiter(bytes.NewReader(raw), '"')

	for _, want := range []string{",", "\t"} {
		for _, c := range candidates {
			if c == want && bytes.Contains(header, []byte(want)) {
				return rune(want[0])
			}
		}
	}

	// nothing consistent across rows, go by the header alone
	if !bytes.ContainsRune(header, ',') && bytes.ContainsRune(header, '\t') {
		return '\t'
	}

	return ','
}
