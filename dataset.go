// Package allelegraph draws paired allele expression counts grouped by
// genotype: one pair of markers per sample, joined by a segment.
package allelegraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrEmptyDataset is returned when there is nothing to scale the y axis to.
	ErrEmptyDataset = errors.New("dataset has no samples")
	// ErrUnknownGenotype is returned when a sample's genotype has no colour.
	ErrUnknownGenotype = errors.New("unknown genotype")
	// ErrDuplicateSample is returned when a table lists one sample twice.
	ErrDuplicateSample = errors.New("duplicate sample")
)

// Genotype classifies the two copies of a gene in one sample.
type Genotype string

const (
	HomRef Genotype = "hom_ref"
	Het    Genotype = "het"
	HomAlt Genotype = "hom_alt"
)

// Genotypes is the left-to-right layout order.
var Genotypes = []Genotype{HomRef, Het, HomAlt}

// Record is one sample's entry in a dataset file.
type Record struct {
	Genotype     Genotype `json:"genotype"`
	Allele1Count int      `json:"allele_1_count"`
	Allele2Count int      `json:"allele_2_count"`
}

// Sample is a Record together with its identifier.
type Sample struct {
	ID string
	Record
}

// Dataset maps sample identifier to record.
type Dataset map[string]Record

// ExampleData is used when no dataset file is given.
var ExampleData = Dataset{
	"1": {Genotype: HomRef, Allele1Count: 2, Allele2Count: 4},
	"2": {Genotype: HomRef, Allele1Count: 3, Allele2Count: 6},
	"3": {Genotype: Het, Allele1Count: 4, Allele2Count: 40},
	"4": {Genotype: Het, Allele1Count: 5, Allele2Count: 39},
	"5": {Genotype: HomAlt, Allele1Count: 60, Allele2Count: 54},
	"6": {Genotype: HomAlt, Allele1Count: 58, Allele2Count: 62},
}

// Samples returns every sample ordered by identifier.
func (d Dataset) Samples() []Sample {
	out := make([]Sample, 0, len(d))
	for id, rec := range d {
		out = append(out, Sample{ID: id, Record: rec})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessID(out[i].ID, out[j].ID)
	})
	return out
}

// Numeric identifiers sort numerically, everything else lexically after them.
func lessID(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aerr == nil:
		return true
	case berr == nil:
		return false
	}
	return a < b
}

// ReadJSON decodes a keyed JSON object of records.
func ReadJSON(r io.Reader) (Dataset, error) {
	d := Dataset{}
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return d, nil
}

// Load reads the dataset at path, or returns ExampleData when path is empty.
// Delimited tables are recognised by extension; anything else is read as JSON.
func Load(
	path string,
) (
	Dataset, error,
) {

	if path == "" {
		return ExampleData, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ReadCSV(f)
	}

	return ReadJSON(f)
}
