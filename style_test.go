package allelegraph

import (
	"errors"
	"testing"
)

func TestPalette(t *testing.T) {
	for _, gt := range Genotypes {
		if _, err := palette(gt); err != nil {
			t.Errorf("%s: %v", gt, err)
		}
		if genotypeLabel(gt) == string(gt) {
			t.Errorf("%s has no label", gt)
		}
	}

	if _, err := palette("HET"); !errors.Is(err, ErrUnknownGenotype) {
		t.Errorf("got %v, expected %v", err, ErrUnknownGenotype)
	}
}

func TestAlleleX(t *testing.T) {
	for _, v := range []struct {
		i        int
		a        Allele
		expected float64
	}{
		{0, Allele1, -0.5},
		{0, Allele2, 0.5},
		{1, Allele1, 1.5},
		{2, Allele2, 4.5},
	} {
		if x := alleleX(v.i, v.a); x != v.expected {
			t.Errorf("alleleX(%d, %d) = %v, expected %v", v.i, v.a, x, v.expected)
		}
	}
}
