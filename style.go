package allelegraph

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// Allele identifies one of the two count slots of a sample.
type Allele int

const (
	Allele1 Allele = iota
	Allele2
)

// GenotypeSpacing is the x distance between neighbouring genotype groups.
const GenotypeSpacing = 2

var (
	background = color.RGBA{R: 0xEA, G: 0xEA, B: 0xF2, A: 255}
	gridColor  = color.White
	legendInk  = color.RGBA{A: 255}

	genotypeColors = map[Genotype]color.RGBA{
		HomRef: {R: 0, G: 0, B: 255, A: 255},
		Het:    {R: 255, G: 165, B: 0, A: 255},
		HomAlt: {R: 255, G: 0, B: 0, A: 255},
	}

	genotypeLabels = map[Genotype]string{
		HomRef: "Homozygous\nreference",
		Het:    "Heterozygous",
		HomAlt: "Homozygous\nalternate",
	}

	alleleMarkers = map[Allele]draw.GlyphDrawer{
		Allele1: draw.CircleGlyph{},
		Allele2: draw.CrossGlyph{},
	}

	alleleNames = map[Allele]string{
		Allele1: "Allele 1",
		Allele2: "Allele 2",
	}
)

func palette(
	gt Genotype,
) (
	color.RGBA, error,
) {

	c, ok := genotypeColors[gt]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownGenotype, gt)
	}
	return c, nil
}

func genotypeLabel(gt Genotype) string {
	if l, ok := genotypeLabels[gt]; ok {
		return l
	}
	return string(gt)
}

// alleleX returns the x position of an allele slot within the group at index i.
func alleleX(i int, a Allele) float64 {
	center := float64(i * GenotypeSpacing)
	if a == Allele1 {
		return center - 0.5
	}
	return center + 0.5
}

func (s Sample) count(a Allele) int {
	if a == Allele1 {
		return s.Allele1Count
	}
	return s.Allele2Count
}
