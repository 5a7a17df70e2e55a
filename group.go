package allelegraph

import "sort"

// YPadding is added to the largest count to give the y-axis upper bound.
const YPadding = 10

// Groups holds the samples of each genotype in identifier order.
type Groups map[Genotype][]Sample

// Group partitions the dataset by genotype. Every recognised genotype gets a
// bucket, empty or not. Unrecognised genotype strings get their own bucket so
// no sample is dropped.
func Group(d Dataset) Groups {
	g := make(Groups, len(Genotypes))
	for _, gt := range Genotypes {
		g[gt] = []Sample{}
	}

	for _, s := range d.Samples() {
		g[s.Genotype] = append(g[s.Genotype], s)
	}

	return g
}

// Order returns the bucket keys: recognised genotypes in layout order, then
// anything else sorted.
func (g Groups) Order() []Genotype {
	order := append([]Genotype{}, Genotypes...)

	var extra []Genotype
	for gt := range g {
		if !known(gt) {
			extra = append(extra, gt)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(order, extra...)
}

// Len is the number of samples across all buckets.
func (g Groups) Len() int {
	n := 0
	for _, samples := range g {
		n += len(samples)
	}
	return n
}

func known(gt Genotype) bool {
	for _, k := range Genotypes {
		if gt == k {
			return true
		}
	}
	return false
}

// MaxCount is the largest count across both allele slots of all samples.
func MaxCount(d Dataset) (int, error) {
	if len(d) == 0 {
		return 0, ErrEmptyDataset
	}

	first := true
	highest := 0
	for _, rec := range d {
		for _, c := range []int{rec.Allele1Count, rec.Allele2Count} {
			if first || c > highest {
				highest = c
				first = false
			}
		}
	}

	return highest, nil
}

// YMax is the y-axis upper bound for d.
func YMax(d Dataset) (float64, error) {
	highest, err := MaxCount(d)
	if err != nil {
		return 0, err
	}
	return float64(highest + YPadding), nil
}
