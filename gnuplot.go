package allelegraph

import (
	"fmt"
	"image/color"
	"strings"
)

// gnuplot point types
var gnuplotPoints = map[Allele]int{
	Allele1: 7, // filled circle
	Allele2: 2, // cross
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// GnuplotScript returns a gnuplot program drawing d with the layout and
// colours of Render. Data is inlined, so the script can be piped straight
// into a gnuplot process.
func GnuplotScript(d Dataset) (string, error) {
	ymax, err := YMax(d)
	if err != nil {
		return "", err
	}

	groups := Group(d)
	order := groups.Order()

	var b strings.Builder
	fmt.Fprintf(&b, "set title %q\n", title)
	fmt.Fprintf(&b, "set xlabel %q offset 0,-2\n", xlabel)
	fmt.Fprintf(&b, "set ylabel %q\n", ylabel)
	fmt.Fprintf(&b, "set xrange [-1:%d]\n", (len(order)-1)*GenotypeSpacing+1)
	fmt.Fprintf(&b, "set yrange [0:%g]\n", ymax)
	fmt.Fprintf(&b, "unset xtics\n")
	fmt.Fprintf(&b, "set border 3\n")
	fmt.Fprintf(&b, "set key top left\n")
	fmt.Fprintf(&b, "set object 1 rectangle from graph 0,0 to graph 1,1 behind fillcolor rgb %q fillstyle solid noborder\n", rgb(background))
	fmt.Fprintf(&b, "set grid ytics lt 1 lc rgb %q\n", "#ffffff")

	// curves and their inline data blocks, in the same order
	var curves, blocks []string
	for i, gt := range order {
		samples := groups[gt]
		if len(samples) == 0 {
			continue
		}

		col, err := palette(gt)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "set label %d %q at first %d, graph 0 center offset 0,-1.5 textcolor rgb %q font \",10\"\n",
			i+1, genotypeLabel(gt), i*GenotypeSpacing, rgb(col))

		// one block of segments, broken by blank lines between samples
		var seg strings.Builder
		for _, s := range samples {
			fmt.Fprintf(&seg, "%g %d\n%g %d\n\n",
				alleleX(i, Allele1), s.count(Allele1), alleleX(i, Allele2), s.count(Allele2))
		}
		curves = append(curves, fmt.Sprintf("'-' with lines lc rgb %q notitle", rgb(col)))
		blocks = append(blocks, seg.String())

		for _, a := range []Allele{Allele1, Allele2} {
			var pts strings.Builder
			for _, s := range samples {
				fmt.Fprintf(&pts, "%g %d\n", alleleX(i, a), s.count(a))
			}
			curves = append(curves, fmt.Sprintf("'-' with points pt %d ps 2 lc rgb %q notitle", gnuplotPoints[a], rgb(col)))
			blocks = append(blocks, pts.String())
		}
	}

	// legend entries only
	for _, a := range []Allele{Allele1, Allele2} {
		curves = append(curves, fmt.Sprintf("NaN with points pt %d ps 2 lc rgb %q title %q", gnuplotPoints[a], rgb(legendInk), alleleNames[a]))
	}

	fmt.Fprintf(&b, "plot %s\n", strings.Join(curves, ", \\\n     "))
	for _, block := range blocks {
		b.WriteString(block)
		b.WriteString("e\n")
	}

	return b.String(), nil
}
