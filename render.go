package allelegraph

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// Width and Height of the rendered figure.
	Width  = 10 * vg.Inch
	Height = 10 * vg.Inch

	title  = "Allele Counts by Genotype"
	xlabel = "Genotype"
	ylabel = "Allele Count"
)

var markerRadius = vg.Points(5)

// Chart is a rendered allele count graph.
type Chart struct {
	*plot.Plot

	Groups Groups
	// Pairs is the number of plotted point pairs, one per sample.
	Pairs int
	YMax  float64
}

// Render lays out d as one chart. It fails on an empty dataset and on any
// sample whose genotype has no colour.
func Render(d Dataset) (*Chart, error) {
	ymax, err := YMax(d)
	if err != nil {
		return nil, err
	}

	groups := Group(d)
	order := groups.Order()

	p := prepPlot()
	p.Add(backdrop{}, grid())

	pairs := 0
	for i, gt := range order {
		samples := groups[gt]
		if len(samples) == 0 {
			continue
		}

		col, err := palette(gt)
		if err != nil {
			return nil, err
		}

		a1 := make(plotter.XYs, len(samples))
		a2 := make(plotter.XYs, len(samples))
		for j, s := range samples {
			a1[j] = plotter.XY{X: alleleX(i, Allele1), Y: float64(s.count(Allele1))}
			a2[j] = plotter.XY{X: alleleX(i, Allele2), Y: float64(s.count(Allele2))}

			// Connect the two counts of one sample
			seg, err := plotter.NewLine(plotter.XYs{a1[j], a2[j]})
			if err != nil {
				return nil, fmt.Errorf("sample %s: %w", s.ID, err)
			}
			seg.LineStyle.Color = col
			seg.LineStyle.Width = vg.Points(1.5)
			p.Add(seg)
			pairs++
		}

		for k, pts := range []plotter.XYs{a1, a2} {
			a := Allele(k)
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", gt, alleleNames[a], err)
			}
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Radius = markerRadius
			sc.GlyphStyle.Shape = alleleMarkers[a]
			p.Add(sc)
		}
	}

	p.Add(newGroupLabels(order))

	if err := legend(p); err != nil {
		return nil, err
	}

	// Axis limits go last so autoscaling from p.Add does not override them
	p.Y.Min = 0
	p.Y.Max = ymax
	p.X.Min = -1
	p.X.Max = float64((len(order)-1)*GenotypeSpacing) + 1

	return &Chart{Plot: p, Groups: groups, Pairs: pairs, YMax: ymax}, nil
}

func prepPlot() (
	*plot.Plot,
) {

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Title.Padding = font.Length(20)

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	// Leaves room for the genotype labels under the axis
	p.X.Label.Padding = vg.Points(36)
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{})

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = vg.Points(10)
	p.Legend.YOffs = vg.Points(-10)
	p.Legend.Padding = vg.Points(5)

	return p
}

func grid() *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = gridColor
	g.Horizontal.Color = gridColor
	g.Horizontal.Width = vg.Points(1)
	g.Vertical.Width = vg.Points(1)
	g.Horizontal.Dashes = nil
	g.Vertical.Dashes = nil
	return g
}

// legend adds one black entry per allele slot, told apart by marker shape.
func legend(p *plot.Plot) error {
	for _, a := range []Allele{Allele1, Allele2} {
		thumb, err := plotter.NewScatter(plotter.XYs{})
		if err != nil {
			return err
		}
		thumb.GlyphStyle.Color = legendInk
		thumb.GlyphStyle.Radius = markerRadius
		thumb.GlyphStyle.Shape = alleleMarkers[a]
		p.Legend.Add(alleleNames[a], thumb)
	}
	return nil
}

// backdrop fills the data area.
type backdrop struct{}

func (backdrop) Plot(c draw.Canvas, _ *plot.Plot) {
	c.SetColor(background)
	c.Fill(c.Rectangle.Path())
}

// groupLabels writes each genotype's name under its group, in its colour.
type groupLabels struct {
	xs     []float64
	labels []string
	styles []text.Style
}

func newGroupLabels(order []Genotype) groupLabels {
	var gl groupLabels
	for i, gt := range order {
		col, err := palette(gt)
		if err != nil {
			// unknown genotypes fail in Render before labels are drawn
			continue
		}
		gl.xs = append(gl.xs, float64(i*GenotypeSpacing))
		gl.labels = append(gl.labels, genotypeLabel(gt))
		gl.styles = append(gl.styles, text.Style{
			Color: col,
			Font: font.Font{
				Typeface: "Liberation",
				Variant:  "Sans",
				Weight:   xfont.WeightBold,
				Size:     vg.Points(10),
			},
			XAlign:  text.XCenter,
			YAlign:  text.YTop,
			Handler: plot.DefaultTextHandler,
		})
	}
	return gl
}

func (gl groupLabels) Plot(c draw.Canvas, p *plot.Plot) {
	trX, _ := p.Transforms(&c)
	for i, l := range gl.labels {
		pt := vg.Point{X: trX(gl.xs[i]), Y: c.Min.Y - vg.Points(6)}
		c.FillText(gl.styles[i], pt, l)
	}
}
