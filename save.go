package allelegraph

import (
	"io"
	"os"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// DPI of saved images.
	DPI = 300

	// OutputName is where the command line tool saves the chart.
	OutputName = "allele_count_graph.png"
)

// WriteTo encodes the chart as a PNG at DPI.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	img := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI))
	c.Draw(draw.New(img))

	return vgimg.PngCanvas{Canvas: img}.WriteTo(w)
}

// Save writes the chart to path as a PNG.
func (c *Chart) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
