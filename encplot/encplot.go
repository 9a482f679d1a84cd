// Package encplot draws the effective number of codons against GC3s
// together with the curve expected without selection.
package encplot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"bitbucket.org/Davydov/codonw/analyzer"
	"bitbucket.org/Davydov/codonw/indices"
)

// Size is the default plot size.
const Size = 5 * vg.Inch

// Formats are the supported output formats.
var Formats = []string{"png", "svg", "pdf", "eps"}

// Points returns GC3s and Nc of the records. Records with an undefined
// value are skipped, n is their number.
func Points(recs []*analyzer.Record) (pts plotter.XYs, n int) {
	pts = make(plotter.XYs, 0, len(recs))
	for _, rec := range recs {
		gc3s, ok1 := rec.Indices[analyzer.GC3s]
		nc, ok2 := rec.Indices[analyzer.Nc]
		if !ok1 || !ok2 || !gc3s.Defined || !nc.Defined {
			n++
			continue
		}
		pts = append(pts, plotter.XY{X: gc3s.Value, Y: nc.Value})
	}
	return
}

// New creates the plot.
func New(title string, pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "GC3s"
	p.Y.Label.Text = "Nc"
	p.X.Min = 0
	p.X.Max = 1
	p.Y.Min = 20
	p.Y.Max = 61

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(1.5)

	f := plotter.NewFunction(indices.ExpectedENC)
	f.XMin = 0
	f.XMax = 1
	f.Samples = 200
	f.Width = vg.Points(1)

	p.Add(s, f)
	p.Legend.Add("genes", s)
	p.Legend.Add("expected", f)
	p.Legend.Top = true
	return p, nil
}

// Write draws the plot in a given format.
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(Size, Size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save saves the plot, the format is taken from the file extension.
func Save(path string, p *plot.Plot) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if f == format {
			return p.Save(Size, Size, path)
		}
	}
	return fmt.Errorf("unsupported plot format %q", format)
}
