package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportDCRPlot exports the per-member governing ratios to an image
// file with the DCR = 1.0 acceptance line drawn. The format follows the
// file extension (png, svg, pdf).
func ExportDCRPlot(members []MemberDCR, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear Verification - Governing DCR per Member"
	p.X.Label.Text = "Member"
	p.Y.Label.Text = "DCR"

	pass := plotter.XYs{}
	fail := plotter.XYs{}
	labels := plotter.XYLabels{}

	maxDCR := 1.0
	for i, m := range members {
		pt := plotter.XY{X: float64(i + 1), Y: m.DCR}
		if m.Passes {
			pass = append(pass, pt)
		} else {
			fail = append(fail, pt)
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i + 1), Y: m.DCR + 0.03})
		labels.Labels = append(labels.Labels, m.Name)
		if m.DCR > maxDCR {
			maxDCR = m.DCR
		}
	}

	p.X.Min = 0
	p.X.Max = float64(len(members) + 1)
	p.Y.Min = 0
	p.Y.Max = maxDCR * 1.2

	if len(pass) > 0 {
		s, err := plotter.NewScatter(pass)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
	}
	if len(fail) > 0 {
		s, err := plotter.NewScatter(fail)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(s)
	}

	// DCR = 1.0 acceptance line
	limit, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 1.0},
		{X: float64(len(members) + 1), Y: 1.0},
	})
	if err != nil {
		return err
	}
	limit.LineStyle.Width = vg.Points(1.5)
	limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limit)

	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
