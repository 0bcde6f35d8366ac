package render

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/percolation/critical"
	"github.com/katalvlaran/percolation/lattice"
)

// ErrNoPoints indicates PlotCurve was given nothing to draw.
var ErrNoPoints = errors.New("render: no points to plot")

// PlotOption configures PlotCurve and PlotLattice.
type PlotOption func(*plotOptions)

type plotOptions struct {
	title           string
	width, height   vg.Length
	threshold       float64
	estimate        float64
	hasEstimate     bool
	rowZeroAtBottom bool
}

func defaultPlotOptions() plotOptions {
	return plotOptions{
		width:     6 * vg.Inch,
		height:    4 * vg.Inch,
		threshold: critical.DefaultThreshold,
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) PlotOption {
	return func(o *plotOptions) { o.title = title }
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) PlotOption {
	return func(o *plotOptions) { o.width, o.height = width, height }
}

// WithThreshold moves the horizontal reference line (default 0.5).
func WithThreshold(level float64) PlotOption {
	return func(o *plotOptions) { o.threshold = level }
}

// WithEstimate marks a critical-probability estimate with a vertical line.
func WithEstimate(p float64) PlotOption {
	return func(o *plotOptions) { o.estimate, o.hasEstimate = p, true }
}

// WithRowZeroAtBottom draws lattice row 0 at the bottom of the image.
func WithRowZeroAtBottom() PlotOption {
	return func(o *plotOptions) { o.rowZeroAtBottom = true }
}

// PlotCurve saves the sampled percolation curve to file. The image format
// follows the file extension (.png, .svg, .pdf, ...).
func PlotCurve(points []critical.Point, file string, opts ...PlotOption) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	o := defaultPlotOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "occupation probability p"
	p.Y.Label.Text = "percolation probability"
	p.Y.Min, p.Y.Max = 0, 1

	xys := make(plotter.XYs, len(points))
	xs := make([]float64, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.P, Y: pt.Rate}
		xs[i] = pt.P
	}
	p.X.Min, p.X.Max = floats.Min(xs), floats.Max(xs)

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("render: curve line: %w", err)
	}
	line.Color = color.RGBA{B: 200, A: 255}
	marks.Color = line.Color
	marks.GlyphStyle.Radius = vg.Points(2)

	level := o.threshold
	ref := plotter.NewFunction(func(float64) float64 { return level })
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	ref.Color = color.Gray{Y: 120}

	p.Add(plotter.NewGrid(), ref, line, marks)
	p.Legend.Add("estimate", line, marks)

	if o.hasEstimate {
		mark, err := plotter.NewLine(plotter.XYs{{X: o.estimate, Y: 0}, {X: o.estimate, Y: 1}})
		if err != nil {
			return fmt.Errorf("render: estimate line: %w", err)
		}
		mark.Color = color.RGBA{R: 200, A: 255}
		p.Add(mark)
		p.Legend.Add(fmt.Sprintf("p_c ≈ %.4f", o.estimate), mark)
	}

	if err := p.Save(o.width, o.height, file); err != nil {
		return fmt.Errorf("render: save %s: %w", file, err)
	}
	return nil
}

// PlotLattice saves l as a two-color heat map (occupied sites dark).
func PlotLattice(l *lattice.Lattice, file string, opts ...PlotOption) error {
	o := defaultPlotOptions()
	o.width, o.height = 5*vg.Inch, 5*vg.Inch
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = o.title
	p.HideAxes()

	hm := plotter.NewHeatMap(latticeGrid{rows: l.Rows(), rowZeroAtBottom: o.rowZeroAtBottom}, twoTone{})
	// Fixed range: a uniform lattice would otherwise collapse Min == Max.
	hm.Min, hm.Max = 0, 1
	p.Add(hm)

	if err := p.Save(o.width, o.height, file); err != nil {
		return fmt.Errorf("render: save %s: %w", file, err)
	}
	return nil
}

// latticeGrid adapts lattice rows to plotter.GridXYZ; c is the column and
// r counts image rows from the bottom.
type latticeGrid struct {
	rows            [][]int
	rowZeroAtBottom bool
}

func (g latticeGrid) Dims() (c, r int) { return len(g.rows), len(g.rows) }

func (g latticeGrid) Z(c, r int) float64 {
	row := r
	if !g.rowZeroAtBottom {
		row = len(g.rows) - 1 - r
	}
	return float64(g.rows[row][c])
}

func (g latticeGrid) X(c int) float64 { return float64(c) }
func (g latticeGrid) Y(r int) float64 { return float64(r) }

// twoTone is a palette.Palette of empty then occupied colors.
type twoTone struct{}

func (twoTone) Colors() []color.Color {
	return []color.Color{
		color.RGBA{R: 235, G: 235, B: 235, A: 255},
		color.RGBA{R: 30, G: 60, B: 150, A: 255},
	}
}
