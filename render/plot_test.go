package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/critical"
	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/render"
)

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlotCurve(t *testing.T) {
	points := []critical.Point{
		{P: 0, Rate: 0}, {P: 0.25, Rate: 0}, {P: 0.5, Rate: 0.2},
		{P: 0.6, Rate: 0.6}, {P: 0.75, Rate: 0.95}, {P: 1, Rate: 1},
	}
	dir := t.TempDir()

	png := filepath.Join(dir, "curve.png")
	require.NoError(t, render.PlotCurve(points, png,
		render.WithTitle("square, n=20"),
		render.WithEstimate(0.58),
	))
	assertNonEmptyFile(t, png)

	svg := filepath.Join(dir, "curve.svg")
	require.NoError(t, render.PlotCurve(points, svg, render.WithThreshold(0.75)))
	assertNonEmptyFile(t, svg)
}

func TestPlotCurve_Errors(t *testing.T) {
	assert.ErrorIs(t, render.PlotCurve(nil, filepath.Join(t.TempDir(), "x.png")), render.ErrNoPoints)

	err := render.PlotCurve([]critical.Point{{P: 0.5, Rate: 0.5}, {P: 0.6, Rate: 1}},
		filepath.Join(t.TempDir(), "curve.unknown"))
	assert.Error(t, err)
}

func TestPlotLattice(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "lattice.png")
	require.NoError(t, render.PlotLattice(sample(t), png, render.WithTitle("sample")))
	assertNonEmptyFile(t, png)

	empty, err := lattice.New(4)
	require.NoError(t, err)
	flipped := filepath.Join(dir, "empty.png")
	require.NoError(t, render.PlotLattice(empty, flipped, render.WithRowZeroAtBottom()))
	assertNonEmptyFile(t, flipped)
}
