package lattice_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/lattice"
)

// TestGenerate_Errors checks fail-fast validation of n, p and the source.
func TestGenerate_Errors(t *testing.T) {
	src := rand.NewPCG(1, 2)
	_, err := lattice.Generate(0, 0.5, src)
	assert.ErrorIs(t, err, lattice.ErrInvalidDimension)
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err = lattice.Generate(3, p, src)
		assert.ErrorIs(t, err, lattice.ErrInvalidProbability, "p=%v", p)
	}
	_, err = lattice.Generate(3, 0.5, nil)
	assert.ErrorIs(t, err, lattice.ErrNilSource)
}

// TestGenerate_Extremes: p=0 yields an empty lattice, p=1 a full one.
func TestGenerate_Extremes(t *testing.T) {
	src := rand.NewPCG(3, 4)
	empty, err := lattice.Generate(7, 0, src)
	require.NoError(t, err)
	assert.Zero(t, empty.OccupiedCount())

	full, err := lattice.Generate(7, 1, src)
	require.NoError(t, err)
	assert.Equal(t, 49, full.OccupiedCount())
}

// TestGenerate_Deterministic: equal source state yields equal lattices.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := lattice.Generate(16, 0.4, rand.NewPCG(11, 13))
	require.NoError(t, err)
	b, err := lattice.Generate(16, 0.4, rand.NewPCG(11, 13))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	c, err := lattice.Generate(16, 0.4, rand.NewPCG(12, 13))
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

// TestGenerate_Density: the occupied fraction of a large lattice tracks p.
func TestGenerate_Density(t *testing.T) {
	src := rand.NewPCG(5, 8)
	for _, p := range []float64{0.1, 0.3, 0.5, 0.9} {
		l, err := lattice.Generate(300, p, src)
		require.NoError(t, err)
		assert.InDelta(t, p, l.Density(), 0.01, "p=%v", p)
	}
}

// TestValidateProbability accepts the closed unit interval.
func TestValidateProbability(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1} {
		assert.NoError(t, lattice.ValidateProbability(p))
	}
	assert.ErrorIs(t, lattice.ValidateProbability(-1), lattice.ErrInvalidProbability)
}
