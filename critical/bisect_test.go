package critical_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/critical"
	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/montecarlo"
)

// stepOracle is an exact, noiseless percolation curve jumping at pc.
type stepOracle struct {
	pc    float64
	calls int
}

func (s *stepOracle) Estimate(_ context.Context, p float64) (float64, error) {
	s.calls++
	if p >= s.pc {
		return 1, nil
	}
	return 0, nil
}

// scriptOracle replays fixed rates.
type scriptOracle struct {
	rates []float64
	seen  []float64
}

func (s *scriptOracle) Estimate(_ context.Context, p float64) (float64, error) {
	s.seen = append(s.seen, p)
	r := s.rates[0]
	s.rates = s.rates[1:]
	return r, nil
}

type failingOracle struct{ err error }

func (f failingOracle) Estimate(context.Context, float64) (float64, error) { return 0, f.err }

// TestBisect_DepthZero returns the initial midpoint without consulting the oracle.
func TestBisect_DepthZero(t *testing.T) {
	o := &stepOracle{pc: 0.3}
	res, err := critical.Bisect(context.Background(), o, critical.WithDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.P)
	assert.Zero(t, o.calls)
	assert.Empty(t, res.Probes)

	res, err = critical.Bisect(context.Background(), o, critical.WithDepth(0), critical.WithBounds(0.2, 0.4))
	require.NoError(t, err)
	assert.InDelta(t, 0.3, res.P, 1e-15)
}

// TestBisect_Transitions follows the state machine on scripted rates.
func TestBisect_Transitions(t *testing.T) {
	o := &scriptOracle{rates: []float64{0.2, 0.7, 0.5}}
	res, err := critical.Bisect(context.Background(), o, critical.WithDepth(3))
	require.NoError(t, err)

	want := []critical.Probe{
		{Step: 0, Lower: 0, P: 0.5, Upper: 1, Rate: 0.2},
		{Step: 1, Lower: 0.5, P: 0.75, Upper: 1, Rate: 0.7},
		{Step: 2, Lower: 0.5, P: 0.625, Upper: 0.75, Rate: 0.5},
	}
	if diff := cmp.Diff(want, res.Probes); diff != "" {
		t.Errorf("Probes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{0.5, 0.75, 0.625}, o.seen)
	assert.Equal(t, 0.5625, res.P)
	assert.Equal(t, 0.5, res.Lower)
	assert.Equal(t, 0.625, res.Upper)
}

// TestBisect_Converges on a noiseless step curve within the interval width.
func TestBisect_Converges(t *testing.T) {
	for _, pc := range []float64{0.01, 0.3141, 0.5, 0.5927, 0.99} {
		o := &stepOracle{pc: pc}
		res, err := critical.Bisect(context.Background(), o, critical.WithDepth(20))
		require.NoError(t, err)
		assert.InDelta(t, pc, res.P, math.Ldexp(1, -20), "pc=%v", pc)
		assert.Equal(t, 20, o.calls)
	}
}

// TestBisect_BoundsInvariant checks 0 <= l <= p <= u <= 1 at every probe.
func TestBisect_BoundsInvariant(t *testing.T) {
	var probes []critical.Probe
	o := &stepOracle{pc: 0.42}
	res, err := critical.Bisect(context.Background(), o,
		critical.WithDepth(12),
		critical.WithBounds(0.1, 0.9),
		critical.WithProbeHook(func(p critical.Probe) { probes = append(probes, p) }),
	)
	require.NoError(t, err)
	require.Len(t, probes, 12)
	assert.Equal(t, res.Probes, probes)
	for i, p := range probes {
		assert.Equal(t, i, p.Step)
		assert.True(t, 0 <= p.Lower && p.Lower <= p.P && p.P <= p.Upper && p.Upper <= 1, "probe %+v", p)
		assert.True(t, p.Lower >= 0.1 && p.Upper <= 0.9, "probe %+v", p)
	}
	assert.True(t, res.Lower <= res.P && res.P <= res.Upper)
}

// TestBisect_Threshold moves the crossing level.
func TestBisect_Threshold(t *testing.T) {
	o := &scriptOracle{rates: []float64{0.6}}
	res, err := critical.Bisect(context.Background(), o, critical.WithDepth(1), critical.WithThreshold(0.75))
	require.NoError(t, err)
	assert.Equal(t, 0.75, res.P, "0.6 < 0.75 so the lower bound moves up")
}

// TestBisect_Errors covers validation and oracle failures.
func TestBisect_Errors(t *testing.T) {
	ctx := context.Background()
	o := &stepOracle{pc: 0.5}
	cases := []struct {
		name string
		opts []critical.Option
		err  error
	}{
		{"NegativeDepth", []critical.Option{critical.WithDepth(-1)}, critical.ErrInvalidDepth},
		{"Inverted", []critical.Option{critical.WithBounds(0.7, 0.2)}, critical.ErrInvalidBounds},
		{"BelowZero", []critical.Option{critical.WithBounds(-0.1, 0.5)}, critical.ErrInvalidBounds},
		{"AboveOne", []critical.Option{critical.WithBounds(0.5, 1.1)}, critical.ErrInvalidBounds},
		{"NaN", []critical.Option{critical.WithBounds(math.NaN(), 1)}, critical.ErrInvalidBounds},
		{"ThresholdZero", []critical.Option{critical.WithThreshold(0)}, critical.ErrInvalidThreshold},
		{"ThresholdOne", []critical.Option{critical.WithThreshold(1)}, critical.ErrInvalidThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := critical.Bisect(ctx, o, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
	assert.Zero(t, o.calls, "validation must precede any probe")

	_, err := critical.Bisect(ctx, nil)
	assert.ErrorIs(t, err, critical.ErrNilOracle)

	boom := errors.New("boom")
	_, err = critical.Bisect(ctx, failingOracle{err: boom}, critical.WithDepth(3))
	assert.ErrorIs(t, err, boom)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = critical.Bisect(cancelled, o, critical.WithDepth(3))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestFindCritical_Thresholds checks finite-size estimates against the known
// site-percolation thresholds: ≈0.593 for the square lattice and 0.5 for the
// triangular one.
func TestFindCritical_Thresholds(t *testing.T) {
	ctx := context.Background()
	est := critical.WithEstimatorOptions(montecarlo.WithSeed(7), montecarlo.WithWorkers(4))

	sq, err := critical.FindCritical(ctx, 24, lattice.Square, 300, 8, est)
	require.NoError(t, err)
	assert.InDelta(t, 0.593, sq.P, 0.07)
	assert.Len(t, sq.Probes, 8)

	tri, err := critical.FindCritical(ctx, 24, lattice.Triangular, 300, 8, est)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tri.P, 0.07)
	assert.Less(t, tri.P, sq.P)
}

// TestFindCritical_Errors surfaces the estimator and search sentinels.
func TestFindCritical_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := critical.FindCritical(ctx, 0, lattice.Square, 10, 3)
	assert.ErrorIs(t, err, lattice.ErrInvalidDimension)
	_, err = critical.FindCritical(ctx, 5, lattice.Square, 0, 3)
	assert.ErrorIs(t, err, montecarlo.ErrInvalidTrialCount)
	_, err = critical.FindCritical(ctx, 5, lattice.Square, 10, -2)
	assert.ErrorIs(t, err, critical.ErrInvalidDepth)
	_, err = critical.FindCritical(ctx, 5, lattice.Square, 10, 3, critical.WithBounds(0.9, 0.1))
	assert.ErrorIs(t, err, critical.ErrInvalidBounds)

	res, err := critical.FindCritical(ctx, 5, lattice.Square, 10, 0, critical.WithBounds(0.4, 0.6))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.P, 1e-15)
}
