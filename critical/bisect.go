package critical

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/percolation/lattice"
	"github.com/katalvlaran/percolation/montecarlo"
)

// Bisect searches [Lower, Upper] for the probability where the oracle's
// rate crosses Threshold, halving the interval Depth times.
//
// Behavior:
//  1. Validate options; Depth 0 returns (Lower+Upper)/2 without any oracle call.
//  2. Probe p = (l+u)/2 and read r = oracle(p).
//  3. r < Threshold moves l up to p, otherwise u moves down to p.
//  4. After Depth probes return the midpoint of the final interval.
//
// Every step keeps 0 <= l <= p <= u <= 1. Oracle errors abort the search.
// Complexity: Depth oracle calls.
func Bisect(ctx context.Context, oracle Oracle, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return bisect(ctx, oracle, o)
}

func bisect(ctx context.Context, oracle Oracle, o Options) (Result, error) {
	if oracle == nil {
		return Result{}, ErrNilOracle
	}
	if err := o.Validate(); err != nil {
		return Result{}, err
	}

	l, u := o.Lower, o.Upper
	probes := make([]Probe, 0, o.Depth)
	for step := 0; step < o.Depth; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("critical: step %d: %w", step, err)
		}
		p := (l + u) / 2
		r, err := oracle.Estimate(ctx, p)
		if err != nil {
			return Result{}, fmt.Errorf("critical: step %d at p=%v: %w", step, p, err)
		}

		probe := Probe{Step: step, Lower: l, P: p, Upper: u, Rate: r}
		probes = append(probes, probe)
		klog.V(1).Infof("critical: step=%d l=%.6f p=%.6f u=%.6f r=%.4f", step, l, p, u, r)
		if o.OnProbe != nil {
			o.OnProbe(probe)
		}

		if r < o.Threshold {
			l = p
		} else {
			u = p
		}
	}
	return Result{P: (l + u) / 2, Lower: l, Upper: u, Probes: probes}, nil
}

// FindCritical estimates p_c for n×n lattices of the given topology,
// running trialsPerProbe Monte-Carlo trials at each of depth bisection
// steps. Estimator tuning (seed, workers) goes through WithEstimatorOptions;
// n, topology and trialsPerProbe always take precedence over it.
func FindCritical(ctx context.Context, n int, topology lattice.Topology, trialsPerProbe, depth int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Depth = depth
	if err := o.Validate(); err != nil {
		return Result{}, err
	}

	estOpts := make([]montecarlo.Option, 0, len(o.Estimator)+3)
	estOpts = append(estOpts, o.Estimator...)
	estOpts = append(estOpts,
		montecarlo.WithSize(n),
		montecarlo.WithTopology(topology),
		montecarlo.WithTrials(trialsPerProbe),
	)
	est, err := montecarlo.New(estOpts...)
	if err != nil {
		return Result{}, err
	}
	return bisect(ctx, est, o)
}
