package montecarlo

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/percolation/lattice"
)

// Estimator runs Monte-Carlo percolation trials with fixed options.
// It is safe for concurrent use; concurrent Estimate calls receive distinct
// call numbers and therefore distinct random streams.
type Estimator struct {
	opts Options

	mu    sync.Mutex
	calls uint64
	last  *lattice.Lattice
}

// New builds an Estimator from DefaultOptions modified by opts.
// Returns the first option violation (see Options.Validate).
func New(opts ...Option) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{opts: o}, nil
}

// Options returns the effective options.
func (e *Estimator) Options() Options {
	return e.opts
}

// Estimate runs Trials independent trials at occupation probability p and
// returns the fraction whose lattice percolates, a value in [0,1].
//
// Returns lattice.ErrInvalidProbability before any trial runs if p is
// outside [0,1], or the context error if ctx is cancelled mid-run.
// Complexity: O(k·n²·d) time, O(w·n²) memory for w concurrent workers.
func (e *Estimator) Estimate(ctx context.Context, p float64) (float64, error) {
	if err := lattice.ValidateProbability(p); err != nil {
		return 0, err
	}

	e.mu.Lock()
	call := e.calls
	e.calls++
	e.mu.Unlock()
	callSeed := deriveSeed(rootSeed(e.opts.Seed), call)

	var (
		successes int
		last      *lattice.Lattice
		err       error
	)
	if e.opts.Workers == 1 {
		successes, last, err = e.runSequential(ctx, p, callSeed)
	} else {
		successes, last, err = e.runParallel(ctx, p, callSeed)
	}
	if err != nil {
		return 0, fmt.Errorf("montecarlo: estimate at p=%v: %w", p, err)
	}

	e.mu.Lock()
	e.last = last
	e.mu.Unlock()

	rate := float64(successes) / float64(e.opts.Trials)
	klog.V(2).Infof("montecarlo: n=%d topology=%s p=%.6f trials=%d successes=%d rate=%.4f",
		e.opts.Size, e.opts.Topology, p, e.opts.Trials, successes, rate)
	return rate, nil
}

// Snapshot returns the lattice generated by the final trial of the most
// recent Estimate call, or nil if Estimate has not completed yet.
// Lattices are immutable, so the result may be kept and read freely.
func (e *Estimator) Snapshot() *lattice.Lattice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

func (e *Estimator) runSequential(ctx context.Context, p float64, callSeed uint64) (int, *lattice.Lattice, error) {
	successes := 0
	var last *lattice.Lattice
	for t := 0; t < e.opts.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		ok, l, err := e.trial(p, callSeed, t)
		if err != nil {
			return 0, nil, err
		}
		if ok {
			successes++
		}
		last = l
	}
	return successes, last, nil
}

func (e *Estimator) runParallel(ctx context.Context, p float64, callSeed uint64) (int, *lattice.Lattice, error) {
	var (
		successes atomic.Int64
		last      *lattice.Lattice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for t := 0; t < e.opts.Trials; t++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, l, err := e.trial(p, callSeed, t)
			if err != nil {
				return err
			}
			if ok {
				successes.Add(1)
			}
			if t == e.opts.Trials-1 {
				last = l
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return int(successes.Load()), last, nil
}

// trial generates one fresh lattice from its own stream and tests it.
func (e *Estimator) trial(p float64, callSeed uint64, t int) (bool, *lattice.Lattice, error) {
	l, err := lattice.Generate(e.opts.Size, p, trialSource(callSeed, t))
	if err != nil {
		return false, nil, err
	}
	ok, err := l.HasPath(e.opts.Topology)
	if err != nil {
		return false, nil, err
	}
	klog.V(4).Infof("montecarlo: trial %d p=%.6f occupied=%d percolates=%t", t, p, l.OccupiedCount(), ok)
	return ok, l, nil
}

// Estimate is a convenience wrapper building a one-off Estimator.
func Estimate(ctx context.Context, p float64, opts ...Option) (float64, error) {
	e, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return e.Estimate(ctx, p)
}
