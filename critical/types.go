package critical

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/percolation/montecarlo"
)

// Sentinel errors for the search and sweep.
var (
	// ErrInvalidBounds indicates lower > upper or a bound outside [0,1].
	ErrInvalidBounds = errors.New("critical: bounds must satisfy 0 <= lower <= upper <= 1")
	// ErrInvalidDepth indicates a negative search depth.
	ErrInvalidDepth = errors.New("critical: search depth must be non-negative")
	// ErrInvalidThreshold indicates a crossing threshold outside (0,1).
	ErrInvalidThreshold = errors.New("critical: threshold must lie in (0,1)")
	// ErrNilOracle indicates Bisect or Sweep was called without an oracle.
	ErrNilOracle = errors.New("critical: oracle is nil")
	// ErrInvalidGrid indicates a sweep grid that cannot be built.
	ErrInvalidGrid = errors.New("critical: invalid sweep grid")
)

// Defaults used by DefaultOptions.
const (
	DefaultDepth     = 10
	DefaultThreshold = 0.5
)

// Oracle estimates the percolation probability at occupation probability p.
// *montecarlo.Estimator implements it.
type Oracle interface {
	Estimate(ctx context.Context, p float64) (float64, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, p float64) (float64, error)

// Estimate calls f(ctx, p).
func (f OracleFunc) Estimate(ctx context.Context, p float64) (float64, error) {
	return f(ctx, p)
}

// Probe records one bisection step: the bounds before the step, the probed
// probability and the oracle's answer.
type Probe struct {
	Step            int
	Lower, P, Upper float64
	Rate            float64
}

// Result is the outcome of Bisect.
type Result struct {
	// P is the final probe, the point estimate of p_c.
	P float64
	// Lower and Upper bound the final interval; Lower <= P <= Upper.
	Lower, Upper float64
	// Probes lists every oracle call in order.
	Probes []Probe
}

// Point is one sample of the percolation curve.
type Point struct {
	P, Rate float64
}

// Option configures Bisect via functional arguments.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Depth is the number of bisection steps (oracle calls).
	Depth int
	// Lower and Upper are the initial bounds.
	Lower, Upper float64
	// Threshold is the crossing level; rates below it move the lower bound up.
	Threshold float64
	// OnProbe, if set, is called after every oracle call.
	OnProbe func(Probe)
	// Estimator options used by FindCritical.
	Estimator []montecarlo.Option
}

// DefaultOptions returns Options with Depth = DefaultDepth, bounds [0,1] and
// Threshold = DefaultThreshold.
func DefaultOptions() Options {
	return Options{
		Depth:     DefaultDepth,
		Lower:     0,
		Upper:     1,
		Threshold: DefaultThreshold,
	}
}

// WithDepth sets the number of bisection steps.
func WithDepth(depth int) Option {
	return func(o *Options) { o.Depth = depth }
}

// WithBounds sets the initial search interval.
func WithBounds(lower, upper float64) Option {
	return func(o *Options) { o.Lower, o.Upper = lower, upper }
}

// WithThreshold sets the crossing level.
func WithThreshold(level float64) Option {
	return func(o *Options) { o.Threshold = level }
}

// WithProbeHook installs a per-probe callback, e.g. for live plotting.
func WithProbeHook(fn func(Probe)) Option {
	return func(o *Options) { o.OnProbe = fn }
}

// WithEstimatorOptions forwards options to the estimator FindCritical builds.
func WithEstimatorOptions(opts ...montecarlo.Option) Option {
	return func(o *Options) { o.Estimator = append(o.Estimator, opts...) }
}

// Validate checks the search parameters.
func (o Options) Validate() error {
	if o.Depth < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepth, o.Depth)
	}
	if err := ValidateBounds(o.Lower, o.Upper); err != nil {
		return err
	}
	if math.IsNaN(o.Threshold) || o.Threshold <= 0 || o.Threshold >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.Threshold)
	}
	return nil
}

// ValidateBounds returns ErrInvalidBounds unless 0 <= lower <= upper <= 1.
func ValidateBounds(lower, upper float64) error {
	if math.IsNaN(lower) || math.IsNaN(upper) || lower < 0 || upper > 1 || lower > upper {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidBounds, lower, upper)
	}
	return nil
}
