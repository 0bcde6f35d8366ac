package montecarlo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/lattice"
)

// Sentinel errors for estimator configuration.
var (
	// ErrInvalidTrialCount indicates fewer than one trial was requested.
	ErrInvalidTrialCount = errors.New("montecarlo: trial count must be at least 1")
	// ErrInvalidWorkers indicates fewer than one worker was requested.
	ErrInvalidWorkers = errors.New("montecarlo: worker count must be at least 1")
)

// Defaults used by DefaultOptions.
const (
	DefaultSize   = 20
	DefaultTrials = 100
)

// Option configures an Estimator via functional arguments.
type Option func(*Options)

// Options holds the estimator parameters.
type Options struct {
	// Size is the lattice dimension n.
	Size int
	// Topology selects the neighbor set used by the connectivity test.
	Topology lattice.Topology
	// Trials is the number of independent lattices per estimate (k).
	Trials int
	// Workers bounds the number of goroutines running trials; 1 is sequential.
	Workers int
	// Seed is the root of every trial's random stream; 0 selects defaultSeed.
	Seed uint64
}

// DefaultOptions returns Options with:
//   - Size = DefaultSize, Topology = lattice.Square
//   - Trials = DefaultTrials, Workers = 1
//   - Seed = 0 (fixed default stream)
func DefaultOptions() Options {
	return Options{
		Size:     DefaultSize,
		Topology: lattice.Square,
		Trials:   DefaultTrials,
		Workers:  1,
	}
}

// WithSize sets the lattice dimension n.
func WithSize(n int) Option {
	return func(o *Options) { o.Size = n }
}

// WithTopology sets the neighbor topology.
func WithTopology(t lattice.Topology) Option {
	return func(o *Options) { o.Topology = t }
}

// WithTrials sets the number of trials per estimate.
func WithTrials(k int) Option {
	return func(o *Options) { o.Trials = k }
}

// WithWorkers sets how many trials may run concurrently.
func WithWorkers(w int) Option {
	return func(o *Options) { o.Workers = w }
}

// WithSeed sets the root seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// Validate checks every field and returns the first violation, wrapped
// around the matching sentinel.
func (o Options) Validate() error {
	if o.Size < 1 {
		return fmt.Errorf("%w: got %d", lattice.ErrInvalidDimension, o.Size)
	}
	if !o.Topology.Valid() {
		return fmt.Errorf("%w: %v", lattice.ErrUnknownTopology, o.Topology)
	}
	if o.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrialCount, o.Trials)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	return nil
}
