package lattice

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generate returns a fresh n×n lattice whose sites are independently
// occupied with probability p, drawn from src in row-major order.
// The same (n, p, src state) always yields the same lattice.
//
// Returns ErrInvalidDimension if n < 1, ErrInvalidProbability if p is outside
// [0,1] or NaN, and ErrNilSource if src is nil.
// Complexity: O(n²) time and memory.
func Generate(n int, p float64, src rand.Source) (*Lattice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	if err := ValidateProbability(p); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}

	site := distuv.Bernoulli{P: p, Src: src}
	l := &Lattice{n: n, sites: make([]uint8, n*n)}
	for i := range l.sites {
		if site.Rand() == 1 {
			l.sites[i] = 1
		}
	}
	return l, nil
}

// ValidateProbability returns ErrInvalidProbability unless 0 <= p <= 1.
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}
