package critical

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// maxDecimals caps DecimalGrid at a million points.
const maxDecimals = 6

// Grid returns the given number of evenly spaced probabilities from lo to
// hi inclusive.
// Returns ErrInvalidBounds for bad bounds and ErrInvalidGrid for points < 2.
func Grid(lo, hi float64, points int) ([]float64, error) {
	if err := ValidateBounds(lo, hi); err != nil {
		return nil, err
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGrid, points)
	}
	return floats.Span(make([]float64, points), lo, hi), nil
}

// DecimalGrid returns i/10^decimals for i = 0 .. 10^decimals-1, the scan
// resolution of a curve plotted to the given number of decimal places.
func DecimalGrid(decimals int) ([]float64, error) {
	if decimals < 0 || decimals > maxDecimals {
		return nil, fmt.Errorf("%w: decimals must lie in [0,%d], got %d", ErrInvalidGrid, maxDecimals, decimals)
	}
	m := int(math.Pow10(decimals))
	grid := make([]float64, m)
	for i := range grid {
		grid[i] = float64(i) / float64(m)
	}
	return grid, nil
}

// Sweep evaluates the oracle at every probability of grid, in order, and
// calls hook (if non-nil) after each point.
// Complexity: len(grid) oracle calls.
func Sweep(ctx context.Context, oracle Oracle, grid []float64, hook func(Point)) ([]Point, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	points := make([]Point, 0, len(grid))
	for _, p := range grid {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("critical: sweep at p=%v: %w", p, err)
		}
		r, err := oracle.Estimate(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("critical: sweep at p=%v: %w", p, err)
		}
		pt := Point{P: p, Rate: r}
		points = append(points, pt)
		klog.V(1).Infof("critical: sweep p=%.6f r=%.4f", p, r)
		if hook != nil {
			hook(pt)
		}
	}
	return points, nil
}

// Crossing linearly interpolates the first probability at which the sampled
// curve reaches level. ok is false when no consecutive pair of points
// brackets level.
func Crossing(points []Point, level float64) (p float64, ok bool) {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if a.Rate < level && b.Rate >= level {
			return a.P + (level-a.Rate)*(b.P-a.P)/(b.Rate-a.Rate), true
		}
	}
	if len(points) > 0 && points[0].Rate >= level {
		return points[0].P, true
	}
	return 0, false
}
