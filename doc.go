// Package percolation is a small engine for site percolation on n×n
// lattices: generate random lattices, test whether an occupied cluster spans
// the first column to the last, estimate the spanning probability by
// Monte-Carlo and search for the critical occupation probability p_c.
//
// What is inside?
//
//	• Lattices: row-major occupancy grids, random generation at probability p
//	• Connectivity: 4-neighbor (square) and 6-neighbor (triangular) spanning search
//	• Clusters: connected-component labelling and largest cluster size
//	• Monte-Carlo: reproducible, seedable estimates with concurrent trials
//	• Critical value: bisection on the estimated curve, plus grid sweeps
//	• Rendering: terminal lattices (lipgloss) and PNG/SVG plots (gonum/plot)
//
// Subpackages:
//
//	lattice/        Lattice, Topology, Generate, HasPath, SpanningPath, Clusters
//	montecarlo/     Estimator with per-trial deterministic random streams
//	critical/       Bisect, FindCritical, Sweep, Crossing
//	config/         JSON run configuration
//	render/         Text, PlotCurve, PlotLattice
//	cmd/percolate/  command-line driver for all of the above
//
// Quick example:
//
//	res, err := critical.FindCritical(ctx, 50, lattice.Square, 400, 12)
//	// res.P ≈ 0.59 for the square lattice, ≈ 0.5 for the triangular one.
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
package percolation
