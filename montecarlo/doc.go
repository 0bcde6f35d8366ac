// Package montecarlo estimates the percolation probability of an n×n
// lattice at a fixed occupation probability p by repeated independent trials.
//
// What:
//
//   - Each trial generates a fresh lattice (lattice.Generate) and tests it
//     with lattice.HasPath; the estimate is successes / trials.
//   - Trials never share a lattice or a visited mask.
//   - With WithWorkers(w > 1) trials run on an errgroup limited to w
//     goroutines. Every trial draws from its own PCG stream derived from the
//     seed, the call number and the trial index, so the estimate does not
//     depend on the worker count or on scheduling.
//
// Determinism:
//
//	Two Estimators built with the same options return the same sequence of
//	estimates for the same sequence of p values. Seed 0 selects a fixed
//	default seed.
//
// Errors:
//
//   - ErrInvalidTrialCount: trials < 1.
//   - ErrInvalidWorkers: workers < 1.
//   - lattice.ErrInvalidDimension, lattice.ErrUnknownTopology: bad options.
//   - lattice.ErrInvalidProbability: p outside [0,1] passed to Estimate.
package montecarlo
