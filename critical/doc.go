// Package critical locates the critical occupation probability p_c, the
// point where the percolation probability of a lattice crosses one half.
//
// Bisect performs an interval-halving search driven by a noisy Oracle
// (normally a *montecarlo.Estimator):
//
//	state (l, u, step), start (lower, upper, 0)
//	p = (l+u)/2; r = oracle(p)
//	r < threshold  → (p, u, step+1)
//	r ≥ threshold  → (l, p, step+1)
//	step == depth  → return p
//
// Termination is by step count only, so the returned probe is precise to
// (upper-lower)/2^(depth+1) around the final interval, no better than the
// oracle's own noise allows. Larger trial counts reduce that noise; larger
// depths reduce the interval.
//
// Sweep evaluates the oracle over a fixed grid of probabilities, giving
// the whole percolation curve rather than a single crossing.
package critical
