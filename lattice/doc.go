// Package lattice models an n×n site-percolation lattice and answers whether
// an occupied path spans it from the left edge (column 0) to the right edge
// (column n-1).
//
// What:
//
//   - Lattice is an immutable square grid of occupied (1) / empty (0) sites.
//   - Generate fills a fresh lattice with independent Bernoulli(p) sites.
//   - HasPath / SpanningPath run a depth-first search seeded from every
//     occupied site of column 0, sharing one visited mask per call.
//   - Clusters groups occupied sites into connected clusters.
//
// Topologies:
//
//   - Square:     up, down, left, right.
//   - Triangular: Square plus down-right and up-left, which models a
//     triangular lattice drawn on a square grid.
//
// Complexity:
//
//   - HasPath:  O(n²·d) time, O(n²) memory (d = 4 or 6).
//   - Generate: O(n²) time and memory.
//   - Clusters: O(n²·d) time, O(n²) memory.
//
// Errors:
//
//   - ErrInvalidDimension: size below 1 or empty input.
//   - ErrNonSquare: ragged or non-square input rows.
//   - ErrInvalidCell: a site value other than 0 or 1.
//   - ErrInvalidProbability: p outside [0,1].
//   - ErrNilSource: Generate called without a random source.
//   - ErrUnknownTopology: topology is neither Square nor Triangular.
package lattice
