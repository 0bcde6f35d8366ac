// Package render presents engine output: lattices as terminal text
// (lipgloss) or heat-map images, and sampled percolation curves as line
// plots (gonum/plot).
//
// Row 0 of a lattice is drawn at the top by default; WithFlip (text) and
// WithRowZeroAtBottom (images) reverse that.
package render
