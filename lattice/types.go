package lattice

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for lattice operations.
var (
	// ErrInvalidDimension indicates a lattice size below 1.
	ErrInvalidDimension = errors.New("lattice: size must be at least 1")
	// ErrNonSquare indicates rows of differing lengths or a row count different from the row length.
	ErrNonSquare = errors.New("lattice: input must be a square n×n grid")
	// ErrInvalidCell indicates a site value other than 0 (empty) or 1 (occupied).
	ErrInvalidCell = errors.New("lattice: site values must be 0 or 1")
	// ErrInvalidProbability indicates an occupation probability outside [0,1].
	ErrInvalidProbability = errors.New("lattice: occupation probability must lie in [0,1]")
	// ErrNilSource indicates Generate was called without a random source.
	ErrNilSource = errors.New("lattice: random source is nil")
	// ErrUnknownTopology indicates a Topology value outside the known set.
	ErrUnknownTopology = errors.New("lattice: unknown topology")
)

// Topology selects which offsets count as neighbors during traversal.
type Topology int

const (
	// Square uses 4-neighbor adjacency: up, down, left, right.
	Square Topology = iota
	// Triangular adds the down-right and up-left diagonals to Square.
	Triangular
)

// Offsets are (drow, dcol) pairs. The order is part of the contract:
// SpanningPath explores neighbors in exactly this order.
var (
	squareOffsets     = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	triangularOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {1, 1}, {-1, -1}}
)

// Valid reports whether t is a known topology.
func (t Topology) Valid() bool {
	return t == Square || t == Triangular
}

// Offsets returns a copy of the (drow, dcol) neighbor offsets for t.
func (t Topology) Offsets() ([][2]int, error) {
	offsets, err := t.offsets()
	if err != nil {
		return nil, err
	}
	return append([][2]int(nil), offsets...), nil
}

// offsets returns the shared offset table; callers must not mutate it.
func (t Topology) offsets() ([][2]int, error) {
	switch t {
	case Square:
		return squareOffsets, nil
	case Triangular:
		return triangularOffsets, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
	}
}

// String implements fmt.Stringer.
func (t Topology) String() string {
	switch t {
	case Square:
		return "square"
	case Triangular:
		return "triangular"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// ParseTopology maps a user-supplied name to a Topology.
// Accepted (case-insensitive): "square", "conn4", "triangular", "tri".
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square", "conn4":
		return Square, nil
	case "triangular", "tri":
		return Triangular, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}

// Cell is a lattice site addressed by row and column.
type Cell struct {
	Row, Col int
}

// Lattice is an n×n grid of sites, each empty (0) or occupied (1).
// It is immutable once built; Generate and From2D are the only writers.
// Sites are stored row-major: sites[row*n + col].
type Lattice struct {
	n     int
	sites []uint8
}
