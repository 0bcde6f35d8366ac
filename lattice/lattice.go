package lattice

import (
	"fmt"
	"strings"
)

// New returns an n×n lattice with every site empty.
// Returns ErrInvalidDimension if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Lattice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	return &Lattice{n: n, sites: make([]uint8, n*n)}, nil
}

// From2D builds a lattice from a square 2D slice of 0/1 values.
// It deep-copies the input so later changes to values are not observed.
// Returns ErrInvalidDimension for empty input, ErrNonSquare for ragged or
// rectangular input and ErrInvalidCell for values other than 0 and 1.
// Complexity: O(n²) time and memory.
func From2D(values [][]int) (*Lattice, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: got 0 rows", ErrInvalidDimension)
	}
	n := len(values)
	for row, line := range values {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d sites, want %d", ErrNonSquare, row, len(line), n)
		}
	}
	l := &Lattice{n: n, sites: make([]uint8, n*n)}
	for row, line := range values {
		for col, v := range line {
			switch v {
			case 0:
			case 1:
				l.sites[l.index(row, col)] = 1
			default:
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrInvalidCell, row, col, v)
			}
		}
	}
	return l, nil
}

// Size returns n, the number of rows (and columns).
func (l *Lattice) Size() int {
	return l.n
}

// InBounds reports whether (row, col) lies inside the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.n && col >= 0 && col < l.n
}

// Occupied reports whether the site at (row, col) is occupied.
// Out-of-bounds sites are reported as empty.
func (l *Lattice) Occupied(row, col int) bool {
	if !l.InBounds(row, col) {
		return false
	}
	return l.sites[l.index(row, col)] == 1
}

// OccupiedCount returns the number of occupied sites.
func (l *Lattice) OccupiedCount() int {
	count := 0
	for _, s := range l.sites {
		count += int(s)
	}
	return count
}

// Density returns the fraction of occupied sites.
func (l *Lattice) Density() float64 {
	return float64(l.OccupiedCount()) / float64(len(l.sites))
}

// Rows returns a fresh [][]int copy of the sites, row 0 first.
// This is the read-only snapshot handed to presentation code.
func (l *Lattice) Rows() [][]int {
	rows := make([][]int, l.n)
	for row := range rows {
		rows[row] = make([]int, l.n)
		for col := range rows[row] {
			rows[row][col] = int(l.sites[l.index(row, col)])
		}
	}
	return rows
}

// Clone returns an independent copy of l.
func (l *Lattice) Clone() *Lattice {
	sites := make([]uint8, len(l.sites))
	copy(sites, l.sites)
	return &Lattice{n: l.n, sites: sites}
}

// String renders the lattice as rows of '1' and '0', row 0 first.
func (l *Lattice) String() string {
	var sb strings.Builder
	sb.Grow(l.n * (l.n + 1))
	for row := 0; row < l.n; row++ {
		for col := 0; col < l.n; col++ {
			sb.WriteByte('0' + l.sites[l.index(row, col)])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// index maps (row, col) to the row-major position row*n + col.
func (l *Lattice) index(row, col int) int {
	return row*l.n + col
}

// coordinate converts a row-major index back to (row, col).
func (l *Lattice) coordinate(idx int) (row, col int) {
	return idx / l.n, idx % l.n
}
