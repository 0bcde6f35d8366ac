package lattice

// frame is one level of the explicit DFS stack: the site being explored and
// the position of the next neighbor offset to try.
type frame struct {
	idx  int
	next int
}

// HasPath reports whether an occupied path connects column 0 to column n-1
// under topology t. See SpanningPath for the traversal rules.
//
// Time:   O(n²·d), d = 4 or 6.
// Memory: O(n²) for the visited mask and stack.
func (l *Lattice) HasPath(t Topology) (bool, error) {
	path, err := l.SpanningPath(t)
	if err != nil {
		return false, err
	}
	return path != nil, nil
}

// SpanningPath returns the first left-to-right path found by depth-first
// search, ordered from its column-0 seed to the site in column n-1, or nil
// when the lattice does not percolate.
//
// Behavior:
//  1. Seeds are the occupied sites of column 0, tried from row 0 to row n-1.
//  2. A single visited mask is shared by all seeds of the call: a site
//     exhausted from one seed cannot reach the goal from another.
//  3. Arriving at column n-1 succeeds before the visited test is applied.
//  4. Neighbors are entered only when in bounds and occupied, in the order
//     of t's offsets (up, down, left, right, then down-right, up-left).
//
// With n == 1 a single occupied site is itself a spanning path.
func (l *Lattice) SpanningPath(t Topology) ([]Cell, error) {
	offsets, err := t.offsets()
	if err != nil {
		return nil, err
	}
	visited := make([]bool, len(l.sites))
	stack := make([]frame, 0, l.n)
	for row := 0; row < l.n; row++ {
		if !l.Occupied(row, 0) {
			continue
		}
		if path := l.walk(l.index(row, 0), offsets, visited, stack[:0]); path != nil {
			return path, nil
		}
	}
	return nil, nil
}

// walk runs the iterative DFS from seed and returns the stack contents as a
// path once column n-1 is reached.
func (l *Lattice) walk(seed int, offsets [][2]int, visited []bool, stack []frame) []Cell {
	if _, col := l.coordinate(seed); col == l.n-1 {
		return l.trace(append(stack, frame{idx: seed}))
	}
	if visited[seed] {
		return nil
	}
	visited[seed] = true
	stack = append(stack, frame{idx: seed})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(offsets) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := offsets[top.next]
		top.next++

		row, col := l.coordinate(top.idx)
		nr, nc := row+d[0], col+d[1]
		if !l.InBounds(nr, nc) || l.sites[l.index(nr, nc)] == 0 {
			continue
		}
		v := l.index(nr, nc)
		if nc == l.n-1 {
			return l.trace(append(stack, frame{idx: v}))
		}
		if visited[v] {
			continue
		}
		visited[v] = true
		stack = append(stack, frame{idx: v})
	}
	return nil
}

// trace converts the DFS stack into cells.
func (l *Lattice) trace(stack []frame) []Cell {
	path := make([]Cell, len(stack))
	for i, f := range stack {
		row, col := l.coordinate(f.idx)
		path[i] = Cell{Row: row, Col: col}
	}
	return path
}
