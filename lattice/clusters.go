package lattice

// Clusters finds all connected clusters of occupied sites under topology t.
// Each cluster lists its cells in BFS order from its first site in
// row-major order; clusters are ordered by that first site.
//
// Time:   O(n²·d), d = 4 or 6.
// Memory: O(n²) for visited flags and output.
func (l *Lattice) Clusters(t Topology) ([][]Cell, error) {
	offsets, err := t.offsets()
	if err != nil {
		return nil, err
	}
	seen := make([]bool, len(l.sites))
	var clusters [][]Cell

	for i0, s := range l.sites {
		if s == 0 || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var cluster []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := l.coordinate(u)
			cluster = append(cluster, Cell{Row: ur, Col: uc})
			for _, d := range offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !l.InBounds(vr, vc) {
					continue
				}
				vi := l.index(vr, vc)
				if l.sites[vi] == 0 || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters, nil
}

// LargestCluster returns the size of the biggest cluster under t, or 0 for
// a lattice with no occupied sites.
func (l *Lattice) LargestCluster(t Topology) (int, error) {
	clusters, err := l.Clusters(t)
	if err != nil {
		return 0, err
	}
	largest := 0
	for _, c := range clusters {
		largest = max(largest, len(c))
	}
	return largest, nil
}
