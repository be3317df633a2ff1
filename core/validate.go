package core

import "fmt"

// Validate re-derives the Board invariants from scratch and returns
// ErrInternalInconsistency describing the first violation found.
//
// Checked:
//   - every vertex: established <= N, no open slot once complete;
//   - a bucket without neighbor has no open slot;
//   - both sides of a neighbor pair agree on the bridge count, which
//     matches the placed edges and never exceeds Multiplicity;
//   - no two placed edges cross;
//   - the cluster partition equals the components reachable over edges;
//   - the Complete flag.
//
// Complexity: O(V + E²) for the crossing check.
func (b *Board) Validate() error {
	groups := b.EdgeGroups()
	for key, es := range groups {
		if len(es) > Multiplicity {
			return fmt.Errorf("%w: %d bridges between (%d,%d) and (%d,%d)",
				ErrInternalInconsistency, len(es), key.X1, key.Y1, key.X2, key.Y2)
		}
	}

	for i, v := range b.vertices {
		if v.EstablishedCount() > v.N {
			return fmt.Errorf("%w: %s exceeds its degree", ErrInternalInconsistency, v)
		}
		if v.Complete() && v.OpenCount() > 0 {
			return fmt.Errorf("%w: %s is complete with open slots", ErrInternalInconsistency, v)
		}
		for _, d := range Directions {
			k := b.neighbors[i][d]
			if k == noNeighbor {
				if v.Open(d) > 0 {
					return fmt.Errorf("%w: %s has open slots %s toward no neighbor", ErrInternalInconsistency, v, d)
				}
				continue
			}
			if d != Up && d != Right {
				continue
			}
			w := b.vertices[k]
			placed := len(groups[b.segment(i, k).Key()])
			if v.Established(d) != placed || w.Established(d.Opposite()) != placed {
				return fmt.Errorf("%w: %s and %s disagree with %d placed edges",
					ErrInternalInconsistency, v, w, placed)
			}
		}
	}

	for a := 0; a < len(b.edges); a++ {
		for c := a + 1; c < len(b.edges); c++ {
			if b.edges[a].Crosses(b.edges[c]) {
				return fmt.Errorf("%w: %s crosses %s", ErrInternalInconsistency, b.edges[a], b.edges[c])
			}
		}
	}

	if err := b.validateClusters(); err != nil {
		return err
	}

	complete := true
	for _, v := range b.vertices {
		complete = complete && v.Complete()
	}
	if complete != b.complete {
		return fmt.Errorf("%w: complete flag is %t, vertices say %t", ErrInternalInconsistency, b.complete, complete)
	}

	return nil
}

// validateClusters compares the union-find partition against a BFS over
// the placed edges.
func (b *Board) validateClusters() error {
	adj := make([][]int, len(b.vertices))
	for _, e := range b.edges {
		a, okA := b.index[Point{X: e.X1, Y: e.Y1}]
		c, okC := b.index[Point{X: e.X2, Y: e.Y2}]
		if !okA || !okC {
			return fmt.Errorf("%w: %s has an endpoint without vertex", ErrInternalInconsistency, e)
		}
		adj[a] = append(adj[a], c)
		adj[c] = append(adj[c], a)
	}

	seen := make([]bool, len(b.vertices))
	components := 0
	for start := range b.vertices {
		if seen[start] {
			continue
		}
		components++
		root := b.clusters.find(start)
		// BFS to collect component
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			if b.clusters.find(u) != root {
				return fmt.Errorf("%w: vertices %d and %d are joined but in different clusters",
					ErrInternalInconsistency, start, u)
			}
			for _, w := range adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
	}
	if components != b.ClusterCount() {
		return fmt.Errorf("%w: %d clusters for %d connected components",
			ErrInternalInconsistency, b.ClusterCount(), components)
	}

	return nil
}

// Verify reports whether the Board is a valid full solution: the invariants
// hold, every vertex is complete and all vertices form a single cluster.
// It returns ErrUnsolved otherwise, or the Validate error.
func (b *Board) Verify() error {
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.complete {
		return fmt.Errorf("%w: incomplete vertices remain", ErrUnsolved)
	}
	if n := b.ClusterCount(); n > 1 {
		return fmt.Errorf("%w: %d disjoint clusters", ErrUnsolved, n)
	}

	return nil
}
