// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: deep copies of a Board, whole (Clone) or restricted to a vertex subset (Subset).
// Determinism:
//   - Subset indexes the copied vertices in the order of ids.

package core

import "fmt"

// Clone returns a deep copy of the Board: vertices, topology, edges,
// clusters and logger. Mutating the clone never touches the source.
//
// Complexity: O(V + E)
func (b *Board) Clone() *Board {
	clone := &Board{
		vertices:  make([]*Vertex, len(b.vertices)),
		index:     make(map[Point]int, len(b.index)),
		neighbors: append([][NumDirections]int(nil), b.neighbors...),
		edges:     append([]Edge(nil), b.edges...),
		clusters:  b.clusters.clone(),
		complete:  b.complete,
		logger:    b.logger,
	}
	for i, v := range b.vertices {
		cp := *v
		clone.vertices[i] = &cp
	}
	for p, i := range b.index {
		clone.index[p] = i
	}

	return clone
}

// Subset returns a deep copy restricted to the vertices ids.
//
// Steps:
//  1. Copy each selected vertex with its slot state.
//  2. Keep a neighbor only if it is selected; otherwise the bucket loses its
//     neighbor and its open slots close. Established slots stay established.
//  3. Keep edges whose both endpoints are selected.
//  4. Rebuild clusters from the kept edges.
//
// Returns ErrVertexIndex for an index out of range and ErrMalformedInput for
// a repeated index.
//
// Complexity: O(V + E)
func (b *Board) Subset(ids []int) (*Board, error) {
	remap := make(map[int]int, len(ids))
	for n, i := range ids {
		if err := b.checkIndex(i); err != nil {
			return nil, err
		}
		if _, dup := remap[i]; dup {
			return nil, fmt.Errorf("%w: vertex %d selected twice", ErrMalformedInput, i)
		}
		remap[i] = n
	}

	sub := &Board{
		vertices:  make([]*Vertex, len(ids)),
		index:     make(map[Point]int, len(ids)),
		neighbors: make([][NumDirections]int, len(ids)),
		clusters:  newDisjointSet(len(ids)),
		logger:    b.logger,
	}
	// 1) + 2) vertices and restricted adjacency
	for n, i := range ids {
		cp := *b.vertices[i]
		sub.vertices[n] = &cp
		sub.index[cp.Point()] = n
		for _, d := range Directions {
			k, kept := remap[b.neighbors[i][d]]
			if b.neighbors[i][d] == noNeighbor || !kept {
				sub.neighbors[n][d] = noNeighbor
				cp.closeOpen(d, Multiplicity)
				continue
			}
			sub.neighbors[n][d] = k
		}
	}
	// 3) + 4) contained edges and clusters
	for _, e := range b.edges {
		a, okA := sub.index[Point{X: e.X1, Y: e.Y1}]
		c, okC := sub.index[Point{X: e.X2, Y: e.Y2}]
		if !okA || !okC {
			continue
		}
		sub.edges = append(sub.edges, e)
		sub.clusters.union(a, c)
	}
	sub.updateComplete()

	return sub, nil
}
