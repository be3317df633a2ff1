// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: the mutating Board API: AddEdge, CloseSlot, CloseSlots.
// Determinism:
//   - The crossing pass walks vertices in index order, Up before Right.
// Concurrency:
//   - None. AddEdge is a multi-step mutation and must not race with anything.

package core

import (
	"errors"
	"fmt"
)

// AddEdge places one bridge between vertices i and j and propagates its
// immediate consequences.
//
// Steps:
//  1. Not a potential connection => ErrInvalidConnection.
//  2. Append the Edge and establish one slot on each side. A side left with
//     no open slot toward the other closes the other's remaining open slots.
//  3. Merge the two clusters.
//  4. Close every other pair whose segment crosses the new edge.
//  5. For each endpoint now complete, close its neighbors' slots toward it.
//  6. Recompute Complete().
//
// There is no rollback; work on a Clone for speculative moves.
//
// Complexity: O(V + E) for the crossing pass.
func (b *Board) AddEdge(i, j int) (Edge, error) {
	// 1) Potential connection
	if b.checkIndex(i) != nil || b.checkIndex(j) != nil {
		return Edge{}, fmt.Errorf("%w: %d-%d: %w", ErrInvalidConnection, i, j, ErrVertexIndex)
	}
	d, ok := b.openBetween(i, j)
	if !ok || b.blocked(i, j) {
		return Edge{}, fmt.Errorf("%w: %v and %v", ErrInvalidConnection, b.vertices[i].Point(), b.vertices[j].Point())
	}

	// 2) Edge and slots
	vi, vj := b.vertices[i], b.vertices[j]
	e := b.segment(i, j)
	b.edges = append(b.edges, e)
	if err := vi.establish(d); err != nil {
		return e, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
	if err := vj.establish(d.Opposite()); err != nil {
		return e, fmt.Errorf("%w: %w", ErrInternalInconsistency, err)
	}
	if vi.Open(d) == 0 {
		vj.closeOpen(d.Opposite(), Multiplicity)
	}
	if vj.Open(d.Opposite()) == 0 {
		vi.closeOpen(d, Multiplicity)
	}

	// 3) Clusters
	b.clusters.union(i, j)

	// 4) Crossing pass
	for a := range b.vertices {
		for _, dd := range [...]Direction{Up, Right} {
			c := b.neighbors[a][dd]
			if c == noNeighbor || a == i || a == j || c == i || c == j {
				continue
			}
			if _, open := b.openBetween(a, c); !open {
				continue
			}
			if b.segment(a, c).Crosses(e) {
				b.closePair(a, c, dd)
			}
		}
	}

	// 5) Completion cascade
	for _, end := range [...]int{i, j} {
		if !b.vertices[end].Complete() {
			continue
		}
		for _, dd := range Directions {
			if k := b.neighbors[end][dd]; k != noNeighbor {
				b.vertices[k].closeOpen(dd.Opposite(), Multiplicity)
			}
		}
	}

	// 6) Board flag
	b.updateComplete()
	b.logger.Debug("edge added", "edge", e.String(), "edges", len(b.edges), "complete", b.complete)

	return e, nil
}

// closePair closes every open slot of a toward c and of c toward a, where c
// lies in direction d from a. It returns the number of slots closed.
func (b *Board) closePair(a, c int, d Direction) int {
	return b.vertices[a].closeOpen(d, Multiplicity) + b.vertices[c].closeOpen(d.Opposite(), Multiplicity)
}

// CloseSlot closes slot k of direction d on vertex i.
//
// Closing an established slot returns ErrSlotEstablished. Closing an already
// closed slot is recoverable: with suppress it returns nil, otherwise it logs
// a warning and returns ErrSlotClosed.
func (b *Board) CloseSlot(i int, d Direction, k int, suppress bool) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if !d.Valid() || k < 0 || k >= Multiplicity {
		return fmt.Errorf("%w: slot %s/%d", ErrMalformedInput, d, k)
	}
	err := b.vertices[i].close(d, k)
	if err == nil || !errors.Is(err, ErrSlotClosed) {
		return err
	}
	if suppress {
		return nil
	}
	b.logger.Warn("slot already closed", "vertex", b.vertices[i].Point(), "direction", d.String(), "slot", k)

	return err
}

// CloseSlots closes up to n open slots of direction d on vertex i and returns
// how many were closed. Fewer than n open slots is logged as a warning unless
// suppress is set.
func (b *Board) CloseSlots(i int, d Direction, n int, suppress bool) (int, error) {
	if err := b.checkIndex(i); err != nil {
		return 0, err
	}
	if !d.Valid() || n < 0 {
		return 0, fmt.Errorf("%w: close %d slots %s", ErrMalformedInput, n, d)
	}
	closed := b.vertices[i].closeOpen(d, n)
	if closed < n && !suppress {
		b.logger.Warn("fewer open slots than requested",
			"vertex", b.vertices[i].Point(), "direction", d.String(), "requested", n, "closed", closed)
	}

	return closed, nil
}
