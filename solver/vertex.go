package solver

import (
	"fmt"

	"github.com/katalvlaran/hashi/core"
)

// FillVertex places every bridge that vertex i is forced to take given only
// its own slots, repeating until nothing more is forced. It returns the edges
// it added.
//
// A direction is forced when the other directions together cannot supply the
// bridges still missing. When the open slots equal the missing bridges every
// open direction is forced.
//
// Errors:
//   - ErrNilBoard for a nil board, core.ErrVertexIndex for a bad index.
//   - core.ErrInternalInconsistency when a direction must take more bridges
//     than it has open slots, or a forced pair is not a potential connection.
func FillVertex(b *core.Board, i int) ([]core.Edge, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	v := b.Vertex(i)
	if v == nil {
		return nil, fmt.Errorf("%w: %d", core.ErrVertexIndex, i)
	}

	var added []core.Edge
	for !v.Complete() {
		forced, err := forcedDirections(v)
		if err != nil {
			return added, err
		}
		if len(forced) == 0 {
			break
		}
		// one bridge per forced direction, then re-evaluate
		for _, d := range forced {
			if v.Complete() {
				break
			}
			k, ok := b.Neighbor(i, d)
			if !ok || !b.HasPotentialConnection(i, k) {
				return added, fmt.Errorf("%w: %s forced %s without a potential connection",
					core.ErrInternalInconsistency, v, d)
			}
			e, err := b.AddEdge(i, k)
			if err != nil {
				return added, fmt.Errorf("%w: %w", core.ErrInternalInconsistency, err)
			}
			b.Logger().Debug("forced bridge", "vertex", v.Point(), "direction", d.String(), "edge", e.String())
			added = append(added, e)
		}
	}

	return added, nil
}

// forcedDirections returns the open directions of v that must take at least
// one more bridge.
//
// Steps:
//  1. needed = N - established, potential = open slots overall.
//  2. potential == needed: every open direction is forced.
//  3. Otherwise overflow(d) = needed - open slots outside d; d is forced
//     when overflow > 0 and inconsistent when overflow > open(d).
func forcedDirections(v *core.Vertex) ([]core.Direction, error) {
	needed := v.Missing()
	potential := v.OpenCount()
	open := v.OpenDirections()

	if potential == needed {
		return open, nil
	}

	var forced []core.Direction
	for _, d := range open {
		overflow := needed - (potential - v.Open(d))
		if overflow > v.Open(d) {
			return nil, fmt.Errorf("%w: %s needs %d bridges %s with %d open slots",
				core.ErrInternalInconsistency, v, overflow, d, v.Open(d))
		}
		if overflow > 0 {
			forced = append(forced, d)
		}
	}

	return forced, nil
}
