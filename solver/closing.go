package solver

import (
	"fmt"

	"github.com/katalvlaran/hashi/core"
)

// CloseConnections shrinks every open bucket to what the neighbor on the
// other side could still accept and returns the number of slots closed.
//
// For vertex v and direction d with neighbor w the bound is
//
//	min(Multiplicity, w.Missing(), w.Open(opposite(d)))
//
// or 0 when the pair is no longer a potential connection. Open slots above
// the bound are closed. Callers rerun it until it returns 0.
//
// Errors: an open slot toward no neighbor yields core.ErrInternalInconsistency.
//
// Complexity: O(V · E) through the crossing test of HasPotentialConnection.
func CloseConnections(b *core.Board) (int, error) {
	if b == nil {
		return 0, ErrNilBoard
	}

	total := 0
	for i := 0; i < b.Len(); i++ {
		v := b.Vertex(i)
		for _, d := range core.Directions {
			open := v.Open(d)
			if open == 0 {
				continue
			}
			k, ok := b.Neighbor(i, d)
			if !ok {
				return total, fmt.Errorf("%w: %s has open slots %s toward no neighbor",
					core.ErrInternalInconsistency, v, d)
			}
			w := b.Vertex(k)
			bound := min(core.Multiplicity, w.Missing(), w.Open(d.Opposite()))
			if !b.HasPotentialConnection(i, k) {
				bound = 0
			}
			if open <= bound {
				continue
			}
			n, err := b.CloseSlots(i, d, open-bound, true)
			if err != nil {
				return total, err
			}
			total += n
			b.Logger().Debug("closed excess slots", "vertex", v.Point(), "direction", d.String(), "closed", n)
		}
	}

	return total, nil
}

// closeUntilStable reruns CloseConnections until it closes nothing and
// returns the total.
func closeUntilStable(b *core.Board) (int, error) {
	total := 0
	for {
		n, err := CloseConnections(b)
		total += n
		if err != nil || n == 0 {
			return total, err
		}
	}
}
