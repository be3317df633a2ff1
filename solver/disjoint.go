package solver

import (
	"fmt"

	"github.com/katalvlaran/hashi/core"
)

// CloseConnectionsDisjoint forbids links whose bridges would finish two
// clusters that together do not cover the board. It returns the vetoed
// connections; each veto closes one slot on each side.
//
// A potential connection v->w in direction d is vetoed when:
//  1. the clusters of v and w together miss at least one vertex;
//  2. every other member of both clusters is complete;
//  3. v.Open(d) == v.Missing() == w.Missing() == w.Open(opposite(d)),
//     so filling the link completes both endpoints at once.
func CloseConnectionsDisjoint(b *core.Board) ([]core.Connection, error) {
	if b == nil {
		return nil, ErrNilBoard
	}

	var vetoed []core.Connection
	for i := 0; i < b.Len(); i++ {
		v := b.Vertex(i)
		if v.Complete() {
			continue
		}
		for _, d := range v.OpenDirections() {
			k, ok := b.Neighbor(i, d)
			if !ok || !b.HasPotentialConnection(i, k) {
				continue
			}
			conn := core.Connection{From: i, To: k, Dir: d}
			veto, err := closesOff(b, conn, v.Open(d))
			if err != nil {
				return vetoed, err
			}
			if !veto || b.Vertex(k).Open(d.Opposite()) != v.Open(d) {
				continue
			}
			if _, err = b.CloseSlots(i, d, 1, true); err != nil {
				return vetoed, err
			}
			if _, err = b.CloseSlots(k, d.Opposite(), 1, true); err != nil {
				return vetoed, err
			}
			b.Logger().Debug("disjoint veto", "from", v.Point(), "to", b.Vertex(k).Point(), "direction", d.String())
			vetoed = append(vetoed, conn)
		}
	}

	return vetoed, nil
}

// MakeJoiningConnection places the only bridge a cluster can still use to
// reach the rest of the board. For every cluster that does not cover the
// board, the external potential connections are listed, minus those where a
// single bridge would finish both clusters while leaving vertices outside.
// Exactly one left means it must be built. It returns the edges added.
func MakeJoiningConnection(b *core.Board) ([]core.Edge, error) {
	if b == nil {
		return nil, ErrNilBoard
	}

	var added []core.Edge
	for _, snapshot := range b.Clusters() {
		// earlier joins may have merged this cluster
		c, err := b.ClusterOf(snapshot.Members()[0])
		if err != nil {
			return added, err
		}
		if c.Size() == b.Len() {
			continue
		}

		var candidates []core.Connection
		for _, conn := range c.ExternalConnections() {
			veto, err := closesOff(b, conn, 1)
			if err != nil {
				return added, err
			}
			if !veto {
				candidates = append(candidates, conn)
			}
		}
		if len(candidates) != 1 {
			continue
		}

		conn := candidates[0]
		e, err := b.AddEdge(conn.From, conn.To)
		if err != nil {
			return added, fmt.Errorf("%w: %w", core.ErrInternalInconsistency, err)
		}
		b.Logger().Debug("forced join", "edge", e.String(), "cluster", c.Size())
		added = append(added, e)
	}

	return added, nil
}

// closesOff reports whether placing n bridges on the potential connection
// conn would complete both endpoints and close off the union of their
// clusters from the rest of the board.
func closesOff(b *core.Board, conn core.Connection, n int) (bool, error) {
	from, err := b.ClusterOf(conn.From)
	if err != nil {
		return false, err
	}
	to, err := b.ClusterOf(conn.To)
	if err != nil {
		return false, err
	}

	// 1) union covers the board
	size := from.Size()
	if !from.Contains(conn.To) {
		size += to.Size()
	}
	if size == b.Len() {
		return false, nil
	}

	// 2) every other member complete
	okFrom, err := from.WouldMakeComplete(conn)
	if err != nil {
		return false, err
	}
	okTo, err := to.WouldMakeComplete(conn)
	if err != nil {
		return false, err
	}
	if !okFrom || !okTo {
		return false, nil
	}

	// 3) n bridges on the link complete both endpoints
	v, w := b.Vertex(conn.From), b.Vertex(conn.To)
	if v.Missing() != n || w.Missing() != n {
		return false, nil
	}

	return v.Open(conn.Dir) >= n && w.Open(conn.Dir.Opposite()) >= n, nil
}
