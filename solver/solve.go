package solver

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hashi/core"
)

// Solve runs the propagation rules on b until a pass changes nothing and
// reports what it did. The board is mutated in place.
//
// Each pass:
//  1. CloseConnections until it closes nothing.
//  2. FillVertex on every vertex in index order.
//  3. CloseConnections until it closes nothing.
//  4. CloseConnectionsDisjoint, then MakeJoiningConnection.
//
// A stable board that is not complete is a normal outcome, not an error.
// Every pass either stops the loop or moves at least one slot out of the open
// state, so the number of passes is bounded by the number of slots.
//
// Errors: ErrNilBoard, ErrOptionViolation, ErrPassLimit, the context error,
// or a core error from the rules.
func Solve(b *core.Board, opts ...Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Report{}, o.err
	}
	if b == nil {
		return Report{}, ErrNilBoard
	}
	logger := o.Logger
	if logger == nil {
		logger = b.Logger()
	}

	start := time.Now()
	var rep Report
	for pass := 1; ; pass++ {
		if err := o.Ctx.Err(); err != nil {
			return rep, fmt.Errorf("solver: pass %d: %w", pass, err)
		}
		if o.MaxPasses > 0 && pass > o.MaxPasses {
			return rep, fmt.Errorf("%w: %d passes", ErrPassLimit, o.MaxPasses)
		}

		stats, err := runPass(b, pass)
		rep.Passes = pass
		rep.EdgesAdded += stats.EdgesAdded
		rep.SlotsClosed += stats.SlotsClosed
		rep.Vetoed += stats.Vetoed
		rep.Joined += stats.Joined
		rep.Complete = b.Complete()
		if err != nil {
			return rep, err
		}
		logger.Debug("pass finished", "pass", pass, "edges", stats.EdgesAdded,
			"closed", stats.SlotsClosed, "vetoed", stats.Vetoed, "joined", stats.Joined)
		o.OnPass(stats)

		if stats.EdgesAdded == 0 && stats.SlotsClosed == 0 {
			break
		}
	}

	logger.Info("solve finished", "passes", rep.Passes, "edges", rep.EdgesAdded,
		"closed", rep.SlotsClosed, "complete", rep.Complete, "elapsed", time.Since(start))

	return rep, nil
}

// runPass executes one pass and measures it by the drop in open slots.
func runPass(b *core.Board, pass int) (PassStats, error) {
	stats := PassStats{Pass: pass}
	edgesBefore, openBefore := b.EdgeCount(), openSlots(b)

	measure := func() PassStats {
		stats.EdgesAdded = b.EdgeCount() - edgesBefore
		// each bridge moves one open slot on both ends to established
		stats.SlotsClosed = openBefore - openSlots(b) - 2*stats.EdgesAdded
		stats.Complete = b.Complete()
		return stats
	}

	// 1) closing
	if _, err := closeUntilStable(b); err != nil {
		return measure(), err
	}
	// 2) vertex solver
	for i := 0; i < b.Len(); i++ {
		if _, err := FillVertex(b, i); err != nil {
			return measure(), err
		}
	}
	// 3) closing again
	if _, err := closeUntilStable(b); err != nil {
		return measure(), err
	}
	// 4) disjointness
	vetoed, err := CloseConnectionsDisjoint(b)
	stats.Vetoed = len(vetoed)
	if err != nil {
		return measure(), err
	}
	joined, err := MakeJoiningConnection(b)
	stats.Joined = len(joined)
	if err != nil {
		return measure(), err
	}

	return measure(), nil
}

// openSlots counts the open slots of the whole board.
func openSlots(b *core.Board) int {
	n := 0
	for _, v := range b.Vertices() {
		n += v.OpenCount()
	}

	return n
}
