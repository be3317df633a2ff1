// Package solver implements the constraint-propagation rules that solve a
// Hashiwokakero board without search.
//
// What
//
//   - FillVertex: bridges a single vertex must take given only its own slots.
//   - CloseConnections: closes slots the neighbor on the other side could
//     never use.
//   - CloseConnectionsDisjoint: closes links that would finish two clusters
//     cut off from the rest of the board.
//   - MakeJoiningConnection: builds the only link left to a cluster.
//   - Solve: runs the rules above to a fixpoint.
//
// There is no guessing and no backtracking. Some puzzles need deeper
// reasoning than these rules provide; Solve then returns a stable board with
// Report.Complete == false and no error.
//
// Termination
//
//	Slots only move out of the open state. A pass that moves none ends the
//	loop, so Solve runs at most 1 + 8·V passes. WithMaxPasses adds a
//	watchdog on top.
//
// Usage
//
//	b, _ := core.FromMap(islands)
//	rep, err := solver.Solve(b, solver.WithLogger(logger))
//	if err != nil {
//		// ErrNilBoard, ErrOptionViolation, ErrPassLimit,
//		// core.ErrInternalInconsistency or a context error
//	}
//	fmt.Println(rep.Complete)
//
// Errors
//
//	ErrNilBoard        - nil board.
//	ErrOptionViolation - invalid option (negative pass limit).
//	ErrPassLimit       - still changing after MaxPasses passes.
package solver
