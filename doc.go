// Package hashi solves Hashiwokakero ("bridges") puzzles by constraint
// propagation alone.
//
// 🚀 What is hashi?
//
//	Islands carry a number: how many bridges must end there. Bridges run
//	horizontally or vertically between islands, never cross, at most two
//	join a pair, and every island must end up in one connected network.
//	hashi derives the bridges that are forced and never guesses:
//		• Vertex rule: bridges an island must take given its own slots
//		• Closing rule: slots the neighbor could never use
//		• Disjointness rules: no finished group may be cut off, and a
//		  group with one exit must take it
//
// ✨ Why choose hashi?
//
//   - Deterministic: same input, same deductions, same output
//   - Honest: a puzzle that needs guessing is reported incomplete, not faked
//   - Observable: slog records per deduction, per-pass hooks, Prometheus
//     counters in the command line tool
//
// Under the hood, everything is organized in subpackages:
//
//	core/      : Vertex, Edge, Cluster and Board with its bookkeeping
//	solver/    : the propagation rules and the Solve driver
//	gridgraph/ : the rectangular grid a puzzle is printed on
//	codec/     : text and YAML forms, ASCII rendering
//	cmd/hashi  : the command line tool
//
// Quick ASCII example:
//
//	2-2        -------
//	---        |2---2|
//	2-2   =>   ||   ||
//	           ||   ||
//	           ||   ||
//	           |2---2|
//	           -------
//
// a ring of four islands, solved with one bridge per side.
//
//	go install github.com/katalvlaran/hashi/cmd/hashi@latest
package hashi
