// Package core models a Hashiwokakero (bridges) puzzle: islands with a
// target bridge count, the straight bridges between them and the groups of
// islands those bridges join.
//
// The Board B = (V, T, E, C) is built once from island positions:
//
//   - V: the vertex arena. A Vertex owns its coordinates, its degree N and a
//     fixed [4][Multiplicity]SlotState array of connection slots grouped by
//     direction (up, right, down, left).
//   - T: the topology. For each vertex and direction, the index of the nearest
//     vertex strictly along that ray, or none. Derived in NewBoard and never
//     changed afterwards. A bucket without neighbor is closed immediately.
//   - E: the placed edges. A double bridge is two edges with the same key.
//   - C: the cluster partition, a union-find forest over vertex indices.
//
// Slots move only Open -> Established or Open -> Closed. Once a vertex holds N
// bridges its remaining open slots close.
//
// A connection between vertices i and j is potential iff they are neighbors,
// both have an open slot toward each other and no placed edge crosses the
// segment between them.
//
// Mutating API:
//
//	AddEdge(i, j int) (Edge, error)                          // one bridge + propagation
//	CloseSlot(i int, d Direction, k int, suppress bool) error
//	CloseSlots(i int, d Direction, n int, suppress bool) (int, error)
//
// Read-only API (selection):
//
//	HasPotentialConnection(i, j int) bool
//	PotentialConnections() []Connection
//	ClusterOf(i int) (*Cluster, error), Clusters() []*Cluster
//	Edges(), Bridges(), Complete(), Validate(), Verify()
//
// Copies:
//
//	Clone() *Board                       // deep copy
//	Subset(ids []int) (*Board, error)    // deep copy of a vertex subset
//
// A Board is single-threaded state. Use one Board per goroutine.
//
// Coordinates have the origin at the bottom-left: Up is +Y, Right is +X.
//
// Example:
//
//	b, _ := core.FromMap(map[core.Point]int{{X: 0, Y: 0}: 1, {X: 2, Y: 0}: 1})
//	_, _ = b.AddEdge(0, 1)
//	fmt.Println(b.Complete()) // true
package core
