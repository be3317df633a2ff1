// SPDX-License-Identifier: MIT
//
// File: board.go
// Role: Board construction, derived topology and read-only queries.
// Determinism:
//   - Vertex indices follow the order of the slice given to NewBoard.
//   - FromMap orders vertices by (Y, X) ascending.
//   - PotentialConnections and Bridges are sorted.

package core

import (
	"fmt"
	"log/slog"
	"sort"
)

// NewBoard builds a Board over vertices and derives its topology.
// The Board takes ownership of the vertices.
//
// Steps:
//  1. Apply options.
//  2. Reject nil vertices and duplicate coordinates (ErrMalformedInput).
//  3. Reject vertices that are not fresh (ErrInternalInconsistency).
//  4. Derive the nearest neighbor on each ray from sorted rows and columns.
//  5. Close every slot bucket that has no neighbor, and every bucket that
//     faces a vertex complete at birth (N == 0).
//
// Complexity: O(V log V).
func NewBoard(vertices []*Vertex, opts ...BoardOption) (*Board, error) {
	b := &Board{
		vertices: make([]*Vertex, len(vertices)),
		index:    make(map[Point]int, len(vertices)),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}

	for i, v := range vertices {
		if v == nil {
			return nil, fmt.Errorf("%w: nil vertex at index %d", ErrMalformedInput, i)
		}
		p := v.Point()
		if j, dup := b.index[p]; dup {
			return nil, fmt.Errorf("%w: vertices %d and %d share (%d,%d)", ErrMalformedInput, j, i, p.X, p.Y)
		}
		if !v.fresh() {
			return nil, fmt.Errorf("%w: expected a fresh vertex, got %s", ErrInternalInconsistency, v)
		}
		b.index[p] = i
		b.vertices[i] = v
	}

	b.neighbors = deriveTopology(b.vertices)
	for i, v := range b.vertices {
		for _, d := range Directions {
			k := b.neighbors[i][d]
			if k == noNeighbor || b.vertices[k].Complete() {
				v.closeOpen(d, Multiplicity)
			}
		}
	}
	b.clusters = newDisjointSet(len(b.vertices))
	b.updateComplete()

	return b, nil
}

// FromMap builds a Board from a coordinate to degree mapping.
// Vertices are indexed in (Y, X) ascending order.
func FromMap(islands map[Point]int, opts ...BoardOption) (*Board, error) {
	points := make([]Point, 0, len(islands))
	for p := range islands {
		points = append(points, p)
	}
	sortPoints(points)

	vertices := make([]*Vertex, 0, len(points))
	for _, p := range points {
		v, err := NewVertex(p.X, p.Y, islands[p])
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}

	return NewBoard(vertices, opts...)
}

// sortPoints orders points by row from the bottom, then by column.
func sortPoints(points []Point) {
	sort.Slice(points, func(a, c int) bool {
		if points[a].Y != points[c].Y {
			return points[a].Y < points[c].Y
		}
		return points[a].X < points[c].X
	})
}

// deriveTopology returns, for each vertex, the index of the nearest vertex
// strictly along each of the four rays, or noNeighbor.
func deriveTopology(vertices []*Vertex) [][NumDirections]int {
	nb := make([][NumDirections]int, len(vertices))
	for i := range nb {
		nb[i] = [NumDirections]int{noNeighbor, noNeighbor, noNeighbor, noNeighbor}
	}

	rows := make(map[int][]int)
	cols := make(map[int][]int)
	for i, v := range vertices {
		rows[v.Y] = append(rows[v.Y], i)
		cols[v.X] = append(cols[v.X], i)
	}
	for _, row := range rows {
		sort.Slice(row, func(a, c int) bool { return vertices[row[a]].X < vertices[row[c]].X })
		for k := 1; k < len(row); k++ {
			nb[row[k-1]][Right] = row[k]
			nb[row[k]][Left] = row[k-1]
		}
	}
	for _, col := range cols {
		sort.Slice(col, func(a, c int) bool { return vertices[col[a]].Y < vertices[col[c]].Y })
		for k := 1; k < len(col); k++ {
			nb[col[k-1]][Up] = col[k]
			nb[col[k]][Down] = col[k-1]
		}
	}

	return nb
}

func (b *Board) checkIndex(i int) error {
	if i < 0 || i >= len(b.vertices) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexIndex, i, len(b.vertices))
	}

	return nil
}

// Len is the number of vertices.
func (b *Board) Len() int { return len(b.vertices) }

// Vertex returns vertex i, or nil for an index out of range.
func (b *Board) Vertex(i int) *Vertex {
	if b.checkIndex(i) != nil {
		return nil
	}

	return b.vertices[i]
}

// Vertices returns the vertex arena in index order.
// The slice is a copy; the vertices are shared with the Board.
func (b *Board) Vertices() []*Vertex {
	return append([]*Vertex(nil), b.vertices...)
}

// Index returns the index of the vertex at (x,y).
func (b *Board) Index(x, y int) (int, bool) {
	i, ok := b.index[Point{X: x, Y: y}]
	return i, ok
}

// Neighbor returns the index of the nearest vertex from i in direction d.
func (b *Board) Neighbor(i int, d Direction) (int, bool) {
	if b.checkIndex(i) != nil || !d.Valid() {
		return noNeighbor, false
	}
	k := b.neighbors[i][d]

	return k, k != noNeighbor
}

// DirectionTo returns the direction in which j lies as seen from i, provided
// the two are adjacency neighbors.
func (b *Board) DirectionTo(i, j int) (Direction, bool) {
	if b.checkIndex(i) != nil || b.checkIndex(j) != nil {
		return 0, false
	}
	for _, d := range Directions {
		if b.neighbors[i][d] == j {
			return d, true
		}
	}

	return 0, false
}

// HasPotentialConnection reports whether one more bridge between i and j is
// still possible: they are neighbors, both have an open slot toward the other
// and no placed edge crosses the segment between them.
func (b *Board) HasPotentialConnection(i, j int) bool {
	if _, ok := b.openBetween(i, j); !ok {
		return false
	}

	return !b.blocked(i, j)
}

// openBetween checks adjacency and open slots only.
func (b *Board) openBetween(i, j int) (Direction, bool) {
	d, ok := b.DirectionTo(i, j)
	if !ok {
		return 0, false
	}
	if !b.vertices[i].HasOpen(d) || !b.vertices[j].HasOpen(d.Opposite()) {
		return 0, false
	}

	return d, true
}

// blocked reports whether a placed edge crosses the segment from i toward j.
func (b *Board) blocked(i, j int) bool {
	seg := b.segment(i, j)
	for _, e := range b.edges {
		if e.Crosses(seg) {
			return true
		}
	}

	return false
}

// segment returns the edge geometry between two distinct aligned vertices.
func (b *Board) segment(i, j int) Edge {
	vi, vj := b.vertices[i], b.vertices[j]
	e, _ := NewEdge(vi.X, vi.Y, vj.X, vj.Y)

	return e
}

// PotentialConnections lists every pair with a potential connection once,
// as Right or Up connections, sorted by From then Dir.
func (b *Board) PotentialConnections() []Connection {
	var out []Connection
	for i := range b.vertices {
		for _, d := range [...]Direction{Up, Right} {
			k := b.neighbors[i][d]
			if k != noNeighbor && b.HasPotentialConnection(i, k) {
				out = append(out, Connection{From: i, To: k, Dir: d})
			}
		}
	}
	sort.SliceStable(out, func(a, c int) bool {
		if out[a].From != out[c].From {
			return out[a].From < out[c].From
		}
		return out[a].Dir < out[c].Dir
	})

	return out
}

// Edges returns a copy of the placed edges in insertion order.
func (b *Board) Edges() []Edge {
	return append([]Edge(nil), b.edges...)
}

// EdgeCount is the number of placed edges; a double bridge counts twice.
func (b *Board) EdgeCount() int { return len(b.edges) }

// EdgeGroups groups placed edges by endpoint pair.
func (b *Board) EdgeGroups() map[EdgeKey][]Edge {
	groups := make(map[EdgeKey][]Edge)
	for _, e := range b.edges {
		groups[e.Key()] = append(groups[e.Key()], e)
	}

	return groups
}

// Bridge is a group of parallel edges between one endpoint pair.
type Bridge struct {
	Key   EdgeKey
	Count int
}

// Bridges returns one entry per endpoint pair, sorted by (Y1, X1, Y2, X2).
func (b *Board) Bridges() []Bridge {
	groups := b.EdgeGroups()
	out := make([]Bridge, 0, len(groups))
	for k, es := range groups {
		out = append(out, Bridge{Key: k, Count: len(es)})
	}
	sort.Slice(out, func(a, c int) bool {
		ka, kc := out[a].Key, out[c].Key
		if ka.Y1 != kc.Y1 {
			return ka.Y1 < kc.Y1
		}
		if ka.X1 != kc.X1 {
			return ka.X1 < kc.X1
		}
		if ka.Y2 != kc.Y2 {
			return ka.Y2 < kc.Y2
		}
		return ka.X2 < kc.X2
	})

	return out
}

// BridgeCount returns the number of bridges between vertices i and j.
func (b *Board) BridgeCount(i, j int) int {
	d, ok := b.DirectionTo(i, j)
	if !ok {
		return 0
	}

	return b.vertices[i].Established(d)
}

// Complete reports whether every vertex holds exactly its target degree.
// It does not check connectivity; see Verify.
func (b *Board) Complete() bool { return b.complete }

func (b *Board) updateComplete() {
	for _, v := range b.vertices {
		if !v.Complete() {
			b.complete = false
			return
		}
	}
	b.complete = true
}

// Logger returns the logger used for recoverable warnings.
func (b *Board) Logger() *slog.Logger { return b.logger }

// String summarizes the board size.
func (b *Board) String() string {
	return fmt.Sprintf("Board (%d vertices, %d edges)", len(b.vertices), len(b.edges))
}
