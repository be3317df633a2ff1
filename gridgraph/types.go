// Package gridgraph defines the rectangular cell grid that puzzles are laid
// out on, and its conversions to and from a core.Board.
package gridgraph

import "github.com/katalvlaran/hashi/core"

// Water marks a cell without an island.
const Water = -1

// Cell is a single island cell in bottom-left coordinates.
type Cell struct {
	X, Y  int // Coordinates with the origin at the bottom-left corner
	Value int // Island degree
}

// GridGraph is an immutable rectangular puzzle layout.
// CellValues[row][col] holds the rows top to bottom as they are written,
// with Water for empty cells and 0..core.MaxDegree for islands.
// Public coordinates (x, y) put the origin at the bottom-left corner, so
// (x, y) lives at CellValues[Height-1-y][x].
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
}

// island reports whether v is a valid island degree.
func island(v int) bool {
	return v >= 0 && v <= core.MaxDegree
}
