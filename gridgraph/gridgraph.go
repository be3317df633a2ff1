package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/hashi/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// given top row first. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellValue if a cell is neither Water nor in [0, core.MaxDegree].
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		for c, v := range values[r] {
			if v != Water && !island(v) {
				return nil, fmt.Errorf("%w: %d at row %d col %d", ErrCellValue, v, r, c)
			}
			cells[r][c] = v
		}
	}

	return &GridGraph{Width: w, Height: h, CellValues: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the cell at bottom-left coordinates (x,y).
// Cells outside the grid read as Water.
func (gg *GridGraph) Value(x, y int) int {
	if !gg.InBounds(x, y) {
		return Water
	}

	return gg.CellValues[gg.Height-1-y][x]
}

// Coordinate converts a row-major index counted from the bottom row
// (y*Width + x) back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Cells lists the island cells in index order, bottom row first.
func (gg *GridGraph) Cells() []Cell {
	var out []Cell
	for i := 0; i < gg.Width*gg.Height; i++ {
		x, y := gg.Coordinate(i)
		if v := gg.Value(x, y); v != Water {
			out = append(out, Cell{X: x, Y: y, Value: v})
		}
	}

	return out
}

// Islands returns the coordinate to degree mapping of the grid.
func (gg *GridGraph) Islands() map[core.Point]int {
	cells := gg.Cells()
	islands := make(map[core.Point]int, len(cells))
	for _, c := range cells {
		islands[core.Point{X: c.X, Y: c.Y}] = c.Value
	}

	return islands
}

// ToBoard builds a core.Board from the islands of the grid.
// Vertex indices follow the order of Cells.
func (gg *GridGraph) ToBoard(opts ...core.BoardOption) (*core.Board, error) {
	return core.FromMap(gg.Islands(), opts...)
}

// FromBoard lays the vertices of b out on the smallest grid that holds them.
// The grid origin moves to the bottom-left island corner, so coordinates
// are shifted by (minX, minY). Bridges are not represented.
// Returns ErrEmptyGrid for a board without vertices.
func FromBoard(b *core.Board) (*GridGraph, error) {
	if b == nil || b.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	vs := b.Vertices()
	minX, minY, maxX, maxY := vs[0].X, vs[0].Y, vs[0].X, vs[0].Y
	for _, v := range vs[1:] {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}

	w, h := maxX-minX+1, maxY-minY+1
	rows := make([][]int, h)
	for r := range rows {
		rows[r] = make([]int, w)
		for c := range rows[r] {
			rows[r][c] = Water
		}
	}
	for _, v := range vs {
		rows[h-1-(v.Y-minY)][v.X-minX] = v.N
	}

	return NewGridGraph(rows)
}
