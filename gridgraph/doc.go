// Package gridgraph treats a puzzle as the rectangular grid it is printed on.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid, rows top to bottom, with
//     Water for empty cells and island degrees 0..8 elsewhere.
//   - Value, Cells and Islands read it in bottom-left coordinates, the
//     coordinate system of core.Board.
//   - ToBoard and FromBoard convert between the grid and a core.Board.
//
// Complexity:
//
//   - NewGridGraph, Cells, Islands: O(W×H).
//   - ToBoard: O(W×H + V log V).
//   - FromBoard: O(V + W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: a cell is neither Water nor a degree in [0, 8].
package gridgraph
