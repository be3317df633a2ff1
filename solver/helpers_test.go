package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
)

// rowsBoard builds a board from text rows given top to bottom.
func rowsBoard(t testing.TB, rows ...string) *core.Board {
	t.Helper()
	islands := make(map[core.Point]int)
	for r, row := range rows {
		for x, ch := range row {
			if ch >= '0' && ch <= '9' {
				islands[core.Point{X: x, Y: len(rows) - 1 - r}] = int(ch - '0')
			}
		}
	}
	b, err := core.FromMap(islands)
	require.NoError(t, err)

	return b
}

func at(t testing.TB, b *core.Board, x, y int) int {
	t.Helper()
	i, ok := b.Index(x, y)
	require.Truef(t, ok, "no vertex at (%d,%d)", x, y)

	return i
}

// cell kinds of the puzzle generator
const (
	cellEmpty = iota
	cellIsland
	cellBridge
)

var steps = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// generatePuzzle grows a random tree of bridges on a size x size grid and
// returns the island degrees. The puzzle always has a connected solution.
func generatePuzzle(r *rand.Rand, size, islands int) map[core.Point]int {
	grid := make([][]int, size)
	for y := range grid {
		grid[y] = make([]int, size)
	}
	degree := make(map[core.Point]int)
	var placed []core.Point

	start := core.Point{X: r.Intn(size), Y: r.Intn(size)}
	grid[start.Y][start.X] = cellIsland
	degree[start] = 0
	placed = append(placed, start)

	for attempt := 0; attempt < 500 && len(placed) < islands; attempt++ {
		from := placed[r.Intn(len(placed))]
		step := steps[r.Intn(4)]
		length := 2 + r.Intn(3)
		to := core.Point{X: from.X + step[0]*length, Y: from.Y + step[1]*length}
		if to.X < 0 || to.Y < 0 || to.X >= size || to.Y >= size || grid[to.Y][to.X] != cellEmpty {
			continue
		}
		free := true
		for k := 1; k < length; k++ {
			if grid[from.Y+step[1]*k][from.X+step[0]*k] != cellEmpty {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		for k := 1; k < length; k++ {
			grid[from.Y+step[1]*k][from.X+step[0]*k] = cellBridge
		}
		grid[to.Y][to.X] = cellIsland
		bridges := 1 + r.Intn(2)
		degree[from] += bridges
		degree[to] = bridges
		placed = append(placed, to)
	}

	return degree
}
