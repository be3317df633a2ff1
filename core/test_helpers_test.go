// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
)

// boardFromRows builds a board from text rows given top to bottom.
// Digits are islands, anything else is water. Row 0 is the top row, so the
// bottom row has Y == 0.
func boardFromRows(t testing.TB, rows ...string) *core.Board {
	t.Helper()
	islands := make(map[core.Point]int)
	for r, row := range rows {
		y := len(rows) - 1 - r
		for x, ch := range row {
			if ch >= '0' && ch <= '9' {
				islands[core.Point{X: x, Y: y}] = int(ch - '0')
			}
		}
	}
	b, err := core.FromMap(islands)
	require.NoError(t, err)

	return b
}

// idx returns the index of the vertex at (x,y) or fails the test.
func idx(t testing.TB, b *core.Board, x, y int) int {
	t.Helper()
	i, ok := b.Index(x, y)
	require.Truef(t, ok, "no vertex at (%d,%d)", x, y)

	return i
}

// mustAdd places an edge between the vertices at two coordinates.
func mustAdd(t testing.TB, b *core.Board, x1, y1, x2, y2 int) core.Edge {
	t.Helper()
	e, err := b.AddEdge(idx(t, b, x1, y1), idx(t, b, x2, y2))
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	return e
}

// capture returns a logger writing text records into the returned buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}
