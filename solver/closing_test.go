package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
	"github.com/katalvlaran/hashi/solver"
)

func TestCloseConnections_NeighborCapacity(t *testing.T) {
	b := rowsBoard(t, "2-1")
	n, err := solver.CloseConnections(b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// the 1 can take one bridge, and the 2 now offers only one
	assert.Equal(t, 1, b.Vertex(0).Open(core.Right))
	assert.Equal(t, 1, b.Vertex(1).Open(core.Left))

	n, err = solver.CloseConnections(b)
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, b.Validate())
}

func TestCloseConnections_NothingToClose(t *testing.T) {
	b := rowsBoard(t,
		"2-2",
		"---",
		"2-2",
	)
	n, err := solver.CloseConnections(b)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCloseConnections_ZeroNeighbor(t *testing.T) {
	b := rowsBoard(t, "0-1-1")
	mid := at(t, b, 2, 0)
	// the 0 is complete at birth, so the slots facing it start closed
	assert.Zero(t, b.Vertex(mid).Open(core.Left))

	n, err := solver.CloseConnections(b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, b.Vertex(mid).Open(core.Right))
	assert.Equal(t, 1, b.Vertex(at(t, b, 4, 0)).Open(core.Left))
}

func TestCloseConnections_FarSideClosed(t *testing.T) {
	b := rowsBoard(t, "2-2")
	_, err := b.CloseSlots(1, core.Left, 2, true)
	require.NoError(t, err)

	n, err := solver.CloseConnections(b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, b.Vertex(0).Open(core.Right))
}

func TestCloseConnections_NilBoard(t *testing.T) {
	_, err := solver.CloseConnections(nil)
	require.ErrorIs(t, err, solver.ErrNilBoard)
}
