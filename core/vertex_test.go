package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
)

func TestNewVertex_DegreeRange(t *testing.T) {
	for _, n := range []int{-1, core.MaxDegree + 1} {
		_, err := core.NewVertex(0, 0, n)
		require.ErrorIs(t, err, core.ErrMalformedInput)
	}

	v, err := core.NewVertex(3, 4, core.MaxDegree)
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 3, Y: 4}, v.Point())
	assert.Equal(t, core.NumDirections*core.Multiplicity, v.OpenCount())
	assert.Equal(t, core.MaxDegree, v.Missing())
	assert.False(t, v.Complete())
	assert.Len(t, v.OpenDirections(), core.NumDirections)
}

func TestNewVertex_ZeroIsComplete(t *testing.T) {
	v, err := core.NewVertex(0, 0, 0)
	require.NoError(t, err)
	assert.True(t, v.Complete())
	assert.Zero(t, v.OpenCount())
	for _, d := range core.Directions {
		assert.Equal(t, core.Multiplicity, v.ClosedCount(d))
		assert.False(t, v.HasOpen(d))
	}
}

func TestRestoreVertex(t *testing.T) {
	O, E, C := core.Open, core.Established, core.Closed

	v, err := core.RestoreVertex(1, 2, 3, []core.SlotState{E, O, C, C, O, O, E, C})
	require.NoError(t, err)
	assert.Equal(t, 2, v.EstablishedCount())
	assert.Equal(t, 1, v.Missing())
	assert.Equal(t, 1, v.Established(core.Up))
	assert.Equal(t, 1, v.Open(core.Up))
	assert.Equal(t, 2, v.ClosedCount(core.Right))
	assert.Equal(t, 2, v.Open(core.Down))
	assert.True(t, v.HasEstablished(core.Left))
	assert.Equal(t, core.Established, v.Slot(core.Left, 0))
	assert.Equal(t, []core.SlotState{E, O, C, C, O, O, E, C}, v.Slots())
	assert.Equal(t, []core.Direction{core.Up, core.Down}, v.OpenDirections())

	t.Run("reaching n closes the rest", func(t *testing.T) {
		v, err := core.RestoreVertex(0, 0, 1, []core.SlotState{E, O, O, O, O, O, O, O})
		require.NoError(t, err)
		assert.True(t, v.Complete())
		assert.Zero(t, v.OpenCount())
	})

	bad := []struct {
		name  string
		n     int
		slots []core.SlotState
	}{
		{"short", 2, []core.SlotState{O, O}},
		{"long", 2, make([]core.SlotState, 9)},
		{"unknown state", 2, []core.SlotState{O, O, O, O, O, O, O, 5}},
		{"too many established", 1, []core.SlotState{E, E, O, O, O, O, O, O}},
		{"bad degree", 9, make([]core.SlotState, 8)},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.RestoreVertex(0, 0, tc.n, tc.slots)
			require.ErrorIs(t, err, core.ErrMalformedInput)
		})
	}
}

func TestVertex_String(t *testing.T) {
	v, err := core.NewVertex(2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "Vertex(x: 2, y: 1, n: 0, complete: true, slots: [x x x x x x x x])", v.String())

	v, err = core.RestoreVertex(0, 0, 2, []core.SlotState{core.Established, core.Open, core.Closed, core.Closed,
		core.Open, core.Open, core.Open, core.Open})
	require.NoError(t, err)
	assert.Equal(t, "Vertex(x: 0, y: 0, n: 2, complete: false, slots: [1 0 x x 0 0 0 0])", v.String())
}

func TestVertex_SlotOutOfRange(t *testing.T) {
	v, err := core.NewVertex(0, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Open, v.Slot(core.Up, 1))

	cases := []struct {
		d core.Direction
		k int
	}{
		{core.Direction(-1), 0},
		{core.Direction(core.NumDirections), 0},
		{core.Right, -1},
		{core.Right, core.Multiplicity},
	}
	for _, tc := range cases {
		assert.Equal(t, core.Closed, v.Slot(tc.d, tc.k), "%v/%d", tc.d, tc.k)
	}
}
