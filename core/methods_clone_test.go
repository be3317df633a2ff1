package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
)

func TestBoard_Clone(t *testing.T) {
	b := boardFromRows(t, "1-2-1")
	mustAdd(t, b, 0, 0, 2, 0)

	clone := b.Clone()
	require.NoError(t, clone.Validate())
	mustAdd(t, clone, 2, 0, 4, 0)

	assert.True(t, clone.Complete())
	assert.Equal(t, 1, clone.ClusterCount())
	assert.Equal(t, 2, clone.EdgeCount())

	// the source is untouched
	assert.False(t, b.Complete())
	assert.Equal(t, 2, b.ClusterCount())
	assert.Equal(t, 1, b.EdgeCount())
	assert.False(t, b.Vertex(2).Complete())
	assert.True(t, b.HasPotentialConnection(1, 2))
	require.NoError(t, b.Validate())
}

func TestBoard_Subset(t *testing.T) {
	b := boardFromRows(t, "1-2-1")
	mustAdd(t, b, 0, 0, 2, 0)

	sub, err := b.Subset([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	assert.Equal(t, core.Point{X: 2, Y: 0}, sub.Vertex(0).Point())
	assert.Equal(t, core.Point{X: 4, Y: 0}, sub.Vertex(1).Point())

	// the edge to (0,0) is not contained, the slot stays established
	assert.Zero(t, sub.EdgeCount())
	assert.Equal(t, 1, sub.Vertex(0).Established(core.Left))
	_, ok := sub.Neighbor(0, core.Left)
	assert.False(t, ok)
	assert.Equal(t, 2, sub.ClusterCount())
	require.NoError(t, sub.Validate())

	_, err = sub.AddEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, sub.Complete())
	assert.False(t, b.Vertex(1).Complete())
	assert.Equal(t, 1, b.EdgeCount())
}

func TestBoard_SubsetKeepsContainedEdges(t *testing.T) {
	b := boardFromRows(t,
		"2-2",
		"---",
		"2-2",
	)
	mustAdd(t, b, 0, 0, 2, 0)
	mustAdd(t, b, 0, 2, 2, 2)

	sub, err := b.Subset([]int{idx(t, b, 0, 2), idx(t, b, 2, 2)})
	require.NoError(t, err)
	assert.Equal(t, 1, sub.EdgeCount())
	assert.Equal(t, 1, sub.ClusterCount())
	// the buckets toward the dropped bottom row are closed
	assert.Zero(t, sub.Vertex(0).Open(core.Down))
	require.NoError(t, sub.Validate())
}

func TestBoard_SubsetErrors(t *testing.T) {
	b := boardFromRows(t, "1-1")
	_, err := b.Subset([]int{0, 5})
	require.ErrorIs(t, err, core.ErrVertexIndex)
	_, err = b.Subset([]int{1, 1})
	require.ErrorIs(t, err, core.ErrMalformedInput)
}
