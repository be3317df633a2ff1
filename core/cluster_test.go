package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashi/core"
)

func TestClusters_Merge(t *testing.T) {
	b := boardFromRows(t, "1-2-1")
	assert.Equal(t, 3, b.ClusterCount())

	mustAdd(t, b, 0, 0, 2, 0)
	assert.Equal(t, 2, b.ClusterCount())
	assert.True(t, b.SameCluster(0, 1))
	assert.False(t, b.SameCluster(1, 2))
	assert.Equal(t, 2, b.ClusterSize(0))

	clusters := b.Clusters()
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1}, clusters[0].Members())
	assert.Equal(t, []int{2}, clusters[1].Members())

	mustAdd(t, b, 2, 0, 4, 0)
	assert.Equal(t, 1, b.ClusterCount())
	c, err := b.ClusterOf(2)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Size())
	assert.True(t, c.Complete())
	require.NoError(t, b.Verify())
}

func TestCluster_Connections(t *testing.T) {
	b := boardFromRows(t, "1-2-1")
	mustAdd(t, b, 0, 0, 2, 0)

	c, err := b.ClusterOf(0)
	require.NoError(t, err)
	assert.True(t, c.Contains(1))
	assert.False(t, c.Contains(2))
	assert.False(t, c.Complete())

	want := []core.Connection{{From: 1, To: 2, Dir: core.Right}}
	assert.Equal(t, want, c.ExternalConnections())
	assert.Empty(t, c.InternalConnections())
	assert.Equal(t, want, c.Connections(core.AllConnections))

	ok, err := c.WouldMakeComplete(want[0])
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = c.WouldMakeComplete(core.Connection{From: 0, To: 1, Dir: core.Right})
	require.ErrorIs(t, err, core.ErrInternalInconsistency)
}

func TestCluster_InternalConnections(t *testing.T) {
	b := boardFromRows(t, "2-2")
	mustAdd(t, b, 0, 0, 2, 0)

	c, err := b.ClusterOf(1)
	require.NoError(t, err)
	// the second bridge is internal and listed from both ends
	assert.Equal(t, []core.Connection{
		{From: 0, To: 1, Dir: core.Right},
		{From: 1, To: 0, Dir: core.Left},
	}, c.InternalConnections())
	assert.Empty(t, c.ExternalConnections())
}

func TestCluster_WouldMakeComplete(t *testing.T) {
	// (0,0)=2 joined to (2,0)=1; (0,2)=2 above still open
	b := boardFromRows(t,
		"2--",
		"---",
		"2-1",
	)
	mustAdd(t, b, 0, 0, 2, 0)
	bottom, top := idx(t, b, 0, 0), idx(t, b, 0, 2)
	conn := core.Connection{From: bottom, To: top, Dir: core.Up}

	c, err := b.ClusterOf(bottom)
	require.NoError(t, err)
	ok, err := c.WouldMakeComplete(conn)
	require.NoError(t, err)
	assert.True(t, ok)

	// top can take both of its bridges through the link
	other, err := b.ClusterOf(top)
	require.NoError(t, err)
	ok, err = other.WouldMakeComplete(conn)
	require.NoError(t, err)
	assert.True(t, ok)

	// with one slot left it cannot
	_, err = b.CloseSlots(top, core.Down, 1, true)
	require.NoError(t, err)
	ok, err = other.WouldMakeComplete(conn)
	require.NoError(t, err)
	assert.False(t, ok)
}
