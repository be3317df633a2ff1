package core

import (
	"fmt"
	"sort"
)

// disjointSet is a union-find forest over vertex indices with path
// compression and union by rank. size is only meaningful at roots.
type disjointSet struct {
	parent []int
	rank   []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// find returns the root of u, compressing the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		// point u at its grandparent
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	// attach the shallower tree under the deeper root
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	ds.size[ru] += ds.size[rv]
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}

func (ds *disjointSet) clone() *disjointSet {
	return &disjointSet{
		parent: append([]int(nil), ds.parent...),
		rank:   append([]int(nil), ds.rank...),
		size:   append([]int(nil), ds.size...),
	}
}

// Cluster is a snapshot of one maximal set of vertices joined by placed edges.
// It stays valid until the next AddEdge on its Board.
type Cluster struct {
	board   *Board
	members []int
	in      map[int]struct{}
}

func newCluster(b *Board, members []int) *Cluster {
	in := make(map[int]struct{}, len(members))
	for _, m := range members {
		in[m] = struct{}{}
	}

	return &Cluster{board: b, members: members, in: in}
}

// Members returns the vertex indices of the cluster in ascending order.
func (c *Cluster) Members() []int {
	return append([]int(nil), c.members...)
}

// Size is the number of member vertices.
func (c *Cluster) Size() int { return len(c.members) }

// Contains reports whether vertex i belongs to the cluster.
func (c *Cluster) Contains(i int) bool {
	_, ok := c.in[i]
	return ok
}

// Complete reports whether every member vertex is complete.
func (c *Cluster) Complete() bool {
	for _, m := range c.members {
		if !c.board.vertices[m].Complete() {
			return false
		}
	}

	return true
}

// ConnectionFilter selects which potential connections Cluster.Connections returns.
type ConnectionFilter int

const (
	// AllConnections keeps every potential connection of the members.
	AllConnections ConnectionFilter = iota
	// InternalOnly keeps connections whose both ends are members.
	InternalOnly
	// ExternalOnly keeps connections that leave the cluster.
	ExternalOnly
)

// Connections lists the potential connections starting at incomplete members,
// in member then direction order. Internal links appear once from each end.
func (c *Cluster) Connections(filter ConnectionFilter) []Connection {
	var out []Connection
	for _, m := range c.members {
		if c.board.vertices[m].Complete() {
			continue
		}
		for _, d := range Directions {
			k := c.board.neighbors[m][d]
			if k == noNeighbor || !c.board.HasPotentialConnection(m, k) {
				continue
			}
			switch filter {
			case InternalOnly:
				if !c.Contains(k) {
					continue
				}
			case ExternalOnly:
				if c.Contains(k) {
					continue
				}
			}
			out = append(out, Connection{From: m, To: k, Dir: d})
		}
	}

	return out
}

// InternalConnections lists potential connections between members.
func (c *Cluster) InternalConnections() []Connection { return c.Connections(InternalOnly) }

// ExternalConnections lists potential connections that cross the cluster boundary.
func (c *Cluster) ExternalConnections() []Connection { return c.Connections(ExternalOnly) }

// WouldMakeComplete reports whether making conn could leave the cluster
// complete: every member other than the two endpoints is already complete and
// each endpoint inside the cluster can reach N through conn alone.
// Returns ErrInternalInconsistency if conn is not a potential connection.
func (c *Cluster) WouldMakeComplete(conn Connection) (bool, error) {
	b := c.board
	if !b.HasPotentialConnection(conn.From, conn.To) {
		return false, fmt.Errorf("%w: %d-%d is not a potential connection", ErrInternalInconsistency, conn.From, conn.To)
	}
	for _, m := range c.members {
		if m == conn.From || m == conn.To {
			continue
		}
		if !b.vertices[m].Complete() {
			return false, nil
		}
	}
	ends := [2]struct {
		idx int
		dir Direction
	}{{conn.From, conn.Dir}, {conn.To, conn.Dir.Opposite()}}
	for _, end := range ends {
		if !c.Contains(end.idx) {
			continue
		}
		v := b.vertices[end.idx]
		if v.Missing() > v.Open(end.dir) {
			return false, nil
		}
	}

	return true, nil
}

// ClusterOf returns the cluster holding vertex i.
func (b *Board) ClusterOf(i int) (*Cluster, error) {
	if err := b.checkIndex(i); err != nil {
		return nil, err
	}
	root := b.clusters.find(i)
	members := make([]int, 0, b.clusters.size[root])
	for j := range b.vertices {
		if b.clusters.find(j) == root {
			members = append(members, j)
		}
	}

	return newCluster(b, members), nil
}

// Clusters returns the current partition ordered by smallest member.
func (b *Board) Clusters() []*Cluster {
	byRoot := make(map[int][]int)
	roots := make([]int, 0)
	for j := range b.vertices {
		r := b.clusters.find(j)
		if _, ok := byRoot[r]; !ok {
			roots = append(roots, r)
		}
		byRoot[r] = append(byRoot[r], j)
	}
	out := make([]*Cluster, 0, len(roots))
	for _, r := range roots {
		out = append(out, newCluster(b, byRoot[r]))
	}
	sort.Slice(out, func(a, c int) bool { return out[a].members[0] < out[c].members[0] })

	return out
}

// ClusterCount is the number of clusters.
func (b *Board) ClusterCount() int {
	n := 0
	for j := range b.vertices {
		if b.clusters.find(j) == j {
			n++
		}
	}

	return n
}

// ClusterSize is the size of the cluster holding vertex i, or 0 for a bad index.
func (b *Board) ClusterSize(i int) int {
	if b.checkIndex(i) != nil {
		return 0
	}

	return b.clusters.size[b.clusters.find(i)]
}

// SameCluster reports whether vertices i and j are joined by placed edges.
func (b *Board) SameCluster(i, j int) bool {
	if b.checkIndex(i) != nil || b.checkIndex(j) != nil {
		return false
	}

	return b.clusters.find(i) == b.clusters.find(j)
}
