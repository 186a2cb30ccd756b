package domgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// path builds a simple path 1-2-...-n and returns the graph plus its
// vertices in id order.
func path(n int) (*Graph, []*Vertex) {
	g := New(n)
	vs := make([]*Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(uint32(i + 1))
	}
	for i := 0; i+1 < n; i++ {
		g.Connect(vs[i], vs[i+1])
	}
	return g, vs
}

func TestConnectSymmetric(t *testing.T) {
	g, vs := path(3)
	require.NoError(t, g.CheckInvariants())
	require.Equal(t, uint32(2), g.M)
	require.Equal(t, 1, vs[0].Degree())
	require.Equal(t, 2, vs[1].Degree())
}

func TestMarkRemovedCleansAdjacency(t *testing.T) {
	g, vs := path(3)
	MarkRemoved(g, vs[1])
	require.True(t, vs[1].Removed)
	require.Equal(t, 0, vs[1].Degree())
	require.Equal(t, 0, vs[0].Degree())
	require.Equal(t, 0, vs[2].Degree())
	require.Equal(t, uint32(0), g.M)
}

func TestMarkNeighborsDominatedThenFix(t *testing.T) {
	g, vs := path(3)
	MarkNeighborsDominated(vs[1])
	addToFixed(g, vs[1].ID, vs[1].DominatedBy)
	MarkRemoved(g, vs[1])
	require.Len(t, g.Fixed, 1)
	require.Equal(t, uint32(2), g.Fixed[0].ID)
	require.Equal(t, uint32(1), vs[0].DominatedBy)
	require.Equal(t, uint32(1), vs[2].DominatedBy)
	require.True(t, vs[1].Removed)
}

func TestDeleteSlotSwapsWithLast(t *testing.T) {
	g := New(3)
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	c := g.AddVertex(3)
	MarkRemoved(g, b)
	DeleteSlot(g, 1)
	require.Equal(t, uint32(2), g.N)
	s := g.Active.Slice()
	require.ElementsMatch(t, []*Vertex{a, c}, s)
}

func TestSolutionOrder(t *testing.T) {
	g, vs := path(4)
	addToFixed(g, 99, 1)
	vs[2].InDS = true
	vs[3].InDS = true
	require.Equal(t, []uint32{99, vs[2].ID, vs[3].ID}, g.Solution())
}

func TestCheckInvariantsCatchesDuplicateID(t *testing.T) {
	g := New(2)
	a := g.AddVertex(1)
	b := g.AddVertex(1)
	g.Connect(a, b)
	require.Error(t, g.CheckInvariants())
}
