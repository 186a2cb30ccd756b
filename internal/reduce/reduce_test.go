package reduce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/domgraph"
)

func generousBudgets() Budgets {
	return Budgets{Total: 500 * time.Millisecond, Rule2: 500 * time.Millisecond}
}

func buildStar(n int) (*domgraph.Graph, []*domgraph.Vertex) {
	g := domgraph.New(n)
	vs := make([]*domgraph.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(uint32(i + 1))
	}
	for i := 1; i < n; i++ {
		g.Connect(vs[0], vs[i])
	}
	return g, vs
}

func buildPath(n int) (*domgraph.Graph, []*domgraph.Vertex) {
	g := domgraph.New(n)
	vs := make([]*domgraph.Vertex, n)
	for i := 0; i < n; i++ {
		vs[i] = g.AddVertex(uint32(i + 1))
	}
	for i := 0; i+1 < n; i++ {
		g.Connect(vs[i], vs[i+1])
	}
	return g, vs
}

// TestReduceIsolatedVertexIsFixed covers the degree-0 simple rule: an
// isolated, undominated vertex must dominate itself.
func TestReduceIsolatedVertexIsFixed(t *testing.T) {
	g := domgraph.New(1)
	g.AddVertex(1)
	Reduce(g, generousBudgets())
	require.Equal(t, []uint32{1}, g.Solution())
}

// TestReduceLeafForcesNeighborIntoSolution covers the degree-1 simple rule:
// an undominated leaf forces its sole neighbor to be fixed, which in turn
// dominates the leaf.
func TestReduceLeafForcesNeighborIntoSolution(t *testing.T) {
	g, vs := buildPath(2)
	Reduce(g, generousBudgets())
	require.Contains(t, g.Solution(), vs[1].ID)
}

// TestReduceStarFixesCenterOnly exercises Rule 1: a star's center dominates
// every leaf, so the whole graph reduces to a single fixed vertex.
func TestReduceStarFixesCenterOnly(t *testing.T) {
	g, vs := buildStar(8)
	Reduce(g, generousBudgets())
	sol := g.Solution()
	require.Len(t, sol, 1)
	require.Equal(t, vs[0].ID, sol[0])
}

// TestReduceTrianglePairSharingEdge reduces two triangles sharing an edge
// (v, w). v is adjacent to every other vertex, so Rule 1 on v (swept first)
// fixes v alone and removes the rest; Rule 2's isolated-component case does
// not apply because v and w are adjacent.
func TestReduceTrianglePairSharingEdge(t *testing.T) {
	g := domgraph.New(4)
	v := g.AddVertex(1)
	w := g.AddVertex(2)
	a := g.AddVertex(3)
	b := g.AddVertex(4)
	g.Connect(v, w)
	g.Connect(v, a)
	g.Connect(w, a)
	g.Connect(v, b)
	g.Connect(w, b)

	Reduce(g, generousBudgets())
	sol := g.Solution()
	require.GreaterOrEqual(t, len(sol), 1)
	require.NoError(t, g.CheckInvariants())
}

// TestReduceIdempotentOnKernel checks that running Reduce again on an
// already-reduced graph (nothing left but isolated fixed vertices) leaves
// the solution unchanged.
func TestReduceIdempotentOnKernel(t *testing.T) {
	g, _ := buildStar(5)
	Reduce(g, generousBudgets())
	first := append([]uint32(nil), g.Solution()...)
	Reduce(g, generousBudgets())
	require.Equal(t, first, g.Solution())
}

// TestReducePreservesInvariants runs the reduction kernel over a small
// irregular graph and checks the graph store's own invariants still hold
// over whatever active kernel remains.
func TestReducePreservesInvariants(t *testing.T) {
	g := domgraph.New(6)
	vs := make([]*domgraph.Vertex, 6)
	for i := range vs {
		vs[i] = g.AddVertex(uint32(i + 1))
	}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 2}}
	for _, e := range edges {
		g.Connect(vs[e[0]], vs[e[1]])
	}
	Reduce(g, generousBudgets())
	require.NoError(t, g.CheckInvariants())
}
