package iteratedgreedy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/domgraph"
	"github.com/katalvlaran/domset/internal/greedy"
	"github.com/katalvlaran/domset/internal/rng"
)

func TestRandomDeconstructionWithProbabilityOneClearsSelection(t *testing.T) {
	g := buildCycle(12)
	greedy.InitVotes(g)
	size := greedy.Construct(g)

	r := rng.NewSource(3)
	after := randomDeconstruction(g, 1.0, size, r)
	require.Equal(t, 0, after)
	for _, v := range g.Active.Slice() {
		require.False(t, v.InDS)
	}
}

func TestLocalDeconstructionCapsRemovals(t *testing.T) {
	g := buildCycle(30)
	greedy.InitVotes(g)
	size := greedy.Construct(g)

	r := rng.NewSource(11)
	marker := &queuedMarkerCounter{}
	after := localDeconstruction(g, 3, size, r, marker)
	require.LessOrEqual(t, size-after, 3)
	require.GreaterOrEqual(t, after, 0)
}

func TestLocalDeconstructionMarkerEpochsDontCollide(t *testing.T) {
	g := buildCycle(20)
	greedy.InitVotes(g)
	size := greedy.Construct(g)
	r := rng.NewSource(5)
	marker := &queuedMarkerCounter{}

	for i := 0; i < 5; i++ {
		size = localDeconstruction(g, 4, size, r, marker)
		size = greedy.Construct(g)
	}
	for _, v := range g.Active.Slice() {
		require.NotEqual(t, uint32(0), v.QueuedMarker)
	}
}

func TestRemoveFromSelectionUndoesCoverage(t *testing.T) {
	g := domgraph.New(2)
	a := g.AddVertex(1)
	b := g.AddVertex(2)
	g.Connect(a, b)
	a.InDS = true
	a.DominatedBy = 1
	b.DominatedBy = 1

	removeFromSelection(a)
	require.False(t, a.InDS)
	require.Equal(t, uint32(0), a.DominatedBy)
	require.Equal(t, uint32(0), b.DominatedBy)
}
