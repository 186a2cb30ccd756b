package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/domgraph"
)

func checkHeapInvariant(t *testing.T, h *Heap) {
	t.Helper()
	n := len(h.keys)
	for i := 0; i < n; i++ {
		left, right := 2*i+1, 2*i+2
		if left < n {
			require.GreaterOrEqual(t, h.keys[i], h.keys[left])
		}
		if right < n {
			require.GreaterOrEqual(t, h.keys[i], h.keys[right])
		}
		require.Equal(t, i, h.verts[i].PQIndex)
		require.True(t, h.verts[i].InPQ)
	}
}

func TestInsertPeekPop(t *testing.T) {
	h := New()
	a := &domgraph.Vertex{ID: 1}
	b := &domgraph.Vertex{ID: 2}
	c := &domgraph.Vertex{ID: 3}
	h.Insert(1.0, a)
	h.Insert(3.0, b)
	h.Insert(2.0, c)
	checkHeapInvariant(t, h)

	key, top := h.Peek()
	require.Equal(t, 3.0, key)
	require.Same(t, b, top)

	key, top = h.Pop()
	require.Equal(t, 3.0, key)
	require.Same(t, b, top)
	require.False(t, b.InPQ)
	checkHeapInvariant(t, h)

	key, top = h.Pop()
	require.Equal(t, 2.0, key)
	require.Same(t, c, top)

	key, top = h.Pop()
	require.Equal(t, 1.0, key)
	require.Same(t, a, top)

	require.True(t, h.IsEmpty())
}

func TestDecreasePriority(t *testing.T) {
	h := New()
	a := &domgraph.Vertex{ID: 1}
	b := &domgraph.Vertex{ID: 2}
	h.Insert(5.0, a)
	h.Insert(4.0, b)
	h.DecreasePriority(a, 1.0)
	checkHeapInvariant(t, h)
	key, top := h.Peek()
	require.Equal(t, 4.0, key)
	require.Same(t, b, top)
	require.Equal(t, 1.0, h.KeyOf(a))
}

func TestDecreasePriorityMustStrictlyDecrease(t *testing.T) {
	h := New()
	a := &domgraph.Vertex{ID: 1}
	h.Insert(5.0, a)
	require.Panics(t, func() { h.DecreasePriority(a, 5.0) })
	require.Panics(t, func() { h.DecreasePriority(a, 6.0) })
}

func TestInsertRejectsDuplicate(t *testing.T) {
	h := New()
	a := &domgraph.Vertex{ID: 1}
	h.Insert(1.0, a)
	require.Panics(t, func() { h.Insert(2.0, a) })
}

func TestRandomizedHeapInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := New()
	verts := make([]*domgraph.Vertex, 0, 500)
	for i := 0; i < 500; i++ {
		v := &domgraph.Vertex{ID: uint32(i + 1)}
		h.Insert(rng.Float64()*100, v)
		verts = append(verts, v)
		checkHeapInvariant(t, h)
	}
	// Randomly decrease some priorities.
	for _, v := range verts {
		if v.InPQ && rng.Float64() < 0.3 {
			h.DecreasePriority(v, h.KeyOf(v)-rng.Float64()*10-0.1)
			checkHeapInvariant(t, h)
		}
	}
	var last float64
	first := true
	for !h.IsEmpty() {
		key, _ := h.Pop()
		if !first {
			require.LessOrEqual(t, key, last)
		}
		last = key
		first = false
		checkHeapInvariant(t, h)
	}
}

func TestShrinkAfterManyPops(t *testing.T) {
	h := New()
	for i := 0; i < 1000; i++ {
		h.Insert(float64(i), &domgraph.Vertex{ID: uint32(i + 1)})
	}
	for i := 0; i < 990; i++ {
		h.Pop()
	}
	require.Equal(t, 10, h.Len())
	checkHeapInvariant(t, h)
}
