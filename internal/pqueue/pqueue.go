// Package pqueue implements the indexed binary max-heap the greedy
// constructor uses to pick the highest-vote-weight vertex in O(log n).
//
// It extends a textbook array-based heap with vertex-side bookkeeping: each
// stored vertex remembers its own slot (domgraph.Vertex.PQIndex) and
// membership (domgraph.Vertex.InPQ), so a caller holding a *domgraph.Vertex
// can call DecreasePriority in O(log n) without searching the heap — the
// only externally visible way to touch a vertex in sub-linear time is via
// that index, exactly as in the teacher library's edgePQ
// (prim_kruskal.Prim) except here priorities only ever decrease, so there
// is no increase-priority operation to support.
package pqueue

import "github.com/katalvlaran/domset/internal/domgraph"

const minCapacity = 64

// Heap is a binary max-heap of (key, vertex) pairs keyed by a float64
// priority. Ties break arbitrarily but deterministically within a run
// (whichever element the heap happens to compare first).
type Heap struct {
	keys  []float64
	verts []*domgraph.Vertex
}

// New returns an empty Heap pre-sized to minCapacity.
func New() *Heap {
	return &Heap{
		keys:  make([]float64, 0, minCapacity),
		verts: make([]*domgraph.Vertex, 0, minCapacity),
	}
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap) IsEmpty() bool { return len(h.verts) == 0 }

// Len reports the number of elements currently stored.
func (h *Heap) Len() int { return len(h.verts) }

// Insert adds (key, v) to the heap. v must not already be present.
//
// Complexity: O(log n).
func (h *Heap) Insert(key float64, v *domgraph.Vertex) {
	if v.InPQ {
		panic("pqueue: Insert called on a vertex already in the heap")
	}
	v.InPQ = true
	idx := len(h.keys)
	h.keys = append(h.keys, key)
	h.verts = append(h.verts, v)
	v.PQIndex = idx
	h.siftUp(idx)
}

// Peek returns the maximum-key vertex without removing it. Must not be
// called on an empty heap.
func (h *Heap) Peek() (float64, *domgraph.Vertex) {
	if h.IsEmpty() {
		panic("pqueue: Peek on empty heap")
	}
	return h.keys[0], h.verts[0]
}

// Pop removes and returns the maximum-key vertex, clearing its membership.
// Must not be called on an empty heap.
//
// Complexity: O(log n).
func (h *Heap) Pop() (float64, *domgraph.Vertex) {
	if h.IsEmpty() {
		panic("pqueue: Pop on empty heap")
	}
	topKey, topVert := h.keys[0], h.verts[0]
	last := len(h.verts) - 1
	h.keys[0] = h.keys[last]
	h.verts[0] = h.verts[last]
	h.verts[0].PQIndex = 0
	h.keys = h.keys[:last]
	h.verts = h.verts[:last]
	if last > 0 {
		h.siftDown(0)
	}
	h.maybeShrink()
	topVert.InPQ = false
	return topKey, topVert
}

// KeyOf returns v's current priority. v must be present in the heap.
func (h *Heap) KeyOf(v *domgraph.Vertex) float64 {
	if !v.InPQ {
		panic("pqueue: KeyOf called on a vertex not in the heap")
	}
	return h.keys[v.PQIndex]
}

// DecreasePriority lowers v's key to newKey, which must be strictly less
// than v's current key, and restores the heap by sifting down only (a
// strict decrease can never require sifting up). v must already be
// present.
//
// Complexity: O(log n).
func (h *Heap) DecreasePriority(v *domgraph.Vertex, newKey float64) {
	if !v.InPQ {
		panic("pqueue: DecreasePriority called on a vertex not in the heap")
	}
	idx := v.PQIndex
	if !(newKey < h.keys[idx]) {
		panic("pqueue: DecreasePriority requires newKey strictly less than the current key")
	}
	h.keys[idx] = newKey
	h.siftDown(idx)
}

func (h *Heap) swap(i, j int) {
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.verts[i], h.verts[j] = h.verts[j], h.verts[i]
	h.verts[i].PQIndex = i
	h.verts[j].PQIndex = j
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.keys[i] <= h.keys[parent] {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown restores the heap property rooted at i by repeatedly swapping
// with the greater-keyed child (ties broken toward the left child).
func (h *Heap) siftDown(i int) {
	n := len(h.keys)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.keys[left] > h.keys[largest] {
			largest = left
		}
		if right < n && h.keys[right] > h.keys[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *Heap) maybeShrink() {
	capacity := cap(h.keys)
	if capacity <= minCapacity {
		return
	}
	if len(h.keys) >= capacity/4 {
		return
	}
	newCap := capacity / 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	newKeys := make([]float64, len(h.keys), newCap)
	newVerts := make([]*domgraph.Vertex, len(h.verts), newCap)
	copy(newKeys, h.keys)
	copy(newVerts, h.verts)
	h.keys = newKeys
	h.verts = newVerts
}
