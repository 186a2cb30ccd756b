package domgraph

// markRemoved excises v from the active graph: it sets Removed, deletes all
// of v's incident edges symmetrically from its neighbors (swap-with-last in
// each neighbor's adjacency slice), decrements M by v's former degree, and
// clears v's own neighbor slice. It does not touch Active or N — callers
// that also need the slot reclaimed call deleteSlot separately (reduce's
// sweep does this lazily, as it walks past the slot).
//
// Complexity: O(degree(v)).
func markRemoved(g *Graph, v *Vertex) {
	assertf(!v.Removed, "markRemoved: vertex %d already removed", v.ID)
	removeEdges(g, v)
	v.Removed = true
}

// removeEdges deletes every edge incident to v, in both directions, and
// clears v's neighbor slice. g.M is decremented by v's degree.
func removeEdges(g *Graph, v *Vertex) {
	for _, u := range v.Neighbors {
		assertf(!u.Removed, "removeEdges: neighbor %d of %d already removed", u.ID, v.ID)
		removeNeighborRef(u, v)
	}
	g.M -= uint32(len(v.Neighbors))
	v.Neighbors = nil
}

// removeNeighborRef deletes the single reference to target from host's
// adjacency slice via swap-with-last.
func removeNeighborRef(host, target *Vertex) {
	for i, n := range host.Neighbors {
		if n == target {
			last := len(host.Neighbors) - 1
			host.Neighbors[i] = host.Neighbors[last]
			host.Neighbors = host.Neighbors[:last]
			return
		}
	}
	assertf(false, "removeNeighborRef: %d has no edge to %d", host.ID, target.ID)
}

// deleteSlot releases the vertex record at Active slot i (which must
// already be Removed) and fills the hole by moving the tail element into
// it, decrementing N. It does not shift any other slot.
//
// Complexity: O(1).
func deleteSlot(g *Graph, i int) {
	s := g.Active.Slice()
	assertf(s[i].Removed, "deleteSlot: slot %d not marked removed", i)
	last := g.Active.Len() - 1
	s[i] = s[last]
	g.Active.Truncate(last)
	g.N--
}

// addToFixed appends a minimal record to g.Fixed.
func addToFixed(g *Graph, id uint32, dominatedBy uint32) {
	g.Fixed = append(g.Fixed, FixedRecord{ID: id, DominatedBy: dominatedBy})
}

// MarkRemoved is the exported entry point used by internal/reduce to
// excise a vertex from the active graph without also
// reclaiming its Active slot (the caller's own sweep reclaims slots lazily
// when it next encounters them).
func MarkRemoved(g *Graph, v *Vertex) { markRemoved(g, v) }

// DeleteSlot is the exported entry point for reclaiming an already-removed
// vertex's Active slot.
func DeleteSlot(g *Graph, i int) { deleteSlot(g, i) }

// AddToFixed is the exported entry point for moving a vertex's minimal
// record into g.Fixed.
func AddToFixed(g *Graph, id uint32, dominatedBy uint32) { addToFixed(g, id, dominatedBy) }

// MarkNeighborsDominated increments DominatedBy for every active neighbor
// of v, reflecting that v has just been fixed (and therefore dominates its
// whole closed neighborhood).
func MarkNeighborsDominated(v *Vertex) {
	for _, u := range v.Neighbors {
		u.DominatedBy++
	}
}
