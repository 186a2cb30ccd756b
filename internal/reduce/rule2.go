package reduce

import "github.com/katalvlaran/domset/internal/domgraph"

// rule2Classify is rule1Classify's two-vertex analogue: u is tagged N1 (1)
// if it has a neighbor outside {v,w}'s combined closed neighborhood that is
// still undominated, N2 (2) if every outside neighbor it has is already
// dominated, N3 (0) if it has none.
func rule2Classify(vwID1, vwID2 uint32, u *domgraph.Vertex) int {
	outsideDominated := false
	for _, x := range u.Neighbors {
		if x.NeighborTag != vwID1 && x.NeighborTag != vwID2 {
			if x.DominatedBy == 0 {
				return 1
			}
			outsideDominated = true
		}
	}
	if outsideDominated {
		return 2
	}
	return 0
}

// rule2InN2 is rule1InN2's two-vertex analogue.
func rule2InN2(vwID1, vwID2 uint32, u *domgraph.Vertex) bool {
	if u.DominatedBy > 0 {
		return true
	}
	for _, x := range u.Neighbors {
		if x.NeighborTag == vwID1 || x.NeighborTag == vwID2 {
			return true
		}
	}
	return false
}

// isSubsetOfNeighborhood reports whether every vertex in the list is a
// neighbor of v.
func isSubsetOfNeighborhood(vertices []*domgraph.Vertex, v *domgraph.Vertex) bool {
	for _, x := range v.Neighbors {
		x.NeighborTag = v.ID
	}
	for _, x := range vertices {
		if x.NeighborTag != v.ID {
			return false
		}
	}
	return true
}

// rule2ReduceVertices applies Rule 2 to the pair (v, w): it classifies the
// combined neighborhood outside {v,w} into N2/N3 (folding any N3 vertex that
// also satisfies the N2 condition into N2), and, provided the N3 survivors
// have no common neighbor outside {v,w}, works out which of N3/N2(v)/N2(w)
// can be dropped and whether v, w, or both can be fixed — including the
// extra case where v and w are not adjacent, share no N1 witness, and one or
// both are themselves still undominated (the "isolated component" case).
// Returns true iff it fixed at least one of v or w.
func rule2ReduceVertices(g *domgraph.Graph, v, w *domgraph.Vertex) bool {
	w.NeighborTag = w.ID
	for _, x := range w.Neighbors {
		x.NeighborTag = w.ID
	}
	v.NeighborTag = v.ID
	for _, x := range v.Neighbors {
		x.NeighborTag = v.ID
	}
	vAndWAdjacent := w.NeighborTag == v.ID

	n2 := make([]*domgraph.Vertex, 0, v.Degree()+w.Degree())
	n3 := make([]*domgraph.Vertex, 0, v.Degree()+w.Degree())
	countN1 := 0

	for _, u := range v.Neighbors {
		if u == w {
			continue
		}
		switch rule2Classify(v.ID, w.ID, u) {
		case 0:
			n3 = append(n3, u)
		case 2:
			n2 = append(n2, u)
		default:
			countN1++
		}
	}
	for _, u := range w.Neighbors {
		if u == v || u.NeighborTag != w.ID {
			continue
		}
		switch rule2Classify(v.ID, w.ID, u) {
		case 0:
			n3 = append(n3, u)
		case 2:
			n2 = append(n2, u)
		default:
			countN1++
		}
	}

	for _, u := range n2 {
		u.NeighborTag = u.ID
	}
	for _, u := range n3 {
		u.NeighborTag = u.ID
	}
	v.NeighborTag = 0
	w.NeighborTag = 0
	for i := 0; i < len(n3); i++ {
		u := n3[i]
		if rule2InN2(v.ID, w.ID, u) {
			n2 = append(n2, u)
			last := len(n3) - 1
			n3[i] = n3[last]
			n3 = n3[:last]
			i--
		}
	}
	v.NeighborTag = v.ID
	w.NeighborTag = w.ID

	if len(n3) == 0 || commonNeighborExists(n3, v, w) {
		return false
	}

	vAlone := isSubsetOfNeighborhood(n3, v)
	wAlone := isSubsetOfNeighborhood(n3, w)

	var removeN3, removeN2V, removeN2W, fixV, fixW bool
	switch {
	case vAlone && wAlone:
		// every N3 survivor is a neighbor of both: neither v nor w alone
		// dominates them exclusively, so nothing can be committed yet.
	case vAlone:
		removeN3, removeN2V, fixV = true, true, true
	case wAlone:
		removeN3, removeN2W, fixW = true, true, true
	default:
		removeN3, removeN2V, removeN2W, fixV, fixW = true, true, true, true, true
	}

	if countN1 == 0 && !vAndWAdjacent {
		switch {
		case v.DominatedBy == 0 && w.DominatedBy == 0:
			removeN3, removeN2V, removeN2W, fixV, fixW = true, true, true, true, true
		case v.DominatedBy == 0:
			removeN2V, fixV = true, true
		case w.DominatedBy == 0:
			removeN2W, fixW = true, true
		}
	}

	if removeN3 {
		for _, u := range n3 {
			if !u.Removed {
				domgraph.MarkRemoved(g, u)
			}
		}
	}
	if removeN2V {
		for _, x := range v.Neighbors {
			x.NeighborTag = v.ID
		}
		for _, u := range n2 {
			if !u.Removed && u.NeighborTag == v.ID {
				domgraph.MarkRemoved(g, u)
			}
		}
	}
	if removeN2W {
		for _, x := range w.Neighbors {
			x.NeighborTag = w.ID
		}
		for _, u := range n2 {
			if !u.Removed && u.NeighborTag == w.ID {
				domgraph.MarkRemoved(g, u)
			}
		}
	}

	switch {
	case fixV && fixW:
		fixVertexPair(g, v, w)
	case fixV:
		fixVertex(g, v)
	case fixW:
		fixVertex(g, w)
	}

	return fixV || fixW
}
