package reduce

import "github.com/katalvlaran/domset/internal/domgraph"

// rule1Classify places a single neighbor u of v relative to v's closed
// neighborhood, tagged via v.NeighborTag / each neighbor's
// NeighborTag == v.ID.
//
// Returns 1 if u belongs to N1 (some neighbor of u outside v's closed
// neighborhood is undominated), 2 if u has outside neighbors and every one
// of them is already dominated, 0 if u has no neighbor outside v's closed
// neighborhood at all (an N3 candidate).
func rule1Classify(vID uint32, u *domgraph.Vertex) int {
	outsideDominated := false
	for _, x := range u.Neighbors {
		if x.NeighborTag != vID {
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

// rule1InN2 reports whether u (already known to carry no N1 witness) is
// "safe on its own": either already dominated, or adjacent to a vertex
// still tagged v.ID. By the time it is called, v's own tag is cleared and
// the N2/N3 candidates carry their own IDs, so the still-tagged vertices
// are exactly v's N1 neighbors.
func rule1InN2(vID uint32, u *domgraph.Vertex) bool {
	if u.DominatedBy > 0 {
		return true
	}
	for _, x := range u.Neighbors {
		if x.NeighborTag == vID {
			return true
		}
	}
	return false
}

// rule1ReduceVertex applies the degree-0/1 simple rules and, for degree >= 2,
// the full Rule 1 case analysis: if every neighbor of v lies in N2 ∪ N3 and
// v is itself undominated, or some N3 neighbor fails to also qualify for
// N2, then v together with its whole neighborhood can be fixed as a single
// dominating vertex. Returns true iff it reduced something.
func rule1ReduceVertex(g *domgraph.Graph, v *domgraph.Vertex) bool {
	switch v.Degree() {
	case 0:
		if v.DominatedBy == 0 {
			fixVertex(g, v)
		} else {
			domgraph.MarkRemoved(g, v)
		}
		return true
	case 1:
		if v.DominatedBy == 0 {
			fixVertex(g, v.Neighbors[0])
		} else {
			domgraph.MarkRemoved(g, v)
		}
		return true
	}

	n2 := make([]*domgraph.Vertex, 0, v.Degree())
	n3 := make([]*domgraph.Vertex, 0, v.Degree())

	v.NeighborTag = v.ID
	for _, u := range v.Neighbors {
		u.NeighborTag = v.ID
	}
	for _, u := range v.Neighbors {
		switch rule1Classify(v.ID, u) {
		case 0:
			n3 = append(n3, u)
		case 2:
			n2 = append(n2, u)
		}
	}
	for _, u := range n2 {
		u.NeighborTag = u.ID
	}
	for _, u := range n3 {
		u.NeighborTag = u.ID
	}
	v.NeighborTag = 0

	reducible := false
	if len(n2)+len(n3) == v.Degree() && v.DominatedBy == 0 {
		reducible = true
	} else {
		for _, u := range n3 {
			if !rule1InN2(v.ID, u) {
				reducible = true
				break
			}
		}
	}
	if !reducible {
		return false
	}

	for _, u := range n2 {
		domgraph.MarkRemoved(g, u)
	}
	for _, u := range n3 {
		domgraph.MarkRemoved(g, u)
	}
	fixVertex(g, v)
	return true
}
