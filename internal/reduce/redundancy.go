package reduce

import "github.com/katalvlaran/domset/internal/domgraph"

// commonNeighborExists reports whether vertices share a common neighbor,
// using NeighborTag as a running "survivor set" marker: vertices[0]'s own id
// and its neighbors seed the tag, then each subsequent vertex in the list
// narrows the tag to only those still shared with it. ignoreV and ignoreW
// (either may be nil) are excluded from ever counting as the common
// neighbor, since a vertex cannot witness its own redundancy.
//
// A list of zero or one vertices trivially has a common neighbor (there is
// nothing to disagree with).
func commonNeighborExists(vertices []*domgraph.Vertex, ignoreV, ignoreW *domgraph.Vertex) bool {
	if len(vertices) <= 1 {
		return true
	}

	u0 := vertices[0]
	u0.NeighborTag = u0.ID
	for _, x := range u0.Neighbors {
		x.NeighborTag = u0.ID
	}
	if ignoreV != nil {
		ignoreV.NeighborTag = 0
	}
	if ignoreW != nil {
		ignoreW.NeighborTag = 0
	}

	prevID := u0.ID
	for _, u := range vertices[1:] {
		found := false
		for _, x := range u.Neighbors {
			if x.NeighborTag == prevID {
				found = true
				x.NeighborTag = u.ID
			} else {
				x.NeighborTag = 0
			}
		}
		if u.NeighborTag == prevID {
			found = true
			u.NeighborTag = u.ID
		} else {
			u.NeighborTag = 0
		}
		prevID = u.ID
		if !found {
			return false
		}
	}
	return true
}

// isRedundant reports whether u's undominated neighbors (the only ones a
// future witness could still need u for) all share some other common
// neighbor, meaning u itself could be dropped from the dominating set
// without uncovering anyone.
func isRedundant(u *domgraph.Vertex) bool {
	undominated := make([]*domgraph.Vertex, 0, u.Degree())
	for _, x := range u.Neighbors {
		if x.DominatedBy == 0 {
			undominated = append(undominated, x)
		}
	}
	return commonNeighborExists(undominated, u, nil)
}
