package iteratedgreedy

import (
	"github.com/katalvlaran/domset/internal/domgraph"
	"github.com/katalvlaran/domset/internal/rng"
)

// removeFromSelection evicts v from the dominating set, undoing the
// coverage it provided to itself and each neighbor.
func removeFromSelection(v *domgraph.Vertex) {
	v.InDS = false
	v.DominatedBy--
	for _, u := range v.Neighbors {
		u.DominatedBy--
	}
}

// randomDeconstruction evicts every currently-selected vertex independently
// with probability p, returning the resulting selection size.
func randomDeconstruction(g *domgraph.Graph, p float64, currentSize int, r *rng.Source) int {
	for _, v := range g.Active.Slice() {
		if v.InDS && r.Chance(p) {
			removeFromSelection(v)
			currentSize--
		}
	}
	return currentSize
}

// queuedMarkerCounter hands out a fresh epoch value on every call, so a
// deconstruction pass can tell "visited this round" apart from "visited
// some earlier round" without resetting every vertex's QueuedMarker field.
type queuedMarkerCounter struct{ next uint32 }

func (c *queuedMarkerCounter) take() uint32 {
	c.next++
	return c.next
}

// localDeconstruction carves a contiguous hole out of the dominating set via
// breadth-first search from a random start vertex, removing up to maxRemovals
// selected vertices it encounters before the frontier of newly-discovered
// selected vertices itself reaches maxRemovals. Returns the resulting
// selection size.
func localDeconstruction(g *domgraph.Graph, maxRemovals int, currentSize int, r *rng.Source, marker *queuedMarkerCounter) int {
	active := g.Active.Slice()
	n := len(active)
	if n == 0 {
		return currentSize
	}

	epoch := marker.take()
	queue := make([]*domgraph.Vertex, 0, n)
	queue = append(queue, active[r.Intn(n)])

	removed := 0
	dsVerticesQueued := 0
	for len(queue) > 0 && removed < maxRemovals {
		v := queue[0]
		queue = queue[1:]

		if v.InDS {
			removeFromSelection(v)
			removed++
		}
		for _, u := range v.Neighbors {
			if dsVerticesQueued >= maxRemovals {
				break
			}
			if u.QueuedMarker != epoch {
				u.QueuedMarker = epoch
				queue = append(queue, u)
				if u.InDS {
					dsVerticesQueued++
				}
			}
		}
	}
	return currentSize - removed
}
