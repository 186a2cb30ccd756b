package reduce

import "github.com/katalvlaran/domset/internal/domgraph"

// fixVertex commits v to the dominating set: its current neighbors are
// marked dominated and v moves into g.Fixed (capturing its DominatedBy count
// at the moment of commitment), then v is removed from the active graph.
// Finally, every one of v's former neighbors that turns out redundant after
// v's departure is removed too — mirroring the original solver's
// _fix_vertex_and_mark_removed, which runs exactly this post-hoc check
// against the neighbor list it captured before clearing it.
func fixVertex(g *domgraph.Graph, v *domgraph.Vertex) {
	domgraph.AddToFixed(g, v.ID, v.DominatedBy)
	domgraph.MarkNeighborsDominated(v)

	neighbors := append([]*domgraph.Vertex(nil), v.Neighbors...)
	domgraph.MarkRemoved(g, v)

	for _, u := range neighbors {
		if !u.Removed && isRedundant(u) {
			domgraph.MarkRemoved(g, u)
		}
	}
}

// fixVertexPair commits both v and w to the dominating set in one step (Rule
// 2's two-fix outcome), then runs the same post-hoc redundancy check as
// fixVertex over their combined former neighborhood.
func fixVertexPair(g *domgraph.Graph, v, w *domgraph.Vertex) {
	domgraph.AddToFixed(g, v.ID, v.DominatedBy)
	domgraph.AddToFixed(g, w.ID, w.DominatedBy)
	domgraph.MarkNeighborsDominated(v)
	domgraph.MarkNeighborsDominated(w)

	neighbors := make([]*domgraph.Vertex, 0, v.Degree()+w.Degree())
	neighbors = append(neighbors, v.Neighbors...)
	neighbors = append(neighbors, w.Neighbors...)

	domgraph.MarkRemoved(g, v)
	domgraph.MarkRemoved(g, w)

	for _, u := range neighbors {
		if !u.Removed && isRedundant(u) {
			domgraph.MarkRemoved(g, u)
		}
	}
}
