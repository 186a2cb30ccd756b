// Package greedy implements the vote-weighted greedy dominating-set
// constructor: given a (possibly already partially dominated) graph, it
// selects vertices by a binary max-heap keyed on a continuously maintained
// vote weight until every active vertex is dominated, then trims any
// selected vertex that turns out to be redundant.
package greedy

import (
	"github.com/katalvlaran/domset/internal/domgraph"
	"github.com/katalvlaran/domset/internal/pqueue"
)

// InitVotes sets every active vertex's Vote to 1/(degree+1). Must be called
// once per solve, on the reduced graph, before the first Construct call;
// Vote is read-only for the remainder of the run.
func InitVotes(g *domgraph.Graph) {
	for _, v := range g.Active.Slice() {
		v.Vote = 1.0 / float64(v.Degree()+1)
	}
}

// Construct grows a feasible dominating set over g's active vertices,
// reusing whatever InDS/DominatedBy state is already present (the iterated-
// greedy orchestrator calls this after a deconstruction pass leaves the
// graph partially uncovered). It returns the number of active vertices
// currently selected after trimming.
//
// Complexity: O((V + E) log V) — each vertex is popped at most once, and
// each edge contributes a constant number of decrease_priority calls.
func Construct(g *domgraph.Graph) int {
	active := g.Active.Slice()
	h := pqueue.New()
	undominated := 0

	for _, v := range active {
		weight := 0.0
		if v.DominatedBy == 0 {
			undominated++
			weight = v.Vote
		}
		for _, u := range v.Neighbors {
			if u.DominatedBy == 0 {
				weight += u.Vote
			}
		}
		if weight > 0.0 {
			h.Insert(weight, v)
		}
	}

	for undominated > 0 {
		_, v := h.Pop()
		v.InDS = true
		v.DominatedBy++
		newlyDominated := v.DominatedBy == 1
		if newlyDominated {
			undominated--
		}

		for _, u1 := range v.Neighbors {
			u1.DominatedBy++
			delta := 0.0
			if newlyDominated {
				delta += v.Vote
			}
			if u1.DominatedBy == 1 {
				delta += u1.Vote
				undominated--
				for _, u2 := range u1.Neighbors {
					if u2.InPQ {
						h.DecreasePriority(u2, h.KeyOf(u2)-u1.Vote)
					}
				}
			}
			if u1.InPQ && delta > 0 {
				h.DecreasePriority(u1, h.KeyOf(u1)-delta)
			}
		}
	}
	// Drain what is left so every vertex's InPQ is clear for the next call.
	for !h.IsEmpty() {
		h.Pop()
	}

	return MakeMinimal(g)
}

// MakeMinimal scans the current selection and deselects any vertex whose
// removal would not uncover anyone: a selected v is redundant iff v itself
// and every one of its neighbors has DominatedBy >= 2. It returns the
// resulting selection size.
//
// Two consecutive calls are idempotent (R2): the second finds nothing left
// to trim, because the first already removed every vertex satisfying the
// redundancy condition and removing one can only lower neighbors'
// DominatedBy, never raise it back above the threshold for a vertex
// already passed over.
func MakeMinimal(g *domgraph.Graph) int {
	size := 0
	for _, v := range g.Active.Slice() {
		if v.InDS {
			size++
		}
	}
	for _, v := range g.Active.Slice() {
		if !v.InDS || v.DominatedBy < 2 {
			continue
		}
		redundant := true
		for _, u := range v.Neighbors {
			if u.DominatedBy < 2 {
				redundant = false
				break
			}
		}
		if redundant {
			v.InDS = false
			size--
			v.DominatedBy--
			for _, u := range v.Neighbors {
				u.DominatedBy--
			}
		}
	}
	return size
}
