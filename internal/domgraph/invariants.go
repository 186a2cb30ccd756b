package domgraph

import "fmt"

// CheckInvariants audits I1–I7 from spec.md §3 against the current graph
// state. It is a debug/test helper, not part of any production code path —
// the solver itself never calls it; package tests and internal/reduce's
// round-trip tests do, the way lvlath/core ships validator helpers that
// production code doesn't depend on.
//
// Returns the first violation found, or nil if every invariant holds.
func (g *Graph) CheckInvariants() error {
	active := g.Active.Slice()
	seen := make(map[*Vertex]bool, len(active))
	ids := make(map[uint32]bool, len(active)+len(g.Fixed))

	var edgeCount uint32
	for _, v := range active {
		if v.Removed {
			return fmt.Errorf("domgraph: active slot holds removed vertex %d", v.ID)
		}
		if v.ID == 0 {
			return fmt.Errorf("domgraph: active vertex has sentinel id 0")
		}
		if ids[v.ID] {
			return fmt.Errorf("domgraph: duplicate id %d (I5)", v.ID)
		}
		ids[v.ID] = true
		seen[v] = true
		edgeCount += uint32(len(v.Neighbors))

		for _, u := range v.Neighbors {
			if u == v {
				return fmt.Errorf("domgraph: self-loop at vertex %d (I5)", v.ID)
			}
			if u.Removed {
				return fmt.Errorf("domgraph: vertex %d has removed neighbor %d (I1)", v.ID, u.ID)
			}
		}
	}
	// I2: adjacency symmetry.
	for _, v := range active {
		for _, u := range v.Neighbors {
			if !containsRef(u.Neighbors, v) {
				return fmt.Errorf("domgraph: asymmetric adjacency between %d and %d (I2)", v.ID, u.ID)
			}
		}
	}
	// I3: m equals half the sum of active degrees.
	if edgeCount%2 != 0 {
		return fmt.Errorf("domgraph: odd sum of degrees %d (I3)", edgeCount)
	}
	if edgeCount/2 != g.M {
		return fmt.Errorf("domgraph: M=%d does not match half degree-sum %d (I3)", g.M, edgeCount/2)
	}
	if uint32(len(active)) != g.N {
		return fmt.Errorf("domgraph: N=%d does not match active length %d", g.N, len(active))
	}
	// I4: dominated_by_number equals count of InDS vertices in closed
	// neighborhood. Only InDS vertices are counted, so an active vertex
	// whose DominatedBy includes coverage from an already-fixed neighbor
	// (as reduction leaves behind) is reported as a violation.
	for _, v := range active {
		want := uint32(0)
		if v.InDS {
			want++
		}
		for _, u := range v.Neighbors {
			if u.InDS {
				want++
			}
		}
		if v.DominatedBy != want {
			return fmt.Errorf("domgraph: vertex %d DominatedBy=%d want %d (I4)", v.ID, v.DominatedBy, want)
		}
	}
	// I5: no duplicate ids across fixed + active.
	for _, f := range g.Fixed {
		if ids[f.ID] {
			return fmt.Errorf("domgraph: fixed id %d collides with active id (I5/I7)", f.ID)
		}
		ids[f.ID] = true
	}
	return nil
}

func containsRef(xs []*Vertex, target *Vertex) bool {
	for _, x := range xs {
		if x == target {
			return true
		}
	}
	return false
}
