package domgraph

// Solution returns the final chosen set: every fixed vertex's id, in the
// order vertices were fixed, followed by every currently-selected active
// vertex's id, in active-sequence order. This is the order spec.md's output
// format requires (§6).
func (g *Graph) Solution() []uint32 {
	out := make([]uint32, 0, len(g.Fixed)+int(g.N))
	for _, f := range g.Fixed {
		out = append(out, f.ID)
	}
	for _, v := range g.Active.Slice() {
		if v.InDS {
			out = append(out, v.ID)
		}
	}
	return out
}
