// Package domgraph is the graph store for the dominating-set solver: an
// adjacency representation with per-vertex mutable state plus a separate
// list of vertices already proven to belong in the output.
//
// A Graph owns two sequences: Active (the live vertices, order-irrelevant,
// swap-with-last removable) and Fixed (append-only, insertion order
// preserved, contract: every element is emitted in the final solution).
// Vertices are plain pointers into Go's heap — the garbage collector plays
// the role the original C solver's manual arena/free calls played, so no
// slot-index indirection is needed for memory safety; Active's slice index
// is still used for O(1) swap-with-last removal during reduction.
//
// Mutations (marking a vertex removed, moving it to Fixed, compacting the
// active sequence) are the province of internal/reduce and internal/greedy;
// this package exposes the primitives they call plus read-only traversal.
package domgraph
