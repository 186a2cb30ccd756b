package domgraph

import "github.com/katalvlaran/domset/internal/dynarray"

// Vertex is a node of the active graph.
//
// NeighborTag, PQIndex/InPQ, and QueuedMarker are mutually exclusive in
// time: the reduction phase owns NeighborTag; the greedy heap owns
// PQIndex/InPQ; the iterated-greedy deconstructor owns QueuedMarker. They
// are kept as separate fields rather than a tagged union for clarity, per
// the design notes this solver follows.
type Vertex struct {
	// ID is the vertex's identifier from the input. 0 is never assigned.
	ID uint32

	// Neighbors is the adjacency list of this vertex. len(Neighbors) ==
	// Degree always holds; every element is itself active (I1).
	Neighbors []*Vertex

	// DominatedBy counts currently-selected neighbors (including self)
	// covering this vertex. Zero means undominated.
	DominatedBy uint32

	// InDS reports whether this vertex is currently selected.
	InDS bool

	// Removed reports whether the reduction engine has excised this
	// vertex from the active graph.
	Removed bool

	// NeighborTag is reduction-phase scratch: set equal to some vertex's
	// ID to mark "tagged by that vertex's current sweep". Zero means
	// untagged.
	NeighborTag uint32

	// PQIndex is this vertex's slot in the owning heap, maintained only by
	// package pqueue.
	PQIndex int

	// InPQ reports heap membership, mutated only by package pqueue.
	InPQ bool

	// Vote is 1/(degree+1) computed once per solve from the reduced
	// graph; read-only once the greedy phase begins.
	Vote float64

	// QueuedMarker is deconstruction-phase scratch, compared against an
	// orchestrator-wide epoch counter so a sweep need not clear the
	// field on every run.
	QueuedMarker uint32
}

// Degree returns the number of active neighbors of v.
func (v *Vertex) Degree() int { return len(v.Neighbors) }

// FixedRecord is the minimal record kept for a vertex proven to belong to
// some minimum dominating set. Its DominatedBy is the value the vertex had
// at the moment it was fixed, retained for diagnostics only.
type FixedRecord struct {
	ID          uint32
	DominatedBy uint32
}

// Graph is the active-graph store: an adjacency representation with
// per-vertex mutable state, plus the list of vertices already fixed into
// the output.
type Graph struct {
	// Active holds every currently-active vertex. Order is irrelevant;
	// index is used for O(1) removal by swap-with-last.
	Active *dynarray.Array[*Vertex]

	// Fixed holds vertices proven to belong to some minimum dominating
	// set, in the order they were fixed.
	Fixed []FixedRecord

	// N, M are the current active vertex and edge counts. Fixed and
	// removed vertices never contribute to either.
	N uint32
	M uint32
}

// New returns an empty Graph whose Active sequence is pre-sized for n
// vertices.
func New(n int) *Graph {
	return &Graph{
		Active: dynarray.New[*Vertex](n),
		Fixed:  make([]FixedRecord, 0, 128),
	}
}

// AddVertex appends a fresh vertex with the given id to the active
// sequence and returns it. Callers (the dimacs parser, tests) are
// responsible for wiring up Neighbors afterwards via Connect.
func (g *Graph) AddVertex(id uint32) *Vertex {
	v := &Vertex{ID: id}
	g.Active.Append(v)
	g.N++
	return v
}

// Connect adds an undirected edge between u and v. Callers must ensure u
// and v are distinct and not already connected (I5: no duplicate ids, no
// self-loops); Connect itself only performs the symmetric append and bumps
// M, matching the original parser's _graph_add_edge.
func (g *Graph) Connect(u, v *Vertex) {
	u.Neighbors = append(u.Neighbors, v)
	v.Neighbors = append(v.Neighbors, u)
	g.M++
}
