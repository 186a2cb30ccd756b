// Package reduce implements the data-reduction kernelization engine: the
// post-hoc redundancy sweep and the two structural rules (Rule 1 on a single
// vertex's neighborhood, Rule 2 on a pair) that together shrink a graph to
// an equivalent, usually much smaller, kernel before the greedy constructor
// ever runs. Every rule here is grounded on the original C solver's
// reduction.c and preserves its exact case analysis, including the
// isolated-component special case in Rule 2.
//
// All three rule families share one convention: NeighborTag is a scratch
// field, stamped with a vertex's own ID to mark "this vertex is currently
// tagged by the sweep in progress," and read back by a later pass in the
// same call. No rule here assumes NeighborTag survives across calls.
package reduce
