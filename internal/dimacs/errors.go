// Package dimacs reads and writes the solver's input/output text formats:
// a DIMACS-style "p ds N M" edge list on the way in, and a plain
// newline-separated vertex id list on the way out.
package dimacs

import "errors"

// ErrMalformedHeader is returned when the "p ds N M" problem line is
// missing, misspelled, or has a non-numeric N or M.
var ErrMalformedHeader = errors.New("dimacs: malformed problem line")

// ErrMalformedEdge is returned when an edge line cannot be parsed as two
// whitespace-separated unsigned integers.
var ErrMalformedEdge = errors.New("dimacs: malformed edge line")

// ErrTruncatedInput is returned when the stream ends before the declared
// number of edges has been read.
var ErrTruncatedInput = errors.New("dimacs: fewer edge lines than declared")

// ErrEdgeOutOfRange is returned when an edge references a vertex id outside
// [1, N].
var ErrEdgeOutOfRange = errors.New("dimacs: edge endpoint out of declared vertex range")

// ErrSelfLoop is returned when an edge's two endpoints are identical.
var ErrSelfLoop = errors.New("dimacs: self-loop edge")

// ErrDuplicateEdge is returned when the same unordered pair of endpoints is
// declared more than once.
var ErrDuplicateEdge = errors.New("dimacs: duplicate edge")
