package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/domset/internal/domgraph"
)

// Read parses a DIMACS-style dominating-set instance from r: a problem line
// "p ds N M" (comment lines beginning with 'c' are skipped beforehand),
// followed by exactly M edge lines of two whitespace-separated 1-based
// vertex ids. The returned graph has exactly N active vertices with ids
// 1..N, none yet fixed or selected.
func Read(r io.Reader) (*domgraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var n, m uint64
	found := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "ds" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		var err error
		n, err = strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad N: %v", ErrMalformedHeader, err)
		}
		m, err = strconv.ParseUint(fields[3], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad M: %v", ErrMalformedHeader, err)
		}
		found = true
		break
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrMalformedHeader
	}

	g := domgraph.New(int(n))
	vertices := make([]*domgraph.Vertex, n+1) // 1-indexed; slot 0 unused
	for id := uint64(1); id <= n; id++ {
		vertices[id] = g.AddVertex(uint32(id))
	}

	type edgeKey struct{ u, v uint32 }
	seen := make(map[edgeKey]bool, m)

	var edgesRead uint64
	for edgesRead < m && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedEdge, line)
		}
		if u < 1 || u > n || v < 1 || v > n {
			return nil, fmt.Errorf("%w: edge (%d, %d) with N=%d", ErrEdgeOutOfRange, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
		}
		key := edgeKey{u: uint32(u), v: uint32(v)}
		if key.u > key.v {
			key.u, key.v = key.v, key.u
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: (%d, %d)", ErrDuplicateEdge, u, v)
		}
		seen[key] = true

		g.Connect(vertices[u], vertices[v])
		edgesRead++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if edgesRead < m {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTruncatedInput, edgesRead, m)
	}
	return g, nil
}
