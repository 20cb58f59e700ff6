// Package core defines Graph, Edge, Coloring and the sentinel errors.
//
// Errors:
//
//	ErrBadVertexCount   - n < 0.
//	ErrVertexNotFound   - vertex index out of range.
//	ErrLoopNotAllowed   - self-loop in the edge list.
//	ErrDuplicateVertex  - repeated vertex in a subgraph selection.
//	ErrColoringSize     - coloring does not cover exactly N vertices.
//	ErrColorOutOfRange  - color not in 0..k-1.
//	ErrImproperColoring - adjacent vertices share a color.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an index outside 0..N-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge {v,v}.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateVertex indicates a vertex selected twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrColoringSize indicates a coloring whose length is not N.
	ErrColoringSize = errors.New("core: coloring size mismatch")

	// ErrColorOutOfRange indicates a color outside 0..k-1.
	ErrColorOutOfRange = errors.New("core: color out of range")

	// ErrImproperColoring indicates an edge whose endpoints share a color.
	ErrImproperColoring = errors.New("core: improper coloring")
)

// Edge is an unordered vertex pair stored with U < V.
type Edge struct {
	U, V int
}

// String renders e as "{u,v}".
func (e Edge) String() string { return fmt.Sprintf("{%d,%d}", e.U, e.V) }

// normalized returns e with U<V.
func (e Edge) normalized() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}
	return e
}

// Coloring assigns color c[v] to vertex v.
type Coloring []int

// NumColors returns the number of distinct colors used.
func (c Coloring) NumColors() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}
	return len(seen)
}

// Graph is an immutable simple undirected graph over vertices 0..N-1.
//
// edges is sorted by (U,V) with U<V; adj[v] is ascending. Neither is ever
// mutated after NewGraph returns, so Graph needs no locks.
type Graph struct {
	n     int
	edges []Edge
	adj   [][]int
}

// GraphStats is a read-only snapshot of size and degree figures.
type GraphStats struct {
	Vertices  int
	Edges     int
	MinDegree int
	MaxDegree int
	Isolated  int
}

// NewGraph builds a Graph with n vertices and the given edges.
//
// Implementation:
//   - Stage 1: Validate n and every endpoint; reject loops.
//   - Stage 2: Normalise to U<V, sort, drop duplicates.
//   - Stage 3: Build sorted adjacency lists from the unique edge list.
//
// Errors:
//   - ErrBadVertexCount, ErrVertexNotFound, ErrLoopNotAllowed (wrapped with the offending edge).
//
// Complexity:
//   - Time O(E log E + V), Space O(V+E).
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrBadVertexCount)
	}

	norm := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraph: edge %v with n=%d: %w", e, n, ErrVertexNotFound)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraph: edge %v: %w", e, ErrLoopNotAllowed)
		}
		norm = append(norm, e.normalized())
	}
	sort.Slice(norm, func(i, j int) bool {
		if norm[i].U != norm[j].U {
			return norm[i].U < norm[j].U
		}
		return norm[i].V < norm[j].V
	})

	// in-place dedup on the sorted slice
	uniq := norm[:0]
	for i, e := range norm {
		if i > 0 && e == norm[i-1] {
			continue
		}
		uniq = append(uniq, e)
	}

	adj := make([][]int, n)
	for _, e := range uniq {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for v := range adj {
		sort.Ints(adj[v])
	}

	return &Graph{n: n, edges: uniq, adj: adj}, nil
}

// MustGraph is NewGraph for fixtures whose edges are known to be valid; it panics on error.
func MustGraph(n int, edges []Edge) *Graph {
	g, err := NewGraph(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}
