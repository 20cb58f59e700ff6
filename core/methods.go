// File: methods.go
// Role: Read-only queries over an immutable Graph.
//
// Determinism:
//   - Edges() and Neighbors() return sorted copies; callers may mutate them freely.

package core

import (
	"fmt"
	"sort"
)

// VertexCount returns N.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge list sorted by (U,V).
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the ascending neighbor list of v.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out, nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range indices yield false.
// Complexity: O(log deg u).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	nb := g.adj[u]
	i := sort.SearchInts(nb, v)
	return i < len(nb) && nb[i] == v
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}
	return len(g.adj[v]), nil
}

// MaxDegree returns the largest vertex degree (0 for the empty graph).
func (g *Graph) MaxDegree() int {
	m := 0
	for _, nb := range g.adj {
		if len(nb) > m {
			m = len(nb)
		}
	}
	return m
}

// Stats returns a snapshot of size and degree figures.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{Vertices: g.n, Edges: len(g.edges)}
	for v, nb := range g.adj {
		d := len(nb)
		if v == 0 || d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 {
			st.Isolated++
		}
	}
	return st
}

// String renders a compact summary for logs.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(V=%d, E=%d)", g.n, len(g.edges))
}
