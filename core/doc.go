// Package core provides the immutable, integer-indexed undirected graph that
// every stage of the unit-distance pipeline exchanges.
//
// A Graph G = (V,E) has vertices 0..N-1 and a set of unordered edges {u,v}
// with u != v. Invariants, established once by NewGraph and never broken:
//
//   - Irreflexive: no self-loops (ErrLoopNotAllowed).
//   - Symmetric: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//   - Simple: duplicate edges collapse to one.
//   - Deterministic: Edges() is sorted by (U,V) with U<V; Neighbors(v) is ascending.
//
// Graphs are read-only after construction, so a single *Graph may be shared
// by any number of goroutines without locking. Every derivation
// (InducedSubgraph, WithoutVertex) returns a new Graph plus the mapping from
// new vertex indices to the parent's.
//
// Core Methods:
//
//	NewGraph(n, edges) (*Graph, error)        // O(E log E)
//	VertexCount() / EdgeCount()               // O(1)
//	Edges() []Edge                            // O(E) copy
//	Neighbors(v) ([]int, error)               // O(deg v) copy
//	HasEdge(u, v) bool                        // O(log deg u)
//	Degree(v) (int, error) / MaxDegree()      // O(1) / O(V)
//	InducedSubgraph(keep) (*Graph, []int, error)
//	WithoutVertex(v) (*Graph, []int, error)
//	Components() [][]int                      // O(V+E)
//	ValidateColoring(c, k) error              // O(V+E)
//	GreedyColoring() Coloring                 // O(V log V + E)
//
// Errors:
//
//	ErrBadVertexCount   - negative vertex count.
//	ErrVertexNotFound   - index outside 0..N-1.
//	ErrLoopNotAllowed   - edge {v,v}.
//	ErrDuplicateVertex  - a vertex listed twice in an InducedSubgraph keep-set.
//	ErrColoringSize     - coloring length differs from N.
//	ErrColorOutOfRange  - color outside 0..k-1.
//	ErrImproperColoring - an edge joins two vertices of the same color.
package core
