// File: subgraph.go
// Role: Derivations that produce new graphs from an existing one.
//
// Contract:
//   - The receiver is never modified.
//   - The returned mapping orig[i] gives the parent index of new vertex i.

package core

import (
	"fmt"
	"sort"
)

// InducedSubgraph returns the subgraph induced by keep, with vertices renumbered
// 0..len(keep)-1 in the order given, plus the new→parent index mapping.
//
// Errors:
//   - ErrVertexNotFound for an out-of-range index.
//   - ErrDuplicateVertex if keep lists a vertex twice.
//
// Complexity:
//   - Time O(V + Σ deg(keep)), Space O(V).
func (g *Graph) InducedSubgraph(keep []int) (*Graph, []int, error) {
	index := make([]int, g.n)
	for i := range index {
		index[i] = -1
	}
	orig := make([]int, len(keep))
	for i, v := range keep {
		if v < 0 || v >= g.n {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", v, ErrVertexNotFound)
		}
		if index[v] >= 0 {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", v, ErrDuplicateVertex)
		}
		index[v] = i
		orig[i] = v
	}

	var edges []Edge
	for i, v := range keep {
		for _, w := range g.adj[v] {
			// each edge is emitted once, from its lower new index
			if j := index[w]; j > i {
				edges = append(edges, Edge{U: i, V: j})
			}
		}
	}
	sub, err := NewGraph(len(keep), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("InducedSubgraph: %w", err)
	}

	return sub, orig, nil
}

// WithoutVertex returns G − v with the remaining vertices in ascending order.
func (g *Graph) WithoutVertex(v int) (*Graph, []int, error) {
	if v < 0 || v >= g.n {
		return nil, nil, fmt.Errorf("WithoutVertex(%d): %w", v, ErrVertexNotFound)
	}
	keep := make([]int, 0, g.n-1)
	for u := 0; u < g.n; u++ {
		if u != v {
			keep = append(keep, u)
		}
	}
	return g.InducedSubgraph(keep)
}

// Components returns the connected components, each ascending, ordered by
// their smallest vertex. Iterative BFS; O(V+E).
func (g *Graph) Components() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int
	for s := 0; s < g.n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue := []int{s}
		comp := []int{}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for _, w := range g.adj[v] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
