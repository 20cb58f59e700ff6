// File: coloring.go
// Role: Coloring validation and a greedy upper bound.

package core

import (
	"fmt"
	"sort"
)

// ValidateColoring checks that c is a proper coloring of g with colors 0..k-1.
//
// Errors (first violation wins, checked in this order):
//   - ErrColoringSize if len(c) != N.
//   - ErrColorOutOfRange for the first vertex with c[v] ∉ [0,k).
//   - ErrImproperColoring for the first edge (in Edges() order) with equal colors.
//
// Complexity: O(V+E).
func (g *Graph) ValidateColoring(c Coloring, k int) error {
	if len(c) != g.n {
		return fmt.Errorf("ValidateColoring: len=%d, n=%d: %w", len(c), g.n, ErrColoringSize)
	}
	for v, col := range c {
		if col < 0 || col >= k {
			return fmt.Errorf("ValidateColoring: vertex %d color %d, k=%d: %w", v, col, k, ErrColorOutOfRange)
		}
	}
	for _, e := range g.edges {
		if c[e.U] == c[e.V] {
			return fmt.Errorf("ValidateColoring: edge %v both color %d: %w", e, c[e.U], ErrImproperColoring)
		}
	}
	return nil
}

// GreedyColoring colors vertices in descending-degree order (ties by index),
// giving each the smallest color unused by its colored neighbors. The result
// is proper and uses at most MaxDegree()+1 colors; it is an upper bound on χ,
// not χ itself.
func (g *Graph) GreedyColoring() Coloring {
	order := make([]int, g.n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(g.adj[order[i]]) > len(g.adj[order[j]])
	})

	c := make(Coloring, g.n)
	for i := range c {
		c[i] = -1
	}
	used := make([]bool, g.MaxDegree()+1)
	for _, v := range order {
		for i := range used {
			used[i] = false
		}
		for _, w := range g.adj[v] {
			if col := c[w]; col >= 0 && col < len(used) {
				used[col] = true
			}
		}
		col := 0
		for col < len(used) && used[col] {
			col++
		}
		c[v] = col
	}
	return c
}
