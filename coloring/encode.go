// SPDX-License-Identifier: MIT
// Package: unitgraph/coloring
//
// encode.go — k-colorability → CNF, and model → coloring.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/sat"
)

// Var returns the CNF variable meaning "vertex v has color c" for k colors.
func Var(v, c, k int) int { return v*k + c + 1 }

// VertexColor inverts Var.
func VertexColor(variable, k int) (v, c int) {
	return (variable - 1) / k, (variable - 1) % k
}

// InstanceSize returns the variable and clause counts Encode would produce.
func InstanceSize(n, e, k int, uniqueness bool) (variables, clauses int) {
	variables = n * k
	clauses = n + e*k
	if uniqueness {
		clauses += n * k * (k - 1) / 2
	}
	return variables, clauses
}

// Encode builds the k-colorability CNF of g with all three clause families.
func Encode(g *core.Graph, k int) (*sat.CNF, error) { return encode(g, k, true) }

// encode builds the k-colorability CNF of g; uniqueness toggles the
// at-most-one family.
//
// Clause order: coverage (by vertex), uniqueness (by vertex, then color pair),
// adjacency (by edge in Edges() order, then color).
//
// Complexity: O(V·k² + E·k) clauses.
func encode(g *core.Graph, k int, uniqueness bool) (*sat.CNF, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("Encode: k=%d: %w", k, ErrInvalidK)
	}
	n := g.VertexCount()
	edges := g.Edges()
	variables, clauses := InstanceSize(n, len(edges), k, uniqueness)
	f := sat.NewCNF(variables, clauses)

	for v := 0; v < n; v++ {
		cover := make([]int, k)
		for c := 0; c < k; c++ {
			cover[c] = Var(v, c, k)
		}
		f.AddClause(cover...)
	}
	if uniqueness {
		for v := 0; v < n; v++ {
			for c := 0; c < k; c++ {
				for d := c + 1; d < k; d++ {
					f.AddClause(-Var(v, c, k), -Var(v, d, k))
				}
			}
		}
	}
	for _, e := range edges {
		for c := 0; c < k; c++ {
			f.AddClause(-Var(e.U, c, k), -Var(e.V, c, k))
		}
	}
	return f, nil
}

// Decode turns a model into a coloring: each vertex takes its lowest color
// whose variable is true. A vertex with no true color yields ErrBadWitness.
func Decode(model []bool, n, k int) (core.Coloring, error) {
	if len(model) < n*k {
		return nil, fmt.Errorf("Decode: model has %d variables, need %d: %w", len(model), n*k, ErrBadWitness)
	}
	col := make(core.Coloring, n)
	for v := 0; v < n; v++ {
		col[v] = -1
		for c := 0; c < k; c++ {
			if model[Var(v, c, k)-1] {
				col[v] = c
				break
			}
		}
		if col[v] < 0 {
			return nil, fmt.Errorf("Decode: vertex %d has no color: %w", v, ErrBadWitness)
		}
	}
	return col, nil
}
