// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// unit_distance.go — the Unit-Distance Graph Builder.
//
// Contract:
//   • Vertex i of the result is points[i].
//   • {i,j} ∈ E ⇔ i≠j ∧ | |P_i−P_j| − 1 | < ε.
//   • Pairwise and grid-binned strategies emit identical edge sets.
//   • Non-finite coordinates are rejected (ErrNonFinitePoint).
//
// Complexity:
//   • Pairwise: O(N²) distance checks.
//   • Grid-binned: O(N·k) where k is the mean occupancy of a 3×3 cell block.

package builder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

const methodUnitDistance = "UnitDistance"

// UnitDistance builds the unit-distance graph of points.
func UnitDistance(points []geom.Point, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	return unitDistance(points, cfg)
}

func unitDistance(points []geom.Point, cfg builderConfig) (*core.Graph, error) {
	if err := checkFinite(methodUnitDistance, points); err != nil {
		return nil, err
	}

	start := time.Now()
	indexed := cfg.useIndex(len(points))
	var edges []core.Edge
	if indexed {
		edges = indexedEdges(points, cfg.tolerance)
	} else {
		edges = pairwiseEdges(points, cfg.tolerance)
	}

	g, err := core.NewGraph(len(points), edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUnitDistance, err)
	}
	cfg.log.Debug("unit-distance graph built",
		append(logging.Graph(g.VertexCount(), g.EdgeCount()),
			logging.Bool("indexed", indexed),
			logging.Float64("tolerance", cfg.tolerance),
			logging.Duration("elapsed", time.Since(start)))...)

	return g, nil
}

func checkFinite(method string, points []geom.Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%s: point %d %v: %w", method, i, p, ErrNonFinitePoint)
		}
	}
	return nil
}

// pairwiseEdges tests every unordered pair once.
func pairwiseEdges(points []geom.Point, eps float64) []core.Edge {
	var edges []core.Edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if geom.IsUnitDistance(points[i], points[j], eps) {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		}
	}
	return edges
}

// indexedEdges tests only pairs sharing a 3×3 cell block; j>i keeps each pair once.
func indexedEdges(points []geom.Point, eps float64) []core.Edge {
	gi := newGridIndex(points, 1+2*eps)
	var edges []core.Edge
	for i, p := range points {
		gi.near(p, func(j int) {
			if j > i && geom.IsUnitDistance(p, points[j], eps) {
				edges = append(edges, core.Edge{U: i, V: j})
			}
		})
	}
	return edges
}

// UnitPairs returns every (i, j), i indexing a and j indexing b, with
// | |a_i−b_j| − 1 | < ε. Pairs are ordered by i, then j.
func UnitPairs(a, b []geom.Point, opts ...Option) ([][2]int, error) {
	cfg := newBuilderConfig(opts...)
	if err := checkFinite("UnitPairs", a); err != nil {
		return nil, err
	}
	if err := checkFinite("UnitPairs", b); err != nil {
		return nil, err
	}

	var pairs [][2]int
	if !cfg.useIndex(len(a) + len(b)) {
		for i := range a {
			for j := range b {
				if geom.IsUnitDistance(a[i], b[j], cfg.tolerance) {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
		return pairs, nil
	}

	gi := newGridIndex(b, 1+2*cfg.tolerance)
	for i, p := range a {
		var row []int
		gi.near(p, func(j int) {
			if geom.IsUnitDistance(p, b[j], cfg.tolerance) {
				row = append(row, j)
			}
		})
		sortInts(row)
		for _, j := range row {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs, nil
}
