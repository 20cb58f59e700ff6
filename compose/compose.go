// SPDX-License-Identifier: MIT
// Package: unitgraph/compose
//
// compose.go — ComposeUnion, Copies and the Composition report.

package compose

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

// ErrNoCopies indicates an empty list of copies.
var ErrNoCopies = errors.New("compose: no copies")

// Option customizes ComposeUnion.
type Option func(*composeConfig)

type composeConfig struct {
	tolerance float64
	log       logging.Logger
}

// WithTolerance sets ε for both the unit-distance and the coincidence test.
// Panics unless 0 < ε < 0.5.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || eps >= 0.5 || math.IsInf(eps, 0) {
		panic("compose: WithTolerance(eps outside (0, 0.5))")
	}
	return func(c *composeConfig) { c.tolerance = eps }
}

// WithLogger routes composition diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("compose: WithLogger(nil)")
	}
	return func(c *composeConfig) { c.log = l }
}

// Composition is the union graph of several copies plus its edge accounting.
type Composition struct {
	Points      []geom.Point
	Graph       *core.Graph
	Offsets     []int // len = copies+1; copy i is [Offsets[i], Offsets[i+1])
	WithinEdges int
	CrossEdges  int
	// CrossByPair counts cross-copy edges per unordered copy pair {i<j}.
	CrossByPair map[[2]int]int
	// Coincident counts cross-copy vertex pairs at the same position.
	Coincident int
}

// Copies returns the number of copies composed.
func (c *Composition) Copies() int { return len(c.Offsets) - 1 }

// Informative reports whether the composition has any cross-copy edge.
func (c *Composition) Informative() bool { return c.CrossEdges > 0 }

// CopyOf returns the copy index owning vertex v, or -1 when out of range.
func (c *Composition) CopyOf(v int) int {
	if v < 0 || v >= c.Offsets[len(c.Offsets)-1] {
		return -1
	}
	// first offset strictly greater than v, minus one
	return sort.SearchInts(c.Offsets, v+1) - 1
}

// String renders e.g. "Composition(copies=2, V=14, within=22, cross=0)".
func (c *Composition) String() string {
	return fmt.Sprintf("Composition(copies=%d, V=%d, within=%d, cross=%d)",
		c.Copies(), len(c.Points), c.WithinEdges, c.CrossEdges)
}

// Copies applies each transform to base and returns the resulting point sets
// in transform order. base itself is not included unless one of the
// transforms is the identity.
func Copies(base []geom.Point, transforms ...geom.Transform) [][]geom.Point {
	out := make([][]geom.Point, len(transforms))
	for i, t := range transforms {
		out[i] = t.Apply(base)
	}
	return out
}

// ComposeUnion builds the unit-distance graph over the concatenation of copies.
//
// Errors: ErrNoCopies; builder.ErrNonFinitePoint from the graph build.
//
// Complexity: one unit-distance build over all points (grid-indexed for large
// inputs) plus O(E) classification and O(V²) coincidence scan.
func ComposeUnion(copies [][]geom.Point, opts ...Option) (*Composition, error) {
	if len(copies) == 0 {
		return nil, ErrNoCopies
	}
	cfg := composeConfig{tolerance: geom.DefaultTolerance, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Composition{Offsets: make([]int, 0, len(copies)+1), CrossByPair: map[[2]int]int{}}
	for _, pts := range copies {
		c.Offsets = append(c.Offsets, len(c.Points))
		c.Points = append(c.Points, pts...)
	}
	c.Offsets = append(c.Offsets, len(c.Points))

	g, err := builder.UnitDistance(c.Points, builder.WithTolerance(cfg.tolerance), builder.WithLogger(cfg.log))
	if err != nil {
		return nil, fmt.Errorf("ComposeUnion: %w", err)
	}
	c.Graph = g

	for _, e := range g.Edges() {
		a, b := c.CopyOf(e.U), c.CopyOf(e.V)
		if a == b {
			c.WithinEdges++
			continue
		}
		c.CrossEdges++
		c.CrossByPair[[2]int{a, b}]++ // U<V so a≤b
	}

	var within int
	for _, p := range geom.Coincident(c.Points, cfg.tolerance) {
		if c.CopyOf(p[0]) != c.CopyOf(p[1]) {
			c.Coincident++
		} else {
			within++
		}
	}

	log := cfg.log.With(logging.Int("copies", c.Copies()), logging.Int("vertices", len(c.Points)))
	if c.Coincident > 0 || within > 0 {
		log.Warn("coincident vertices in composition",
			logging.Int("cross_copy_pairs", c.Coincident),
			logging.Int("within_copy_pairs", within),
			logging.Err(geom.ErrGeometryDegenerate))
	}
	if !c.Informative() {
		log.Info("composition is non-informative", logging.Int("within_edges", c.WithinEdges))
	}
	log.Debug("composition built",
		logging.Int("within_edges", c.WithinEdges),
		logging.Int("cross_edges", c.CrossEdges))
	return c, nil
}

// Compose is ComposeUnion(Copies(base, transforms...), opts...).
func Compose(base []geom.Point, transforms []geom.Transform, opts ...Option) (*Composition, error) {
	return ComposeUnion(Copies(base, transforms...), opts...)
}
