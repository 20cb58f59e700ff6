// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// options.go — functional options shared by Greedy, MinimalSubgraph and
// Criticality. Each function reads only the knobs it needs.
//
// Deterministic defaults:
//   • target = 5, maxVertices = 64, maxCandidates = 256, plateau = 0, maxK = 8
//   • trials = 20, seed = 1, threshold = 0.5
//   • workers = 1, tolerance = geom.DefaultTolerance, log = no-op

package strategy

import (
	"math"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

// Option customizes a strategy run.
type Option func(*strategyConfig)

type strategyConfig struct {
	target        int
	maxVertices   int
	maxCandidates int
	plateau       int
	maxK          int

	trials    int
	seed      int64
	threshold float64

	workers   int
	tolerance float64
	log       logging.Logger
}

func newStrategyConfig(opts ...Option) strategyConfig {
	cfg := strategyConfig{
		target:        5,
		maxVertices:   64,
		maxCandidates: 256,
		maxK:          chromatic.DefaultMaxK,
		trials:        20,
		seed:          1,
		threshold:     0.5,
		workers:       1,
		tolerance:     geom.DefaultTolerance,
		log:           logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTarget stops Greedy once χ reaches k. Panics unless k ≥ 2.
func WithTarget(k int) Option {
	if k < 2 {
		panic("strategy: WithTarget(k < 2)")
	}
	return func(c *strategyConfig) { c.target = k }
}

// WithMaxVertices caps the Greedy point count. Panics unless n ≥ 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("strategy: WithMaxVertices(n < 1)")
	}
	return func(c *strategyConfig) { c.maxVertices = n }
}

// WithMaxCandidates caps candidates evaluated per Greedy step. Panics unless n ≥ 1.
func WithMaxCandidates(n int) Option {
	if n < 1 {
		panic("strategy: WithMaxCandidates(n < 1)")
	}
	return func(c *strategyConfig) { c.maxCandidates = n }
}

// WithPlateau lets Greedy commit up to n consecutive non-improving steps
// (taking the candidate with most new edges). Panics on n < 0.
func WithPlateau(n int) Option {
	if n < 0 {
		panic("strategy: WithPlateau(n < 0)")
	}
	return func(c *strategyConfig) { c.plateau = n }
}

// WithMaxK caps the search used to determine χ of the Greedy seed.
func WithMaxK(k int) Option {
	if k < 1 {
		panic("strategy: WithMaxK(k < 1)")
	}
	return func(c *strategyConfig) { c.maxK = k }
}

// WithTrials sets the random samples per size in MinimalSubgraph. Panics unless n ≥ 1.
func WithTrials(n int) Option {
	if n < 1 {
		panic("strategy: WithTrials(n < 1)")
	}
	return func(c *strategyConfig) { c.trials = n }
}

// WithSeed fixes the MinimalSubgraph sampling sequence.
func WithSeed(seed int64) Option {
	return func(c *strategyConfig) { c.seed = seed }
}

// WithThreshold sets the UNSAT rate at which a size counts as "still
// non-k-colorable" in MinimalSubgraph. Panics unless 0 < f ≤ 1.
func WithThreshold(f float64) Option {
	if !(f > 0) || f > 1 {
		panic("strategy: WithThreshold(f outside (0, 1])")
	}
	return func(c *strategyConfig) { c.threshold = f }
}

// WithWorkers bounds concurrent oracle calls. Panics unless n ≥ 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("strategy: WithWorkers(n < 1)")
	}
	return func(c *strategyConfig) { c.workers = n }
}

// WithTolerance sets ε for Greedy's geometry. Panics unless 0 < ε < 0.5.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || eps >= 0.5 || math.IsInf(eps, 0) {
		panic("strategy: WithTolerance(eps outside (0, 0.5))")
	}
	return func(c *strategyConfig) { c.tolerance = eps }
}

// WithLogger routes progress to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("strategy: WithLogger(nil)")
	}
	return func(c *strategyConfig) { c.log = l }
}
