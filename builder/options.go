// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"

	"github.com/katalvlaran/unitgraph/logging"
)

// Option customizes a builder call by mutating a builderConfig before use.
type Option func(*builderConfig)

// WithTolerance sets ε for the unit-distance test | |pq| − 1 | < ε.
// Panics unless 0 < ε < 0.5.
func WithTolerance(eps float64) Option {
	if !(eps > 0) || eps >= 0.5 || math.IsInf(eps, 0) {
		panic("builder: WithTolerance(eps outside (0, 0.5))")
	}
	return func(c *builderConfig) { c.tolerance = eps }
}

// WithSpatialIndex forces grid binning on or off, overriding the size heuristic.
func WithSpatialIndex(on bool) Option {
	return func(c *builderConfig) {
		if on {
			c.index = indexOn
		} else {
			c.index = indexOff
		}
	}
}

// WithDedupe makes BuildPoints drop points that coincide (within ε) with an
// earlier point. UnitDistance itself never removes vertices.
func WithDedupe() Option {
	return func(c *builderConfig) { c.dedupe = true }
}

// WithLogger routes construction diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.log = l }
}
