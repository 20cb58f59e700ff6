// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • tolerance = geom.DefaultTolerance (1e-9)
//   • index     = auto (grid binning from autoIndexThreshold points)
//   • dedupe    = false
//   • log       = no-op

package builder

import (
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

type indexMode int

const (
	indexAuto indexMode = iota
	indexOn
	indexOff
)

// autoIndexThreshold is the point count from which grid binning pays for its map overhead.
const autoIndexThreshold = 96

// builderConfig aggregates all knobs; passed by value.
type builderConfig struct {
	tolerance float64
	index     indexMode
	dedupe    bool
	log       logging.Logger
}

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		tolerance: geom.DefaultTolerance,
		index:     indexAuto,
		log:       logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// useIndex resolves the index mode for n points.
func (c builderConfig) useIndex(n int) bool {
	switch c.index {
	case indexOn:
		return true
	case indexOff:
		return false
	default:
		return n >= autoIndexThreshold
	}
}
