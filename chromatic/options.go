// SPDX-License-Identifier: MIT
// Package: unitgraph/chromatic
//
// options.go — functional options for Search.

package chromatic

import "github.com/katalvlaran/unitgraph/logging"

// DefaultMaxK is the default search cap.
const DefaultMaxK = 8

// Option customizes Search.
type Option func(*searchConfig)

type searchConfig struct {
	maxK    int
	workers int
	log     logging.Logger
}

func newSearchConfig(opts ...Option) searchConfig {
	cfg := searchConfig{maxK: DefaultMaxK, workers: 1, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxK sets the largest k tried. Panics unless k ≥ 1.
func WithMaxK(k int) Option {
	if k < 1 {
		panic("chromatic: WithMaxK(k < 1)")
	}
	return func(c *searchConfig) { c.maxK = k }
}

// WithWorkers sets how many consecutive k values are solved concurrently.
// Panics unless n ≥ 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("chromatic: WithWorkers(n < 1)")
	}
	return func(c *searchConfig) { c.workers = n }
}

// WithLogger routes search progress to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("chromatic: WithLogger(nil)")
	}
	return func(c *searchConfig) { c.log = l }
}
