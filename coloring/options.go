// SPDX-License-Identifier: MIT
// Package: unitgraph/coloring
//
// options.go — functional options for New.

package coloring

import (
	"time"

	"github.com/katalvlaran/unitgraph/logging"
	"github.com/katalvlaran/unitgraph/metrics"
)

// Per-call instance budgets.
const (
	// DefaultMaxVariables bounds n·k.
	DefaultMaxVariables = 2_000_000
	// DefaultMaxClauses bounds n + |E|·k (+ n·k(k−1)/2 with uniqueness).
	DefaultMaxClauses = 20_000_000
)

// Option customizes an Oracle.
type Option func(*oracleConfig)

type oracleConfig struct {
	timeout      time.Duration // 0 = only the caller's context applies
	maxVariables int
	maxClauses   int
	uniqueness   bool
	log          logging.Logger
	metrics      *metrics.OracleMetrics
}

func newOracleConfig(opts ...Option) oracleConfig {
	cfg := oracleConfig{
		maxVariables: DefaultMaxVariables,
		maxClauses:   DefaultMaxClauses,
		uniqueness:   true,
		log:          logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTimeout bounds each solver call. Zero disables the per-call bound.
// Panics on a negative duration.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("coloring: WithTimeout(negative duration)")
	}
	return func(c *oracleConfig) { c.timeout = d }
}

// WithMaxVariables sets the variable budget. Panics unless n > 0.
func WithMaxVariables(n int) Option {
	if n <= 0 {
		panic("coloring: WithMaxVariables(n ≤ 0)")
	}
	return func(c *oracleConfig) { c.maxVariables = n }
}

// WithMaxClauses sets the clause budget. Panics unless n > 0.
func WithMaxClauses(n int) Option {
	if n <= 0 {
		panic("coloring: WithMaxClauses(n ≤ 0)")
	}
	return func(c *oracleConfig) { c.maxClauses = n }
}

// WithUniqueness toggles the at-most-one-color clause family.
func WithUniqueness(on bool) Option {
	return func(c *oracleConfig) { c.uniqueness = on }
}

// WithLogger routes per-call diagnostics to l. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("coloring: WithLogger(nil)")
	}
	return func(c *oracleConfig) { c.log = l }
}

// WithMetrics records per-call counters and latencies into m (nil disables).
func WithMetrics(m *metrics.OracleMetrics) Option {
	return func(c *oracleConfig) { c.metrics = m }
}
