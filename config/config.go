// Package config defines the run configuration of the unitgraph toolkit and
// loads it from an optional YAML file, UNITGRAPH_* environment variables and
// command-line flags (via viper), in increasing order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/katalvlaran/unitgraph/logging"
)

// GeometryConfig holds the numeric tolerance of every geometric test.
type GeometryConfig struct {
	// Tolerance ε: |pq| counts as 1 when | |pq| − 1 | < ε, and as 0 when |pq| < ε.
	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
}

// OracleConfig holds the per-call limits of the colorability oracle.
type OracleConfig struct {
	Timeout           time.Duration `mapstructure:"timeout" yaml:"timeout"` // 0 = no per-call bound
	MaxVariables      int           `mapstructure:"max_variables" yaml:"max_variables"`
	MaxClauses        int           `mapstructure:"max_clauses" yaml:"max_clauses"`
	DisableUniqueness bool          `mapstructure:"disable_uniqueness" yaml:"disable_uniqueness"`
}

// SearchConfig holds the chromatic-number search knobs.
type SearchConfig struct {
	MaxK    int `mapstructure:"max_k" yaml:"max_k"`
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// StrategyConfig holds the construction-strategy knobs.
type StrategyConfig struct {
	Target        int     `mapstructure:"target" yaml:"target"`
	MaxVertices   int     `mapstructure:"max_vertices" yaml:"max_vertices"`
	MaxCandidates int     `mapstructure:"max_candidates" yaml:"max_candidates"`
	Plateau       int     `mapstructure:"plateau" yaml:"plateau"`
	Trials        int     `mapstructure:"trials" yaml:"trials"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	Threshold     float64 `mapstructure:"threshold" yaml:"threshold"`
	Workers       int     `mapstructure:"workers" yaml:"workers"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is non-empty.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// RunlogConfig enables YAML run records when Dir is non-empty.
type RunlogConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Config is the root configuration.
type Config struct {
	Geometry GeometryConfig    `mapstructure:"geometry" yaml:"geometry"`
	Oracle   OracleConfig      `mapstructure:"oracle" yaml:"oracle"`
	Search   SearchConfig      `mapstructure:"search" yaml:"search"`
	Strategy StrategyConfig    `mapstructure:"strategy" yaml:"strategy"`
	Log      logging.LogConfig `mapstructure:"log" yaml:"log"`
	Metrics  MetricsConfig     `mapstructure:"metrics" yaml:"metrics"`
	Runlog   RunlogConfig      `mapstructure:"runlog" yaml:"runlog"`
}

// Validate performs semantic validation of a fully-populated Config and
// returns the first problem found.
func (c *Config) Validate() error {
	if !(c.Geometry.Tolerance > 0) || c.Geometry.Tolerance >= 0.5 {
		return fmt.Errorf("config: geometry.tolerance %g is outside (0, 0.5)", c.Geometry.Tolerance)
	}

	if c.Oracle.Timeout < 0 {
		return fmt.Errorf("config: oracle.timeout must be ≥ 0, got %s", c.Oracle.Timeout)
	}
	if c.Oracle.MaxVariables < 1 {
		return fmt.Errorf("config: oracle.max_variables must be ≥ 1, got %d", c.Oracle.MaxVariables)
	}
	if c.Oracle.MaxClauses < 1 {
		return fmt.Errorf("config: oracle.max_clauses must be ≥ 1, got %d", c.Oracle.MaxClauses)
	}

	if c.Search.MaxK < 1 {
		return fmt.Errorf("config: search.max_k must be ≥ 1, got %d", c.Search.MaxK)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("config: search.workers must be ≥ 1, got %d", c.Search.Workers)
	}

	s := c.Strategy
	if s.Target < 2 {
		return fmt.Errorf("config: strategy.target must be ≥ 2, got %d", s.Target)
	}
	if s.MaxVertices < 1 || s.MaxCandidates < 1 || s.Trials < 1 || s.Workers < 1 {
		return fmt.Errorf("config: strategy.max_vertices, max_candidates, trials and workers must be ≥ 1")
	}
	if s.Plateau < 0 {
		return fmt.Errorf("config: strategy.plateau must be ≥ 0, got %d", s.Plateau)
	}
	if !(s.Threshold > 0) || s.Threshold > 1 {
		return fmt.Errorf("config: strategy.threshold %g is outside (0, 1]", s.Threshold)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}
	return nil
}
