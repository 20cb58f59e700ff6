package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/geom"
)

// Default values. Oracle and search defaults mirror the library packages.
const (
	DefaultTolerance    = geom.DefaultTolerance
	DefaultTimeout      = 60 * time.Second
	DefaultMaxVariables = coloring.DefaultMaxVariables
	DefaultMaxClauses   = coloring.DefaultMaxClauses
	DefaultMaxK         = chromatic.DefaultMaxK
	DefaultWorkers      = 1

	DefaultTarget        = 5
	DefaultMaxVertices   = 64
	DefaultMaxCandidates = 256
	DefaultTrials        = 20
	DefaultSeed          = 1
	DefaultThreshold     = 0.5

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ApplyDefaults fills every zero-value field in cfg with its default. Fields
// already set are left unchanged. Plateau and the empty metrics/runlog
// settings have meaningful zero values and are never touched.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Geometry.Tolerance == 0 {
		cfg.Geometry.Tolerance = DefaultTolerance
	}

	if cfg.Oracle.MaxVariables == 0 {
		cfg.Oracle.MaxVariables = DefaultMaxVariables
	}
	if cfg.Oracle.MaxClauses == 0 {
		cfg.Oracle.MaxClauses = DefaultMaxClauses
	}

	if cfg.Search.MaxK == 0 {
		cfg.Search.MaxK = DefaultMaxK
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = DefaultWorkers
	}

	s := &cfg.Strategy
	if s.Target == 0 {
		s.Target = DefaultTarget
	}
	if s.MaxVertices == 0 {
		s.MaxVertices = DefaultMaxVertices
	}
	if s.MaxCandidates == 0 {
		s.MaxCandidates = DefaultMaxCandidates
	}
	if s.Trials == 0 {
		s.Trials = DefaultTrials
	}
	if s.Seed == 0 {
		s.Seed = DefaultSeed
	}
	if s.Threshold == 0 {
		s.Threshold = DefaultThreshold
	}
	if s.Workers == 0 {
		s.Workers = DefaultWorkers
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// setDefaults registers every key with viper so that AutomaticEnv can
// resolve UNITGRAPH_* variables during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("geometry.tolerance", DefaultTolerance)
	v.SetDefault("oracle.timeout", DefaultTimeout)
	v.SetDefault("oracle.max_variables", DefaultMaxVariables)
	v.SetDefault("oracle.max_clauses", DefaultMaxClauses)
	v.SetDefault("oracle.disable_uniqueness", false)
	v.SetDefault("search.max_k", DefaultMaxK)
	v.SetDefault("search.workers", DefaultWorkers)
	v.SetDefault("strategy.target", DefaultTarget)
	v.SetDefault("strategy.max_vertices", DefaultMaxVertices)
	v.SetDefault("strategy.max_candidates", DefaultMaxCandidates)
	v.SetDefault("strategy.plateau", 0)
	v.SetDefault("strategy.trials", DefaultTrials)
	v.SetDefault("strategy.seed", DefaultSeed)
	v.SetDefault("strategy.threshold", DefaultThreshold)
	v.SetDefault("strategy.workers", DefaultWorkers)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("metrics.addr", "")
	v.SetDefault("runlog.dir", "")
}
