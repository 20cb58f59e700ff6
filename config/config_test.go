package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
geometry:
  tolerance: 1.0e-7
oracle:
  timeout: 90s
  max_variables: 500000
  max_clauses: 3000000
search:
  max_k: 6
  workers: 3
strategy:
  target: 6
  plateau: 2
  seed: 99
log:
  level: debug
  format: json
runlog:
  dir: /tmp/unitgraph-runs
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unitgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 1e-7, cfg.Geometry.Tolerance)
	assert.Equal(t, 90*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, 500000, cfg.Oracle.MaxVariables)
	assert.Equal(t, 3000000, cfg.Oracle.MaxClauses)
	assert.False(t, cfg.Oracle.DisableUniqueness)
	assert.Equal(t, 6, cfg.Search.MaxK)
	assert.Equal(t, 3, cfg.Search.Workers)
	assert.Equal(t, 6, cfg.Strategy.Target)
	assert.Equal(t, 2, cfg.Strategy.Plateau)
	assert.Equal(t, int64(99), cfg.Strategy.Seed)
	assert.Equal(t, DefaultTrials, cfg.Strategy.Trials)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/unitgraph-runs", cfg.Runlog.Dir)
	assert.Empty(t, cfg.Metrics.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("UNITGRAPH_SEARCH_MAX_K", "10")
	t.Setenv("UNITGRAPH_ORACLE_TIMEOUT", "5s")
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Search.MaxK)
	assert.Equal(t, 5*time.Second, cfg.Oracle.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "search:\n  max_k: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.max_k")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultTolerance, cfg.Geometry.Tolerance)
	assert.Equal(t, DefaultTimeout, cfg.Oracle.Timeout)
	assert.Equal(t, DefaultMaxK, cfg.Search.MaxK)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("UNITGRAPH_GEOMETRY_TOLERANCE", "1e-6")
	t.Setenv("UNITGRAPH_METRICS_ADDR", ":9100")
	t.Setenv("UNITGRAPH_ORACLE_DISABLE_UNIQUENESS", "true")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Geometry.Tolerance)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.True(t, cfg.Oracle.DisableUniqueness)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Search: SearchConfig{MaxK: 12}}
	ApplyDefaults(cfg)
	assert.Equal(t, 12, cfg.Search.MaxK)
	assert.Equal(t, DefaultWorkers, cfg.Search.Workers)
	assert.Equal(t, DefaultThreshold, cfg.Strategy.Threshold)
	require.NoError(t, cfg.Validate())

	ApplyDefaults(nil)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		ApplyDefaults(c)
		return c
	}
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tolerance too large", func(c *Config) { c.Geometry.Tolerance = 0.5 }, "geometry.tolerance"},
		{"negative timeout", func(c *Config) { c.Oracle.Timeout = -time.Second }, "oracle.timeout"},
		{"zero clause budget", func(c *Config) { c.Oracle.MaxClauses = 0 }, "oracle.max_clauses"},
		{"zero workers", func(c *Config) { c.Search.Workers = 0 }, "search.workers"},
		{"target one", func(c *Config) { c.Strategy.Target = 1 }, "strategy.target"},
		{"negative plateau", func(c *Config) { c.Strategy.Plateau = -1 }, "strategy.plateau"},
		{"threshold above one", func(c *Config) { c.Strategy.Threshold = 1.5 }, "strategy.threshold"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
