package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "UNITGRAPH"

// NewViper returns a Viper with the standard settings: YAML file type,
// UNITGRAPH_ env prefix, automatic env binding with "." → "_" so that
// "oracle.timeout" resolves to UNITGRAPH_ORACLE_TIMEOUT, and every key
// registered with its default. Callers may bind flags before FromViper.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

// Load reads the YAML file at configPath, merges UNITGRAPH_* overrides,
// applies defaults and validates.
func Load(configPath string) (*Config, error) {
	v := NewViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}
	return FromViper(v)
}

// LoadFromEnv builds a Config from UNITGRAPH_* variables and defaults only.
func LoadFromEnv() (*Config, error) {
	return FromViper(NewViper())
}

// FromViper unmarshals v into a Config, applies defaults and validates.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
