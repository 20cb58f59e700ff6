// Package cli implements the unitgraph command tree: global flag handling,
// configuration and logger initialisation, and one subcommand per pipeline
// operation.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/unitgraph/config"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// viperKey is the flag annotation naming the configuration key a flag overrides.
const viperKey = "unitgraph_viper_key"

// envContextKey is the context key for *Env.
type envContextKey struct{}

// RootOptions holds global CLI flags that are not configuration keys.
type RootOptions struct {
	ConfigPath  string
	Output      string
	SkipInvalid bool
}

// NewRootCommand creates the root command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "unitgraph",
		Short: "Unit-distance graphs and SAT-based chromatic number bounds",
		Long: "unitgraph builds unit-distance graphs from symbolic planar coordinates,\n" +
			"composes rotated and translated copies, and bounds chromatic numbers\n" +
			"with a SAT colorability oracle (Hadwiger–Nelson toolkit).",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if env, err := GetEnv(cmd); err == nil {
				return env.Close()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVarP(&opts.Output, "output", "o", "text", "output format (text, json, yaml)")
	pf.BoolVar(&opts.SkipInvalid, "skip-invalid", false, "skip unparsable coordinate lines instead of aborting")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (console, json)")
	pf.Float64("tolerance", config.DefaultTolerance, "unit-distance tolerance ε")
	pf.Duration("timeout", config.DefaultTimeout, "per oracle call timeout (0 = none)")
	pf.Int("max-variables", config.DefaultMaxVariables, "largest SAT instance, in variables")
	pf.Int("max-clauses", config.DefaultMaxClauses, "largest SAT instance, in clauses")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address (empty = off)")
	pf.String("runlog-dir", "", "write a YAML run record into this directory (empty = off)")
	bindKeys(pf, map[string]string{
		"log-level":     "log.level",
		"log-format":    "log.format",
		"tolerance":     "geometry.tolerance",
		"timeout":       "oracle.timeout",
		"max-variables": "oracle.max_variables",
		"max-clauses":   "oracle.max_clauses",
		"metrics-addr":  "metrics.addr",
		"runlog-dir":    "runlog.dir",
	})

	cmd.AddCommand(
		newBuildCmd(),
		newChromaticCmd(),
		newCheckCmd(),
		newComposeCmd(),
		newCriticalCmd(),
		newMinimalCmd(),
		newGreedyCmd(),
	)
	return cmd
}

// bindKeys annotates flags with the configuration key they override.
func bindKeys(fs *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := fs.SetAnnotation(name, viperKey, []string{key}); err != nil {
			panic(fmt.Sprintf("cli: annotate flag %q: %v", name, err))
		}
	}
}

// persistentPreRun loads configuration (file < env < flags), then builds the
// Env and stores it in the command context.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	switch opts.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (must be text/json/yaml)", opts.Output)
	}

	v := config.NewViper()
	if opts.ConfigPath != "" {
		v.SetConfigFile(opts.ConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config initialization failed: %w", err)
		}
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	env, err := NewEnv(cfg, opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, envContextKey{}, env))
	return nil
}

// bindFlags binds every annotated flag of fs to its viper key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if keys, ok := f.Annotations[viperKey]; ok && len(keys) > 0 {
			errs = append(errs, v.BindPFlag(keys[0], f))
		}
	})
	return errors.Join(errs...)
}

// GetEnv extracts the Env stored by the root command's pre-run hook.
func GetEnv(cmd *cobra.Command) (*Env, error) {
	if ctx := cmd.Context(); ctx != nil {
		if env, ok := ctx.Value(envContextKey{}).(*Env); ok {
			return env, nil
		}
	}
	return nil, errors.New("cli: environment not initialized")
}

// Execute runs the command tree under ctx.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %s\n", err.Error())
		return err
	}
	return nil
}
