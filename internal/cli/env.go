package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/config"
	"github.com/katalvlaran/unitgraph/coords"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
	"github.com/katalvlaran/unitgraph/metrics"
	"github.com/katalvlaran/unitgraph/runlog"
	"github.com/katalvlaran/unitgraph/sat"
)

// gadgetPrefix marks an input argument naming a built-in gadget, e.g. "gadget:moser".
const gadgetPrefix = "gadget:"

// Env carries the initialised dependencies through the command tree.
type Env struct {
	Config   *config.Config
	Logger   logging.Logger
	Oracle   *coloring.Oracle
	Registry *prometheus.Registry
	Runlog   *runlog.Writer // nil when run records are off

	output      string
	skipInvalid bool
	metricsSrv  *http.Server
}

// NewEnv builds the logger, metrics, oracle and run-record writer from cfg.
func NewEnv(cfg *config.Config, opts *RootOptions) (*Env, error) {
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logger initialization failed: %w", err)
	}

	reg := metrics.NewRegistry()
	om, err := metrics.NewOracleMetrics(reg)
	if err != nil {
		return nil, err
	}

	oracle := coloring.New(sat.NewGophersat(),
		coloring.WithTimeout(cfg.Oracle.Timeout),
		coloring.WithMaxVariables(cfg.Oracle.MaxVariables),
		coloring.WithMaxClauses(cfg.Oracle.MaxClauses),
		coloring.WithUniqueness(!cfg.Oracle.DisableUniqueness),
		coloring.WithLogger(logger.Named("oracle")),
		coloring.WithMetrics(om),
	)

	env := &Env{
		Config:      cfg,
		Logger:      logger,
		Oracle:      oracle,
		Registry:    reg,
		output:      opts.Output,
		skipInvalid: opts.SkipInvalid,
	}
	if cfg.Runlog.Dir != "" {
		env.Runlog = runlog.NewWriter(cfg.Runlog.Dir)
	}
	if cfg.Metrics.Addr != "" {
		if err := env.serveMetrics(cfg.Metrics.Addr); err != nil {
			return nil, err
		}
	}
	return env, nil
}

// serveMetrics exposes the registry on addr until Close.
func (e *Env) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener on %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(e.Registry))
	e.metricsSrv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := e.metricsSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error("metrics server stopped", logging.Err(err))
		}
	}()
	e.Logger.Info("metrics endpoint up", logging.String("addr", ln.Addr().String()))
	return nil
}

// Close stops the metrics endpoint, if any.
func (e *Env) Close() error {
	if e.metricsSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return e.metricsSrv.Shutdown(ctx)
}

// builderOptions returns the builder options implied by the configuration.
func (e *Env) builderOptions() []builder.Option {
	return []builder.Option{
		builder.WithTolerance(e.Config.Geometry.Tolerance),
		builder.WithLogger(e.Logger.Named("builder")),
	}
}

// LoadPoints resolves an input argument: "gadget:<name>", "-" for stdin, or a file path.
func (e *Env) LoadPoints(cmd *cobra.Command, arg string) ([]geom.Point, error) {
	if name, ok := strings.CutPrefix(arg, gadgetPrefix); ok {
		return builder.GadgetByName(name)
	}

	var r io.Reader
	if arg == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	policy := coords.Abort
	if e.skipInvalid {
		policy = coords.SkipInvalid
	}
	pts, rep, err := coords.Load(r, coords.WithPolicy(policy), coords.WithLogger(e.Logger.Named("coords")))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", arg, err)
	}
	e.Logger.Debug("points loaded",
		logging.String("input", arg),
		logging.Int("points", len(pts)),
		logging.Int("lines", rep.Lines),
		logging.Int("skipped", len(rep.Skipped)))
	return pts, nil
}

// LoadGraph loads points and builds their unit-distance graph.
func (e *Env) LoadGraph(cmd *cobra.Command, arg string) ([]geom.Point, *core.Graph, error) {
	pts, err := e.LoadPoints(cmd, arg)
	if err != nil {
		return nil, nil, err
	}
	g, err := builder.UnitDistance(pts, e.builderOptions()...)
	if err != nil {
		return nil, nil, err
	}
	return pts, g, nil
}

// report is a command result printable as text or as structured data.
type report interface {
	WriteText(w io.Writer) error
	Fields() map[string]any
}

// emit prints rep in the selected output format.
func (e *Env) emit(cmd *cobra.Command, rep report) error {
	w := cmd.OutOrStdout()
	switch e.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep.Fields())
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep.Fields()); err != nil {
			return err
		}
		return enc.Close()
	default:
		return rep.WriteText(w)
	}
}

// run wraps a command body with a run record: the body fills the record's
// graph size and returns its report, which is emitted and stored.
func (e *Env) run(cmd *cobra.Command, input string, args []string, body func(rec *runlog.Record) (report, error)) error {
	rec := runlog.NewRecord(cmd.Name(), input, args...)
	log := e.Logger.With(logging.String("run_id", rec.RunID), logging.String("command", cmd.Name()))
	log.Debug("run start", logging.String("input", input))

	rep, err := body(rec)
	if err == nil {
		for k, v := range rep.Fields() {
			rec.Set(k, v)
		}
		err = e.emit(cmd, rep)
	}
	rec.Finish(err)

	if e.Runlog != nil {
		path, werr := e.Runlog.Write(rec)
		if werr != nil {
			log.Warn("run record not written", logging.Err(werr))
		} else {
			log.Info("run record written", logging.String("path", path))
		}
	}
	log.Debug("run done", logging.Duration("elapsed", rec.Duration()), logging.Bool("ok", err == nil))
	return err
}
