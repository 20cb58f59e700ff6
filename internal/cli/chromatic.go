package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/config"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/runlog"
)

type chromaticReport struct {
	Graph        *core.Graph
	Result       *chromatic.Result
	ShowColoring bool
}

func (r *chromaticReport) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "%s\n%s\n", r.Graph, r.Result)
	for _, c := range r.Result.Certificates {
		fmt.Fprintf(w, "  k=%d %-18s %s\n", c.K, c.Outcome, c.Elapsed.Round(time.Millisecond))
	}
	if r.Result.Reason != nil {
		fmt.Fprintf(w, "stopped: %v\n", r.Result.Reason)
	}
	if r.ShowColoring && r.Result.Witness != nil {
		fmt.Fprintf(w, "coloring: %v\n", []int(r.Result.Witness))
	}
	return nil
}

func (r *chromaticReport) Fields() map[string]any {
	res := r.Result
	f := map[string]any{
		"vertices":     r.Graph.VertexCount(),
		"edges":        r.Graph.EdgeCount(),
		"status":       res.Status.String(),
		"lower":        res.Lower,
		"upper":        res.Upper,
		"cap":          res.Cap,
		"summary":      res.String(),
		"certificates": certificateFields(res.Certificates),
	}
	if res.Status == chromatic.Determined {
		f["chromatic"] = res.Chromatic
	}
	if res.Reason != nil {
		f["reason"] = res.Reason.Error()
	}
	if r.ShowColoring && res.Witness != nil {
		f["coloring"] = []int(res.Witness)
	}
	return f
}

func certificateFields(certs []chromatic.Certificate) []map[string]any {
	out := make([]map[string]any, len(certs))
	for i, c := range certs {
		out[i] = map[string]any{
			"k":          c.K,
			"outcome":    c.Outcome.String(),
			"elapsed_ms": c.Elapsed.Milliseconds(),
		}
	}
	return out
}

func newChromaticCmd() *cobra.Command {
	var showColoring bool

	cmd := &cobra.Command{
		Use:   "chromatic <input>",
		Short: "Determine the chromatic number by upward SAT search",
		Long: "Ask the colorability oracle about k = 1, 2, ... up to --max-k and report the\n" +
			"first k that is SAT as the chromatic number. A timeout reports a bracket;\n" +
			"reaching the cap reports the lower bound only.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			return env.run(cmd, args[0], args, func(rec *runlog.Record) (report, error) {
				_, g, err := env.LoadGraph(cmd, args[0])
				if err != nil {
					return nil, err
				}
				rec.Vertices, rec.Edges = g.VertexCount(), g.EdgeCount()
				res, err := chromatic.Search(cmd.Context(), env.Oracle, g,
					chromatic.WithMaxK(env.Config.Search.MaxK),
					chromatic.WithWorkers(env.Config.Search.Workers),
					chromatic.WithLogger(env.Logger.Named("chromatic")))
				if err != nil {
					return nil, err
				}
				return &chromaticReport{Graph: g, Result: res, ShowColoring: showColoring}, nil
			})
		},
	}

	cmd.Flags().Int("max-k", chromatic.DefaultMaxK, "largest k to try")
	cmd.Flags().Int("workers", config.DefaultWorkers, "consecutive k values solved concurrently")
	cmd.Flags().BoolVar(&showColoring, "show-coloring", false, "print the witness coloring")
	bindKeys(cmd.Flags(), map[string]string{"max-k": "search.max_k", "workers": "search.workers"})
	return cmd
}

type checkReport struct {
	Certificate *chromatic.Certificate
	Err         error
}

func (r *checkReport) WriteText(w io.Writer) error {
	c := r.Certificate
	switch {
	case c.Exceeds():
		fmt.Fprintf(w, "UNSAT at k=%d: χ > %d (V=%d, E=%d)\n", c.K, c.K, c.Vertices, c.Edges)
	case c.Outcome == coloring.OutcomeSAT:
		fmt.Fprintf(w, "SAT at k=%d: χ ≤ %d (V=%d, E=%d)\n", c.K, c.K, c.Vertices, c.Edges)
	default:
		fmt.Fprintf(w, "undetermined at k=%d: %v\n", c.K, r.Err)
	}
	return nil
}

func (r *checkReport) Fields() map[string]any {
	c := r.Certificate
	f := map[string]any{
		"k":        c.K,
		"outcome":  c.Outcome.String(),
		"exceeds":  c.Exceeds(),
		"vertices": c.Vertices,
		"edges":    c.Edges,
	}
	if r.Err != nil {
		f["reason"] = r.Err.Error()
	}
	return f
}

func newCheckCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "check <input>",
		Short: "Breakthrough mode: test whether the graph certifies χ > k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			return env.run(cmd, args[0], args, func(rec *runlog.Record) (report, error) {
				_, g, err := env.LoadGraph(cmd, args[0])
				if err != nil {
					return nil, err
				}
				rec.Vertices, rec.Edges = g.VertexCount(), g.EdgeCount()
				cert, err := chromatic.Breakthrough(cmd.Context(), env.Oracle, g, k)
				if err != nil && (cert == nil || !undetermined(err)) {
					return nil, err
				}
				return &checkReport{Certificate: cert, Err: err}, nil
			})
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of colors [REQUIRED]")
	_ = cmd.MarkFlagRequired("k")
	return cmd
}

func undetermined(err error) bool {
	return errors.Is(err, coloring.ErrOracleTimeout) || errors.Is(err, coloring.ErrResourceExhausted)
}
