package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/config"
	"github.com/katalvlaran/unitgraph/runlog"
	"github.com/katalvlaran/unitgraph/strategy"
)

// strategyOptions returns the strategy options implied by the configuration.
func (e *Env) strategyOptions(name string) []strategy.Option {
	s := e.Config.Strategy
	return []strategy.Option{
		strategy.WithTarget(s.Target),
		strategy.WithMaxVertices(s.MaxVertices),
		strategy.WithMaxCandidates(s.MaxCandidates),
		strategy.WithPlateau(s.Plateau),
		strategy.WithMaxK(e.Config.Search.MaxK),
		strategy.WithTrials(s.Trials),
		strategy.WithSeed(s.Seed),
		strategy.WithThreshold(s.Threshold),
		strategy.WithWorkers(s.Workers),
		strategy.WithTolerance(e.Config.Geometry.Tolerance),
		strategy.WithLogger(e.Logger.Named(name)),
	}
}

type criticalReport struct {
	Report *strategy.CriticalityReport
}

func (r *criticalReport) WriteText(w io.Writer) error {
	fmt.Fprintln(w, r.Report)
	if len(r.Report.NonCritical) > 0 {
		fmt.Fprintf(w, "non-critical: %v\n", r.Report.NonCritical)
	}
	if len(r.Report.Inconclusive) > 0 {
		fmt.Fprintf(w, "inconclusive: %v\n", r.Report.Inconclusive)
	}
	return nil
}

func (r *criticalReport) Fields() map[string]any {
	return map[string]any{
		"k":            r.Report.K,
		"vertices":     r.Report.Vertices,
		"edges":        r.Report.Edges,
		"critical":     r.Report.Critical(),
		"non_critical": nonNil(r.Report.NonCritical),
		"inconclusive": nonNil(r.Report.Inconclusive),
	}
}

func nonNil(a []int) []int {
	if a == nil {
		return []int{}
	}
	return a
}

func newCriticalCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "critical <input>",
		Short: "Find vertices whose removal keeps the graph non-k-colorable",
		Long: "The input graph must be non-k-colorable. Every vertex is removed in turn and\n" +
			"the remainder is checked at k; vertices whose removal does not restore\n" +
			"k-colorability are reported as non-critical.",
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
				rep, err := strategy.Criticality(cmd.Context(), env.Oracle, g, k, env.strategyOptions("criticality")...)
				if err != nil {
					return nil, err
				}
				return &criticalReport{Report: rep}, nil
			})
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of colors [REQUIRED]")
	cmd.Flags().Int("workers", config.DefaultWorkers, "concurrent oracle calls")
	_ = cmd.MarkFlagRequired("k")
	bindKeys(cmd.Flags(), map[string]string{"workers": "strategy.workers"})
	return cmd
}

type minimalReport struct {
	Estimate *strategy.Estimate
}

func (r *minimalReport) WriteText(w io.Writer) error {
	fmt.Fprintln(w, r.Estimate)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIZE\tTRIALS\tUNSAT\tINCONCLUSIVE\tRATE")
	for _, sr := range r.Estimate.Rates {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%.2f\n", sr.Size, sr.Trials, sr.Unsat, sr.Inconclusive, sr.Rate())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "witness: %v\n", r.Estimate.Witness)
	return err
}

func (r *minimalReport) Fields() map[string]any {
	rates := make([]map[string]any, len(r.Estimate.Rates))
	for i, sr := range r.Estimate.Rates {
		rates[i] = map[string]any{
			"size": sr.Size, "trials": sr.Trials, "unsat": sr.Unsat,
			"inconclusive": sr.Inconclusive, "rate": sr.Rate(),
		}
	}
	return map[string]any{
		"k":         r.Estimate.K,
		"vertices":  r.Estimate.Vertices,
		"size":      r.Estimate.Size,
		"witness":   r.Estimate.Witness,
		"rates":     rates,
		"heuristic": r.Estimate.Heuristic,
	}
}

func newMinimalCmd() *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "minimal <input>",
		Short: "Estimate the smallest non-k-colorable induced subgraph by sampling",
		Long: "Binary search over subset size with random vertex samples. The result is a\n" +
			"statistical estimate with per-size UNSAT rates, not a proven minimum.",
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
				est, err := strategy.MinimalSubgraph(cmd.Context(), env.Oracle, g, k, env.strategyOptions("minimal")...)
				if err != nil {
					return nil, err
				}
				return &minimalReport{Estimate: est}, nil
			})
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of colors [REQUIRED]")
	cmd.Flags().Int("trials", config.DefaultTrials, "random samples per probed size")
	cmd.Flags().Int64("seed", config.DefaultSeed, "sampling seed")
	cmd.Flags().Float64("threshold", config.DefaultThreshold, "UNSAT rate at which a size counts as non-k-colorable")
	cmd.Flags().Int("workers", config.DefaultWorkers, "concurrent oracle calls")
	_ = cmd.MarkFlagRequired("k")
	bindKeys(cmd.Flags(), map[string]string{
		"trials":    "strategy.trials",
		"seed":      "strategy.seed",
		"threshold": "strategy.threshold",
		"workers":   "strategy.workers",
	})
	return cmd
}

type greedyReport struct {
	State *strategy.State
	Seed  string
	Out   string
}

func (r *greedyReport) WriteText(w io.Writer) error {
	st := r.State
	fmt.Fprintf(w, "seed %s → %s, χ = %d (%s)\n", r.Seed, st.Graph, st.Chromatic, st.Stop)
	for i, s := range st.History {
		mark := " "
		if s.Improved {
			mark = "+"
		}
		fmt.Fprintf(w, "%s step %d: %v, %d new edges, χ = %d (%d/%d candidates evaluated)\n",
			mark, i+1, s.Point, s.NewEdges, s.Chromatic, s.Evaluated, s.Candidates)
	}
	if st.Inconclusive > 0 {
		fmt.Fprintf(w, "%d oracle call(s) without a verdict\n", st.Inconclusive)
	}
	if r.Out != "" {
		fmt.Fprintf(w, "points written to %s\n", r.Out)
	}
	return nil
}

func (r *greedyReport) Fields() map[string]any {
	st := r.State
	steps := make([]map[string]any, len(st.History))
	for i, s := range st.History {
		steps[i] = map[string]any{
			"x": s.Point.X, "y": s.Point.Y, "new_edges": s.NewEdges,
			"chromatic": s.Chromatic, "improved": s.Improved,
			"candidates": s.Candidates, "evaluated": s.Evaluated, "inconclusive": s.Inconclusive,
		}
	}
	f := map[string]any{
		"seed":         r.Seed,
		"vertices":     st.Graph.VertexCount(),
		"edges":        st.Graph.EdgeCount(),
		"chromatic":    st.Chromatic,
		"stop":         st.Stop.String(),
		"inconclusive": st.Inconclusive,
		"steps":        steps,
	}
	if r.Out != "" {
		f["out"] = r.Out
	}
	return f
}

func newGreedyCmd() *cobra.Command {
	var (
		seedGadget string
		seedFile   string
		out        string
	)

	cmd := &cobra.Command{
		Use:   "greedy",
		Short: "Grow a unit-distance graph one point at a time, chasing higher χ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			input := gadgetPrefix + seedGadget
			if seedFile != "" {
				input = seedFile
			}
			return env.run(cmd, input, args, func(rec *runlog.Record) (report, error) {
				seed, err := env.LoadPoints(cmd, input)
				if err != nil {
					return nil, err
				}
				st, err := strategy.Greedy(cmd.Context(), env.Oracle, seed, env.strategyOptions("greedy")...)
				if err != nil {
					return nil, err
				}
				rec.Vertices, rec.Edges = st.Graph.VertexCount(), st.Graph.EdgeCount()
				rep := &greedyReport{State: st, Seed: input}
				if out != "" {
					if err := writePoints(out, st.Points); err != nil {
						return nil, err
					}
					rep.Out = out
				}
				return rep, nil
			})
		},
	}

	cmd.Flags().StringVar(&seedGadget, "seed-gadget", builder.GadgetMoserSpindle,
		fmt.Sprintf("seed gadget %v or lattice-N", builder.GadgetNames()))
	cmd.Flags().StringVar(&seedFile, "seed-file", "", "seed coordinate file (overrides --seed-gadget)")
	cmd.Flags().StringVar(&out, "out", "", "write the final points to this file")
	cmd.Flags().Int("target", config.DefaultTarget, "stop once χ reaches this value")
	cmd.Flags().Int("max-vertices", config.DefaultMaxVertices, "stop once the point set has this many points")
	cmd.Flags().Int("max-candidates", config.DefaultMaxCandidates, "candidates evaluated per step")
	cmd.Flags().Int("plateau", 0, "non-improving steps allowed in a row")
	bindKeys(cmd.Flags(), map[string]string{
		"target":         "strategy.target",
		"max-vertices":   "strategy.max_vertices",
		"max-candidates": "strategy.max_candidates",
		"plateau":        "strategy.plateau",
	})
	return cmd
}
