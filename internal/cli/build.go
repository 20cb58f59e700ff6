package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/runlog"
)

type buildReport struct {
	Stats      core.GraphStats
	Components int
	Dimacs     string // path written, if any
	K          int
}

func (r *buildReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"vertices:   %d\nedges:      %d\ndegree:     min %d, max %d\nisolated:   %d\ncomponents: %d\n",
		r.Stats.Vertices, r.Stats.Edges, r.Stats.MinDegree, r.Stats.MaxDegree, r.Stats.Isolated, r.Components)
	if err == nil && r.Dimacs != "" {
		_, err = fmt.Fprintf(w, "dimacs:     %s (k=%d)\n", r.Dimacs, r.K)
	}
	return err
}

func (r *buildReport) Fields() map[string]any {
	f := map[string]any{
		"vertices":   r.Stats.Vertices,
		"edges":      r.Stats.Edges,
		"min_degree": r.Stats.MinDegree,
		"max_degree": r.Stats.MaxDegree,
		"isolated":   r.Stats.Isolated,
		"components": r.Components,
	}
	if r.Dimacs != "" {
		f["dimacs"], f["k"] = r.Dimacs, r.K
	}
	return f
}

func newBuildCmd() *cobra.Command {
	var (
		dimacsK int
		out     string
	)

	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build the unit-distance graph of a point set and print its statistics",
		Long: "Build the unit-distance graph of the points in <input> (a coordinate file,\n" +
			"'-' for stdin, or gadget:<name>). With --dimacs K the K-colorability CNF\n" +
			"is written in DIMACS format to --out, or to stdout in place of the statistics.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			if dimacsK < 0 {
				return fmt.Errorf("--dimacs must be ≥ 1, got %d", dimacsK)
			}
			if dimacsK > 0 && out == "" {
				// CNF goes to stdout alone so it can be piped into a solver.
				_, g, err := env.LoadGraph(cmd, args[0])
				if err != nil {
					return err
				}
				return writeDIMACS(cmd.OutOrStdout(), g, dimacsK, args[0])
			}
			return env.run(cmd, args[0], args, func(rec *runlog.Record) (report, error) {
				_, g, err := env.LoadGraph(cmd, args[0])
				if err != nil {
					return nil, err
				}
				rec.Vertices, rec.Edges = g.VertexCount(), g.EdgeCount()
				rep := &buildReport{Stats: g.Stats(), Components: len(g.Components())}
				if dimacsK > 0 {
					f, err := os.Create(out)
					if err != nil {
						return nil, err
					}
					defer f.Close()
					if err := writeDIMACS(f, g, dimacsK, args[0]); err != nil {
						return nil, err
					}
					rep.Dimacs, rep.K = out, dimacsK
				}
				return rep, nil
			})
		},
	}

	cmd.Flags().IntVar(&dimacsK, "dimacs", 0, "write the K-colorability CNF in DIMACS format")
	cmd.Flags().StringVar(&out, "out", "", "DIMACS output file (default: stdout)")
	return cmd
}

func writeDIMACS(w io.Writer, g *core.Graph, k int, source string) error {
	f, err := coloring.Encode(g, k)
	if err != nil {
		return err
	}
	return f.WriteDIMACS(w,
		fmt.Sprintf("unitgraph %d-colorability of %s", k, source),
		fmt.Sprintf("vertices %d edges %d, variable v*k+c+1", g.VertexCount(), g.EdgeCount()),
	)
}
