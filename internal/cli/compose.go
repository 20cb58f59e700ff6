package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/compose"
	"github.com/katalvlaran/unitgraph/coords"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/runlog"
)

type composeReport struct {
	Composition *compose.Composition
	Transforms  []geom.Transform
	Result      *chromatic.Result // nil unless --chromatic
	Out         string
}

func (r *composeReport) WriteText(w io.Writer) error {
	c := r.Composition
	fmt.Fprintf(w, "%s\n", c)
	for i, t := range r.Transforms {
		fmt.Fprintf(w, "  copy %d: %s (vertices %d-%d)\n", i, t, c.Offsets[i], c.Offsets[i+1]-1)
	}
	fmt.Fprintf(w, "coincident cross-copy pairs: %d\n", c.Coincident)
	if !c.Informative() {
		fmt.Fprintln(w, "non-informative: no cross-copy edges")
	}
	if r.Result != nil {
		fmt.Fprintf(w, "%s\n", r.Result)
	}
	if r.Out != "" {
		fmt.Fprintf(w, "points written to %s\n", r.Out)
	}
	return nil
}

func (r *composeReport) Fields() map[string]any {
	c := r.Composition
	copies := make([]string, len(r.Transforms))
	for i, t := range r.Transforms {
		copies[i] = t.String()
	}
	f := map[string]any{
		"copies":       copies,
		"vertices":     len(c.Points),
		"edges":        c.Graph.EdgeCount(),
		"within_edges": c.WithinEdges,
		"cross_edges":  c.CrossEdges,
		"coincident":   c.Coincident,
		"informative":  c.Informative(),
	}
	if r.Result != nil {
		f["chromatic"] = r.Result.String()
	}
	if r.Out != "" {
		f["out"] = r.Out
	}
	return f
}

func newComposeCmd() *cobra.Command {
	var (
		rotations    []string
		translations []string
		withChi      bool
		out          string
	)

	cmd := &cobra.Command{
		Use:   "compose <input>",
		Short: "Union of the input with rotated and translated copies",
		Long: "Compose the input point set with one copy per --rotate (radians, about the\n" +
			"origin) and per --translate (\"x,y\"). Both accept coordinate expressions\n" +
			"such as Sqrt[3]/2. The base set is always copy 0.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := GetEnv(cmd)
			if err != nil {
				return err
			}
			transforms, err := parseTransforms(rotations, translations)
			if err != nil {
				return err
			}
			return env.run(cmd, args[0], args, func(rec *runlog.Record) (report, error) {
				pts, err := env.LoadPoints(cmd, args[0])
				if err != nil {
					return nil, err
				}
				c, err := compose.Compose(pts, transforms,
					compose.WithTolerance(env.Config.Geometry.Tolerance),
					compose.WithLogger(env.Logger.Named("compose")))
				if err != nil {
					return nil, err
				}
				rec.Vertices, rec.Edges = c.Graph.VertexCount(), c.Graph.EdgeCount()
				rep := &composeReport{Composition: c, Transforms: transforms}

				if withChi {
					rep.Result, err = chromatic.Search(cmd.Context(), env.Oracle, c.Graph,
						chromatic.WithMaxK(env.Config.Search.MaxK),
						chromatic.WithWorkers(env.Config.Search.Workers),
						chromatic.WithLogger(env.Logger.Named("chromatic")))
					if err != nil {
						return nil, err
					}
				}
				if out != "" {
					if err := writePoints(out, c.Points); err != nil {
						return nil, err
					}
					rep.Out = out
				}
				return rep, nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&rotations, "rotate", nil, "rotation angle in radians (repeatable)")
	cmd.Flags().StringArrayVar(&translations, "translate", nil, "translation vector \"x,y\" (repeatable)")
	cmd.Flags().BoolVar(&withChi, "chromatic", false, "also search the chromatic number of the composition")
	cmd.Flags().StringVar(&out, "out", "", "write the composed points to this file")
	cmd.Flags().Int("max-k", chromatic.DefaultMaxK, "largest k to try with --chromatic")
	bindKeys(cmd.Flags(), map[string]string{"max-k": "search.max_k"})
	return cmd
}

// parseTransforms returns the identity followed by one transform per flag value.
func parseTransforms(rotations, translations []string) ([]geom.Transform, error) {
	out := []geom.Transform{geom.Identity()}
	for _, r := range rotations {
		angle, err := coords.Eval(r)
		if err != nil {
			return nil, fmt.Errorf("--rotate %q: %w", r, err)
		}
		out = append(out, geom.Rotation(angle))
	}
	for _, t := range translations {
		p, err := coords.ParseLine("{" + t + "}")
		if err != nil {
			return nil, fmt.Errorf("--translate %q: %w", t, err)
		}
		out = append(out, geom.Translation(geom.Vector{X: p.X, Y: p.Y}))
	}
	return out, nil
}

// writePoints stores points one "{x, y}" line each, loadable by coords.Load.
func writePoints(path string, points []geom.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintln(f, coords.Format(p)); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
