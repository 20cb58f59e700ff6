// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// greedy.go — greedy expansion of a unit-distance point set.

package strategy

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

// StopReason says why Greedy returned.
type StopReason int

const (
	// StopTarget: χ reached the target.
	StopTarget StopReason = iota
	// StopNoImprovement: no candidate raised χ and the plateau budget is spent.
	StopNoImprovement
	// StopVertexCap: the point set reached the vertex cap.
	StopVertexCap
	// StopInconclusive: nothing was committed and at least one candidate
	// got no verdict, so an improving candidate may still exist.
	StopInconclusive
)

// String returns a kebab-case reason.
func (r StopReason) String() string {
	switch r {
	case StopTarget:
		return "target-reached"
	case StopNoImprovement:
		return "no-improvement"
	case StopVertexCap:
		return "vertex-cap"
	case StopInconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("stop(%d)", int(r))
	}
}

// Step records one committed Greedy move.
type Step struct {
	Point        geom.Point
	NewEdges     int
	Chromatic    int // χ after the step
	Improved     bool
	Candidates   int // candidates generated
	Evaluated    int // oracle calls made
	Inconclusive int // oracle calls without a verdict
}

// State is the Greedy search state: the current point set, its graph, the
// exact χ with a witness coloring, and the committed steps. Inconclusive
// counts every oracle call without a verdict, committed step or not.
type State struct {
	Points       []geom.Point
	Graph        *core.Graph
	Chromatic    int
	Witness      core.Coloring
	History      []Step
	Stop         StopReason
	Inconclusive int
}

type candidate struct {
	p    geom.Point
	nbrs []int
}

// Greedy grows seed by points at unit distance from at least two existing
// points until χ reaches the target, no candidate helps, or the vertex cap is hit.
//
// Each step evaluates candidates in order (most new edges first, then
// generation order) with one oracle call at k = current χ: UNSAT means the
// candidate raises χ by exactly one and it is committed at once. If none
// does and plateau budget remains, the first SAT candidate is committed as a
// non-improving step; the budget resets after every improvement.
//
// A step that commits nothing while some candidate timed out or exhausted
// the oracle budget ends the run with StopInconclusive, not StopNoImprovement.
//
// Errors: ErrEmptySeed; ErrSeedUndetermined when χ(seed) is not Determined;
// oracle errors other than timeout and resource exhaustion.
func Greedy(ctx context.Context, o chromatic.Oracle, seed []geom.Point, opts ...Option) (*State, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	cfg := newStrategyConfig(opts...)
	log := cfg.log.Named("greedy")

	pts := append([]geom.Point(nil), seed...)
	g, err := builder.UnitDistance(pts, builder.WithTolerance(cfg.tolerance))
	if err != nil {
		return nil, fmt.Errorf("Greedy: %w", err)
	}
	res, err := chromatic.Search(ctx, o, g, chromatic.WithMaxK(cfg.maxK))
	if err != nil {
		return nil, fmt.Errorf("Greedy: seed: %w", err)
	}
	if res.Status != chromatic.Determined {
		return nil, fmt.Errorf("Greedy: seed %s: %w", res, ErrSeedUndetermined)
	}

	st := &State{Points: pts, Graph: g, Chromatic: res.Chromatic, Witness: res.Witness}
	log.Info("greedy start", logging.Int("vertices", len(pts)), logging.Int("chromatic", st.Chromatic),
		logging.Int("target", cfg.target))

	plateauLeft := cfg.plateau
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if st.Chromatic >= cfg.target {
			st.Stop = StopTarget
			break
		}
		if len(st.Points) >= cfg.maxVertices {
			st.Stop = StopVertexCap
			break
		}
		cands := candidates(st.Points, cfg.tolerance, cfg.maxCandidates)
		before := st.Inconclusive
		committed, err := st.advance(ctx, o, cands, plateauLeft > 0)
		if err != nil {
			return st, err
		}
		if !committed {
			st.Stop = StopNoImprovement
			if open := st.Inconclusive - before; open > 0 {
				st.Stop = StopInconclusive
				log.Warn("greedy step undetermined",
					logging.Int("candidates", len(cands)),
					logging.Int("inconclusive", open),
					logging.Int("k", st.Chromatic))
			}
			break
		}
		last := st.History[len(st.History)-1]
		if last.Improved {
			plateauLeft = cfg.plateau
		} else {
			plateauLeft--
		}
		log.Info("greedy step",
			logging.Int("vertices", len(st.Points)),
			logging.Int("new_edges", last.NewEdges),
			logging.Int("chromatic", st.Chromatic),
			logging.Bool("improved", last.Improved),
			logging.Int("evaluated", last.Evaluated))
	}

	log.Info("greedy done", logging.String("stop", st.Stop.String()),
		logging.Int("vertices", len(st.Points)), logging.Int("chromatic", st.Chromatic),
		logging.Int("inconclusive", st.Inconclusive))
	return st, nil
}

// advance evaluates cands against the current χ and commits at most one.
func (st *State) advance(ctx context.Context, o chromatic.Oracle, cands []candidate, allowPlateau bool) (bool, error) {
	step := Step{Candidates: len(cands)}
	defer func() { st.Inconclusive += step.Inconclusive }()
	var (
		fallback    *candidate
		fallbackG   *core.Graph
		fallbackCol core.Coloring
	)
	for i := range cands {
		c := &cands[i]
		g2, err := augment(st.Graph, c.nbrs)
		if err != nil {
			return false, err
		}
		step.Evaluated++
		ans, err := o.Colorable(ctx, g2, st.Chromatic)
		if err != nil {
			if undetermined(err) {
				step.Inconclusive++
				continue
			}
			return false, fmt.Errorf("Greedy: candidate %v: %w", c.p, err)
		}
		switch ans.Outcome {
		case coloring.OutcomeUNSAT:
			// the old witness plus one fresh color colors g2
			witness := append(append(core.Coloring(nil), st.Witness...), st.Chromatic)
			st.commit(c, g2, st.Chromatic+1, witness, step, true)
			return true, nil
		case coloring.OutcomeSAT:
			if fallback == nil {
				fallback, fallbackG, fallbackCol = c, g2, ans.Coloring
			}
		}
	}
	if allowPlateau && fallback != nil {
		st.commit(fallback, fallbackG, st.Chromatic, fallbackCol, step, false)
		return true, nil
	}
	return false, nil
}

func (st *State) commit(c *candidate, g *core.Graph, chi int, witness core.Coloring, step Step, improved bool) {
	st.Points = append(st.Points, c.p)
	st.Graph = g
	st.Chromatic = chi
	st.Witness = witness
	step.Point, step.NewEdges, step.Chromatic, step.Improved = c.p, len(c.nbrs), chi, improved
	st.History = append(st.History, step)
}

// candidates lists new points at unit distance from ≥ 2 existing points,
// excluding positions already occupied, ordered by neighbour count
// (descending) then discovery order, truncated to limit.
func candidates(points []geom.Point, eps float64, limit int) []candidate {
	var out []candidate
	var seen []geom.Point
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			for _, p := range geom.UnitCircleIntersections(points[i], points[j], eps) {
				if geom.Contains(points, p, eps) || geom.Contains(seen, p, eps) {
					continue
				}
				seen = append(seen, p)
				var nbrs []int
				for k, q := range points {
					if geom.IsUnitDistance(p, q, eps) {
						nbrs = append(nbrs, k)
					}
				}
				if len(nbrs) >= 2 {
					out = append(out, candidate{p: p, nbrs: nbrs})
				}
			}
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return len(out[a].nbrs) > len(out[b].nbrs) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// augment returns g plus one vertex adjacent to nbrs.
func augment(g *core.Graph, nbrs []int) (*core.Graph, error) {
	n := g.VertexCount()
	edges := g.Edges()
	for _, u := range nbrs {
		edges = append(edges, core.Edge{U: u, V: n})
	}
	return core.NewGraph(n+1, edges)
}
