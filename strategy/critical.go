// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// critical.go — vertex-criticality check.

package strategy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/logging"
)

// CriticalityReport lists, for a graph that is not k-colorable, the vertices
// whose removal leaves it non-k-colorable (NonCritical) and those for which
// the oracle gave no verdict (Inconclusive). Both lists are ascending.
type CriticalityReport struct {
	K            int
	Vertices     int
	Edges        int
	NonCritical  []int
	Inconclusive []int
}

// Critical reports whether every vertex was shown to be critical.
func (r *CriticalityReport) Critical() bool {
	return len(r.NonCritical) == 0 && len(r.Inconclusive) == 0
}

// String renders e.g. "critical at k=3 (V=7, E=11)" or
// "not critical at k=3: 1 non-critical, 0 inconclusive (V=8, E=11)".
func (r *CriticalityReport) String() string {
	if r.Critical() {
		return fmt.Sprintf("critical at k=%d (V=%d, E=%d)", r.K, r.Vertices, r.Edges)
	}
	return fmt.Sprintf("not critical at k=%d: %d non-critical, %d inconclusive (V=%d, E=%d)",
		r.K, len(r.NonCritical), len(r.Inconclusive), r.Vertices, r.Edges)
}

type removal int

const (
	removalCritical removal = iota
	removalNonCritical
	removalInconclusive
)

// Criticality asks, for each vertex v, whether G − v is k-colorable. Calls
// run concurrently up to WithWorkers; results are independent of scheduling.
//
// Errors: ErrNilGraph; ErrColorable / ErrUndetermined when g itself is not
// proven UNSAT at k; hard oracle errors (the first one cancels the rest).
func Criticality(ctx context.Context, o chromatic.Oracle, g *core.Graph, k int, opts ...Option) (*CriticalityReport, error) {
	if err := requireUNSAT(ctx, o, g, k); err != nil {
		return nil, fmt.Errorf("Criticality: %w", err)
	}
	cfg := newStrategyConfig(opts...)
	log := cfg.log.Named("criticality")

	n := g.VertexCount()
	verdicts := make([]removal, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for v := 0; v < n; v++ {
		v := v
		eg.Go(func() error {
			sub, _, err := g.WithoutVertex(v)
			if err != nil {
				return err
			}
			ans, err := o.Colorable(egCtx, sub, k)
			switch {
			case err != nil && undetermined(err):
				verdicts[v] = removalInconclusive
			case err != nil:
				return fmt.Errorf("vertex %d: %w", v, err)
			case ans.Outcome == coloring.OutcomeUNSAT:
				verdicts[v] = removalNonCritical
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Criticality: %w", err)
	}

	rep := &CriticalityReport{K: k, Vertices: n, Edges: g.EdgeCount()}
	for v, r := range verdicts {
		switch r {
		case removalNonCritical:
			rep.NonCritical = append(rep.NonCritical, v)
		case removalInconclusive:
			rep.Inconclusive = append(rep.Inconclusive, v)
		}
	}
	log.Info("criticality checked", logging.String("report", rep.String()))
	return rep, nil
}
