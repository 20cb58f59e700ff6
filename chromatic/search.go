// SPDX-License-Identifier: MIT
// Package: unitgraph/chromatic
//
// search.go — upward k search and single-k breakthrough checks.

package chromatic

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/logging"
)

// step is one oracle call inside a window.
type step struct {
	ans *coloring.Answer
	err error
}

// Search returns the chromatic number of g, or the tightest bracket the
// oracle allowed, trying k = 1..cap in ascending order.
//
// Errors other than ErrOracleTimeout and ErrResourceExhausted (cancellation,
// backend failures, invalid witnesses) abort the search and are returned.
//
// Implementation:
//   - Stage 1: V=0 is Determined with χ=0 and no oracle call.
//   - Stage 2: windows of `workers` consecutive k; each window runs
//     concurrently, then is scanned in ascending k.
//   - Stage 3: the scan stops at the first SAT (Determined), the first
//     undetermined call (Inconclusive) or a hard error; exhausting the cap
//     yields Undetermined.
func Search(ctx context.Context, o Oracle, g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := newSearchConfig(opts...)
	log := cfg.log.With(logging.Graph(g.VertexCount(), g.EdgeCount())...)

	res := &Result{Lower: 1, Cap: cfg.maxK}
	if g.VertexCount() == 0 {
		res.Status, res.Witness = Determined, core.Coloring{}
		log.Info("chromatic search done", logging.String("result", res.String()))
		return res, nil
	}

	log.Info("chromatic search start", logging.Int("max_k", cfg.maxK), logging.Int("workers", cfg.workers))
	for lo := 1; lo <= cfg.maxK; lo += cfg.workers {
		hi := lo + cfg.workers - 1
		if hi > cfg.maxK {
			hi = cfg.maxK
		}
		steps, err := solveWindow(ctx, o, g, lo, hi)
		if err != nil {
			return nil, err
		}
		for i, st := range steps {
			k := lo + i
			done, err := res.absorb(g, k, st)
			if err != nil {
				return nil, fmt.Errorf("Search: k=%d: %w", k, err)
			}
			if done {
				log.Info("chromatic search done", logging.String("result", res.String()))
				return res, nil
			}
		}
	}

	res.Status = Undetermined
	res.Lower, res.Upper = cfg.maxK+1, 0
	log.Warn("chromatic search reached cap", logging.Int("max_k", cfg.maxK))
	return res, nil
}

// absorb folds the answer for k into res. It returns done=true once the
// status is final, or a non-nil error for a hard failure.
func (r *Result) absorb(g *core.Graph, k int, st step) (done bool, err error) {
	if st.ans != nil {
		r.Certificates = append(r.Certificates, certificateOf(st.ans))
	}
	if st.err != nil {
		if !errors.Is(st.err, coloring.ErrOracleTimeout) && !errors.Is(st.err, coloring.ErrResourceExhausted) {
			return false, st.err
		}
		r.Status, r.Reason = Inconclusive, st.err
		r.Lower = k
		r.Witness = g.GreedyColoring()
		r.Upper = r.Witness.NumColors()
		if r.Upper <= r.Lower {
			// χ ≥ k by the UNSAT answers below and χ ≤ k by the greedy witness
			r.Status, r.Chromatic, r.Upper, r.Reason = Determined, r.Lower, r.Lower, nil
		}
		return true, nil
	}
	switch st.ans.Outcome {
	case coloring.OutcomeSAT:
		r.Status, r.Chromatic, r.Lower, r.Upper = Determined, k, k, k
		r.Witness = st.ans.Coloring
		return true, nil
	case coloring.OutcomeUNSAT:
		r.Lower = k + 1
		return false, nil
	default:
		return false, fmt.Errorf("unexpected outcome %s", st.ans.Outcome)
	}
}

// solveWindow asks the oracle about every k in [lo, hi]. Per-k oracle errors
// are kept in the steps; only the caller's cancellation fails the window.
func solveWindow(ctx context.Context, o Oracle, g *core.Graph, lo, hi int) ([]step, error) {
	steps := make([]step, hi-lo+1)
	if len(steps) == 1 {
		ans, err := o.Colorable(ctx, g, lo)
		steps[0] = step{ans: ans, err: err}
		return steps, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	for i := range steps {
		i := i
		eg.Go(func() error {
			ans, err := o.Colorable(egCtx, g, lo+i)
			steps[i] = step{ans: ans, err: err}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Breakthrough asks the single question "is g k-colorable?" and returns the
// verdict as a Certificate; Exceeds() is true iff χ(g) > k was proven.
// Undetermined calls return the certificate together with the oracle error.
func Breakthrough(ctx context.Context, o Oracle, g *core.Graph, k int) (*Certificate, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ans, err := o.Colorable(ctx, g, k)
	if ans == nil {
		return nil, fmt.Errorf("Breakthrough: k=%d: %w", k, err)
	}
	c := certificateOf(ans)
	if err != nil {
		return &c, fmt.Errorf("Breakthrough: k=%d: %w", k, err)
	}
	return &c, nil
}
