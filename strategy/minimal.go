// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// minimal.go — sampled binary search for a small non-k-colorable subgraph.

package strategy

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/logging"
)

// SizeRate is the sampling outcome at one subset size.
type SizeRate struct {
	Size         int
	Trials       int
	Unsat        int
	Inconclusive int
}

// Rate returns Unsat/Trials.
func (r SizeRate) Rate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Unsat) / float64(r.Trials)
}

// Estimate is the result of MinimalSubgraph. Size is a heuristic upper
// estimate of the smallest non-k-colorable induced subgraph, not a proven
// minimum; Witness is one sampled vertex subset of that size proven UNSAT.
type Estimate struct {
	K         int
	Vertices  int
	Size      int
	Witness   []int
	Rates     []SizeRate // in probe order
	Heuristic bool
}

// String renders e.g. "min non-3-colorable size ≈ 7 of 10 (heuristic, 3 probes)".
func (e *Estimate) String() string {
	return fmt.Sprintf("min non-%d-colorable size ≈ %d of %d (heuristic, %d probes)",
		e.K, e.Size, e.Vertices, len(e.Rates))
}

// MinimalSubgraph binary-searches subset size over [k+1, V]. At each probed
// size it draws WithTrials random vertex subsets (reproducible under
// WithSeed), asks the oracle whether each induced subgraph is k-colorable,
// and moves the upper end down when the UNSAT rate reaches WithThreshold.
// Trials run concurrently up to WithWorkers; undetermined trials count
// against the rate.
//
// Errors: ErrNilGraph; ErrColorable / ErrUndetermined when g itself is not
// proven UNSAT at k; hard oracle errors.
func MinimalSubgraph(ctx context.Context, o chromatic.Oracle, g *core.Graph, k int, opts ...Option) (*Estimate, error) {
	if err := requireUNSAT(ctx, o, g, k); err != nil {
		return nil, fmt.Errorf("MinimalSubgraph: %w", err)
	}
	cfg := newStrategyConfig(opts...)
	log := cfg.log.Named("minimal")
	rng := rand.New(rand.NewSource(cfg.seed))

	n := g.VertexCount()
	est := &Estimate{K: k, Vertices: n, Size: n, Witness: seq(n), Heuristic: true}
	lo, hi := k+1, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		samples := make([][]int, cfg.trials)
		for i := range samples {
			samples[i] = sample(rng, n, mid)
		}
		rate, witness, err := probe(ctx, o, g, k, samples, cfg.workers)
		if err != nil {
			return nil, fmt.Errorf("MinimalSubgraph: size %d: %w", mid, err)
		}
		est.Rates = append(est.Rates, rate)
		log.Info("size probed", logging.Int("size", mid), logging.Int("unsat", rate.Unsat),
			logging.Int("trials", rate.Trials), logging.Int("inconclusive", rate.Inconclusive))

		if rate.Rate() >= cfg.threshold && witness != nil {
			hi, est.Size, est.Witness = mid, mid, witness
		} else {
			lo = mid + 1
		}
	}
	log.Info("minimal subgraph estimate", logging.String("estimate", est.String()))
	return est, nil
}

// probe runs one oracle call per sample and returns the tally and the first
// (by sample order) UNSAT subset.
func probe(ctx context.Context, o chromatic.Oracle, g *core.Graph, k int, samples [][]int, workers int) (SizeRate, []int, error) {
	rate := SizeRate{Size: len(samples[0]), Trials: len(samples)}
	unsat := make([]bool, len(samples))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, keep := range samples {
		i, keep := i, keep
		eg.Go(func() error {
			sub, _, err := g.InducedSubgraph(keep)
			if err != nil {
				return err
			}
			ans, err := o.Colorable(egCtx, sub, k)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil && undetermined(err):
				rate.Inconclusive++
			case err != nil:
				return err
			case ans.Outcome == coloring.OutcomeUNSAT:
				rate.Unsat++
				unsat[i] = true
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return rate, nil, err
	}
	for i, ok := range unsat {
		if ok {
			return rate, samples[i], nil
		}
	}
	return rate, nil, nil
}

// sample draws size distinct vertices of [0, n) in ascending order.
func sample(rng *rand.Rand, n, size int) []int {
	keep := rng.Perm(n)[:size]
	sort.Ints(keep)
	return keep
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
