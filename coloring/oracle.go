// SPDX-License-Identifier: MIT
// Package: unitgraph/coloring
//
// oracle.go — Oracle.Colorable.

package coloring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/logging"
	"github.com/katalvlaran/unitgraph/metrics"
	"github.com/katalvlaran/unitgraph/sat"
)

// Outcome is the verdict of one colorability question.
type Outcome int

const (
	// OutcomeError: the call failed for a reason other than the ones below.
	OutcomeError Outcome = iota
	// OutcomeSAT: a proper k-coloring exists; Answer.Coloring holds one.
	OutcomeSAT
	// OutcomeUNSAT: no proper k-coloring exists.
	OutcomeUNSAT
	// OutcomeTimeout: the solver did not finish in time. Undetermined.
	OutcomeTimeout
	// OutcomeTooLarge: the instance exceeded the variable budget. Undetermined.
	OutcomeTooLarge
)

// String returns the outcome label, matching the metrics label values.
func (o Outcome) String() string {
	switch o {
	case OutcomeSAT:
		return metrics.OutcomeSAT
	case OutcomeUNSAT:
		return metrics.OutcomeUNSAT
	case OutcomeTimeout:
		return metrics.OutcomeTimeout
	case OutcomeTooLarge:
		return metrics.OutcomeTooLarge
	default:
		return metrics.OutcomeError
	}
}

// Decided reports whether o is SAT or UNSAT.
func (o Outcome) Decided() bool { return o == OutcomeSAT || o == OutcomeUNSAT }

// Stats describes the instance and the cost of one call.
type Stats struct {
	Vertices  int
	Edges     int
	Variables int // 0 when the answer was trivial
	Clauses   int
	Elapsed   time.Duration
	Trivial   bool // answered without the solver
}

// Answer is the result of Colorable. Coloring is non-nil iff Outcome == OutcomeSAT.
type Answer struct {
	Outcome  Outcome
	K        int
	Coloring core.Coloring
	Stats    Stats
}

// String renders e.g. "UNSAT k=3 (V=7, E=11)".
func (a *Answer) String() string {
	return fmt.Sprintf("%s k=%d (V=%d, E=%d)", a.Outcome, a.K, a.Stats.Vertices, a.Stats.Edges)
}

// Oracle answers "is g k-colorable?" through a sat.Solver.
type Oracle struct {
	solver sat.Solver
	cfg    oracleConfig
}

// New returns an Oracle over s. Panics on a nil solver.
func New(s sat.Solver, opts ...Option) *Oracle {
	if s == nil {
		panic("coloring: New(nil solver)")
	}
	return &Oracle{solver: s, cfg: newOracleConfig(opts...)}
}

// Logger returns the oracle's logger, for callers that want to share it.
func (o *Oracle) Logger() logging.Logger { return o.cfg.log }

// Colorable decides whether g admits a proper k-coloring.
//
// Error contract: on OutcomeTimeout the error wraps ErrOracleTimeout; on
// OutcomeTooLarge it wraps ErrResourceExhausted; a cancelled ctx surfaces as
// context.Canceled with OutcomeError. The returned *Answer is non-nil whenever
// g and k were valid, so callers can inspect Stats even on failure.
//
// Implementation:
//   - Stage 1: trivial cases (V=0, k=1, k≥V) with a constructive witness or
//     an edge as the UNSAT reason; no solver involved.
//   - Stage 2: budget check, encode, solve under the per-call timeout.
//   - Stage 3: decode and validate the model against every edge.
func (o *Oracle) Colorable(ctx context.Context, g *core.Graph, k int) (*Answer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 1 {
		return nil, fmt.Errorf("Colorable: k=%d: %w", k, ErrInvalidK)
	}
	start := time.Now()
	ans := &Answer{K: k, Stats: Stats{Vertices: g.VertexCount(), Edges: g.EdgeCount()}}

	if o.trivial(g, k, ans) {
		ans.Stats.Elapsed = time.Since(start)
		o.report(ans, nil)
		return ans, nil
	}

	ans.Stats.Variables, ans.Stats.Clauses = InstanceSize(g.VertexCount(), g.EdgeCount(), k, o.cfg.uniqueness)
	if err := o.checkBudget(k, ans.Stats); err != nil {
		ans.Outcome = OutcomeTooLarge
		ans.Stats.Elapsed = time.Since(start)
		o.report(ans, err)
		return ans, err
	}

	f, err := encode(g, k, o.cfg.uniqueness)
	if err != nil {
		return nil, err
	}

	solveCtx := ctx
	if o.cfg.timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, o.cfg.timeout)
		defer cancel()
	}
	res, err := o.solver.Solve(solveCtx, f)
	ans.Stats.Elapsed = time.Since(start)

	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			ans.Outcome = OutcomeTimeout
			err = fmt.Errorf("Colorable: k=%d after %s: %w", k, ans.Stats.Elapsed.Round(time.Millisecond), ErrOracleTimeout)
		default:
			ans.Outcome = OutcomeError
			err = fmt.Errorf("Colorable: k=%d: %w", k, err)
		}
		o.report(ans, err)
		return ans, err
	}

	switch res.Status {
	case sat.Unsatisfiable:
		ans.Outcome = OutcomeUNSAT
	case sat.Satisfiable:
		col, derr := Decode(res.Model, g.VertexCount(), k)
		if derr == nil {
			derr = g.ValidateColoring(col, k)
		}
		if derr != nil {
			ans.Outcome = OutcomeError
			err = fmt.Errorf("Colorable: k=%d: %v: %w", k, derr, ErrBadWitness)
			o.report(ans, err)
			return ans, err
		}
		ans.Outcome = OutcomeSAT
		ans.Coloring = col
	default:
		ans.Outcome = OutcomeError
		err = fmt.Errorf("Colorable: k=%d: %w", k, ErrSolverIndeterminate)
		o.report(ans, err)
		return ans, err
	}
	o.report(ans, nil)
	return ans, nil
}

// checkBudget rejects instances over the variable or clause budget before
// anything is allocated.
func (o *Oracle) checkBudget(k int, st Stats) error {
	if st.Variables > o.cfg.maxVariables {
		return fmt.Errorf("Colorable: k=%d needs %d variables, budget %d: %w",
			k, st.Variables, o.cfg.maxVariables, ErrResourceExhausted)
	}
	if st.Clauses > o.cfg.maxClauses {
		return fmt.Errorf("Colorable: k=%d needs %d clauses, budget %d: %w",
			k, st.Clauses, o.cfg.maxClauses, ErrResourceExhausted)
	}
	return nil
}

// trivial fills ans and returns true when g and k need no solver.
func (o *Oracle) trivial(g *core.Graph, k int, ans *Answer) bool {
	n := g.VertexCount()
	switch {
	case n == 0:
		ans.Outcome, ans.Coloring = OutcomeSAT, core.Coloring{}
	case k >= n:
		col := make(core.Coloring, n)
		for v := range col {
			col[v] = v
		}
		ans.Outcome, ans.Coloring = OutcomeSAT, col
	case k == 1 && g.EdgeCount() == 0:
		ans.Outcome, ans.Coloring = OutcomeSAT, make(core.Coloring, n)
	case k == 1:
		ans.Outcome = OutcomeUNSAT
	default:
		return false
	}
	ans.Stats.Trivial = true
	return true
}

// report emits the per-call diagnostic line and metrics.
func (o *Oracle) report(ans *Answer, err error) {
	fields := append(logging.Graph(ans.Stats.Vertices, ans.Stats.Edges),
		logging.Int("k", ans.K),
		logging.Int("variables", ans.Stats.Variables),
		logging.Int("clauses", ans.Stats.Clauses),
		logging.Duration("elapsed", ans.Stats.Elapsed),
		logging.String("outcome", ans.Outcome.String()),
		logging.Bool("trivial", ans.Stats.Trivial),
	)
	switch {
	case err == nil:
		o.cfg.log.Info("oracle call", fields...)
	case ans.Outcome == OutcomeTimeout || ans.Outcome == OutcomeTooLarge:
		o.cfg.log.Warn("oracle call undetermined", append(fields, logging.Err(err))...)
	default:
		o.cfg.log.Error("oracle call failed", append(fields, logging.Err(err))...)
	}
	o.cfg.metrics.Observe(ans.Outcome.String(), ans.Stats.Elapsed, ans.Stats.Variables)
}
