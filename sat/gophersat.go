// SPDX-License-Identifier: MIT
// Package: unitgraph/sat
//
// gophersat.go — Solver backed by github.com/crillab/gophersat.
//
// Concurrency:
//   • Each Solve call builds its own Problem and owns its own *solver.Solver.
//   • The CDCL search runs in a separate goroutine; on ctx expiry Solve returns
//     immediately and the abandoned search finishes in the background, its
//     result discarded.
//   • Every search, abandoned or not, holds one in-flight slot until it
//     finishes. Solve waits for a free slot under ctx.

package sat

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/crillab/gophersat/solver"
	"golang.org/x/sync/semaphore"
)

// ErrBackend indicates the backend failed to produce a usable verdict.
var ErrBackend = errors.New("sat: backend failure")

// Gophersat is a Solver over the gophersat CDCL engine. It is safe for
// concurrent use.
type Gophersat struct {
	slots *semaphore.Weighted
}

// GophersatOption configures NewGophersat.
type GophersatOption func(*gophersatConfig)

type gophersatConfig struct {
	maxInFlight int
}

// WithMaxInFlight bounds the searches running at once, counting searches
// whose caller has already given up. Default GOMAXPROCS. Panics unless n > 0.
func WithMaxInFlight(n int) GophersatOption {
	if n <= 0 {
		panic("sat: WithMaxInFlight(n ≤ 0)")
	}
	return func(c *gophersatConfig) { c.maxInFlight = n }
}

// NewGophersat returns the gophersat backend.
func NewGophersat(opts ...GophersatOption) *Gophersat {
	cfg := gophersatConfig{maxInFlight: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Gophersat{slots: semaphore.NewWeighted(int64(cfg.maxInFlight))}
}

type solveOutcome struct {
	res Result
	err error
}

// Solve implements Solver. Time spent waiting for an in-flight slot counts
// against ctx.
func (g *Gophersat) Solve(ctx context.Context, f *CNF) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	pb, err := parseSlice(f.Clauses)
	if err != nil {
		return Result{}, fmt.Errorf("gophersat: parse: %v: %w", err, ErrBackend)
	}

	if err := g.slots.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	done := make(chan solveOutcome, 1)
	go func() {
		defer g.slots.Release(1)
		done <- runGophersat(pb, f.Variables)
	}()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case out := <-done:
		return out.res, out.err
	}
}

// parseSlice builds the Problem straight from the clause slices; gophersat
// releases differ on whether ParseSlice also returns an error.
func parseSlice(clauses [][]int) (*solver.Problem, error) {
	switch parse := interface{}(solver.ParseSlice).(type) {
	case func([][]int) *solver.Problem:
		return parse(clauses), nil
	case func([][]int) (*solver.Problem, error):
		return parse(clauses)
	default:
		return nil, errors.New("unsupported gophersat ParseSlice signature")
	}
}

func runGophersat(pb *solver.Problem, nbVars int) (out solveOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = solveOutcome{err: fmt.Errorf("gophersat: panic: %v: %w", r, ErrBackend)}
		}
	}()

	s := solver.New(pb)
	switch s.Solve() {
	case solver.Sat:
		model, err := modelOf(s)
		if err != nil {
			return solveOutcome{err: fmt.Errorf("gophersat: model: %v: %w", err, ErrBackend)}
		}
		return solveOutcome{res: Result{Status: Satisfiable, Model: fit(model, nbVars)}}
	case solver.Unsat:
		return solveOutcome{res: Result{Status: Unsatisfiable}}
	default:
		return solveOutcome{res: Result{Status: Unknown}}
	}
}

// fit sizes model to n variables. ParseSlice only knows the variables that
// occur in some clause; the missing tail is unconstrained and set false.
func fit(model []bool, n int) []bool {
	if len(model) >= n {
		return model[:n]
	}
	out := make([]bool, n)
	copy(out, model)
	return out
}

// modelOf extracts the model; gophersat releases differ on whether Model
// also returns an error.
func modelOf(s *solver.Solver) ([]bool, error) {
	switch m := interface{}(s).(type) {
	case interface{ Model() ([]bool, error) }:
		return m.Model()
	case interface{ Model() []bool }:
		return m.Model(), nil
	default:
		return nil, errors.New("unsupported gophersat Model signature")
	}
}
