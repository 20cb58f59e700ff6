// SPDX-License-Identifier: MIT
// Package: unitgraph/sat
//
// solver.go — the black-box decision procedure contract.

package sat

import "context"

// Status is the outcome of a Solve call.
type Status int

const (
	// Unknown means the backend stopped without a verdict.
	Unknown Status = iota
	// Satisfiable means Result.Model satisfies the formula.
	Satisfiable
	// Unsatisfiable means no assignment satisfies the formula.
	Unsatisfiable
)

// String returns SAT, UNSAT or UNKNOWN.
func (s Status) String() string {
	switch s {
	case Satisfiable:
		return "SAT"
	case Unsatisfiable:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Result carries a verdict and, for Satisfiable, a model indexed by variable-1.
type Result struct {
	Status Status
	Model  []bool
}

// Solver decides CNF satisfiability.
//
// Implementations must honour ctx: when it is done before a verdict, Solve
// returns ctx.Err() (possibly wrapped). Implementations that share state
// across calls must document it; callers dispatching concurrent calls assume
// each call is independent.
type Solver interface {
	Solve(ctx context.Context, f *CNF) (Result, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, f *CNF) (Result, error)

// Solve calls fn.
func (fn SolverFunc) Solve(ctx context.Context, f *CNF) (Result, error) { return fn(ctx, f) }
