// Package sat is the boundary between unitgraph and a Boolean satisfiability
// decision procedure.
//
// A CNF is a conjunction of clauses; each clause is a disjunction of non-zero
// integer literals, where v>0 means variable v and -v its negation (DIMACS
// convention, variables 1..Variables).
//
// Solver is the black-box oracle contract: given a CNF, report Satisfiable
// with a model, Unsatisfiable, or return an error (context deadline or
// cancellation included). Any backend satisfying the contract can be
// substituted without touching the encodings built on top of it.
//
// Gophersat is the bundled backend, built on github.com/crillab/gophersat.
// It creates a fresh solver per Solve call, so a single *Gophersat value may
// be used from many goroutines at once.
package sat
