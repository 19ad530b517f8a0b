// Package satsolver binds a cnf.Formula to a concrete SAT back-end. The
// contract is one method, Solve, so the back-end is freely swappable;
// this package ships two real bindings, Gophersat and Gini, over two
// independently fetchable third-party solvers.
package satsolver

import "github.com/boolsat/circheck/cnf"

// Solver maps a cnf.Formula onto a SAT back-end and returns its verdict.
// Implementations must give every variable referenced by the formula (via
// cnf.Formula.Variables) a definite assignment in a SAT cnf.Solution, and
// a false/empty-assignment cnf.Solution on UNSAT. A back-end failure
// (crash, malformed output, timeout) is surfaced as a non-nil error.
type Solver interface {
	Solve(f *cnf.Formula) (cnf.Solution, error)
}

// Error wraps whatever the underlying back-end reported with the name of
// the back-end that failed.
type Error struct {
	Backend string
	Err     error
}

func (e Error) Error() string {
	return "satsolver: " + e.Backend + ": " + e.Err.Error()
}

func (e Error) Unwrap() error { return e.Err }
