package satsolver

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/boolsat/circheck/cnf"
)

// Gini binds to github.com/go-air/gini, the SAT engine used by the
// operator-lifecycle-manager dependency resolver (see its
// pkg/.../resolver/solver package) as an alternate back-end, demonstrating
// that satsolver.Solver is a genuine seam and not a single-implementation
// abstraction. Unlike OLM's litMapping, which builds its CNF through
// gini's own logic.C circuit builder, this binding feeds gini the CNF
// clauses produced by package cnf directly via z.Dimacs, since the CNF
// has already been built by package tseitin.
type Gini struct{}

// Solve implements Solver.
func (Gini) Solve(f *cnf.Formula) (cnf.Solution, error) {
	g := gini.New()
	for _, c := range f.Clauses {
		for _, l := range c {
			g.Add(z.Dimacs(l.Signed()))
		}
		g.Add(z.Dimacs(0))
	}

	switch g.Solve() {
	case 1: // sat
	case -1: // unsat
		return cnf.Solution{Sat: false, Table: f.Table}, nil
	default:
		return cnf.Solution{}, Error{Backend: "gini", Err: fmt.Errorf("solver returned unknown")}
	}

	values := make(map[string]bool, len(f.Variables()))
	for id := range f.Variables() {
		values[f.Table.NameOf(id)] = g.Value(z.Dimacs(id))
	}
	return cnf.Solution{Sat: true, Table: f.Table, Values: values}, nil
}
