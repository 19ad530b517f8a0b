package satsolver

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/boolsat/circheck/cnf"
)

// Gophersat binds to github.com/crillab/gophersat/solver, the CDCL engine
// this repository's own teacher package is drawn from. Grounded directly
// on bf.go's (*cnf).solve method: build a [][]int problem from the
// formula's clauses, hand it to solver.ParseSlice/solver.New, and read
// the model back out.
type Gophersat struct{}

// Solve implements Solver.
func (Gophersat) Solve(f *cnf.Formula) (cnf.Solution, error) {
	clauses := make([][]int, len(f.Clauses))
	for i, c := range f.Clauses {
		lits := make([]int, len(c))
		for j, l := range c {
			lits[j] = l.Signed()
		}
		clauses[i] = lits
	}

	pb, err := solver.ParseSlice(clauses)
	if err != nil {
		return cnf.Solution{}, Error{Backend: "gophersat", Err: err}
	}
	s := solver.New(pb)
	switch status := s.Solve(); status {
	case solver.Sat:
	case solver.Unsat:
		return cnf.Solution{Sat: false, Table: f.Table}, nil
	default:
		return cnf.Solution{}, Error{Backend: "gophersat", Err: fmt.Errorf("solver returned status %v", status)}
	}
	m, err := s.Model()
	if err != nil {
		return cnf.Solution{}, Error{Backend: "gophersat", Err: err}
	}

	values := make(map[string]bool, len(f.Variables()))
	for id := range f.Variables() {
		if id-1 < len(m) {
			values[f.Table.NameOf(id)] = m[id-1]
		}
	}
	return cnf.Solution{Sat: true, Table: f.Table, Values: values}, nil
}
