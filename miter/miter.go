// Package miter builds the miter construction — a CNF that is
// satisfiable iff two circuits disagree on some input — and interprets
// the resulting SAT/UNSAT verdict as an equivalence check.
package miter

import (
	"sort"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/cnf"
	"github.com/boolsat/circheck/satsolver"
	"github.com/boolsat/circheck/tseitin"
)

const (
	prefix1 = "c1_"
	prefix2 = "c2_"
)

// Verdict is the outcome of Check: whether the two circuits are
// equivalent, and, when they are not, a counterexample input assignment
// witnessing the disagreement.
type Verdict struct {
	Equivalent     bool
	Counterexample *cnf.Solution
}

// sameNameSet reports whether a and b contain exactly the same names,
// ignoring order.
func sameNameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]string(nil), a...)
	sb := append([]string(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

// Check builds the miter of c1 and c2 and dispatches it to solver.
//
// If the input or output name sets differ, Check returns
// (different, none) immediately without invoking solver, since an
// interface mismatch makes the two circuits trivially non-equivalent.
//
// Otherwise it Tseitin-transforms both circuits under distinct prefixes
// into one shared formula, ties their inputs to a common unprefixed
// variable per input name, XORs every pair of same-named outputs into a
// disagreement literal, ORs all disagreement literals into one literal D
// (directly, when there is exactly one output, so that case never
// asserts a literal nothing else wires to), asserts D, and solves.
//
// On UNSAT the circuits are equivalent. On SAT, the model is returned as
// the counterexample, which always includes at minimum the unprefixed
// input assignment.
func Check(c1, c2 *circuit.Circuit, solver satsolver.Solver) (Verdict, error) {
	if !sameNameSet(c1.Inputs(), c2.Inputs()) || !sameNameSet(c1.Outputs(), c2.Outputs()) {
		return Verdict{Equivalent: false}, nil
	}

	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)

	if err := tseitin.Transform(c1, f, prefix1); err != nil {
		return Verdict{}, err
	}
	if err := tseitin.Transform(c2, f, prefix2); err != nil {
		return Verdict{}, err
	}

	for _, x := range c1.Inputs() {
		shared := table.Var(x)
		f.And(
			cnf.Or(shared.Not(), table.Var(prefix1+x)),
			cnf.Or(shared, table.Var(prefix1+x).Not()),
			cnf.Or(shared.Not(), table.Var(prefix2+x)),
			cnf.Or(shared, table.Var(prefix2+x).Not()),
		)
	}

	var disagreements []cnf.Lit
	for _, y := range c1.Outputs() {
		d := table.Fresh("miter_xor_" + y)
		a, b := table.Var(prefix1+y), table.Var(prefix2+y)
		f.And(
			cnf.Or(d.Not(), a, b),
			cnf.Or(d.Not(), a.Not(), b.Not()),
			cnf.Or(d, a.Not(), b),
			cnf.Or(d, a, b.Not()),
		)
		disagreements = append(disagreements, d)
	}

	disagree := orCascade(f, table, disagreements)
	f.And(disagree.Unit())

	sol, err := solver.Solve(f)
	if err != nil {
		return Verdict{}, err
	}
	if !sol.Sat {
		return Verdict{Equivalent: true}, nil
	}
	return Verdict{Equivalent: false, Counterexample: &sol}, nil
}

// orCascade combines ds into a single literal equivalent to their
// disjunction, via a linear cascade of binary OR-gate encodings with
// fresh auxiliaries. When len(ds) == 1, the sole literal is returned
// directly with no auxiliary, so a single-output miter never asserts a
// literal that nothing else wires to.
func orCascade(f *cnf.Formula, table *cnf.SymbolTable, ds []cnf.Lit) cnf.Lit {
	if len(ds) == 1 {
		return ds[0]
	}
	acc := ds[0]
	for _, d := range ds[1:] {
		s := table.Fresh("miter_or")
		f.And(
			cnf.Or(acc, d, s.Not()),
			cnf.Or(s, acc.Not()),
			cnf.Or(s, d.Not()),
		)
		acc = s
	}
	return acc
}
