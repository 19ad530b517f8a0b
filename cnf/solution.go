package cnf

// Solution is the outcome of handing a Formula to a SAT solver: either
// UNSAT, or SAT together with a total assignment over the variables the
// caller registered. Grounded on the Python original's cnf.Solution
// class, including the blocking-clause operation used to enumerate
// further models.
type Solution struct {
	Sat    bool
	Table  *SymbolTable
	Values map[string]bool // by variable name; only meaningful if Sat
}

// Value returns the assignment of the named variable and whether it was
// present in the model.
func (s Solution) Value(name string) (bool, bool) {
	b, ok := s.Values[name]
	return b, ok
}

// Blocking returns the clause that negates s's assignment: the
// disjunction, over every assigned variable, of the literal that would
// make that variable disagree with s. Conjoining a formula with its own
// model's blocking clause excludes exactly that model from future
// solves, which is how model enumeration works. Blocking panics if s is
// not a satisfying solution.
func (s Solution) Blocking() Clause {
	if !s.Sat {
		panic("cnf: Blocking called on an UNSAT solution")
	}
	c := make(Clause, 0, len(s.Values))
	for name, b := range s.Values {
		l := s.Table.Var(name)
		if b {
			l = l.Not()
		}
		c = append(c, l)
	}
	return c
}

// Enumerate calls solve repeatedly, each time conjoining the blocking
// clause of the previous model, until the solver reports UNSAT. It
// returns every distinct model found, and visits each one at most once
// (blocking-clause idempotence: a model can never reappear once
// excluded). solve is typically satsolver.Solver.Solve bound to a given
// backend; Enumerate itself has no opinion about which solver is used.
//
// This promotes the repeated "conjoin the negated model, solve again"
// loop into a reusable library operation, for enumerating every SAT
// solution of a Tseitin encoding.
func (f *Formula) Enumerate(solve func(*Formula) (Solution, error)) ([]Solution, error) {
	var models []Solution
	cur := f
	for {
		sol, err := solve(cur)
		if err != nil {
			return models, err
		}
		if !sol.Sat {
			return models, nil
		}
		models = append(models, sol)
		next := NewFormula(cur.Table)
		next.And(cur)
		next.And(sol.Blocking())
		cur = next
	}
}
