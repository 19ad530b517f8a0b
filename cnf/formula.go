package cnf

import "fmt"

// Clause is an ordered multiset of literals, semantically their
// disjunction. Clause order matters only for deterministic DIMACS output
// and reproducible tests; semantically a clause is a set.
type Clause []Lit

// Or returns the disjunction of c and other as a new Clause, the ordered
// concatenation of both.
func (c Clause) Or(other Clause) Clause {
	out := make(Clause, 0, len(c)+len(other))
	out = append(out, c...)
	out = append(out, other...)
	return out
}

func (c Clause) String() string {
	s := "("
	for i, l := range c {
		if i > 0 {
			s += " | "
		}
		s += l.String()
	}
	return s + ")"
}

// Formula is a conjunction of Clauses: a CNF formula in the usual sense,
// plus the bookkeeping (referenced variables, maximum variable id) needed
// for DIMACS output. A Formula is built incrementally by And and consumed
// once passed to a solver; nothing in this package mutates it afterwards.
type Formula struct {
	Table   *SymbolTable
	Clauses []Clause

	vars     map[int]bool
	maxVarID int
}

// NewFormula returns an empty formula backed by table. Every literal
// conjoined into the formula must have been produced by table (directly
// or via a Lit whose id table allocated), so that DIMACS output and model
// decoding agree on variable identities.
func NewFormula(table *SymbolTable) *Formula {
	return &Formula{Table: table, vars: make(map[int]bool)}
}

// TypeViolation is panicked by And when asked to conjoin a value that is
// not a Lit, Clause, or *Formula. It signals a programming mistake in the
// caller, not a runtime-data error, and is never expected to be recovered.
type TypeViolation struct {
	Value any
}

func (e TypeViolation) Error() string {
	return fmt.Sprintf("cnf: cannot conjoin value of type %T into a formula", e.Value)
}

// And conjoins each of items into f, returning f for chaining. Each item
// must be a Lit (a unit clause), a Clause, or a *Formula (whose clauses
// are appended in order); anything else panics with a TypeViolation,
// since this is a programmer error rather than bad runtime data.
// Clause order is preserved across all three cases, so callers get
// deterministic, reproducible DIMACS output.
func (f *Formula) And(items ...any) *Formula {
	for _, item := range items {
		switch v := item.(type) {
		case Lit:
			f.addClause(Clause{v})
		case Clause:
			f.addClause(v)
		case *Formula:
			for _, c := range v.Clauses {
				f.addClause(c)
			}
		default:
			panic(TypeViolation{Value: item})
		}
	}
	return f
}

func (f *Formula) addClause(c Clause) {
	f.Clauses = append(f.Clauses, c)
	for _, l := range c {
		f.vars[l.ID()] = true
		if l.ID() > f.maxVarID {
			f.maxVarID = l.ID()
		}
	}
}

// MaxVarID returns the largest variable id referenced by any clause in f,
// or 0 if f has no clauses.
func (f *Formula) MaxVarID() int {
	return f.maxVarID
}

// Variables returns the set of variable ids referenced by f's clauses.
func (f *Formula) Variables() map[int]bool {
	return f.vars
}

// NumClauses returns the number of clauses in f.
func (f *Formula) NumClauses() int {
	return len(f.Clauses)
}

func (f *Formula) String() string {
	s := ""
	for i, c := range f.Clauses {
		if i > 0 {
			s += " & "
		}
		s += c.String()
	}
	return s
}

// Or disjoins a mix of Lits and Clauses, in order, into a single Clause.
// Anything else panics with a TypeViolation.
func Or(items ...any) Clause {
	var out Clause
	for _, item := range items {
		switch v := item.(type) {
		case Lit:
			out = append(out, v)
		case Clause:
			out = append(out, v...)
		default:
			panic(TypeViolation{Value: item})
		}
	}
	return out
}
