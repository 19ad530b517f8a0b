package cnf

import "strconv"

// Lit is a literal: a reference to a symbol-table variable together with
// a phase (polarity). The zero value is not a valid literal.
type Lit struct {
	id  int // DIMACS variable id, >= 1
	neg bool
}

// Not returns the negation of l. Involutive: l.Not().Not() == l.
func (l Lit) Not() Lit {
	return Lit{id: l.id, neg: !l.neg}
}

// ID returns the literal's underlying variable id (always >= 1),
// irrespective of phase.
func (l Lit) ID() int {
	return l.id
}

// Signed returns the literal's DIMACS-style signed integer: positive for
// a positive-phase literal, negative for a negated one.
func (l Lit) Signed() int {
	if l.neg {
		return -l.id
	}
	return l.id
}

// Positive reports whether l has positive phase.
func (l Lit) Positive() bool {
	return !l.neg
}

func (l Lit) String() string {
	if l.neg {
		return "-" + strconv.Itoa(l.id)
	}
	return strconv.Itoa(l.id)
}

// Or combines l with other into a two-literal Clause.
func (l Lit) Or(other Lit) Clause {
	return Clause{l, other}
}

// Unit lifts l into a singleton Clause.
func (l Lit) Unit() Clause {
	return Clause{l}
}
