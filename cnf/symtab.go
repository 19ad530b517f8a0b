// Package cnf implements the CNF algebra: named Boolean variables backed
// by a stable symbol table, literals, clauses, and conjunctive-normal-form
// formulas, together with DIMACS serialization and a blocking-clause
// operation used to enumerate models.
package cnf

import "fmt"

// SymbolTable assigns a stable, monotonically increasing positive integer
// id to every distinct variable name it sees. Ids start at 1 and are never
// reused or reassigned, which is what lets two independently built
// Formulas share variable identities simply by sharing a SymbolTable and
// variable names (this is how the miter ties two Tseitin encodings
// together).
//
// A SymbolTable is owned explicitly by the caller (normally the
// equivalence-check driver) and threaded through every CNF operation,
// rather than kept as package-level global state, so independent
// equivalence checks in one process never interfere with each other.
type SymbolTable struct {
	ids   map[string]int
	names []string // names[id-1] == name
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{ids: make(map[string]int)}
}

// Var returns the positive-phase literal for name, allocating a fresh id
// the first time name is seen. Idempotent in ids: calling Var(name) twice
// returns literals with the same id.
func (t *SymbolTable) Var(name string) Lit {
	if id, ok := t.ids[name]; ok {
		return Lit{id: id, neg: false}
	}
	id := len(t.names) + 1
	t.ids[name] = id
	t.names = append(t.names, name)
	return Lit{id: id, neg: false}
}

// Fresh allocates a brand new, never-before-seen variable under a
// synthetic name derived from prefix, and returns its positive literal.
// Used by the Tseitin transform to name gate outputs that have no
// corresponding circuit signal.
func (t *SymbolTable) Fresh(prefix string) Lit {
	name := fmt.Sprintf("%s#%d", prefix, len(t.names)+1)
	return t.Var(name)
}

// NameOf returns the variable name associated with id, which must have
// been produced by this table (via Var, Fresh, or a Lit derived from
// either).
func (t *SymbolTable) NameOf(id int) string {
	if id < 1 || id > len(t.names) {
		panic(fmt.Sprintf("cnf: id %d not present in symbol table", id))
	}
	return t.names[id-1]
}

// Len returns the number of distinct variables registered so far.
func (t *SymbolTable) Len() int {
	return len(t.names)
}

// Lookup returns the id assigned to name and whether it has been seen.
func (t *SymbolTable) Lookup(name string) (int, bool) {
	id, ok := t.ids[name]
	return id, ok
}
