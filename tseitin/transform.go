// Package tseitin converts a circuit.Circuit into an equisatisfiable
// cnf.Formula via the Tseitin transformation. Every input, output, and
// named internal signal keeps its own name (under an optional
// prefix) in the resulting formula, so that callers — chiefly the miter
// construction in package miter — can tie two independently transformed
// circuits together by sharing a cnf.SymbolTable and referencing those
// names directly.
package tseitin

import (
	"fmt"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/cnf"
)

// Transform encodes every equation of c into f, naming each input, output,
// and internal signal x as prefix+x, and every anonymous node (gate output
// or constant) as a fresh variable from SymbolTable.Fresh(prefix+"s"),
// i.e. prefix+"s#"+<next table id>; the '#' keeps these names apart from
// circuit identifiers such as s12. It may be called several times against the same
// Formula/SymbolTable with different prefixes (the miter's use case); the
// clauses it emits for a given (circuit, prefix) pair are independent of
// any other transform sharing the table, aside from variable ids.
//
// Uses the standard and/or/xor/not/eq clause shapes and an anonymous-node
// naming scheme, walked with an explicit post-order work-stack instead of
// recursion, since expression depth is unbounded by parsing (a 32-bit
// adder has thousands of gates).
func Transform(c *circuit.Circuit, f *cnf.Formula, prefix string) error {
	memo := make(map[circuit.Ref]cnf.Lit)
	litFor := newEncoder(c, f, prefix, memo)

	for _, k := range c.Signals() {
		root, _ := c.Equation(k)
		s := f.Table.Var(prefix + k)
		r, err := litFor(root)
		if err != nil {
			return err
		}
		encodeEq(f, s, r)
	}
	return nil
}

// newEncoder returns a function mapping an expression node to the literal
// representing its value, memoized per Ref so that a node shared by
// several equations (or referenced twice within one) is only encoded
// once. Traversal is an explicit post-order work-stack: each frame is
// visited twice (once to push its not-yet-encoded children, once to emit
// its own clauses once every child has a literal).
func newEncoder(c *circuit.Circuit, f *cnf.Formula, prefix string, memo map[circuit.Ref]cnf.Lit) func(circuit.Ref) (cnf.Lit, error) {
	arena := c.Arena()

	encode := func(root circuit.Ref) (cnf.Lit, error) {
		type frame struct {
			ref      circuit.Ref
			visiting bool
		}
		stack := []frame{{ref: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if _, done := memo[top.ref]; done {
				stack = stack[:len(stack)-1]
				continue
			}
			switch arena.Kind(top.ref) {
			case circuit.KindVariable:
				memo[top.ref] = f.Table.Var(prefix + arena.Name(top.ref))
				stack = stack[:len(stack)-1]

			case circuit.KindLiteral:
				a := f.Table.Fresh(prefix + "s")
				if arena.Value(top.ref) {
					f.And(a)
				} else {
					f.And(a.Not())
				}
				memo[top.ref] = a
				stack = stack[:len(stack)-1]

			case circuit.KindUnary:
				child := arena.Child(top.ref, 0)
				if !top.visiting {
					top.visiting = true
					if _, done := memo[child]; !done {
						stack = append(stack, frame{ref: child})
						continue
					}
				}
				a := f.Table.Fresh(prefix + "s")
				encodeNot(f, a, memo[child])
				memo[top.ref] = a
				stack = stack[:len(stack)-1]

			case circuit.KindBinary:
				x, y := arena.Child(top.ref, 0), arena.Child(top.ref, 1)
				if !top.visiting {
					top.visiting = true
					need := false
					if _, done := memo[x]; !done {
						stack = append(stack, frame{ref: x})
						need = true
					}
					if _, done := memo[y]; !done {
						stack = append(stack, frame{ref: y})
						need = true
					}
					if need {
						continue
					}
				}
				a := f.Table.Fresh(prefix + "s")
				switch arena.Gate(top.ref) {
				case circuit.And:
					encodeAnd(f, a, memo[x], memo[y])
				case circuit.Or:
					encodeOr(f, a, memo[x], memo[y])
				case circuit.Xor:
					encodeXor(f, a, memo[x], memo[y])
				default:
					return cnf.Lit{}, fmt.Errorf("tseitin: unknown gate kind")
				}
				memo[top.ref] = a
				stack = stack[:len(stack)-1]

			default:
				return cnf.Lit{}, fmt.Errorf("tseitin: unknown node kind %v", arena.Kind(top.ref))
			}
		}
		return memo[root], nil
	}

	return encode
}

// encodeAnd emits s <-> (a & b): (~a|~b|s), (~s|a), (~s|b).
func encodeAnd(f *cnf.Formula, s, a, b cnf.Lit) {
	f.And(
		cnf.Or(a.Not(), b.Not(), s),
		cnf.Or(s.Not(), a),
		cnf.Or(s.Not(), b),
	)
}

// encodeOr emits s <-> (a | b): (a|b|~s), (s|~a), (s|~b).
func encodeOr(f *cnf.Formula, s, a, b cnf.Lit) {
	f.And(
		cnf.Or(a, b, s.Not()),
		cnf.Or(s, a.Not()),
		cnf.Or(s, b.Not()),
	)
}

// encodeXor emits s <-> (a ^ b).
func encodeXor(f *cnf.Formula, s, a, b cnf.Lit) {
	f.And(
		cnf.Or(s.Not(), a, b),
		cnf.Or(s.Not(), a.Not(), b.Not()),
		cnf.Or(s, a.Not(), b),
		cnf.Or(s, a, b.Not()),
	)
}

// encodeNot emits s <-> ~a: (s|a), (~s|~a).
func encodeNot(f *cnf.Formula, s, a cnf.Lit) {
	f.And(
		cnf.Or(s, a),
		cnf.Or(s.Not(), a.Not()),
	)
}

// encodeEq emits s <-> a: (s|~a), (~s|a). Used for the tie clause between
// a named signal's own literal S_k and the literal produced by encoding
// its defining expression. Reusing S_k directly as the gate output would
// save one auxiliary, but always tying keeps the code uniform and
// branch-free.
func encodeEq(f *cnf.Formula, s, a cnf.Lit) {
	f.And(
		cnf.Or(s, a.Not()),
		cnf.Or(s.Not(), a),
	)
}
