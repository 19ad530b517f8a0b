package circuit

// Clean performs structural simplification: it inlines every internal
// signal with exactly one consumer into that consumer's expression, then
// deletes every signal unreachable from the outputs (other than the
// outputs and inputs themselves, which are always kept). Because
// inlining can change which names are referenced, Clean re-runs full
// validation before returning.
//
// Grounded on the Python original's Circuit.clean(): collapse-then-prune,
// in the same two phases, but building new (shared) arena nodes instead
// of mutating existing ones in place, since this package's nodes are
// append-only.
func (c *Circuit) Clean() (*Circuit, error) {
	deps := c.deps()

	fanout := make(map[string]int)
	for _, x := range c.eqOrder {
		for _, y := range deps[x] {
			fanout[y]++
		}
	}

	collapse := make(map[string]bool)
	for x := range fanout {
		if fanout[x] == 1 && !c.inputSet[x] {
			if _, isSignal := c.equation[x]; isSignal {
				collapse[x] = true
			}
		}
	}

	inlined := make(map[string]Ref) // signal -> substituted subtree, memoized
	nodeMemo := make(map[Ref]Ref)   // old node ref -> substituted node ref, per top-level call

	var substSignal func(name string) Ref
	var substNode func(r Ref) Ref

	substNode = func(r Ref) Ref {
		if v, ok := nodeMemo[r]; ok {
			return v
		}
		var out Ref
		switch c.arena.Kind(r) {
		case KindLiteral:
			out = c.arena.Lit(c.arena.Value(r))
		case KindVariable:
			name := c.arena.Name(r)
			if collapse[name] {
				out = substSignal(name)
			} else {
				out = r
			}
		case KindUnary:
			out = c.arena.Not(substNode(c.arena.Child(r, 0)))
		case KindBinary:
			x := substNode(c.arena.Child(r, 0))
			y := substNode(c.arena.Child(r, 1))
			out = c.arena.Bin(c.arena.Gate(r), x, y)
		default:
			panic(UnknownNodeKind{Kind: c.arena.Kind(r)})
		}
		nodeMemo[r] = out
		return out
	}

	substSignal = func(name string) Ref {
		if r, ok := inlined[name]; ok {
			return r
		}
		r := substNode(c.equation[name])
		inlined[name] = r
		return r
	}

	newEquations := make(map[string]Ref, len(c.eqOrder))
	for _, x := range c.eqOrder {
		newEquations[x] = substNode(c.equation[x])
	}

	// Recompute dependencies against the substituted equations to find
	// what is now reachable from the outputs.
	newDeps := make(map[string][]string, len(c.eqOrder))
	for _, x := range c.eqOrder {
		support := c.arena.Support(newEquations[x])
		ys := make([]string, 0, len(support))
		for y := range support {
			ys = append(ys, y)
		}
		newDeps[x] = ys
	}

	live := make(map[string]bool)
	var markLive func(x string)
	markLive = func(x string) {
		if live[x] {
			return
		}
		live[x] = true
		for _, y := range newDeps[x] {
			if _, isSignal := newEquations[y]; isSignal {
				markLive(y)
			}
		}
	}
	for _, o := range c.outputs {
		markLive(o)
	}

	var eqs []Equation
	for _, x := range c.eqOrder {
		if live[x] || c.outSet[x] {
			eqs = append(eqs, Equation{Name: x, Expr: newEquations[x]})
		}
	}

	return New(c.Name, c.arena, c.inputs, c.outputs, eqs)
}
