package circuit

// Simulate evaluates every defined signal of c under the given total
// input assignment, using memoized post-order evaluation exactly as
// Arena.Support does: an explicit work-stack rather than recursion, so
// that deep expression trees (32-bit adders have thousands of gates)
// cannot overflow the call stack. It returns ErrUnassignedInput if an
// input name c's equations depend on is missing from inputs; callers
// that want missing inputs to default to false should use
// SimulateDefaultFalse instead.
//
// The returned map contains exactly the keys in Outputs() ∪ Signals().
func (c *Circuit) Simulate(inputs map[string]bool) (map[string]bool, error) {
	return c.simulate(inputs, false)
}

// SimulateDefaultFalse behaves like Simulate, but treats any input
// missing from inputs as false instead of returning an error.
func (c *Circuit) SimulateDefaultFalse(inputs map[string]bool) map[string]bool {
	out, err := c.simulate(inputs, true)
	if err != nil {
		// defaultMissing=true never produces ErrUnassignedInput, and
		// validation already rules out undefined signals.
		panic(err)
	}
	return out
}

// signalValue caches the Boolean value of every named signal (input or
// defined equation) computed so far, plus memoNode caches every
// expression node's value so nodes shared between equations are only
// evaluated once.
type simState struct {
	c              *Circuit
	signalValue    map[string]bool
	memoNode       map[Ref]bool
	defaultMissing bool
}

func (c *Circuit) simulate(inputs map[string]bool, defaultMissing bool) (map[string]bool, error) {
	st := &simState{
		c:              c,
		signalValue:    make(map[string]bool, len(inputs)+len(c.eqOrder)),
		memoNode:       make(map[Ref]bool),
		defaultMissing: defaultMissing,
	}
	for k, v := range inputs {
		st.signalValue[k] = v
	}

	for _, x := range c.eqOrder {
		if err := st.evalNode(c.equation[x]); err != nil {
			return nil, err
		}
		st.signalValue[x] = st.memoNode[c.equation[x]]
	}

	out := make(map[string]bool, len(c.eqOrder))
	for _, x := range c.eqOrder {
		out[x] = st.signalValue[x]
	}
	return out, nil
}

// evalNode evaluates root and every node it transitively needs, via an
// explicit post-order work-stack. It may recurse, through evalSignal,
// into the equation of an internal signal referenced by a Variable node,
// which is itself driven by the same stack-based traversal — the only
// Go-level recursion is the mutual call between evalNode and evalSignal,
// bounded by the circuit's acyclic signal dependency graph (guaranteed by
// validation), never by expression depth.
func (st *simState) evalNode(root Ref) error {
	type frame struct {
		ref      Ref
		visiting bool
	}
	stack := []frame{{ref: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if _, done := st.memoNode[top.ref]; done {
			stack = stack[:len(stack)-1]
			continue
		}
		switch st.c.arena.Kind(top.ref) {
		case KindLiteral:
			st.memoNode[top.ref] = st.c.arena.Value(top.ref)
			stack = stack[:len(stack)-1]

		case KindVariable:
			name := st.c.arena.Name(top.ref)
			v, err := st.evalSignal(name)
			if err != nil {
				return err
			}
			st.memoNode[top.ref] = v
			stack = stack[:len(stack)-1]

		case KindUnary:
			child := st.c.arena.Child(top.ref, 0)
			if !top.visiting {
				top.visiting = true
				if _, done := st.memoNode[child]; !done {
					stack = append(stack, frame{ref: child})
					continue
				}
			}
			st.memoNode[top.ref] = !st.memoNode[child]
			stack = stack[:len(stack)-1]

		case KindBinary:
			x, y := st.c.arena.Child(top.ref, 0), st.c.arena.Child(top.ref, 1)
			if !top.visiting {
				top.visiting = true
				need := false
				if _, done := st.memoNode[x]; !done {
					stack = append(stack, frame{ref: x})
					need = true
				}
				if _, done := st.memoNode[y]; !done {
					stack = append(stack, frame{ref: y})
					need = true
				}
				if need {
					continue
				}
			}
			g := st.c.arena.Gate(top.ref)
			st.memoNode[top.ref] = g.apply(st.memoNode[x], st.memoNode[y])
			stack = stack[:len(stack)-1]

		default:
			return UnknownNodeKind{Kind: st.c.arena.Kind(top.ref)}
		}
	}
	return nil
}

// evalSignal resolves the value of a named signal: an already-assigned
// input, an already-simulated signal, or (falling back, exactly as the
// Python original's sim() closure does) the result of simulating that
// signal's own equation on demand.
func (st *simState) evalSignal(name string) (bool, error) {
	if v, ok := st.signalValue[name]; ok {
		return v, nil
	}
	if st.c.inputSet[name] {
		if st.defaultMissing {
			st.signalValue[name] = false
			return false, nil
		}
		return false, ErrUnassignedInput{Name: name}
	}
	eq, ok := st.c.equation[name]
	if !ok {
		return false, ErrUndefinedSignal{Name: name}
	}
	if err := st.evalNode(eq); err != nil {
		return false, err
	}
	v := st.memoNode[eq]
	st.signalValue[name] = v
	return v, nil
}

// UnknownNodeKind is a typed fatal raised if a node arena ever produces a
// NodeKind outside the closed set this package defines. It should be
// unreachable in practice since Arena only ever constructs the four known
// kinds.
type UnknownNodeKind struct{ Kind NodeKind }

func (e UnknownNodeKind) Error() string {
	return "circuit: simulate: unknown node kind " + e.Kind.String()
}
