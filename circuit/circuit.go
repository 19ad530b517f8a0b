// Package circuit implements the combinational-circuit intermediate
// representation: an expression DAG (Arena, Ref), the Circuit container
// with its construction-time integrity checks, a reference evaluator
// (Simulate), the optional structural Clean pass, and the surface-syntax
// parser for the circuit description language.
package circuit

import "sort"

// Equation pairs a signal name with the root of its defining expression.
type Equation struct {
	Name string
	Expr Ref
}

// Circuit is a named combinational-logic unit: a set of inputs, a set of
// outputs, and an equation for every output and named internal signal,
// all sharing one Arena of expression nodes. A Circuit that has been
// constructed via New is guaranteed, by construction, to be free of
// undefined signals and combinational loops, and is therefore guaranteed
// simulable.
type Circuit struct {
	Name  string
	arena *Arena

	inputs   []string
	outputs  []string
	eqOrder  []string
	equation map[string]Ref

	inputSet map[string]bool
	outSet   map[string]bool
}

// Arena returns the node arena backing c's equations, for callers (such
// as the Tseitin transform) that need to walk expression subtrees.
func (c *Circuit) Arena() *Arena { return c.arena }

// Inputs returns the circuit's input names, in the deterministic order
// they were declared.
func (c *Circuit) Inputs() []string { return append([]string(nil), c.inputs...) }

// Outputs returns the circuit's output names, in the deterministic order
// they were declared.
func (c *Circuit) Outputs() []string { return append([]string(nil), c.outputs...) }

// Signals returns the names for which an equation is defined: every
// output plus every named internal signal, in declaration order.
func (c *Circuit) Signals() []string { return append([]string(nil), c.eqOrder...) }

// Equation returns the root node of the expression assigned to signal x,
// which must be an output or an internal signal (i.e. a key of
// Signals()).
func (c *Circuit) Equation(x string) (Ref, bool) {
	r, ok := c.equation[x]
	return r, ok
}

// IsInput reports whether name is one of c's inputs.
func (c *Circuit) IsInput(name string) bool { return c.inputSet[name] }

// IsOutput reports whether name is one of c's outputs.
func (c *Circuit) IsOutput(name string) bool { return c.outSet[name] }

// New constructs a Circuit from a name, its input and output identifier
// lists, and the (signal, expression) equations sharing arena, running
// full integrity validation immediately. A Circuit returned with a nil
// error is guaranteed simulable.
func New(name string, arena *Arena, inputs, outputs []string, eqs []Equation) (*Circuit, error) {
	c := &Circuit{
		Name:     name,
		arena:    arena,
		inputs:   append([]string(nil), inputs...),
		outputs:  append([]string(nil), outputs...),
		equation: make(map[string]Ref, len(eqs)),
		inputSet: make(map[string]bool, len(inputs)),
		outSet:   make(map[string]bool, len(outputs)),
	}
	for _, x := range inputs {
		c.inputSet[x] = true
	}
	for _, x := range outputs {
		c.outSet[x] = true
	}
	for _, eq := range eqs {
		if _, dup := c.equation[eq.Name]; !dup {
			c.eqOrder = append(c.eqOrder, eq.Name)
		}
		c.equation[eq.Name] = eq.Expr
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// deps computes, for every defined signal, the set of names its equation
// depends on, as a sorted slice for deterministic traversal.
func (c *Circuit) deps() map[string][]string {
	deps := make(map[string][]string, len(c.eqOrder))
	for _, x := range c.eqOrder {
		support := c.arena.Support(c.equation[x])
		ys := make([]string, 0, len(support))
		for y := range support {
			ys = append(ys, y)
		}
		sort.Strings(ys)
		deps[x] = ys
	}
	return deps
}

func (c *Circuit) validate() error {
	// 1. Outputs defined.
	for _, x := range c.outputs {
		if _, ok := c.equation[x]; !ok {
			return wrap(ErrUndefinedOutput{Name: x}, c.Name)
		}
	}
	// 2. Inputs unconstrained.
	for _, x := range c.inputs {
		if _, ok := c.equation[x]; ok {
			return wrap(ErrOverConstrainedInput{Name: x}, c.Name)
		}
	}
	deps := c.deps()
	// 3. Closed support.
	for _, x := range c.eqOrder {
		for _, y := range deps[x] {
			if _, defined := c.equation[y]; !c.inputSet[y] && !defined {
				return wrap(ErrUndefinedSignal{Name: y}, c.Name)
			}
		}
	}
	// 4. Acyclicity: DFS with a visited set and an on-stack set, per the
	// §9 design note preferring this over the Python original's
	// list-membership stack.
	visited := make(map[string]bool, len(c.eqOrder))
	onStack := make(map[string]bool, len(c.eqOrder))
	var stack []string
	var visit func(x string) error
	visit = func(x string) error {
		if onStack[x] {
			path := append(append([]string(nil), stack...), x)
			return wrap(ErrCombinationalLoop{Path: path}, c.Name)
		}
		if visited[x] {
			return nil
		}
		if _, ok := deps[x]; !ok {
			// x is an input (or otherwise has no outgoing edges): visiting
			// terminates here.
			visited[x] = true
			return nil
		}
		visited[x] = true
		onStack[x] = true
		stack = append(stack, x)
		for _, y := range deps[x] {
			if err := visit(y); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		onStack[x] = false
		return nil
	}
	for _, x := range c.eqOrder {
		if err := visit(x); err != nil {
			return err
		}
	}
	return nil
}
