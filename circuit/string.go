package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// NodeString renders the expression rooted at r using the same infix
// notation as the Python original's Node.__repr__: "1"/"0" for literals,
// the bare name for variables, "(~ x)" for negation, and
// "(x & y)"/"(x | y)"/"(x ^ y)" for binary gates.
func (a *Arena) NodeString(r Ref) string {
	switch a.Kind(r) {
	case KindLiteral:
		if a.Value(r) {
			return "1"
		}
		return "0"
	case KindVariable:
		return a.Name(r)
	case KindUnary:
		return fmt.Sprintf("(~ %s)", a.NodeString(a.Child(r, 0)))
	case KindBinary:
		return fmt.Sprintf("(%s %s %s)", a.NodeString(a.Child(r, 0)), a.Gate(r), a.NodeString(a.Child(r, 1)))
	default:
		return "<?>"
	}
}

// String renders c using the circuit description surface syntax, with
// inputs and outputs listed in sorted order and equations in declaration
// order:
//
//	circ NAME {
//	    inputs: a, b
//	    outputs: cout, s
//	    s = ...
//	}
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "circ %s {\n", c.Name)
	ins := append([]string(nil), c.inputs...)
	sort.Strings(ins)
	fmt.Fprintf(&b, "\tinputs: %s\n", strings.Join(ins, ", "))
	outs := append([]string(nil), c.outputs...)
	sort.Strings(outs)
	fmt.Fprintf(&b, "\toutputs: %s\n", strings.Join(outs, ", "))
	for _, x := range c.eqOrder {
		fmt.Fprintf(&b, "\t%s = %s\n", x, c.arena.NodeString(c.equation[x]))
	}
	b.WriteString("}")
	return b.String()
}
