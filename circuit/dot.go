package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Dot renders c's expression DAG as a GraphViz "dot" graph: inputs as
// circles, outputs as diamonds, other signals as plain labels, and the
// expression trees wired into each signal's node. A side method with no
// bearing on the correctness of simulation, Tseitin encoding, or
// equivalence checking.
func (c *Circuit) Dot() string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", c.Name)

	ins := append([]string(nil), c.inputs...)
	sort.Strings(ins)
	for _, x := range ins {
		fmt.Fprintf(&b, "  %s [label=%q shape=circle];\n", x, x)
	}
	outs := append([]string(nil), c.outputs...)
	sort.Strings(outs)
	for _, x := range outs {
		fmt.Fprintf(&b, "  %s [label=%q shape=diamond];\n", x, x)
	}
	for _, x := range c.eqOrder {
		if c.outSet[x] {
			continue
		}
		fmt.Fprintf(&b, "  %s [label=%q shape=plaintext];\n", x, x)
	}

	drawn := make(map[Ref]string)
	var draw func(r Ref) string
	draw = func(r Ref) string {
		if id, ok := drawn[r]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", r)
		switch c.arena.Kind(r) {
		case KindLiteral:
			var v int
			if c.arena.Value(r) {
				v = 1
			}
			fmt.Fprintf(&b, "  %s [label=%q shape=rect];\n", id, fmt.Sprint(v))
		case KindVariable:
			drawn[r] = c.arena.Name(r)
			return drawn[r]
		case KindUnary:
			cid := draw(c.arena.Child(r, 0))
			fmt.Fprintf(&b, "  %s [label=%q shape=plaintext];\n", id, "~")
			fmt.Fprintf(&b, "  %s -> %s;\n", cid, id)
		case KindBinary:
			lid := draw(c.arena.Child(r, 0))
			rid := draw(c.arena.Child(r, 1))
			fmt.Fprintf(&b, "  %s [label=%q shape=plaintext];\n", id, c.arena.Gate(r).String())
			fmt.Fprintf(&b, "  %s -> %s;\n", lid, id)
			fmt.Fprintf(&b, "  %s -> %s;\n", rid, id)
		}
		drawn[r] = id
		return id
	}
	for _, x := range c.eqOrder {
		id := draw(c.equation[x])
		fmt.Fprintf(&b, "  %s -> %s;\n", id, x)
	}
	b.WriteString("}\n")
	return b.String()
}
