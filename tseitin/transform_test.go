package tseitin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/cnf"
)

func fullAdder(t *testing.T) *circuit.Circuit {
	t.Helper()
	a := circuit.NewArena()
	va, vb, vcin := a.Var("a"), a.Var("b"), a.Var("cin")
	s0 := a.Xor(va, vb)
	s := a.Xor(s0, vcin)
	s1 := a.And(va, vb)
	s2 := a.And(s0, vcin)
	cout := a.Or(s1, s2)

	c, err := circuit.New("fa", a,
		[]string{"a", "b", "cin"},
		[]string{"s", "cout"},
		[]circuit.Equation{
			{Name: "s0", Expr: s0},
			{Name: "s", Expr: s},
			{Name: "s1", Expr: s1},
			{Name: "s2", Expr: s2},
			{Name: "cout", Expr: cout},
		})
	require.NoError(t, err)
	return c
}

// bruteForceModels finds every satisfying assignment of f by exhaustively
// trying every truth value of every referenced variable. Only usable on
// the small formulas these tests exercise.
func bruteForceModels(t *testing.T, f *cnf.Formula) []map[string]bool {
	t.Helper()
	var names []string
	seen := make(map[string]bool)
	for id := range f.Variables() {
		name := f.Table.NameOf(id)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	var models []map[string]bool
	n := len(names)
	for mask := 0; mask < (1 << n); mask++ {
		assign := make(map[string]bool, n)
		for i, name := range names {
			assign[name] = mask&(1<<i) != 0
		}
		if satisfies(f, assign) {
			models = append(models, assign)
		}
	}
	return models
}

func satisfies(f *cnf.Formula, assign map[string]bool) bool {
	for _, c := range f.Clauses {
		ok := false
		for _, l := range c {
			name := f.Table.NameOf(l.ID())
			if assign[name] == l.Positive() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestTransformModelsMatchSimulation(t *testing.T) {
	c := fullAdder(t)
	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)
	require.NoError(t, Transform(c, f, ""))

	models := bruteForceModels(t, f)
	require.NotEmpty(t, models)

	for _, m := range models {
		inputs := map[string]bool{"a": m["a"], "b": m["b"], "cin": m["cin"]}
		want, err := c.Simulate(inputs)
		require.NoError(t, err)
		assert.Equal(t, want["s"], m["s"])
		assert.Equal(t, want["cout"], m["cout"])
	}
}

func TestTransformHasExactlyOneModelPerInput(t *testing.T) {
	c := fullAdder(t)
	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)
	require.NoError(t, Transform(c, f, ""))

	models := bruteForceModels(t, f)
	byInput := make(map[[3]bool]int)
	for _, m := range models {
		byInput[[3]bool{m["a"], m["b"], m["cin"]}]++
	}
	assert.Len(t, byInput, 8, "every one of the 8 input combinations should appear")
	for k, count := range byInput {
		assert.Equal(t, 1, count, "input %v should extend to exactly one model", k)
	}
}

func TestTransformRespectsPrefix(t *testing.T) {
	c := fullAdder(t)
	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)
	require.NoError(t, Transform(c, f, "p_"))

	_, ok := table.Lookup("p_a")
	assert.True(t, ok)
	_, ok = table.Lookup("a")
	assert.False(t, ok)
}

func TestTransformSharesVariablesAcrossTwoPrefixedCalls(t *testing.T) {
	c1 := fullAdder(t)
	c2 := fullAdder(t)
	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)
	require.NoError(t, Transform(c1, f, "c1_"))
	require.NoError(t, Transform(c2, f, "c2_"))

	id1, ok1 := table.Lookup("c1_a")
	id2, ok2 := table.Lookup("c2_a")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.NotEqual(t, id1, id2)
}
