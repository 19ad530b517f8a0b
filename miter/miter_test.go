package miter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/cnf"
)

// bruteForceSolver is a satsolver.Solver that exhaustively tries every
// assignment of the formula's variables. It exists only so these tests
// can exercise miter.Check deterministically, without depending on the
// correctness of an external SAT engine for test verification.
type bruteForceSolver struct{}

func (bruteForceSolver) Solve(f *cnf.Formula) (cnf.Solution, error) {
	var names []string
	seen := make(map[string]bool)
	for id := range f.Variables() {
		name := f.Table.NameOf(id)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	n := len(names)
	for mask := 0; mask < (1 << n); mask++ {
		assign := make(map[string]bool, n)
		for i, name := range names {
			assign[name] = mask&(1<<i) != 0
		}
		if satisfiesAll(f, assign) {
			return cnf.Solution{Sat: true, Table: f.Table, Values: assign}, nil
		}
	}
	return cnf.Solution{Sat: false, Table: f.Table}, nil
}

func satisfiesAll(f *cnf.Formula, assign map[string]bool) bool {
	for _, c := range f.Clauses {
		ok := false
		for _, l := range c {
			if assign[f.Table.NameOf(l.ID())] == l.Positive() {
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

func fullAdder(t *testing.T, name string, brokenCarry bool) *circuit.Circuit {
	t.Helper()
	a := circuit.NewArena()
	va, vb, vcin := a.Var("a"), a.Var("b"), a.Var("cin")
	s0 := a.Xor(va, vb)
	s := a.Xor(s0, vcin)

	var cout circuit.Ref
	if brokenCarry {
		cout = a.And(va, vb) // drops the s0 & cin term
	} else {
		s1 := a.And(va, vb)
		s2 := a.And(s0, vcin)
		cout = a.Or(s1, s2)
	}

	c, err := circuit.New(name, a,
		[]string{"a", "b", "cin"},
		[]string{"s", "cout"},
		[]circuit.Equation{
			{Name: "s", Expr: s},
			{Name: "cout", Expr: cout},
		})
	require.NoError(t, err)
	return c
}

func TestCheckSelfEquivalence(t *testing.T) {
	c := fullAdder(t, "fa", false)
	v, err := Check(c, c, bruteForceSolver{})
	require.NoError(t, err)
	assert.True(t, v.Equivalent)
	assert.Nil(t, v.Counterexample)
}

func TestCheckFindsKnownBrokenVariant(t *testing.T) {
	good := fullAdder(t, "fa", false)
	bad := fullAdder(t, "fa4", true)

	v, err := Check(good, bad, bruteForceSolver{})
	require.NoError(t, err)
	require.False(t, v.Equivalent)
	require.NotNil(t, v.Counterexample)

	inputs := map[string]bool{}
	for _, x := range good.Inputs() {
		val, ok := v.Counterexample.Value(x)
		require.True(t, ok)
		inputs[x] = val
	}
	wantGood, err := good.Simulate(inputs)
	require.NoError(t, err)
	wantBad, err := bad.Simulate(inputs)
	require.NoError(t, err)
	assert.NotEqual(t, wantGood, wantBad)
}

func TestCheckIsSymmetric(t *testing.T) {
	good := fullAdder(t, "fa", false)
	bad := fullAdder(t, "fa4", true)

	v1, err := Check(good, bad, bruteForceSolver{})
	require.NoError(t, err)
	v2, err := Check(bad, good, bruteForceSolver{})
	require.NoError(t, err)
	assert.Equal(t, v1.Equivalent, v2.Equivalent)
}

func TestCheckRejectsInterfaceMismatchWithoutSolving(t *testing.T) {
	a1 := circuit.NewArena()
	va, vb := a1.Var("a"), a1.Var("b")
	c1, err := circuit.New("c1", a1, []string{"a", "b"}, []string{"y"}, []circuit.Equation{
		{Name: "y", Expr: a1.And(va, vb)},
	})
	require.NoError(t, err)

	a2 := circuit.NewArena()
	vac, vc := a2.Var("a"), a2.Var("c")
	c2, err := circuit.New("c2", a2, []string{"a", "c"}, []string{"y"}, []circuit.Equation{
		{Name: "y", Expr: a2.And(vac, vc)},
	})
	require.NoError(t, err)

	v, err := Check(c1, c2, panicSolver{})
	require.NoError(t, err)
	assert.False(t, v.Equivalent)
	assert.Nil(t, v.Counterexample)
}

// panicSolver asserts that Check's precondition short-circuit never
// actually dispatches to the solver for mismatched interfaces.
type panicSolver struct{}

func (panicSolver) Solve(f *cnf.Formula) (cnf.Solution, error) {
	panic("solver should not be invoked for interface-mismatched circuits")
}
