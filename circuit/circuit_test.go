package circuit

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullAdder(t *testing.T) *Circuit {
	t.Helper()
	a := NewArena()
	va, vb, vcin := a.Var("a"), a.Var("b"), a.Var("cin")
	s0 := a.Xor(va, vb)
	s := a.Xor(s0, vcin)
	s1 := a.And(va, vb)
	s2 := a.And(s0, vcin)
	cout := a.Or(s1, s2)

	c, err := New("fa", a,
		[]string{"a", "b", "cin"},
		[]string{"s", "cout"},
		[]Equation{
			{Name: "s0", Expr: s0},
			{Name: "s", Expr: s},
			{Name: "s1", Expr: s1},
			{Name: "s2", Expr: s2},
			{Name: "cout", Expr: cout},
		})
	require.NoError(t, err)
	return c
}

func TestSimulateFullAdderAllCombinations(t *testing.T) {
	c := fullAdder(t)
	for _, tc := range []struct{ a, b, cin, s, cout bool }{
		{false, false, false, false, false},
		{false, false, true, true, false},
		{false, true, false, true, false},
		{false, true, true, false, true},
		{true, false, false, true, false},
		{true, false, true, false, true},
		{true, true, false, false, true},
		{true, true, true, true, true},
	} {
		out, err := c.Simulate(map[string]bool{"a": tc.a, "b": tc.b, "cin": tc.cin})
		require.NoError(t, err)
		assert.Equal(t, tc.s, out["s"], "a=%v b=%v cin=%v", tc.a, tc.b, tc.cin)
		assert.Equal(t, tc.cout, out["cout"], "a=%v b=%v cin=%v", tc.a, tc.b, tc.cin)
	}
}

func TestSimulateReturnsErrUnassignedInput(t *testing.T) {
	c := fullAdder(t)
	_, err := c.Simulate(map[string]bool{"a": true, "b": false})
	assert.ErrorAs(t, err, &ErrUnassignedInput{})
}

func TestSimulateDefaultFalseTreatsMissingInputsAsFalse(t *testing.T) {
	c := fullAdder(t)
	out := c.SimulateDefaultFalse(map[string]bool{"a": true})
	assert.False(t, out["s"] == true && out["cout"] == true)
}

func TestNewRejectsUndefinedOutput(t *testing.T) {
	a := NewArena()
	va := a.Var("a")
	_, err := New("bad", a, []string{"a"}, []string{"out"}, []Equation{{Name: "s", Expr: va}})
	assert.ErrorAs(t, err, &ErrUndefinedOutput{})
}

func TestNewRejectsOverConstrainedInput(t *testing.T) {
	a := NewArena()
	va := a.Var("a")
	_, err := New("bad", a, []string{"a"}, []string{"a"}, []Equation{{Name: "a", Expr: va}})
	assert.ErrorAs(t, err, &ErrOverConstrainedInput{})
}

func TestNewRejectsUndefinedSignal(t *testing.T) {
	a := NewArena()
	va := a.Var("a")
	mystery := a.Var("ghost")
	out := a.And(va, mystery)
	_, err := New("bad", a, []string{"a"}, []string{"out"}, []Equation{{Name: "out", Expr: out}})
	assert.ErrorAs(t, err, &ErrUndefinedSignal{})
}

func TestNewRejectsCombinationalLoop(t *testing.T) {
	a := NewArena()
	x := a.Var("x")
	y := a.Var("y")
	outX := a.Not(y)
	outY := a.Not(x)
	_, err := New("loopy", a, nil, []string{"x"}, []Equation{
		{Name: "x", Expr: outX},
		{Name: "y", Expr: outY},
	})
	assert.ErrorAs(t, err, &ErrCombinationalLoop{})
}

func TestSupportCollectsFreeVariableNames(t *testing.T) {
	a := NewArena()
	va, vb, vc := a.Var("a"), a.Var("b"), a.Var("c")
	expr := a.Or(a.And(va, vb), a.Not(vc))
	support := a.Support(expr)
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, support)
}

func TestCleanInlinesSingleFanoutSignalsAndPrunesDead(t *testing.T) {
	c := fullAdder(t)
	cleaned, err := c.Clean()
	require.NoError(t, err)

	// s0 has fanout 2 (s and s2 both use it), so it must survive Clean.
	assert.Contains(t, cleaned.Signals(), "s0")

	for _, tc := range []struct{ a, b, cin bool }{
		{true, false, true}, {false, true, true}, {true, true, false},
	} {
		want, err := c.Simulate(map[string]bool{"a": tc.a, "b": tc.b, "cin": tc.cin})
		require.NoError(t, err)
		got, err := cleaned.Simulate(map[string]bool{"a": tc.a, "b": tc.b, "cin": tc.cin})
		require.NoError(t, err)
		assert.Equal(t, want["s"], got["s"])
		assert.Equal(t, want["cout"], got["cout"])
	}
}

func TestCleanPreservesOutputsUnderGoCmp(t *testing.T) {
	c := fullAdder(t)
	cleaned, err := c.Clean()
	require.NoError(t, err)

	want := append([]string(nil), c.Outputs()...)
	got := append([]string(nil), cleaned.Outputs()...)
	sort.Strings(want)
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("outputs changed after Clean (-want +got):\n%s", diff)
	}
}

func TestStringRendersSurfaceSyntax(t *testing.T) {
	c := fullAdder(t)
	s := c.String()
	assert.Contains(t, s, "circ fa {")
	assert.Contains(t, s, "inputs: a, b, cin")
	assert.Contains(t, s, "outputs: cout, s")
}
