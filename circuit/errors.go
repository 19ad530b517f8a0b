package circuit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// BrokenCircuit is the error taxonomy raised by Circuit construction:
// undefined-output, over-constrained-input, undefined-signal, and
// combinational-loop. Each sub-kind is its own comparable type so
// callers can errors.As a specific one, rather than matching against a
// single formatted string.
type BrokenCircuit interface {
	error
	brokenCircuit()
}

// ErrUndefinedOutput reports an output name with no matching equation.
type ErrUndefinedOutput struct{ Name string }

func (e ErrUndefinedOutput) Error() string {
	return fmt.Sprintf("circuit: undefined output %q", e.Name)
}
func (ErrUndefinedOutput) brokenCircuit() {}

// ErrOverConstrainedInput reports an input name that also appears as an
// equation key.
type ErrOverConstrainedInput struct{ Name string }

func (e ErrOverConstrainedInput) Error() string {
	return fmt.Sprintf("circuit: over-constrained input %q", e.Name)
}
func (ErrOverConstrainedInput) brokenCircuit() {}

// ErrUndefinedSignal reports a name referenced in some equation's support
// that is neither an input nor an equation key.
type ErrUndefinedSignal struct{ Name string }

func (e ErrUndefinedSignal) Error() string {
	return fmt.Sprintf("circuit: undefined signal %q", e.Name)
}
func (ErrUndefinedSignal) brokenCircuit() {}

// ErrCombinationalLoop reports a cycle in the signal dependency graph.
// Path is the DFS stack at the moment the loop was found, in traversal
// order, followed by the repeated name; the cycle itself is the suffix
// that starts at that name's first occurrence.
type ErrCombinationalLoop struct{ Path []string }

func (e ErrCombinationalLoop) Error() string {
	return fmt.Sprintf("circuit: combinational loop detected: %s", strings.Join(e.Path, " -> "))
}
func (ErrCombinationalLoop) brokenCircuit() {}

// ErrUnassignedInput is returned by Simulate (not SimulateDefaultFalse)
// when the caller's input map omits a value the simulation needs.
type ErrUnassignedInput struct{ Name string }

func (e ErrUnassignedInput) Error() string {
	return fmt.Sprintf("circuit: unassigned input %q", e.Name)
}

// wrap attaches op as context to err using github.com/pkg/errors, giving
// every broken-circuit error a traceable origin without changing its
// errors.As-able type.
func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}
