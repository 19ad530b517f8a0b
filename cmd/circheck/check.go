package main

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/miter"
	"github.com/boolsat/circheck/satsolver"
)

var checkBackend string

var checkCmd = &cobra.Command{
	Use:   "check FILE1 FILE2",
	Short: "Check whether two circuits compute the same function",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkBackend, "backend", "gophersat", "SAT backend: gophersat or gini")
}

func backendFor(name string) (satsolver.Solver, error) {
	switch name {
	case "gophersat":
		return satsolver.Gophersat{}, nil
	case "gini":
		return satsolver.Gini{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	src1, err := readFile(args[0])
	if err != nil {
		return err
	}
	src2, err := readFile(args[1])
	if err != nil {
		return err
	}
	c1, err := circuit.Parse(src1)
	if err != nil {
		return errors.Wrap(err, "parsing "+args[0])
	}
	c2, err := circuit.Parse(src2)
	if err != nil {
		return errors.Wrap(err, "parsing "+args[1])
	}

	backend, err := backendFor(checkBackend)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"c1": c1.Name, "c2": c2.Name, "backend": checkBackend,
	}).Debug("checking equivalence")

	verdict, err := miter.Check(c1, c2, backend)
	if err != nil {
		return errors.Wrap(err, "checking equivalence")
	}

	if verdict.Equivalent {
		fmt.Println("equivalent")
		return nil
	}

	fmt.Println("different")
	if verdict.Counterexample != nil {
		names := make([]string, 0, len(c1.Inputs()))
		names = append(names, c1.Inputs()...)
		sort.Strings(names)
		for _, n := range names {
			if v, ok := verdict.Counterexample.Value(n); ok {
				b := 0
				if v {
					b = 1
				}
				fmt.Printf("  %s = %d\n", n, b)
			}
		}
	}
	return nil
}
