package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/boolsat/circheck/circuit"
)

var simCmd = &cobra.Command{
	Use:   "sim FILE INPUT=0|1 ...",
	Short: "Simulate a circuit under a concrete input assignment",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	src, err := readFile(args[0])
	if err != nil {
		return err
	}
	c, err := circuit.Parse(src)
	if err != nil {
		return errors.Wrap(err, "parsing circuit")
	}

	inputs := make(map[string]bool)
	for _, kv := range args[1:] {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid assignment %q, expected NAME=0|1", kv)
		}
		inputs[name] = val == "1"
	}

	log.WithField("circuit", c.Name).Debug("simulating")
	out, err := c.Simulate(inputs)
	if err != nil {
		return errors.Wrap(err, "simulating circuit")
	}

	outputs := c.Outputs()
	sort.Strings(outputs)
	for _, o := range outputs {
		v := 0
		if out[o] {
			v = 1
		}
		fmt.Printf("%s = %d\n", o, v)
	}
	return nil
}
