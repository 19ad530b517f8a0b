package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/boolsat/circheck/circuit"
)

var dotCmd = &cobra.Command{
	Use:   "dot FILE",
	Short: "Export a circuit's expression graph as GraphViz dot",
	Args:  cobra.ExactArgs(1),
	RunE:  runDot,
}

func runDot(cmd *cobra.Command, args []string) error {
	src, err := readFile(args[0])
	if err != nil {
		return err
	}
	c, err := circuit.Parse(src)
	if err != nil {
		return errors.Wrap(err, "parsing circuit")
	}
	fmt.Print(c.Dot())
	return nil
}
