package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/boolsat/circheck/circuit"
	"github.com/boolsat/circheck/cnf"
	"github.com/boolsat/circheck/tseitin"
)

var cnfPrefix string

var cnfCmd = &cobra.Command{
	Use:   "cnf FILE",
	Short: "Tseitin-transform a circuit and print its CNF in DIMACS format",
	Args:  cobra.ExactArgs(1),
	RunE:  runCNF,
}

func init() {
	cnfCmd.Flags().StringVar(&cnfPrefix, "prefix", "", "name prefix for the transformed circuit's variables")
}

func runCNF(cmd *cobra.Command, args []string) error {
	src, err := readFile(args[0])
	if err != nil {
		return err
	}
	c, err := circuit.Parse(src)
	if err != nil {
		return errors.Wrap(err, "parsing circuit")
	}

	table := cnf.NewSymbolTable()
	f := cnf.NewFormula(table)
	if err := tseitin.Transform(c, f, cnfPrefix); err != nil {
		return errors.Wrap(err, "transforming circuit")
	}

	log.WithFields(map[string]interface{}{
		"circuit": c.Name,
		"clauses": f.NumClauses(),
		"vars":    len(f.Variables()),
	}).Debug("transformed circuit")

	return cnf.WriteDIMACS(os.Stdout, f)
}
