// Command circheck is the driver for the circuit equivalence checker: it
// parses circuit description files, and offers subcommands to simulate,
// transform to CNF, check equivalence, or export a .dot graph. It sits
// outside the core libraries: none of the packages under circuit/, cnf/,
// tseitin/, satsolver/, or miter/ import it.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("circheck failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circheck",
	Short: "Combinational-circuit equivalence checker",
	Long:  "circheck parses combinational circuit descriptions, simulates them, converts them to CNF via Tseitin encoding, and checks whether two circuits compute the same function.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	rootCmd.AddCommand(simCmd, cnfCmd, checkCmd, dotCmd)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}
