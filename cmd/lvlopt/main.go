// Command lvlopt solves LP/MILP models given in the lp_solve text format
// and reformats them into canonical form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lvlopt",
	Short: "lvlopt - a pure-Go LP/MILP solver",
	Long: `lvlopt solves linear and mixed-integer linear programs written in the
lp_solve text format, using a deterministic two-phase simplex engine and a
best-bound branch-and-bound driver.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
