package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/lpformat"
	"github.com/katalvlaran/lvlopt/solver"
)

var (
	flagTimeout   time.Duration
	flagPrecision float64
	flagFull      bool
	flagValidate  bool
	flagBland     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <model.lp>",
	Short: "Solve an LP/MILP model file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := readModel(args[0])
		if err != nil {
			return err
		}

		opts := lp.DefaultOptions()
		opts.Timeout = flagTimeout
		opts.Full = flagFull
		opts.Validate = flagValidate
		opts.ExitOnCycles = !flagBland
		if flagPrecision > 0 {
			opts.Precision = flagPrecision
		}
		model.Options = &opts

		sol, err := solver.Solve(model)
		if err != nil {
			return err
		}

		fmt.Printf("status: %s\n", sol.Status)
		if sol.Feasible && sol.Bounded {
			fmt.Printf("objective: %g\n", sol.Result)
			var names []string
			for name := range sol.Values {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s = %g\n", name, sol.Values[name])
			}
		}

		return nil
	},
}

// readModel loads and parses an .lp file.
func readModel(path string) (*lp.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return lpformat.Parse(strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func init() {
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "wall-clock solve budget (0 = none)")
	solveCmd.Flags().Float64Var(&flagPrecision, "precision", 0, "integrality/reporting tolerance (default 1e-9)")
	solveCmd.Flags().BoolVar(&flagFull, "full", false, "include zero-valued variables in the output")
	solveCmd.Flags().BoolVar(&flagValidate, "validate", true, "run structural validation before solving")
	solveCmd.Flags().BoolVar(&flagBland, "bland-on-cycles", false, "degrade to Bland's rule instead of stopping on cycle suspicion")
	rootCmd.AddCommand(solveCmd)
}
