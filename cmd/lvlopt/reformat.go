package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/lpformat"
)

var reformatCmd = &cobra.Command{
	Use:   "reformat <model.lp>",
	Short: "Parse a model file and re-emit it in canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := readModel(args[0])
		if err != nil {
			return err
		}
		for _, line := range lpformat.Emit(model) {
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reformatCmd)
}
