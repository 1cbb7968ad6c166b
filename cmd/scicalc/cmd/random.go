package cmd

import (
	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var randomSeed uint64

var randomCmd = &cobra.Command{
	Use:   "random [A B]",
	Short: "Random number in [0, 1), or integer in [A, B]",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return cobra.ExactArgs(2)(cmd, args)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		num, integer := scicalc.RandomNum, scicalc.RandomInt
		if cmd.Flags().Changed("seed") {
			r := scicalc.NewRandom(randomSeed)
			num, integer = r.Num, r.Int
		}
		if len(args) == 0 {
			return printNumber(cmd, num(), false)
		}
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		return printNumber(cmd, integer(v[0], v[1]), false)
	},
}

func init() {
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "seed for a reproducible draw")
	rootCmd.AddCommand(randomCmd)
}
