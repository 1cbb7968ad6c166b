package cmd

import (
	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var combCmd = &cobra.Command{
	Use:   "comb",
	Short: "Combinatorics and number theory",
}

// numberCommand builds a subcommand that maps n evaluated arguments to
// one number.
func numberCommand(use, short string, n int, fn func(a []float64) float64) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseArgs(args)
			if err != nil {
				return err
			}
			return printNumber(cmd, fn(vals), engineering(cmd))
		},
	}
	c.Flags().Bool("eng", false, "engineering notation")
	return c
}

func init() {
	combCmd.AddCommand(
		numberCommand("fact N", "N!", 1, func(a []float64) float64 { return scicalc.Factorial(a[0]) }),
		numberCommand("npr N R", "Permutations of R from N", 2, func(a []float64) float64 { return scicalc.Permutations(a[0], a[1]) }),
		numberCommand("ncr N R", "Combinations of R from N", 2, func(a []float64) float64 { return scicalc.Combinations(a[0], a[1]) }),
		numberCommand("gcd A B", "Greatest common divisor", 2, func(a []float64) float64 { return scicalc.GCD(a[0], a[1]) }),
		numberCommand("lcm A B", "Least common multiple", 2, func(a []float64) float64 { return scicalc.LCM(a[0], a[1]) }),
		numberCommand("mod A B", "A mod B with the sign of B", 2, func(a []float64) float64 { return scicalc.Mod(a[0], a[1]) }),
		numberCommand("root X N", "Real N-th root of X", 2, func(a []float64) float64 { return scicalc.NthRoot(a[0], a[1]) }),
	)
	rootCmd.AddCommand(combCmd)
}
