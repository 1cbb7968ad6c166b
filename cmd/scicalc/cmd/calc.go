package cmd

import (
	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Numeric calculus on f(x)",
}

var integrateIntervals int

var integrateCmd = &cobra.Command{
	Use:   "integrate EXPR A B",
	Short: "∫ f(x) dx over [A, B] by Simpson's rule",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, bounds, err := compile(args)
		if err != nil {
			return err
		}
		return printNumber(cmd, scicalc.IntegrateN(f, bounds[0], bounds[1], integrateIntervals), engineering(cmd))
	},
}

var deriveCmd = &cobra.Command{
	Use:   "derive EXPR X",
	Short: "f'(X) by central difference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, at, err := compile(args)
		if err != nil {
			return err
		}
		return printNumber(cmd, scicalc.Derivative(f, at[0]), engineering(cmd))
	},
}

var sumCmd = &cobra.Command{
	Use:   "sum EXPR START END",
	Short: "Σ f(i) for i from START to END",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := scicalc.MakeFunction(expression(args[:1]))
		if err != nil {
			return err
		}
		r, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		return printNumber(cmd, scicalc.Summation(f, r[0], r[1]), engineering(cmd))
	},
}

var productCmd = &cobra.Command{
	Use:   "product EXPR START END",
	Short: "Π f(i) for i from START to END",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := scicalc.MakeFunction(expression(args[:1]))
		if err != nil {
			return err
		}
		r, err := parseInts(args[1:])
		if err != nil {
			return err
		}
		return printNumber(cmd, scicalc.Product(f, r[0], r[1]), engineering(cmd))
	},
}

// compile builds f from args[0] and evaluates the remaining arguments.
func compile(args []string) (scicalc.NumericFunc, []float64, error) {
	f, err := scicalc.MakeFunction(expression(args[:1]))
	if err != nil {
		return nil, nil, err
	}
	nums, err := parseArgs(args[1:])
	if err != nil {
		return nil, nil, err
	}
	return f, nums, nil
}

func init() {
	integrateCmd.Flags().IntVarP(&integrateIntervals, "intervals", "n", scicalc.SimpsonIntervals, "Simpson subintervals")
	for _, c := range []*cobra.Command{integrateCmd, deriveCmd, sumCmd, productCmd} {
		c.Flags().Bool("eng", false, "engineering notation")
		calcCmd.AddCommand(c)
	}
	rootCmd.AddCommand(calcCmd)
}
