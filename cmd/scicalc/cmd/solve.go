package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve polynomial equations and linear systems",
}

var quadraticCmd = &cobra.Command{
	Use:   "quadratic A B C",
	Short: "Solve A·x² + B·x + C = 0",
	Args:  cobra.ExactArgs(3),
	RunE: solveWith(func(c []float64) scicalc.EquationResult {
		return scicalc.SolveQuadratic(c[0], c[1], c[2])
	}),
}

var cubicCmd = &cobra.Command{
	Use:   "cubic A B C D",
	Short: "Solve A·x³ + B·x² + C·x + D = 0",
	Args:  cobra.ExactArgs(4),
	RunE: solveWith(func(c []float64) scicalc.EquationResult {
		return scicalc.SolveCubic(c[0], c[1], c[2], c[3])
	}),
}

var linear2Cmd = &cobra.Command{
	Use:   "linear2 A1 B1 C1 A2 B2 C2",
	Short: "Solve A1·x + B1·y = C1, A2·x + B2·y = C2",
	Args:  cobra.ExactArgs(6),
	RunE: solveWith(func(c []float64) scicalc.EquationResult {
		return scicalc.SolveLinear2(c[0], c[1], c[2], c[3], c[4], c[5])
	}),
}

var linear3Cmd = &cobra.Command{
	Use:   "linear3 A1 B1 C1 D1 A2 B2 C2 D2 A3 B3 C3 D3",
	Short: "Solve a 3×3 linear system given as three rows A·x + B·y + C·z = D",
	Args:  cobra.ExactArgs(12),
	RunE: solveWith(func(c []float64) scicalc.EquationResult {
		var rows [3][4]float64
		for i := range rows {
			copy(rows[i][:], c[i*4:i*4+4])
		}
		return scicalc.SolveLinear3(rows)
	}),
}

func solveWith(solve func([]float64) scicalc.EquationResult) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		coeffs, err := parseArgs(args)
		if err != nil {
			return err
		}
		res := solve(coeffs)
		logger.Debug("solved", "command", cmd.Name(), "coefficients", coeffs, "kind", res.Kind.String())
		if !res.OK() {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(res.Reason))
			return res.Err()
		}
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(res.String()))
		return nil
	}
}

func init() {
	solveCmd.AddCommand(quadraticCmd, cubicCmd, linear2Cmd, linear3Cmd)
	rootCmd.AddCommand(solveCmd)
}
