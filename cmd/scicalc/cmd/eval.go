package cmd

import (
	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var evalStrict bool

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluate an expression built from numbers, PI, E, LN2, LN10, the
operators + - * / ** (or ^) and parentheses.

Examples:
  scicalc eval "2 ** 3 ** 2"
  scicalc eval --eng 12345*1000
  scicalc eval --strict "1/0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := expression(args)
		eval := scicalc.Evaluate
		if evalStrict {
			eval = scicalc.EvaluateStrict
		}
		v, err := eval(expr)
		logger.Debug("evaluated", "expr", expr, "strict", evalStrict, "value", v, "error", err)
		if err != nil {
			return err
		}
		return printNumber(cmd, v, engineering(cmd))
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalStrict, "strict", false, "report domain, division and non-finite errors")
	evalCmd.Flags().Bool("eng", false, "engineering notation")
	rootCmd.AddCommand(evalCmd)
}
