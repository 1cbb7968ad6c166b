package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var (
	baseFrom string
	baseTo   string
)

var baseCmd = &cobra.Command{
	Use:   "base VALUE",
	Short: "Convert an integer between DEC, HEX, OCT and BIN",
	Long: `Convert an integer between bases. Digits are validated against
--from; the result is floor(|value|) in --to with uppercase digits.

Examples:
  scicalc base 255 --to HEX
  scicalc base FF --from hex --to bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := scicalc.ParseBase(baseFrom)
		if err != nil {
			return err
		}
		to, err := scicalc.ParseBase(baseTo)
		if err != nil {
			return err
		}
		v := scicalc.FromBase(args[0], from)
		if scicalc.IsUndefined(v) {
			fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(scicalc.ErrorText))
			return fmt.Errorf("%q is not a %s number", args[0], from)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(scicalc.ToBase(v, to)))
		return nil
	},
}

func init() {
	baseCmd.Flags().StringVar(&baseFrom, "from", string(scicalc.DEC), "input base (DEC, HEX, OCT, BIN)")
	baseCmd.Flags().StringVar(&baseTo, "to", string(scicalc.DEC), "output base (DEC, HEX, OCT, BIN)")
	rootCmd.AddCommand(baseCmd)
}
