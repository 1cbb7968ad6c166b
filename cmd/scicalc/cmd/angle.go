package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
)

var angleCmd = &cobra.Command{
	Use:   "angle",
	Short: "Coordinate and angle conversions",
}

var polarCmd = &cobra.Command{
	Use:   "polar X Y",
	Short: "Rectangular (X, Y) to polar (r, θ)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		p := scicalc.ToPolar(v[0], v[1], angleMode(cmd))
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(fmt.Sprintf("r = %s, θ = %s",
			scicalc.FormatResult(p.R, false), scicalc.FormatResult(p.Theta, false))))
		return nil
	},
}

var rectCmd = &cobra.Command{
	Use:   "rect R THETA",
	Short: "Polar (R, THETA) to rectangular (x, y)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		r := scicalc.ToRect(v[0], v[1], angleMode(cmd))
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(fmt.Sprintf("x = %s, y = %s",
			scicalc.FormatResult(r.X, false), scicalc.FormatResult(r.Y, false))))
		return nil
	},
}

var dmsCmd = &cobra.Command{
	Use:   "dms DECIMAL",
	Short: "Decimal degrees to degrees, minutes, seconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(scicalc.FormatDMS(v[0])))
		return nil
	},
}

var decCmd = &cobra.Command{
	Use:   "dec D M S",
	Short: "Degrees, minutes, seconds to decimal degrees",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseArgs(args)
		if err != nil {
			return err
		}
		return printNumber(cmd, scicalc.DMSToDec(v[0], v[1], v[2]), false)
	},
}

func init() {
	for _, c := range []*cobra.Command{polarCmd, rectCmd} {
		c.Flags().Bool("deg", false, "angles in degrees (default from config)")
	}
	angleCmd.AddCommand(polarCmd, rectCmd, dmsCmd, decCmd)
	rootCmd.AddCommand(angleCmd)
}
