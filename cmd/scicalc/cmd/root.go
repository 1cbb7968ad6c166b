package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	scicalc "github.com/njchilds90/goscicalc"
	"github.com/njchilds90/goscicalc/internal/config"
	"github.com/njchilds90/goscicalc/internal/logging"
	"github.com/njchilds90/goscicalc/internal/session"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

// errUndefined is returned when a command's result has no value.
var errUndefined = errors.New("result is undefined")

var rootCmd = &cobra.Command{
	Use:   "scicalc",
	Short: "Scientific calculator",
	Long: `scicalc is a scientific calculator for the terminal.

Commands:
  eval     - evaluate an arithmetic expression
  calc     - integrate, differentiate, sum and multiply f(x)
  solve    - quadratic, cubic and linear systems
  base     - convert between DEC, HEX, OCT and BIN
  comb     - factorial, nPr, nCr, gcd, lcm, mod, roots
  angle    - polar, rectangular and DMS conversions
  random   - random numbers
  repl     - interactive calculator
  serve    - HTTP tool server

Negative numbers as arguments need "--" first, e.g. scicalc solve quadratic -- 1 -3 2`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromEnv()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		logger = logging.New(logging.Config{
			Level:   level,
			Format:  cfg.Log.Format,
			Output:  cmd.ErrOrStderr(),
			Service: "scicalc",
		})
		logger.Debug("config loaded", "file", cfgFile, "angle_mode", cfg.Display.AngleMode, "engineering", cfg.Display.Engineering)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCICALC_CONFIG or ./scicalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// parseArgs evaluates each argument as an expression, so "PI/2" and
// "2^10" are accepted wherever a number is.
func parseArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := scicalc.EvaluateStrict(session.Substitute(a))
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i+1, a, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string) ([]int, error) {
	vals, err := parseArgs(args)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		if v != float64(int(v)) {
			return nil, fmt.Errorf("argument %d (%q) must be an integer", i+1, args[i])
		}
		out[i] = int(v)
	}
	return out, nil
}

// printNumber writes v in the configured display mode. An undefined or
// infinite v prints the error text and fails the command.
func printNumber(cmd *cobra.Command, v float64, engineering bool) error {
	if err := scicalc.Check(v); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(scicalc.ErrorText))
		return errUndefined
	}
	fmt.Fprintln(cmd.OutOrStdout(), resultStyle.Render(scicalc.FormatResult(v, engineering)))
	return nil
}

func engineering(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("eng"); f != nil && f.Changed {
		eng, _ := cmd.Flags().GetBool("eng")
		return eng
	}
	return cfg.Display.Engineering
}

func angleMode(cmd *cobra.Command) scicalc.AngleMode {
	if f := cmd.Flags().Lookup("deg"); f != nil && f.Changed {
		if deg, _ := cmd.Flags().GetBool("deg"); deg {
			return scicalc.Degrees
		}
		return scicalc.Radians
	}
	mode, _ := cfg.Angle()
	return mode
}

func expression(args []string) string {
	return session.Substitute(strings.Join(args, " "))
}
