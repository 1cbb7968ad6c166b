package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/njchilds90/goscicalc/internal/session"
)

const historyFile = ".scicalc_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive calculator",
	Long: `Start an interactive calculator. Enter expressions (× ÷ ^ π are
accepted, "ans" is the last answer) or commands:

  :rad :deg       angle mode
  :eng :fix       display mode
  :m+ :m- :mr :mc memory
  :ans :hist      last answer, history
  :clear          clear answer and history
  :sqrt :sq :inv :% :ln :log10 :fact :sin :cos :tan :asin :acos :atan
                  apply to the last answer
  :quit           exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cfg.Angle()
		s := session.New(session.Options{
			Mode:        mode,
			Engineering: cfg.Display.Engineering,
			HistorySize: cfg.Session.HistorySize,
		})
		return runREPL(s, cmd.OutOrStdout())
	},
}

func runREPL(s *session.Session, out io.Writer) error {
	fmt.Fprintln(out, bannerStyle.Render("scicalc "+Version))
	fmt.Fprintln(out, mutedStyle.Render("Type :quit to exit, :hist for history."))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		var c []string
		for _, cmd := range append(session.Commands(), ":quit") {
			if strings.HasPrefix(cmd, strings.ToLower(line)) {
				c = append(c, cmd)
			}
		}
		return c
	})

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt(s))
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, ":quit") || strings.EqualFold(line, ":q") {
			return nil
		}
		ln.AppendHistory(line)

		result, err := s.Exec(line)
		if err != nil {
			logger.Debug("repl error", "line", line, "error", err)
			fmt.Fprintln(out, errorStyle.Render(result+": "+err.Error()))
			continue
		}
		fmt.Fprintln(out, resultStyle.Render(result))
	}
}

func prompt(s *session.Session) string {
	disp := "FIX"
	if s.Engineering {
		disp = "ENG"
	}
	return fmt.Sprintf("[%s %s] > ", strings.ToUpper(s.Mode.String()), disp)
}

func init() {
	rootCmd.AddCommand(replCmd)
}
