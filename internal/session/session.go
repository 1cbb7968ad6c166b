// Package session holds the interactive calculator state: angle mode,
// display mode, the memory register, the last answer and a bounded
// history. A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	scicalc "github.com/njchilds90/goscicalc"
)

// DefaultHistorySize is used when Options.HistorySize is not positive.
const DefaultHistorySize = 50

// ErrUnknownCommand is returned for a ":" command Exec does not know.
var ErrUnknownCommand = errors.New("unknown command")

// HistoryEntry is one evaluated line and what it displayed.
type HistoryEntry struct {
	Expression string
	Result     string
}

// Options configures a new Session.
type Options struct {
	Mode        scicalc.AngleMode
	Engineering bool
	HistorySize int
}

// Session is the calculator context owned by a UI.
type Session struct {
	Mode        scicalc.AngleMode
	Engineering bool
	Memory      float64
	Ans         float64
	History     []HistoryEntry

	historySize int
}

// New creates a session with the given options.
func New(opts Options) *Session {
	size := opts.HistorySize
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Session{
		Mode:        opts.Mode,
		Engineering: opts.Engineering,
		historySize: size,
	}
}

var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"^", "**",
	"π", "PI",
)

var ansWord = regexp.MustCompile(`(?i)\bans\b`)

// Substitute rewrites display glyphs (× ÷ − ^ π) into evaluator syntax.
func Substitute(line string) string {
	return glyphs.Replace(line)
}

// Exec runs one line: a ":" command or an expression. Expressions may use
// display glyphs and the word "ans" for the last answer. The returned
// string is what a display shows; on error it is scicalc.ErrorText.
func (s *Session) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		return s.command(strings.ToLower(strings.TrimPrefix(line, ":")))
	}
	return s.eval(line)
}

// Format renders v in the session's display mode.
func (s *Session) Format(v float64) string {
	return scicalc.FormatResult(v, s.Engineering)
}

func (s *Session) eval(line string) (string, error) {
	expr := ansWord.ReplaceAllString(Substitute(line), "("+strconv.FormatFloat(s.Ans, 'g', -1, 64)+")")
	v, err := scicalc.Evaluate(expr)
	if err != nil {
		s.record(line, scicalc.ErrorText)
		return scicalc.ErrorText, err
	}
	return s.store(line, v), nil
}

// store records v as the new answer when it is finite and returns its
// display form.
func (s *Session) store(expr string, v float64) string {
	out := s.Format(v)
	if scicalc.Check(v) == nil {
		s.Ans = v
	}
	s.record(expr, out)
	return out
}

func (s *Session) record(expr, result string) {
	s.History = append(s.History, HistoryEntry{Expression: expr, Result: result})
	if over := len(s.History) - s.historySize; over > 0 {
		s.History = append(s.History[:0:0], s.History[over:]...)
	}
}

func (s *Session) command(cmd string) (string, error) {
	switch cmd {
	case "rad":
		s.Mode = scicalc.Radians
		return "RAD", nil
	case "deg":
		s.Mode = scicalc.Degrees
		return "DEG", nil
	case "eng":
		s.Engineering = true
		return "ENG", nil
	case "fix":
		s.Engineering = false
		return "FIX", nil
	case "m+":
		s.Memory += s.Ans
		return s.Format(s.Memory), nil
	case "m-":
		s.Memory -= s.Ans
		return s.Format(s.Memory), nil
	case "mr":
		s.Ans = s.Memory
		return s.Format(s.Ans), nil
	case "mc":
		s.Memory = 0
		return s.Format(0), nil
	case "ans":
		return s.Format(s.Ans), nil
	case "hist":
		return s.historyText(), nil
	case "clear":
		s.Ans = 0
		s.History = nil
		return s.Format(0), nil
	}

	for _, op := range scicalc.UnaryOps {
		if cmd != op {
			continue
		}
		v, err := scicalc.ApplyUnary(op, s.Ans, s.Mode)
		expr := fmt.Sprintf("%s(%s)", op, s.Format(s.Ans))
		if err != nil {
			s.record(expr, scicalc.ErrorText)
			return scicalc.ErrorText, err
		}
		return s.store(expr, v), nil
	}
	return scicalc.ErrorText, fmt.Errorf("%w: :%s", ErrUnknownCommand, cmd)
}

func (s *Session) historyText() string {
	lines := make([]string, len(s.History))
	for i, h := range s.History {
		lines[i] = h.Expression + " = " + h.Result
	}
	return strings.Join(lines, "\n")
}

// Commands lists the ":" commands Exec accepts, for help text and
// completion.
func Commands() []string {
	cmds := []string{":rad", ":deg", ":eng", ":fix", ":m+", ":m-", ":mr", ":mc", ":ans", ":hist", ":clear"}
	for _, op := range scicalc.UnaryOps {
		cmds = append(cmds, ":"+op)
	}
	return cmds
}
