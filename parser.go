package scicalc

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MaxExpressionLength is the longest expression, in characters, accepted
// before tokenization.
const MaxExpressionLength = 200

// NumericFunc is a real function of the single variable x.
type NumericFunc func(x float64) float64

// ============================================================
// Public API
// ============================================================

// Evaluate computes the value of an arithmetic expression built from
// numbers, the constants PI, E, LN2 and LN10, the operators + - * / **
// and parentheses. A divisor of exactly zero yields +Inf; NaN from pow
// propagates unchanged.
func Evaluate(text string) (float64, error) {
	src, err := prepare(text)
	if err != nil {
		return 0, err
	}
	return run(src, false, 0, false)
}

// EvaluateStrict is Evaluate with the full error taxonomy: zero divisors
// return ErrSingularity, out-of-domain arguments ErrDomain, and a NaN or
// infinite result ErrNonFinite.
func EvaluateStrict(text string) (float64, error) {
	src, err := prepare(text)
	if err != nil {
		return 0, err
	}
	v, err := run(src, false, 0, true)
	if err != nil {
		return 0, err
	}
	return v, Check(v)
}

// MakeFunction compiles an expression in x that may call the whitelisted
// functions. Lexical and syntactic errors are reported here, by evaluating
// once with x = 1. The returned function re-tokenizes on every call and
// shares no state between calls.
func MakeFunction(text string) (NumericFunc, error) {
	src, err := prepare(text)
	if err != nil {
		return nil, err
	}
	if _, err := run(src, true, 1, false); err != nil {
		return nil, err
	}

	return func(x float64) float64 {
		v, err := run(src, true, x, false)
		if err != nil {
			return math.NaN()
		}
		return v
	}, nil
}

// MakeStrictFunction is MakeFunction with strict evaluation at call time.
// Construction only fails on lexical or syntactic errors; domain and
// singularity errors depend on x and surface from the returned function.
func MakeStrictFunction(text string) (func(x float64) (float64, error), error) {
	src, err := prepare(text)
	if err != nil {
		return nil, err
	}
	if _, err := run(src, true, 1, false); err != nil {
		return nil, err
	}

	return func(x float64) (float64, error) {
		v, err := run(src, true, x, true)
		if err != nil {
			return 0, err
		}
		return v, Check(v)
	}, nil
}

// Check returns ErrNonFinite for NaN or an infinite value, nil otherwise.
func Check(v float64) error {
	switch {
	case math.IsNaN(v):
		return newError(KindNonFinite, CodeNaN, 0, "result is not a number")
	case math.IsInf(v, 0):
		return newError(KindNonFinite, CodeInfinity, 0, "result is infinite")
	}
	return nil
}

func prepare(text string) (string, error) {
	if utf8.RuneCountInString(text) > MaxExpressionLength {
		return "", newError(KindParse, CodeTooLong, 0, "expression longer than %d characters", MaxExpressionLength)
	}
	src := strings.TrimSpace(text)
	if src == "" {
		return "", newError(KindParse, CodeEmptyInput, 0, "empty expression")
	}
	return src, nil
}

func run(src string, allowVariable bool, x float64, strict bool) (float64, error) {
	tokens, err := Tokenize(src, allowVariable)
	if err != nil {
		return 0, err
	}
	p := parser{tokens: tokens, x: x, strict: strict}
	return p.parse()
}

// ============================================================
// Recursive descent parser
// ============================================================
//
//	expression := term (('+' | '-') term)*
//	term       := power (('*' | '/') power)*
//	power      := unary ('**' power)?
//	unary      := ('-' | '+') unary | call
//	call       := FUNC '(' expression ')' | atom
//	atom       := NUMBER | VARIABLE | '(' expression ')'
//
// unary sits below power, so -2**2 is (-2)**2 = 4.

type parser struct {
	tokens []Token
	pos    int
	x      float64
	strict bool
}

func (p *parser) peek() Token { return p.tokens[p.pos] }

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return t, newError(KindParse, CodeExpectedToken, t.Pos, "expected %s, got %s", kind, t.Kind)
	}
	return p.next(), nil
}

func (p *parser) parse() (float64, error) {
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.Kind != TokEOF {
		return 0, newError(KindParse, CodeTrailingInput, t.Pos, "unexpected %s after expression", t.Kind)
	}
	return v, nil
}

func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek().Kind
		if op != TokPlus && op != TokMinus {
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == TokPlus {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.power()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op.Kind != TokMultiply && op.Kind != TokDivide {
			return left, nil
		}
		p.next()
		right, err := p.power()
		if err != nil {
			return 0, err
		}
		if op.Kind == TokDivide && right == 0 {
			if p.strict {
				return 0, newError(KindSingularity, CodeDivisionByZero, op.Pos, "division by zero")
			}
			// The rest of this chain is left unconsumed.
			return math.Inf(1), nil
		}
		if op.Kind == TokMultiply {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *parser) power() (float64, error) {
	base, err := p.unary()
	if err != nil {
		return 0, err
	}
	if p.peek().Kind != TokPower {
		return base, nil
	}
	p.next()
	exp, err := p.power()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *parser) unary() (float64, error) {
	switch p.peek().Kind {
	case TokMinus:
		p.next()
		v, err := p.unary()
		return -v, err
	case TokPlus:
		p.next()
		return p.unary()
	}
	return p.call()
}

func (p *parser) call() (float64, error) {
	if p.peek().Kind != TokFunc {
		return p.atom()
	}
	name := p.next()
	if _, err := p.expect(TokLParen); err != nil {
		return 0, err
	}
	arg, err := p.expression()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(TokRParen); err != nil {
		return 0, err
	}

	f := functions[name.Name]
	if p.strict && f.domain != nil && !f.domain(arg) {
		return 0, newError(KindDomain, CodeOutOfDomain, name.Pos, "%s(%g) is outside the domain", name.Name, arg)
	}
	return f.fn(arg), nil
}

func (p *parser) atom() (float64, error) {
	t := p.peek()
	switch t.Kind {
	case TokNumber:
		p.next()
		return t.Value, nil
	case TokVariable:
		p.next()
		return p.x, nil
	case TokLParen:
		p.next()
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if _, err := p.expect(TokRParen); err != nil {
			return 0, err
		}
		return v, nil
	}
	return 0, newError(KindParse, CodeExpectedToken, t.Pos, "expected number, variable or '(', got %s", t.Kind)
}
