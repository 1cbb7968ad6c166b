package scicalc_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	scicalc "github.com/njchilds90/goscicalc"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ============================================================
// Tokenizer tests
// ============================================================

func TestTokenize_Kinds(t *testing.T) {
	toks, err := scicalc.Tokenize("sin(x) ** 2 + PI", true)
	if err != nil {
		t.Fatal(err)
	}
	want := []scicalc.TokenKind{
		scicalc.TokFunc, scicalc.TokLParen, scicalc.TokVariable, scicalc.TokRParen,
		scicalc.TokPower, scicalc.TokNumber, scicalc.TokPlus, scicalc.TokNumber, scicalc.TokEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: want %s, got %s", i, k, toks[i].Kind)
		}
	}
	if toks[0].Name != "sin" {
		t.Errorf("want function name sin, got %q", toks[0].Name)
	}
	if toks[7].Value != math.Pi {
		t.Errorf("PI should resolve to %v, got %v", math.Pi, toks[7].Value)
	}
}

func TestTokenize_Positions(t *testing.T) {
	toks, err := scicalc.Tokenize("12 + .5e1", false)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Pos != 1 || toks[1].Pos != 4 || toks[2].Pos != 6 {
		t.Errorf("want positions 1, 4, 6, got %d, %d, %d", toks[0].Pos, toks[1].Pos, toks[2].Pos)
	}
	if toks[2].Value != 5 {
		t.Errorf("want .5e1 = 5, got %v", toks[2].Value)
	}
}

func TestTokenize_ExponentSign(t *testing.T) {
	toks, err := scicalc.Tokenize("1e-3-1", false)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Value != 1e-3 || toks[1].Kind != scicalc.TokMinus {
		t.Errorf("sign after e belongs to the number, the next one does not: %v", toks)
	}
}

func TestTokenize_MathPrefix(t *testing.T) {
	toks, err := scicalc.Tokenize("Math.sqrt(x) + Math.E", true)
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != scicalc.TokFunc || toks[0].Name != "sqrt" {
		t.Errorf("Math.sqrt should lex as function sqrt, got %v", toks[0])
	}
	if toks[len(toks)-2].Value != math.E {
		t.Errorf("Math.E should resolve to e")
	}
}

func TestTokenize_ConstantModeRejectsNames(t *testing.T) {
	for _, src := range []string{"x", "sin(1)", "xx"} {
		_, err := scicalc.Tokenize(src, false)
		if scicalc.CodeOf(err) != scicalc.CodeUnknownIdentifier {
			t.Errorf("%q: want UnknownIdentifier, got %v", src, err)
		}
	}
}

// ============================================================
// Evaluate tests
// ============================================================

func TestEvaluate(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"7 - 2 - 1", 4},
		{"10 / 4", 2.5},
		{"2 ** 3 ** 2", 512},
		{"-2 ** 2", 4},
		{"2 ** -1", 0.5},
		{"--3", 3},
		{"+-3", -3},
		{"1.5e3", 1500},
		{".5 + .5", 1},
		{"2 * PI", 2 * math.Pi},
		{"Math.E", math.E},
		{"LN2 + LN10", math.Ln2 + math.Ln10},
		{"  42  ", 42},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := scicalc.Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEvaluate_DivisionByZeroIsInfinity(t *testing.T) {
	for _, expr := range []string{"1/0", "1/0+1", "2/(1-1)", "-1/0"} {
		got, err := scicalc.Evaluate(expr)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", expr, err)
		}
		if !math.IsInf(got, 1) {
			t.Errorf("%q: want +Inf, got %v", expr, got)
		}
	}
}

func TestEvaluate_DivisionByZeroStopsTheChain(t *testing.T) {
	_, err := scicalc.Evaluate("1/0*2")
	if scicalc.CodeOf(err) != scicalc.CodeTrailingInput {
		t.Errorf("1/0*2: want TrailingInput, got %v", err)
	}
	_, err = scicalc.Evaluate("(1/0*2)")
	if scicalc.CodeOf(err) != scicalc.CodeExpectedToken {
		t.Errorf("(1/0*2): want ExpectedToken, got %v", err)
	}
}

func TestEvaluate_NaNPropagates(t *testing.T) {
	got, err := scicalc.Evaluate("(-8) ** (1/3)")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("want NaN, got %v", got)
	}
}

// ============================================================
// Error taxonomy tests
// ============================================================

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		expr string
		kind error
		code string
		pos  int
	}{
		{"", scicalc.ErrParse, scicalc.CodeEmptyInput, 0},
		{"   ", scicalc.ErrParse, scicalc.CodeEmptyInput, 0},
		{strings.Repeat("1+", 100) + "1", scicalc.ErrParse, scicalc.CodeTooLong, 0},
		{"2 $ 3", scicalc.ErrLex, scicalc.CodeUnexpectedCharacter, 3},
		{"2 ^ 3", scicalc.ErrLex, scicalc.CodeUnexpectedCharacter, 3},
		{"1.2.3", scicalc.ErrLex, scicalc.CodeInvalidNumber, 1},
		{"1 + 2e", scicalc.ErrLex, scicalc.CodeInvalidNumber, 5},
		{"foo", scicalc.ErrLex, scicalc.CodeUnknownIdentifier, 1},
		{"(1 + 2", scicalc.ErrParse, scicalc.CodeExpectedToken, 7},
		{"2 +", scicalc.ErrParse, scicalc.CodeExpectedToken, 4},
		{"*3", scicalc.ErrParse, scicalc.CodeExpectedToken, 1},
		{"1 2", scicalc.ErrParse, scicalc.CodeTrailingInput, 3},
		{"()", scicalc.ErrParse, scicalc.CodeExpectedToken, 2},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := scicalc.Evaluate(tt.expr)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("want %v, got %v", tt.kind, err)
			}
			var e *scicalc.Error
			if !errors.As(err, &e) {
				t.Fatalf("want *scicalc.Error, got %T", err)
			}
			if e.Code != tt.code {
				t.Errorf("want code %s, got %s", tt.code, e.Code)
			}
			if e.Pos != tt.pos {
				t.Errorf("want pos %d, got %d", tt.pos, e.Pos)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := scicalc.Evaluate("2 $ 3")
	if !strings.Contains(err.Error(), "at col 3") {
		t.Errorf("message should carry the column, got %q", err)
	}
	if scicalc.KindOf(err) != scicalc.KindLex {
		t.Errorf("want KindLex, got %v", scicalc.KindOf(err))
	}
	if scicalc.KindOf(errors.New("other")) != 0 {
		t.Error("KindOf on a foreign error should be 0")
	}
}

func TestEvaluate_MaxLengthAccepted(t *testing.T) {
	expr := strings.Repeat("1+", 99) + "1" // 199 characters
	got, err := scicalc.Evaluate(expr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("want 100, got %v", got)
	}
}

// ============================================================
// Strict evaluation tests
// ============================================================

func TestEvaluateStrict(t *testing.T) {
	tests := []struct {
		expr string
		kind error
		code string
	}{
		{"1/0", scicalc.ErrSingularity, scicalc.CodeDivisionByZero},
		{"1/(2-2)", scicalc.ErrSingularity, scicalc.CodeDivisionByZero},
		{"(-8) ** (1/3)", scicalc.ErrNonFinite, scicalc.CodeNaN},
		{"10 ** 400", scicalc.ErrNonFinite, scicalc.CodeInfinity},
		{"1 +", scicalc.ErrParse, scicalc.CodeExpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := scicalc.EvaluateStrict(tt.expr)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("want %v, got %v", tt.kind, err)
			}
			if scicalc.CodeOf(err) != tt.code {
				t.Errorf("want code %s, got %s", tt.code, scicalc.CodeOf(err))
			}
		})
	}

	v, err := scicalc.EvaluateStrict("2 ** 10")
	if err != nil || v != 1024 {
		t.Errorf("want 1024, got %v (%v)", v, err)
	}
}

func TestMakeStrictFunction(t *testing.T) {
	f, err := scicalc.MakeStrictFunction("sqrt(x) + log(x)")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := f(1); err != nil || v != 1 {
		t.Errorf("f(1): want 1, got %v (%v)", v, err)
	}
	if _, err := f(-1); !errors.Is(err, scicalc.ErrDomain) {
		t.Errorf("f(-1): want ErrDomain, got %v", err)
	}

	inv, err := scicalc.MakeStrictFunction("1/x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := inv(0); !errors.Is(err, scicalc.ErrSingularity) {
		t.Errorf("1/x at 0: want ErrSingularity, got %v", err)
	}

	if _, err := scicalc.MakeStrictFunction("2x"); !errors.Is(err, scicalc.ErrParse) {
		t.Errorf("2x: want ErrParse at construction, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	if scicalc.Check(1) != nil {
		t.Error("Check(1) should be nil")
	}
	if scicalc.CodeOf(scicalc.Check(math.NaN())) != scicalc.CodeNaN {
		t.Error("Check(NaN) should report NaN")
	}
	if scicalc.CodeOf(scicalc.Check(math.Inf(-1))) != scicalc.CodeInfinity {
		t.Error("Check(-Inf) should report Infinity")
	}
}

// ============================================================
// MakeFunction tests
// ============================================================

func TestMakeFunction(t *testing.T) {
	tests := []struct {
		expr string
		x    float64
		want float64
	}{
		{"sin(x) + 1", 0, 1},
		{"x ** 2", 3, 9},
		{"abs(x)", -3, 3},
		{"round(x)", -2.5, -2},
		{"round(x)", 2.5, 3},
		{"sign(x)", -7, -1},
		{"Math.sqrt(x)", 16, 4},
		{"cbrt(x)", -27, -3},
		{"exp(log(x))", 5, 5},
		{"log2(x) + log10(x)", 1, 0},
		{"floor(x) + ceil(x)", 1.5, 3},
		{"-x ** 2", 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := scicalc.MakeFunction(tt.expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f(tt.x); !approx(got, tt.want, 1e-12) {
				t.Errorf("f(%v): want %v, got %v", tt.x, tt.want, got)
			}
		})
	}
}

func TestMakeFunction_Errors(t *testing.T) {
	tests := []struct {
		expr string
		code string
	}{
		{"2x", scicalc.CodeTrailingInput},
		{"foo(x)", scicalc.CodeUnknownIdentifier},
		{"max(x)", scicalc.CodeUnknownIdentifier},
		{"sin x", scicalc.CodeExpectedToken},
		{"sin(x", scicalc.CodeExpectedToken},
		{"", scicalc.CodeEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := scicalc.MakeFunction(tt.expr)
			if scicalc.CodeOf(err) != tt.code {
				t.Errorf("want %s, got %v", tt.code, err)
			}
		})
	}
}

func TestMakeFunction_NonStrictValues(t *testing.T) {
	f, err := scicalc.MakeFunction("sqrt(x)")
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(f(-1)) {
		t.Error("sqrt(-1) should be NaN")
	}
	g, _ := scicalc.MakeFunction("1/x")
	if !math.IsInf(g(0), 1) {
		t.Error("1/x at 0 should be +Inf")
	}
}

func TestMakeFunction_Independent(t *testing.T) {
	f, _ := scicalc.MakeFunction("x + 1")
	g, _ := scicalc.MakeFunction("x * 10")
	if f(1) != 2 || g(1) != 10 || f(2) != 3 {
		t.Error("compiled functions should not share state")
	}
}

func TestFunctionNames(t *testing.T) {
	names := scicalc.FunctionNames()
	if len(names) != 23 {
		t.Errorf("want 23 whitelisted functions, got %d", len(names))
	}
}

// ============================================================
// Combinatorics tests
// ============================================================

func TestFactorial(t *testing.T) {
	if scicalc.Factorial(0) != 1 || scicalc.Factorial(5) != 120 {
		t.Error("0! = 1 and 5! = 120")
	}
	if math.IsInf(scicalc.Factorial(170), 0) {
		t.Error("170! should be finite")
	}
	if !math.IsInf(scicalc.Factorial(171), 1) {
		t.Error("171! should be +Inf")
	}
	for _, n := range []float64{-1, 2.5, math.NaN()} {
		if !scicalc.IsUndefined(scicalc.Factorial(n)) {
			t.Errorf("%v! should be undefined", n)
		}
	}
}

func TestPermutationsCombinations(t *testing.T) {
	if got := scicalc.Permutations(5, 2); got != 20 {
		t.Errorf("nPr(5,2): want 20, got %v", got)
	}
	if got := scicalc.Combinations(5, 2); got != 10 {
		t.Errorf("nCr(5,2): want 10, got %v", got)
	}
	if got := scicalc.Combinations(5, 0); got != 1 {
		t.Errorf("nCr(5,0): want 1, got %v", got)
	}
	for _, c := range [][2]float64{{5, 6}, {-1, 0}, {5, -1}, {5.5, 2}} {
		if !scicalc.IsUndefined(scicalc.Permutations(c[0], c[1])) || !scicalc.IsUndefined(scicalc.Combinations(c[0], c[1])) {
			t.Errorf("nPr/nCr(%v, %v) should be undefined", c[0], c[1])
		}
	}
}

func TestGCDLCM(t *testing.T) {
	tests := []struct {
		a, b, gcd, lcm float64
	}{
		{12, 18, 6, 36},
		{-12, 18, 6, 36},
		{0, 5, 5, 0},
		{12.4, 18, 6, 36},
		{7, 13, 1, 91},
	}
	for _, tt := range tests {
		if got := scicalc.GCD(tt.a, tt.b); got != tt.gcd {
			t.Errorf("gcd(%v,%v): want %v, got %v", tt.a, tt.b, tt.gcd, got)
		}
		if got := scicalc.LCM(tt.a, tt.b); got != tt.lcm {
			t.Errorf("lcm(%v,%v): want %v, got %v", tt.a, tt.b, tt.lcm, got)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{-1, 3, 2},
		{7, 3, 1},
		{5, -3, -1},
		{6, 3, 0},
	}
	for _, tt := range tests {
		if got := scicalc.Mod(tt.a, tt.b); got != tt.want {
			t.Errorf("mod(%v,%v): want %v, got %v", tt.a, tt.b, tt.want, got)
		}
	}
	if !scicalc.IsUndefined(scicalc.Mod(1, 0)) {
		t.Error("mod(1,0) should be undefined")
	}
}

func TestNthRoot(t *testing.T) {
	if got := scicalc.NthRoot(-8, 3); !approx(got, -2, 1e-12) {
		t.Errorf("nthRoot(-8,3): want -2, got %v", got)
	}
	if got := scicalc.NthRoot(16, 4); !approx(got, 2, 1e-12) {
		t.Errorf("nthRoot(16,4): want 2, got %v", got)
	}
	if !scicalc.IsUndefined(scicalc.NthRoot(-16, 2)) {
		t.Error("even root of a negative should be undefined")
	}
	if !scicalc.IsUndefined(scicalc.NthRoot(2, 0)) {
		t.Error("0th root should be undefined")
	}
}

// ============================================================
// Angle tests
// ============================================================

func TestPolarRect(t *testing.T) {
	p := scicalc.ToPolar(1, 1, scicalc.Degrees)
	if !approx(p.R, math.Sqrt2, 1e-12) || !approx(p.Theta, 45, 1e-12) {
		t.Errorf("polar(1,1): want (√2, 45°), got %+v", p)
	}
	p = scicalc.ToPolar(0, -1, scicalc.Radians)
	if !approx(p.Theta, -math.Pi/2, 1e-12) {
		t.Errorf("polar(0,-1): want θ = -π/2, got %v", p.Theta)
	}
	r := scicalc.ToRect(2, 90, scicalc.Degrees)
	if !approx(r.X, 0, 1e-12) || !approx(r.Y, 2, 1e-12) {
		t.Errorf("rect(2, 90°): want (0, 2), got %+v", r)
	}
	r = scicalc.ToRect(1, math.Pi, scicalc.Radians)
	if !approx(r.X, -1, 1e-12) {
		t.Errorf("rect(1, π): want x = -1, got %v", r.X)
	}
}

func TestDMS(t *testing.T) {
	tests := []struct {
		dec  float64
		want string
	}{
		{30.2625, `30°15'45"`},
		{30.5, `30°30'0"`},
		{-0.5, `-0°30'0"`},
		{-12.75, `-12°45'0"`},
		{1.99999999, `2°0'0"`},
		{0, `0°0'0"`},
	}
	for _, tt := range tests {
		if got := scicalc.FormatDMS(tt.dec); got != tt.want {
			t.Errorf("FormatDMS(%v): want %s, got %s", tt.dec, tt.want, got)
		}
	}

	if got := scicalc.DMSToDec(-30, 15, 45); !approx(got, -30.2625, 1e-12) {
		t.Errorf("dmsToDec(-30,15,45): want -30.2625, got %v", got)
	}
	d := scicalc.DecToDMS(-12.75)
	if !d.Negative || d.Degrees != 12 || d.Minutes != 45 || !approx(d.Decimal(), -12.75, 1e-12) {
		t.Errorf("DecToDMS(-12.75) round trip failed: %+v", d)
	}
}

func TestParseAngleMode(t *testing.T) {
	if m, err := scicalc.ParseAngleMode("deg"); err != nil || m != scicalc.Degrees {
		t.Errorf("deg: got %v, %v", m, err)
	}
	if m, err := scicalc.ParseAngleMode("radians"); err != nil || m != scicalc.Radians {
		t.Errorf("radians: got %v, %v", m, err)
	}
	if _, err := scicalc.ParseAngleMode("grad"); err == nil {
		t.Error("grad should be rejected")
	}
}

func TestTrig(t *testing.T) {
	if v, _ := scicalc.Trig("sin", 30, scicalc.Degrees); !approx(v, 0.5, 1e-12) {
		t.Errorf("sin(30°): want 0.5, got %v", v)
	}
	if v, _ := scicalc.Trig("cos", math.Pi, scicalc.Radians); !approx(v, -1, 1e-12) {
		t.Errorf("cos(π): want -1, got %v", v)
	}
	if v, _ := scicalc.Trig("asin", 1, scicalc.Degrees); !approx(v, 90, 1e-12) {
		t.Errorf("asin(1) in degrees: want 90, got %v", v)
	}
	if v, _ := scicalc.Trig("atan", 1, scicalc.Radians); !approx(v, math.Pi/4, 1e-12) {
		t.Errorf("atan(1): want π/4, got %v", v)
	}
	if _, err := scicalc.Trig("acos", 2, scicalc.Radians); !errors.Is(err, scicalc.ErrDomain) {
		t.Errorf("acos(2): want ErrDomain, got %v", err)
	}
	if _, err := scicalc.Trig("sec", 1, scicalc.Radians); !errors.Is(err, scicalc.ErrDomain) {
		t.Errorf("sec: want ErrDomain, got %v", err)
	}
}

func TestApplyUnary(t *testing.T) {
	tests := []struct {
		op   string
		x    float64
		want float64
		err  error
	}{
		{"%", 50, 0.5, nil},
		{"sqrt", 9, 3, nil},
		{"sqrt", -1, 0, scicalc.ErrDomain},
		{"sq", -3, 9, nil},
		{"inv", 4, 0.25, nil},
		{"inv", 0, 0, scicalc.ErrSingularity},
		{"ln", math.E, 1, nil},
		{"ln", 0, 0, scicalc.ErrDomain},
		{"log10", 100, 2, nil},
		{"log10", -1, 0, scicalc.ErrDomain},
		{"fact", 4, 24, nil},
		{"fact", -2, 0, scicalc.ErrDomain},
		{"tan", 0, 0, nil},
		{"bogus", 1, 0, scicalc.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := scicalc.ApplyUnary(tt.op, tt.x, scicalc.Radians)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("want %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !approx(got, tt.want, 1e-12) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

// ============================================================
// Calculus tests
// ============================================================

func TestIntegrate(t *testing.T) {
	sq, _ := scicalc.MakeFunction("x ** 2")
	if got := scicalc.Integrate(sq, 0, 1); !approx(got, 1.0/3, 1e-9) {
		t.Errorf("∫₀¹ x² dx: want 1/3, got %v", got)
	}
	if got := scicalc.Integrate(sq, 1, 0); !approx(got, -1.0/3, 1e-9) {
		t.Errorf("reversed bounds should negate, got %v", got)
	}
	if got := scicalc.Integrate(sq, 2, 2); got != 0 {
		t.Errorf("empty interval: want 0, got %v", got)
	}

	sin, _ := scicalc.MakeFunction("sin(x)")
	if got := scicalc.Integrate(sin, 0, math.Pi); !approx(got, 2, 1e-9) {
		t.Errorf("∫₀^π sin: want 2, got %v", got)
	}
}

func TestIntegrateN(t *testing.T) {
	cube, _ := scicalc.MakeFunction("x ** 3")
	// Simpson is exact for cubics; odd n is raised to 4.
	if got := scicalc.IntegrateN(cube, 0, 2, 3); !approx(got, 4, 1e-12) {
		t.Errorf("∫₀² x³ with n=3: want 4, got %v", got)
	}
	if got := scicalc.IntegrateN(cube, 0, 2, 0); !approx(got, 4, 1e-9) {
		t.Errorf("n=0 should use the default, got %v", got)
	}
}

func TestDerivative(t *testing.T) {
	sq, _ := scicalc.MakeFunction("x ** 2")
	if got := scicalc.Derivative(sq, 3); !approx(got, 6, 1e-5) {
		t.Errorf("d/dx x² at 3: want 6, got %v", got)
	}
	sin, _ := scicalc.MakeFunction("sin(x)")
	if got := scicalc.Derivative(sin, 0); !approx(got, 1, 1e-6) {
		t.Errorf("d/dx sin at 0: want 1, got %v", got)
	}
}

func TestSummationProduct(t *testing.T) {
	id, _ := scicalc.MakeFunction("x")
	if got := scicalc.Summation(id, 1, 100); got != 5050 {
		t.Errorf("Σ 1..100: want 5050, got %v", got)
	}
	if got := scicalc.Summation(id, 5, 1); got != 0 {
		t.Errorf("empty sum: want 0, got %v", got)
	}
	if got := scicalc.Product(id, 1, 5); got != 120 {
		t.Errorf("Π 1..5: want 120, got %v", got)
	}
	if got := scicalc.Product(id, 5, 1); got != 1 {
		t.Errorf("empty product: want 1, got %v", got)
	}
}

// ============================================================
// Solver tests
// ============================================================

func rootStrings(r scicalc.EquationResult) []string {
	out := make([]string, len(r.Roots))
	for i, root := range r.Roots {
		out[i] = root.String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		roots   []string
		disc    *float64
	}{
		{"two real", 1, -3, 2, []string{"2", "1"}, ptr(1)},
		{"double", 1, 2, 1, []string{"-1"}, ptr(0)},
		{"complex", 1, 0, 1, []string{"0 + 1i", "0 - 1i"}, ptr(-4)},
		{"complex negative a", -1, 0, -1, []string{"0 + 1i", "0 - 1i"}, ptr(-4)},
		{"linear", 0, 2, -4, []string{"2"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := scicalc.SolveQuadratic(tt.a, tt.b, tt.c)
			if r.Kind != scicalc.ResultRoots {
				t.Fatalf("want roots, got %v", r.Kind)
			}
			if got := rootStrings(r); !equalStrings(got, tt.roots) {
				t.Errorf("want roots %v, got %v", tt.roots, got)
			}
			switch {
			case tt.disc == nil && r.Discriminant != nil:
				t.Errorf("want no discriminant, got %v", *r.Discriminant)
			case tt.disc != nil && (r.Discriminant == nil || *r.Discriminant != *tt.disc):
				t.Errorf("want discriminant %v, got %v", *tt.disc, r.Discriminant)
			}
		})
	}

	r := scicalc.SolveQuadratic(0, 0, 1)
	if r.OK() || r.Reason != "No solution" {
		t.Errorf("a=b=0: want failure 'No solution', got %+v", r)
	}
	if !errors.Is(r.Err(), scicalc.ErrSingularity) {
		t.Errorf("failure should map to ErrSingularity, got %v", r.Err())
	}
}

func TestSolveCubic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d float64
		roots      []string
	}{
		{"three real", 1, -6, 11, -6, []string{"3", "1", "2"}},
		{"one real", 1, 0, 0, -1, []string{"1", "-0.5 + 0.8660254038i", "-0.5 - 0.8660254038i"}},
		{"repeated", 1, 0, -3, 2, []string{"-2", "1"}},
		{"quadratic fallback", 0, 1, -3, 2, []string{"2", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := scicalc.SolveCubic(tt.a, tt.b, tt.c, tt.d)
			if got := rootStrings(r); !equalStrings(got, tt.roots) {
				t.Errorf("want %v, got %v", tt.roots, got)
			}
		})
	}
}

func TestSolveLinear2(t *testing.T) {
	r := scicalc.SolveLinear2(1, 1, 3, 1, -1, 1)
	if r.Kind != scicalc.ResultPoint || r.Point[0] != 2 || r.Point[1] != 1 {
		t.Errorf("want (2, 1), got %+v", r)
	}
	if r.String() != "x = 2, y = 1" {
		t.Errorf("want 'x = 2, y = 1', got %q", r.String())
	}

	r = scicalc.SolveLinear2(1, 1, 1, 2, 2, 2)
	if r.OK() || r.Reason != "No unique solution" {
		t.Errorf("singular system: want 'No unique solution', got %+v", r)
	}
}

func TestSolveLinear3(t *testing.T) {
	r := scicalc.SolveLinear3([3][4]float64{
		{1, 1, 1, 6},
		{0, 2, 5, -4},
		{2, 5, -1, 27},
	})
	if r.Kind != scicalc.ResultPoint {
		t.Fatalf("want a point, got %+v", r)
	}
	want := []float64{5, 3, -2}
	for i := range want {
		if r.Point[i] != want[i] {
			t.Errorf("coordinate %d: want %v, got %v", i, want[i], r.Point[i])
		}
	}

	r = scicalc.SolveLinear3([3][4]float64{
		{1, 2, 3, 1},
		{2, 4, 6, 2},
		{1, 0, 1, 0},
	})
	if r.OK() {
		t.Errorf("singular system should fail, got %+v", r)
	}
}

func TestEquationResult_JSON(t *testing.T) {
	b, err := json.Marshal(scicalc.SolveQuadratic(1, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"roots","roots":["0 + 1i","0 - 1i"],"discriminant":-4}`
	if string(b) != want {
		t.Errorf("want %s, got %s", want, b)
	}

	b, _ = json.Marshal(scicalc.SolveLinear2(1, 1, 3, 1, -1, 1))
	if string(b) != `{"kind":"point","point":[2,1]}` {
		t.Errorf("unexpected point JSON: %s", b)
	}
}

func ptr(v float64) *float64 { return &v }

// ============================================================
// Base conversion tests
// ============================================================

func TestToBase(t *testing.T) {
	tests := []struct {
		n    float64
		base scicalc.Base
		want string
	}{
		{255, scicalc.HEX, "FF"},
		{10, scicalc.BIN, "1010"},
		{8, scicalc.OCT, "10"},
		{-10.7, scicalc.DEC, "10"},
		{0, scicalc.BIN, "0"},
		{1e20, scicalc.HEX, "56BC75E2D63100000"},
		{math.NaN(), scicalc.HEX, "NaN"},
	}
	for _, tt := range tests {
		if got := scicalc.ToBase(tt.n, tt.base); got != tt.want {
			t.Errorf("ToBase(%v, %s): want %s, got %s", tt.n, tt.base, tt.want, got)
		}
	}
}

func TestFromBase(t *testing.T) {
	tests := []struct {
		s    string
		base scicalc.Base
		want float64
	}{
		{"FF", scicalc.HEX, 255},
		{"ff", scicalc.HEX, 255},
		{"1010", scicalc.BIN, 10},
		{"-101", scicalc.BIN, -5},
		{"777", scicalc.OCT, 511},
		{" 42 ", scicalc.DEC, 42},
	}
	for _, tt := range tests {
		if got := scicalc.FromBase(tt.s, tt.base); got != tt.want {
			t.Errorf("FromBase(%q, %s): want %v, got %v", tt.s, tt.base, tt.want, got)
		}
	}
	for _, bad := range []struct {
		s    string
		base scicalc.Base
	}{{"12G", scicalc.HEX}, {"2", scicalc.BIN}, {"8", scicalc.OCT}, {"", scicalc.DEC}, {"--1", scicalc.DEC}, {"1.5", scicalc.DEC}} {
		if !scicalc.IsUndefined(scicalc.FromBase(bad.s, bad.base)) {
			t.Errorf("FromBase(%q, %s) should be undefined", bad.s, bad.base)
		}
	}
}

func TestBase_RoundTrip(t *testing.T) {
	for _, b := range []scicalc.Base{scicalc.DEC, scicalc.HEX, scicalc.OCT, scicalc.BIN} {
		for n := 0.0; n <= 300; n++ {
			if got := scicalc.FromBase(scicalc.ToBase(n, b), b); got != n {
				t.Fatalf("round trip %v in %s gave %v", n, b, got)
			}
		}
	}
}

func TestParseBase(t *testing.T) {
	if b, err := scicalc.ParseBase("hex"); err != nil || b != scicalc.HEX {
		t.Errorf("hex: got %v, %v", b, err)
	}
	if _, err := scicalc.ParseBase("B64"); err == nil {
		t.Error("B64 should be rejected")
	}
}

// ============================================================
// Formatting tests
// ============================================================

func TestFormatResult(t *testing.T) {
	tests := []struct {
		v    float64
		eng  bool
		want string
	}{
		{math.NaN(), false, "Error"},
		{math.Inf(1), false, "Error"},
		{math.Inf(-1), true, "Error"},
		{0, false, "0"},
		{1.0 / 3, false, "0.3333333333"},
		{0.1 + 0.2, false, "0.3"},
		{-2.5, false, "-2.5"},
		{1e10, false, "10000000000"},
		{1.23456789e11, false, "1.234568e+11"},
		{1.5e-12, false, "1.500000e-12"},
		{12345, true, "12.345×10^3"},
	}
	for _, tt := range tests {
		if got := scicalc.FormatResult(tt.v, tt.eng); got != tt.want {
			t.Errorf("FormatResult(%v, %v): want %s, got %s", tt.v, tt.eng, tt.want, got)
		}
	}
}

func TestToEngNotation(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{12345, "12.345×10^3"},
		{-12345, "-12.345×10^3"},
		{1e6, "1×10^6"},
		{0.00123, "1.23×10^-3"},
		{0.5, "500×10^-3"},
	}
	for _, tt := range tests {
		if got := scicalc.ToEngNotation(tt.v); got != tt.want {
			t.Errorf("ToEngNotation(%v): want %s, got %s", tt.v, tt.want, got)
		}
	}
}

// ============================================================
// Random tests
// ============================================================

func TestRandom_Deterministic(t *testing.T) {
	a, b := scicalc.NewRandom(42), scicalc.NewRandom(42)
	for i := 0; i < 10; i++ {
		if a.Num() != b.Num() {
			t.Fatal("same seed should give the same sequence")
		}
	}
}

func TestRandomInt(t *testing.T) {
	r := scicalc.NewRandom(1)
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		v := r.Int(1, 6)
		if v < 1 || v > 6 || v != math.Trunc(v) {
			t.Fatalf("RandomInt(1,6) gave %v", v)
		}
		seen[v] = true
	}
	if len(seen) != 6 {
		t.Errorf("want all six faces over 1000 draws, saw %d", len(seen))
	}
	for i := 0; i < 100; i++ {
		if v := scicalc.RandomInt(1.2, 3.8); v < 2 || v > 3 {
			t.Fatalf("RandomInt(1.2, 3.8) gave %v", v)
		}
		if v := scicalc.RandomNum(); v < 0 || v >= 1 {
			t.Fatalf("RandomNum gave %v", v)
		}
	}
	if !scicalc.IsUndefined(scicalc.RandomInt(5, 1)) {
		t.Error("empty range should be undefined")
	}
}

// ============================================================
// Tool interface tests
// ============================================================

func call(tool string, params map[string]interface{}) scicalc.ToolResponse {
	return scicalc.HandleToolCall(scicalc.ToolRequest{Tool: tool, Params: params})
}

func TestHandleToolCall(t *testing.T) {
	tests := []struct {
		tool   string
		params map[string]interface{}
		want   string
	}{
		{"evaluate", map[string]interface{}{"expr": "2 ** 3 ** 2"}, "512"},
		{"evaluate", map[string]interface{}{"expr": "12345", "engineering": true}, "12.345×10^3"},
		{"format", map[string]interface{}{"value": 1.0 / 3}, "0.3333333333"},
		{"factorial", map[string]interface{}{"n": 5.0}, "120"},
		{"npr", map[string]interface{}{"n": 5.0, "r": 2.0}, "20"},
		{"ncr", map[string]interface{}{"n": 5.0, "r": 2.0}, "10"},
		{"gcd", map[string]interface{}{"a": 12.0, "b": 18.0}, "6"},
		{"lcm", map[string]interface{}{"a": 4.0, "b": 6.0}, "12"},
		{"mod", map[string]interface{}{"a": -1.0, "b": 3.0}, "2"},
		{"nth_root", map[string]interface{}{"x": 27.0, "n": 3.0}, "3"},
		{"to_polar", map[string]interface{}{"x": 0.0, "y": 2.0, "degrees": true}, "r = 2, θ = 90"},
		{"to_rect", map[string]interface{}{"r": 2.0, "theta": 0.0}, "x = 2, y = 0"},
		{"dec_to_dms", map[string]interface{}{"value": 30.5}, `30°30'0"`},
		{"dms_to_dec", map[string]interface{}{"d": 30.0, "m": 30.0, "s": 0.0}, "30.5"},
		{"integrate", map[string]interface{}{"expr": "x ** 2", "a": 0.0, "b": 3.0}, "9"},
		{"summation", map[string]interface{}{"expr": "x", "start": 1.0, "end": 100.0}, "5050"},
		{"product", map[string]interface{}{"expr": "x", "start": 1.0, "end": 5.0}, "120"},
		{"solve_quadratic", map[string]interface{}{"a": 1.0, "b": -3.0, "c": 2.0}, "2, 1 (discriminant 1)"},
		{"solve_cubic", map[string]interface{}{"a": 1.0, "b": -6.0, "c": 11.0, "d": -6.0}, "3, 1, 2"},
		{"solve_linear2", map[string]interface{}{"a1": 1.0, "b1": 1.0, "c1": 3.0, "a2": 1.0, "b2": -1.0, "c2": 1.0}, "x = 2, y = 1"},
		{"solve_linear3", map[string]interface{}{"rows": []interface{}{
			[]interface{}{1.0, 1.0, 1.0, 6.0},
			[]interface{}{0.0, 2.0, 5.0, -4.0},
			[]interface{}{2.0, 5.0, -1.0, 27.0},
		}}, "x = 5, y = 3, z = -2"},
		{"to_base", map[string]interface{}{"value": 255.0, "base": "HEX"}, "FF"},
		{"from_base", map[string]interface{}{"value": "1010", "base": "bin"}, "10"},
		{"random_int", map[string]interface{}{"a": 3.0, "b": 3.0}, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			resp := call(tt.tool, tt.params)
			if resp.Error != "" {
				t.Fatalf("unexpected error: %s (%s)", resp.Error, resp.Kind)
			}
			if resp.String != tt.want {
				t.Errorf("want %q, got %q", tt.want, resp.String)
			}
		})
	}
}

func TestHandleToolCall_Derivative(t *testing.T) {
	resp := call("derivative", map[string]interface{}{"expr": "x ** 2", "x": 3.0})
	v, ok := resp.Result.(float64)
	if !ok || !approx(v, 6, 1e-5) {
		t.Errorf("want ≈6, got %v (%s)", resp.Result, resp.Error)
	}
}

func TestHandleToolCall_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		params map[string]interface{}
		kind   string
	}{
		{"lex", "evaluate", map[string]interface{}{"expr": "2 $ 3"}, "lex"},
		{"parse", "evaluate", map[string]interface{}{"expr": "(1"}, "parse"},
		{"singularity", "evaluate_strict", map[string]interface{}{"expr": "1/0"}, "singularity"},
		{"non finite", "evaluate", map[string]interface{}{"expr": "1/0"}, "non_finite"},
		{"undefined factorial", "factorial", map[string]interface{}{"n": -1.0}, "non_finite"},
		{"missing param", "gcd", map[string]interface{}{"a": 1.0}, "params"},
		{"wrong type", "factorial", map[string]interface{}{"n": "five"}, "params"},
		{"bad base", "to_base", map[string]interface{}{"value": 1.0, "base": "B64"}, "params"},
		{"bad rows", "solve_linear3", map[string]interface{}{"rows": []interface{}{1.0}}, "params"},
		{"too many terms", "summation", map[string]interface{}{"expr": "x", "start": 0.0, "end": 1e9}, "params"},
		{"bad function", "integrate", map[string]interface{}{"expr": "foo(x)", "a": 0.0, "b": 1.0}, "lex"},
		{"no unique solution", "solve_linear2", map[string]interface{}{"a1": 1.0, "b1": 1.0, "c1": 1.0, "a2": 2.0, "b2": 2.0, "c2": 2.0}, "singularity"},
		{"unknown tool", "nope", nil, "tool"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(tt.tool, tt.params)
			if resp.Error == "" {
				t.Fatalf("want an error, got %+v", resp)
			}
			if resp.Kind != tt.kind {
				t.Errorf("want kind %s, got %s (%s)", tt.kind, resp.Kind, resp.Error)
			}
		})
	}
}

func TestToolSpec(t *testing.T) {
	var spec struct {
		Tools []struct {
			Name        string                 `json:"name"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal([]byte(scicalc.ToolSpec()), &spec); err != nil {
		t.Fatalf("ToolSpec is not valid JSON: %v", err)
	}
	if len(spec.Tools) != 27 {
		t.Errorf("want 27 tools, got %d", len(spec.Tools))
	}
	for _, tool := range spec.Tools {
		if tool.Name == "tool_spec" {
			continue
		}
		resp := call(tool.Name, nil)
		if strings.HasPrefix(resp.Error, "unknown tool") {
			t.Errorf("%s is in the schema but not dispatched", tool.Name)
		}
	}
}
