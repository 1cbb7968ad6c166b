package scicalc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ============================================================
// JSON tool interface
// ============================================================

// ToolRequest is a single tool invocation. Params hold decoded JSON values:
// numbers arrive as float64, arrays as []interface{}.
type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

// ToolResponse carries either a Result with its display String, or an
// Error. Kind names the error class ("lex", "parse", "domain",
// "singularity", "non_finite", "params" or "tool").
type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
	Kind   string      `json:"kind,omitempty"`
}

// MaxToolIterations bounds the work a single summation, product or
// integration request may ask for.
const MaxToolIterations = 1_000_000

// Kind values that do not come from the evaluator.
const (
	ToolKindParams = "params"
	ToolKindTool   = "tool"
)

// HandleToolCall dispatches req to the calculator operation it names.
// It never panics on malformed params; they come back as a "params" error.
func HandleToolCall(req ToolRequest) ToolResponse {
	p := toolParams(req.Params)

	fail := func(err error) ToolResponse {
		var perr paramError
		if errors.As(err, &perr) {
			return ToolResponse{Error: err.Error(), Kind: ToolKindParams}
		}
		if k := KindOf(err); k != 0 {
			return ToolResponse{Error: err.Error(), Kind: k.String()}
		}
		return ToolResponse{Error: err.Error(), Kind: ToolKindTool}
	}
	number := func(v float64) ToolResponse {
		if err := Check(v); err != nil {
			return ToolResponse{String: ErrorText, Error: err.Error(), Kind: KindNonFinite.String()}
		}
		return ToolResponse{Result: v, String: FormatResult(v, p.boolOr("engineering", false))}
	}
	equation := func(r EquationResult) ToolResponse {
		if err := r.Err(); err != nil {
			return fail(err)
		}
		return ToolResponse{Result: r, String: r.String()}
	}
	mode := func() AngleMode {
		if p.boolOr("degrees", false) {
			return Degrees
		}
		return Radians
	}

	switch req.Tool {
	case "evaluate", "evaluate_strict":
		expr, err := p.str("expr")
		if err != nil {
			return fail(err)
		}
		eval := Evaluate
		if req.Tool == "evaluate_strict" {
			eval = EvaluateStrict
		}
		v, err := eval(expr)
		if err != nil {
			return fail(err)
		}
		return number(v)

	case "format":
		v, err := p.num("value")
		if err != nil {
			return fail(err)
		}
		s := FormatResult(v, p.boolOr("engineering", false))
		return ToolResponse{Result: s, String: s}

	case "factorial":
		n, err := p.num("n")
		if err != nil {
			return fail(err)
		}
		return number(Factorial(n))

	case "npr", "ncr":
		n, r, err := p.pair("n", "r")
		if err != nil {
			return fail(err)
		}
		if req.Tool == "npr" {
			return number(Permutations(n, r))
		}
		return number(Combinations(n, r))

	case "gcd", "lcm", "mod":
		a, b, err := p.pair("a", "b")
		if err != nil {
			return fail(err)
		}
		switch req.Tool {
		case "gcd":
			return number(GCD(a, b))
		case "lcm":
			return number(LCM(a, b))
		}
		return number(Mod(a, b))

	case "nth_root":
		x, n, err := p.pair("x", "n")
		if err != nil {
			return fail(err)
		}
		return number(NthRoot(x, n))

	case "to_polar":
		x, y, err := p.pair("x", "y")
		if err != nil {
			return fail(err)
		}
		pol := ToPolar(x, y, mode())
		return ToolResponse{Result: pol, String: fmt.Sprintf("r = %s, θ = %s", formatPlain(pol.R), formatPlain(pol.Theta))}

	case "to_rect":
		r, theta, err := p.pair("r", "theta")
		if err != nil {
			return fail(err)
		}
		rect := ToRect(r, theta, mode())
		return ToolResponse{Result: rect, String: fmt.Sprintf("x = %s, y = %s", formatPlain(rect.X), formatPlain(rect.Y))}

	case "dec_to_dms":
		v, err := p.num("value")
		if err != nil {
			return fail(err)
		}
		dms := DecToDMS(v)
		return ToolResponse{Result: dms, String: dms.String()}

	case "dms_to_dec":
		d, m, err := p.pair("d", "m")
		if err != nil {
			return fail(err)
		}
		s, err := p.num("s")
		if err != nil {
			return fail(err)
		}
		return number(DMSToDec(d, m, s))

	case "integrate", "derivative", "summation", "product":
		return calculusTool(req.Tool, p, fail, number)

	case "solve_quadratic":
		c, err := p.nums("a", "b", "c")
		if err != nil {
			return fail(err)
		}
		return equation(SolveQuadratic(c[0], c[1], c[2]))

	case "solve_cubic":
		c, err := p.nums("a", "b", "c", "d")
		if err != nil {
			return fail(err)
		}
		return equation(SolveCubic(c[0], c[1], c[2], c[3]))

	case "solve_linear2":
		c, err := p.nums("a1", "b1", "c1", "a2", "b2", "c2")
		if err != nil {
			return fail(err)
		}
		return equation(SolveLinear2(c[0], c[1], c[2], c[3], c[4], c[5]))

	case "solve_linear3":
		rows, err := p.rows("rows")
		if err != nil {
			return fail(err)
		}
		return equation(SolveLinear3(rows))

	case "to_base":
		v, err := p.num("value")
		if err != nil {
			return fail(err)
		}
		b, err := p.base("base")
		if err != nil {
			return fail(err)
		}
		s := ToBase(v, b)
		return ToolResponse{Result: s, String: s}

	case "from_base":
		s, err := p.str("value")
		if err != nil {
			return fail(err)
		}
		b, err := p.base("base")
		if err != nil {
			return fail(err)
		}
		return number(FromBase(s, b))

	case "random":
		return number(RandomNum())

	case "random_int":
		a, b, err := p.pair("a", "b")
		if err != nil {
			return fail(err)
		}
		return number(RandomInt(a, b))

	case "tool_spec":
		return ToolResponse{Result: ToolSpec(), String: "calculator tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool), Kind: ToolKindTool}
}

func calculusTool(tool string, p toolParams, fail func(error) ToolResponse, number func(float64) ToolResponse) ToolResponse {
	expr, err := p.str("expr")
	if err != nil {
		return fail(err)
	}
	f, err := MakeFunction(expr)
	if err != nil {
		return fail(err)
	}

	switch tool {
	case "integrate":
		a, b, err := p.pair("a", "b")
		if err != nil {
			return fail(err)
		}
		n := p.numOr("n", SimpsonIntervals)
		if n > MaxToolIterations {
			return fail(paramErrorf("n exceeds %d", MaxToolIterations))
		}
		return number(IntegrateN(f, a, b, int(n)))
	case "derivative":
		x, err := p.num("x")
		if err != nil {
			return fail(err)
		}
		return number(Derivative(f, x))
	}

	start, end, err := p.pair("start", "end")
	if err != nil {
		return fail(err)
	}
	if end-start > MaxToolIterations {
		return fail(paramErrorf("range [%g, %g] exceeds %d terms", start, end, MaxToolIterations))
	}
	if tool == "summation" {
		return number(Summation(f, int(start), int(end)))
	}
	return number(Product(f, int(start), int(end)))
}

// ============================================================
// Param decoding
// ============================================================

type paramError struct{ msg string }

func (e paramError) Error() string { return e.msg }

func paramErrorf(format string, args ...interface{}) error {
	return paramError{msg: fmt.Sprintf(format, args...)}
}

type toolParams map[string]interface{}

func (p toolParams) num(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, paramErrorf("missing param: %s", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, paramErrorf("param %s must be a number", key)
	}
	return f, nil
}

func (p toolParams) numOr(key string, def float64) float64 {
	if f, err := p.num(key); err == nil {
		return f
	}
	return def
}

func (p toolParams) nums(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := p.num(k)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (p toolParams) pair(k1, k2 string) (float64, float64, error) {
	v, err := p.nums(k1, k2)
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

func (p toolParams) str(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", paramErrorf("missing param: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", paramErrorf("param %s must be a string", key)
	}
	return s, nil
}

func (p toolParams) boolOr(key string, def bool) bool {
	if b, ok := p[key].(bool); ok {
		return b
	}
	return def
}

func (p toolParams) base(key string) (Base, error) {
	s, err := p.str(key)
	if err != nil {
		return "", err
	}
	b, err := ParseBase(s)
	if err != nil {
		return "", paramError{msg: err.Error()}
	}
	return b, nil
}

func (p toolParams) rows(key string) ([3][4]float64, error) {
	var out [3][4]float64
	raw, ok := p[key].([]interface{})
	if !ok || len(raw) != 3 {
		return out, paramErrorf("param %s must be an array of 3 rows", key)
	}
	for i, r := range raw {
		row, ok := r.([]interface{})
		if !ok || len(row) != 4 {
			return out, paramErrorf("param %s[%d] must be an array of 4 numbers", key, i)
		}
		for j, v := range row {
			f, ok := v.(float64)
			if !ok {
				return out, paramErrorf("param %s[%d][%d] must be a number", key, i, j)
			}
			out[i][j] = f
		}
	}
	return out, nil
}

// ============================================================
// Tool schema
// ============================================================

// ToolSpec returns the JSON schema of every tool HandleToolCall accepts.
func ToolSpec() string {
	fn := map[string]string{"expr": "string"}
	tools := []map[string]interface{}{
		ts("evaluate", "Evaluate an arithmetic expression (+ - * / ** and parentheses, PI, E, LN2, LN10)", []string{"expr"}, map[string]string{"expr": "string", "engineering": "boolean"}),
		ts("evaluate_strict", "Evaluate with domain, singularity and non-finite errors reported", []string{"expr"}, map[string]string{"expr": "string", "engineering": "boolean"}),
		ts("format", "Format a number for display", []string{"value"}, map[string]string{"value": "number", "engineering": "boolean"}),
		ts("factorial", "n! for non-negative integers", []string{"n"}, map[string]string{"n": "number"}),
		ts("npr", "Permutations n!/(n-r)!", []string{"n", "r"}, map[string]string{"n": "number", "r": "number"}),
		ts("ncr", "Combinations n!/(r!(n-r)!)", []string{"n", "r"}, map[string]string{"n": "number", "r": "number"}),
		ts("gcd", "Greatest common divisor", []string{"a", "b"}, map[string]string{"a": "number", "b": "number"}),
		ts("lcm", "Least common multiple", []string{"a", "b"}, map[string]string{"a": "number", "b": "number"}),
		ts("mod", "True modulo with the sign of b", []string{"a", "b"}, map[string]string{"a": "number", "b": "number"}),
		ts("nth_root", "Real n-th root", []string{"x", "n"}, map[string]string{"x": "number", "n": "number"}),
		ts("to_polar", "Rectangular to polar. Optional: degrees", []string{"x", "y"}, map[string]string{"x": "number", "y": "number", "degrees": "boolean"}),
		ts("to_rect", "Polar to rectangular. Optional: degrees", []string{"r", "theta"}, map[string]string{"r": "number", "theta": "number", "degrees": "boolean"}),
		ts("dec_to_dms", "Decimal angle to degrees, minutes, seconds", []string{"value"}, map[string]string{"value": "number"}),
		ts("dms_to_dec", "Degrees, minutes, seconds to decimal angle", []string{"d", "m", "s"}, map[string]string{"d": "number", "m": "number", "s": "number"}),
		ts("integrate", "Simpson's rule ∫_a^b f(x) dx. Optional: n", []string{"expr", "a", "b"}, merge(fn, map[string]string{"a": "number", "b": "number", "n": "integer"})),
		ts("derivative", "Central-difference f'(x)", []string{"expr", "x"}, merge(fn, map[string]string{"x": "number"})),
		ts("summation", "Σ f(i) for i in [start, end]", []string{"expr", "start", "end"}, merge(fn, map[string]string{"start": "integer", "end": "integer"})),
		ts("product", "Π f(i) for i in [start, end]", []string{"expr", "start", "end"}, merge(fn, map[string]string{"start": "integer", "end": "integer"})),
		ts("solve_quadratic", "Solve a*x²+b*x+c=0", []string{"a", "b", "c"}, map[string]string{"a": "number", "b": "number", "c": "number"}),
		ts("solve_cubic", "Solve a*x³+b*x²+c*x+d=0 (Cardano)", []string{"a", "b", "c", "d"}, map[string]string{"a": "number", "b": "number", "c": "number", "d": "number"}),
		ts("solve_linear2", "2×2 linear system: a1*x+b1*y=c1, a2*x+b2*y=c2", []string{"a1", "b1", "c1", "a2", "b2", "c2"}, map[string]string{}),
		ts("solve_linear3", "3×3 linear system as rows [[a,b,c,d],...]", []string{"rows"}, map[string]string{"rows": "array"}),
		ts("to_base", "Render floor(|value|) in DEC, HEX, OCT or BIN", []string{"value", "base"}, map[string]string{"value": "number", "base": "string"}),
		ts("from_base", "Parse an integer string in DEC, HEX, OCT or BIN", []string{"value", "base"}, map[string]string{"value": "string", "base": "string"}),
		ts("random", "Uniform random number in [0, 1)", []string{}, map[string]string{}),
		ts("random_int", "Uniform random integer in [ceil(a), floor(b)]", []string{"a", "b"}, map[string]string{"a": "number", "b": "number"}),
		ts("tool_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

func merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
