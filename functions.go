package scicalc

import "math"

// function is a whitelisted one-argument math function. domain, when set,
// reports whether x is inside the function's real domain; it is consulted
// only by strict evaluation.
type function struct {
	fn     func(float64) float64
	domain func(float64) bool
}

var functions = map[string]function{
	"sin":   {fn: math.Sin},
	"cos":   {fn: math.Cos},
	"tan":   {fn: math.Tan},
	"asin":  {fn: math.Asin, domain: unitInterval},
	"acos":  {fn: math.Acos, domain: unitInterval},
	"atan":  {fn: math.Atan},
	"sinh":  {fn: math.Sinh},
	"cosh":  {fn: math.Cosh},
	"tanh":  {fn: math.Tanh},
	"asinh": {fn: math.Asinh},
	"acosh": {fn: math.Acosh, domain: func(x float64) bool { return x >= 1 }},
	"atanh": {fn: math.Atanh, domain: func(x float64) bool { return x > -1 && x < 1 }},
	"sqrt":  {fn: math.Sqrt, domain: func(x float64) bool { return x >= 0 }},
	"cbrt":  {fn: math.Cbrt},
	"abs":   {fn: math.Abs},
	"floor": {fn: math.Floor},
	"ceil":  {fn: math.Ceil},
	"round": {fn: roundHalfUp},
	"log":   {fn: math.Log, domain: positive},
	"log10": {fn: math.Log10, domain: positive},
	"log2":  {fn: math.Log2, domain: positive},
	"exp":   {fn: math.Exp},
	"sign":  {fn: sign},
}

// FunctionNames returns the whitelisted function names in no particular order.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	return names
}

func unitInterval(x float64) bool { return x >= -1 && x <= 1 }

func positive(x float64) bool { return x > 0 }

// roundHalfUp rounds halves toward positive infinity, so round(-2.5) is -2.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x + 0.5)
}

// sign returns -1, 0 or 1, preserving the sign of zero and propagating NaN.
func sign(x float64) float64 {
	switch {
	case math.IsNaN(x), x == 0:
		return x
	case x > 0:
		return 1
	default:
		return -1
	}
}
