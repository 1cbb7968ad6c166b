package scicalc

import "math"

// Trig applies a trigonometric function in the given angle mode. sin, cos
// and tan read x in mode; asin, acos and atan report their result in mode.
func Trig(name string, x float64, mode AngleMode) (float64, error) {
	switch name {
	case "sin":
		return math.Sin(mode.toRadians(x)), nil
	case "cos":
		return math.Cos(mode.toRadians(x)), nil
	case "tan":
		return math.Tan(mode.toRadians(x)), nil
	case "asin", "acos":
		if !unitInterval(x) {
			return 0, newError(KindDomain, CodeOutOfDomain, 0, "%s(%g) is outside the domain", name, x)
		}
		if name == "asin" {
			return mode.fromRadians(math.Asin(x)), nil
		}
		return mode.fromRadians(math.Acos(x)), nil
	case "atan":
		return mode.fromRadians(math.Atan(x)), nil
	}
	return 0, newError(KindDomain, CodeOutOfDomain, 0, "unknown trigonometric function %q", name)
}

// UnaryOps lists the operations accepted by ApplyUnary.
var UnaryOps = []string{"%", "sqrt", "sq", "inv", "ln", "log10", "fact", "sin", "cos", "tan", "asin", "acos", "atan"}

// ApplyUnary applies a single-operand calculator key to x.
func ApplyUnary(op string, x float64, mode AngleMode) (float64, error) {
	switch op {
	case "%":
		return x / 100, nil
	case "sqrt":
		if x < 0 {
			return 0, newError(KindDomain, CodeOutOfDomain, 0, "sqrt(%g) is outside the domain", x)
		}
		return math.Sqrt(x), nil
	case "sq":
		return x * x, nil
	case "inv":
		if x == 0 {
			return 0, newError(KindSingularity, CodeDivisionByZero, 0, "1/0")
		}
		return 1 / x, nil
	case "ln", "log10":
		if x <= 0 {
			return 0, newError(KindDomain, CodeOutOfDomain, 0, "%s(%g) is outside the domain", op, x)
		}
		if op == "ln" {
			return math.Log(x), nil
		}
		return math.Log10(x), nil
	case "fact":
		v := Factorial(x)
		if IsUndefined(v) {
			return 0, newError(KindDomain, CodeOutOfDomain, 0, "factorial of %g is undefined", x)
		}
		return v, nil
	}
	return Trig(op, x, mode)
}
