package scicalc

import "math"

// ============================================================
// Combinatorics and number theory
// ============================================================
//
// Functions here return NaN ("undefined") outside their domain instead of
// an error, so callers can map every failure to one display state.

// MaxFactorial is the largest n whose factorial is finite in float64.
const MaxFactorial = 170

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Factorial returns n! for non-negative integers. Negative or fractional n
// is undefined; n above MaxFactorial is +Inf.
func Factorial(n float64) float64 {
	if n < 0 || !isInteger(n) {
		return math.NaN()
	}
	if n > MaxFactorial {
		return math.Inf(1)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// Permutations returns nPr = n!/(n-r)! for integers 0 <= r <= n.
func Permutations(n, r float64) float64 {
	if !validChoose(n, r) {
		return math.NaN()
	}
	return Factorial(n) / Factorial(n-r)
}

// Combinations returns nCr = n!/(r!(n-r)!) for integers 0 <= r <= n.
func Combinations(n, r float64) float64 {
	if !validChoose(n, r) {
		return math.NaN()
	}
	return Factorial(n) / (Factorial(r) * Factorial(n-r))
}

func validChoose(n, r float64) bool {
	return n >= 0 && r >= 0 && r <= n && isInteger(n) && isInteger(r)
}

// GCD returns the greatest common divisor of a and b after rounding both
// to integers and taking absolute values.
func GCD(a, b float64) float64 {
	a = math.Abs(roundHalfUp(a))
	b = math.Abs(roundHalfUp(b))
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}

// LCM returns the least common multiple of a and b, rounded and made
// non-negative like GCD. Either operand being zero gives 0.
func LCM(a, b float64) float64 {
	a = math.Abs(roundHalfUp(a))
	b = math.Abs(roundHalfUp(b))
	if a == 0 || b == 0 {
		return 0
	}
	return a * b / GCD(a, b)
}

// Mod is the true modulo: the result has the sign of b, so Mod(-1, 3) is 2.
// b = 0 is undefined.
func Mod(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return math.Mod(math.Mod(a, b)+b, b)
}

// NthRoot returns the real n-th root of x, keeping the sign of x. n = 0 and
// even roots of negative numbers are undefined.
func NthRoot(x, n float64) float64 {
	if n == 0 {
		return math.NaN()
	}
	if x < 0 && math.Mod(n, 2) == 0 {
		return math.NaN()
	}
	s := 1.0
	if x < 0 {
		s = -1
	}
	return s * math.Pow(math.Abs(x), 1/n)
}

func isInteger(v float64) bool {
	return !math.IsInf(v, 0) && v == math.Trunc(v)
}
