package scicalc

// ============================================================
// Numeric calculus
// ============================================================

const (
	// SimpsonIntervals is the default subinterval count for Integrate.
	SimpsonIntervals = 1000

	// DerivativeStep is the central-difference step used by Derivative.
	DerivativeStep = 1e-8
)

// Integrate approximates ∫f over [a, b] with composite Simpson's rule on
// SimpsonIntervals subintervals. a = b gives 0.
func Integrate(f NumericFunc, a, b float64) float64 {
	return IntegrateN(f, a, b, SimpsonIntervals)
}

// IntegrateN is Integrate with n subintervals. Odd n is raised to the next
// even number; n <= 0 uses SimpsonIntervals.
func IntegrateN(f NumericFunc, a, b float64, n int) float64 {
	if a == b {
		return 0
	}
	if n <= 0 {
		n = SimpsonIntervals
	}
	if n%2 != 0 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		w := 4.0
		if i%2 == 0 {
			w = 2
		}
		sum += w * f(a+float64(i)*h)
	}
	return h / 3 * sum
}

// Derivative approximates f'(x) with a central difference.
func Derivative(f NumericFunc, x float64) float64 {
	h := DerivativeStep
	return (f(x+h) - f(x-h)) / (2 * h)
}

// Summation returns Σ f(i) for i from start to end inclusive, or 0 when
// start > end.
func Summation(f NumericFunc, start, end int) float64 {
	sum := 0.0
	for i := start; i <= end; i++ {
		sum += f(float64(i))
	}
	return sum
}

// Product returns Π f(i) for i from start to end inclusive, or 1 when
// start > end.
func Product(f NumericFunc, start, end int) float64 {
	prod := 1.0
	for i := start; i <= end; i++ {
		prod *= f(float64(i))
	}
	return prod
}
