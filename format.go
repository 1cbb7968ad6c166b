package scicalc

import (
	"fmt"
	"math"
	"strconv"
)

// ErrorText is what a calculator display shows for an undefined or
// infinite result.
const ErrorText = "Error"

const (
	smallThreshold = 1e-10
	largeThreshold = 1e10
)

// FormatResult renders a value for display:
//   - NaN or ±Inf → ErrorText
//   - engineering → ToEngNotation
//   - nonzero |v| < 1e-10 or |v| > 1e10 → exponential, 6 fractional digits
//   - otherwise the value rounded to 1e-10 in plain decimal
func FormatResult(v float64, engineering bool) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	if engineering {
		return ToEngNotation(v)
	}
	abs := math.Abs(v)
	if (abs < smallThreshold && v != 0) || abs > largeThreshold {
		return strconv.FormatFloat(v, 'e', 6, 64)
	}
	return formatPlain(v)
}

// ToEngNotation renders v as m×10^e with e a multiple of 3 and m rounded
// to 1e-10. A zero exponent drops the suffix; 0 renders as "0".
func ToEngNotation(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	exp := math.Floor(math.Log10(math.Abs(v)))
	engExp := int(math.Floor(exp/3) * 3)
	mantissa := v / math.Pow(10, float64(engExp))
	if engExp == 0 {
		return formatPlain(mantissa)
	}
	return fmt.Sprintf("%s×10^%d", formatPlain(mantissa), engExp)
}
