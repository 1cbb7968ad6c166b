package scicalc

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Base is a positional number base by display name.
type Base string

const (
	DEC Base = "DEC"
	HEX Base = "HEX"
	OCT Base = "OCT"
	BIN Base = "BIN"
)

// Radix returns the numeric radix. Unknown bases are treated as decimal.
func (b Base) Radix() int {
	switch b {
	case HEX:
		return 16
	case OCT:
		return 8
	case BIN:
		return 2
	}
	return 10
}

// ParseBase maps a base name, case-insensitively, to a Base.
func ParseBase(s string) (Base, error) {
	switch b := Base(strings.ToUpper(strings.TrimSpace(s))); b {
	case DEC, HEX, OCT, BIN:
		return b, nil
	}
	return "", fmt.Errorf("unknown base %q: want DEC, HEX, OCT or BIN", s)
}

// ToBase renders floor(|n|) in base b with uppercase digits. NaN and
// infinities have no digits and render as "NaN" and "Infinity".
func ToBase(n float64, b Base) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 0):
		return "Infinity"
	}
	i, _ := new(big.Float).SetFloat64(math.Floor(math.Abs(n))).Int(nil)
	return strings.ToUpper(i.Text(b.Radix()))
}

// FromBase parses s as an integer in base b. An optional leading sign is
// allowed; any other character that is not a digit of b, or an empty
// string, makes the result undefined (NaN).
func FromBase(s string, b Base) float64 {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return math.NaN()
	}
	radix := b.Radix()
	for _, r := range strings.ToLower(digits) {
		if digitValue(r) >= radix {
			return math.NaN()
		}
	}
	i, ok := new(big.Int).SetString(strings.ToLower(s), radix)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10
	}
	return math.MaxInt
}
