package scicalc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Solvers
// ============================================================

// EquationKind tags the variant held by an EquationResult.
type EquationKind int

const (
	ResultRoots EquationKind = iota
	ResultPoint
	ResultFailure
)

func (k EquationKind) String() string {
	switch k {
	case ResultRoots:
		return "roots"
	case ResultPoint:
		return "point"
	case ResultFailure:
		return "failure"
	}
	return "unknown"
}

// MarshalJSON encodes the kind by name.
func (k EquationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Root is a real or complex root. Im is zero for real roots.
type Root struct {
	Re float64
	Im float64
}

// IsReal reports whether r has no imaginary part.
func (r Root) IsReal() bool { return r.Im == 0 }

// String renders a real root as a number and a complex root as "a + bi"
// or "a - bi".
func (r Root) String() string {
	if r.IsReal() {
		return formatPlain(r.Re)
	}
	op := "+"
	if r.Im < 0 {
		op = "-"
	}
	return fmt.Sprintf("%s %s %si", formatPlain(r.Re), op, formatPlain(math.Abs(r.Im)))
}

// MarshalJSON encodes real roots as numbers and complex roots as strings.
func (r Root) MarshalJSON() ([]byte, error) {
	if r.IsReal() {
		return json.Marshal(r.Re)
	}
	return json.Marshal(r.String())
}

// EquationResult is the outcome of a solver. Exactly one of Roots, Point
// or Reason is meaningful, as selected by Kind. Every number is rounded to
// 1e-10.
type EquationResult struct {
	Kind         EquationKind `json:"kind"`
	Roots        []Root       `json:"roots,omitempty"`
	Discriminant *float64     `json:"discriminant,omitempty"`
	Point        []float64    `json:"point,omitempty"`
	Reason       string       `json:"reason,omitempty"`
}

// OK reports whether the solver produced roots or a point.
func (r EquationResult) OK() bool { return r.Kind != ResultFailure }

// Err returns a singularity error for a failed result, nil otherwise.
func (r EquationResult) Err() error {
	if r.OK() {
		return nil
	}
	return newError(KindSingularity, CodeZeroDeterminant, 0, "%s", r.Reason)
}

func (r EquationResult) String() string {
	switch r.Kind {
	case ResultFailure:
		return r.Reason
	case ResultPoint:
		names := []string{"x", "y", "z"}
		parts := make([]string, len(r.Point))
		for i, v := range r.Point {
			parts[i] = names[i] + " = " + formatPlain(v)
		}
		return strings.Join(parts, ", ")
	}
	parts := make([]string, len(r.Roots))
	for i, root := range r.Roots {
		parts[i] = root.String()
	}
	s := strings.Join(parts, ", ")
	if r.Discriminant != nil {
		s += " (discriminant " + formatPlain(*r.Discriminant) + ")"
	}
	return s
}

func rootsResult(disc *float64, values ...float64) EquationResult {
	roots := make([]Root, len(values))
	for i, v := range values {
		roots[i] = Root{Re: round10(v)}
	}
	return EquationResult{Kind: ResultRoots, Roots: roots, Discriminant: disc}
}

func failure(reason string) EquationResult {
	return EquationResult{Kind: ResultFailure, Reason: reason}
}

func discriminant(d float64) *float64 {
	d = round10(d)
	return &d
}

// SolveQuadratic solves ax² + bx + c = 0. a = 0 falls back to the linear
// root -c/b; a = b = 0 has no solution. Complex roots come back as a
// conjugate pair.
func SolveQuadratic(a, b, c float64) EquationResult {
	if a == 0 {
		if b == 0 {
			return failure("No solution")
		}
		return rootsResult(nil, -c/b)
	}

	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		return rootsResult(discriminant(disc), (-b+sq)/(2*a), (-b-sq)/(2*a))
	case disc == 0:
		return rootsResult(discriminant(disc), -b/(2*a))
	}

	re := round10(-b / (2 * a))
	im := round10(math.Abs(math.Sqrt(-disc) / (2 * a)))
	return EquationResult{
		Kind:         ResultRoots,
		Roots:        []Root{{Re: re, Im: im}, {Re: re, Im: -im}},
		Discriminant: discriminant(disc),
	}
}

// SolveCubic solves ax³ + bx² + cx + d = 0 through the depressed cubic
// t³ + pt + q = 0. a = 0 delegates to SolveQuadratic.
//
// With Δ = q²/4 + p³/27: Δ > 0 gives one real root and a complex pair,
// Δ = 0 repeated real roots, Δ < 0 three real roots by the trigonometric
// method.
func SolveCubic(a, b, c, d float64) EquationResult {
	if a == 0 {
		return SolveQuadratic(b, c, d)
	}

	p := (3*a*c - b*b) / (3 * a * a)
	q := (2*b*b*b - 9*a*b*c + 27*a*a*d) / (27 * a * a * a)
	offset := -b / (3 * a)
	disc := q*q/4 + p*p*p/27

	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		re := round10(-(u+v)/2 + offset)
		im := round10(math.Abs(math.Sqrt(3) / 2 * (u - v)))
		return EquationResult{
			Kind:  ResultRoots,
			Roots: []Root{{Re: round10(u + v + offset)}, {Re: re, Im: im}, {Re: re, Im: -im}},
		}
	case disc == 0:
		u := math.Cbrt(-q / 2)
		return rootsResult(nil, 2*u+offset, -u+offset)
	}

	r := math.Sqrt(-p * p * p / 27)
	cosArg := math.Max(-1, math.Min(1, -q/(2*r)))
	theta := math.Acos(cosArg)
	m := 2 * math.Cbrt(r)
	return rootsResult(nil,
		m*math.Cos(theta/3)+offset,
		m*math.Cos((theta+2*math.Pi)/3)+offset,
		m*math.Cos((theta+4*math.Pi)/3)+offset,
	)
}

// SolveLinear2 solves
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by Cramer's rule.
func SolveLinear2(a1, b1, c1, a2, b2, c2 float64) EquationResult {
	det := a1*b2 - a2*b1
	if det == 0 {
		return failure("No unique solution")
	}
	x := (c1*b2 - c2*b1) / det
	y := (a1*c2 - a2*c1) / det
	return EquationResult{Kind: ResultPoint, Point: []float64{round10(x), round10(y)}}
}

// SolveLinear3 solves a 3×3 system given as augmented rows
// [a, b, c, d] meaning a·x + b·y + c·z = d, by Cramer's rule.
func SolveLinear3(rows [3][4]float64) EquationResult {
	det := det3(rows, -1)
	if det == 0 {
		return failure("No unique solution")
	}
	point := make([]float64, 3)
	for col := range point {
		point[col] = round10(det3(rows, col) / det)
	}
	return EquationResult{Kind: ResultPoint, Point: point}
}

// det3 is the determinant of the coefficient matrix, with column replace
// swapped for the constants when replace >= 0.
func det3(rows [3][4]float64, replace int) float64 {
	var m [3][3]float64
	for i, row := range rows {
		for j := 0; j < 3; j++ {
			m[i][j] = row[j]
			if j == replace {
				m[i][j] = row[3]
			}
		}
	}
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// round10 rounds to 10 decimal places, half up, and normalizes -0 to 0.
func round10(v float64) float64 {
	if math.IsNaN(v) || math.Abs(v) >= 1e15 {
		return v
	}
	r := roundHalfUp(v*1e10) / 1e10
	if r == 0 {
		return 0
	}
	return r
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(round10(v), 'f', -1, 64)
}
