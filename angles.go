package scicalc

import (
	"fmt"
	"math"
	"strconv"
)

// AngleMode selects how angles are read and reported.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "deg"
	}
	return "rad"
}

// ParseAngleMode accepts "rad", "radians", "deg" and "degrees".
func ParseAngleMode(s string) (AngleMode, error) {
	switch s {
	case "rad", "radians", "RAD", "Rad":
		return Radians, nil
	case "deg", "degrees", "DEG", "Deg":
		return Degrees, nil
	}
	return Radians, fmt.Errorf("unknown angle mode %q", s)
}

func (m AngleMode) toRadians(theta float64) float64 {
	if m == Degrees {
		return theta * math.Pi / 180
	}
	return theta
}

func (m AngleMode) fromRadians(theta float64) float64 {
	if m == Degrees {
		return theta * 180 / math.Pi
	}
	return theta
}

// ============================================================
// Polar and rectangular coordinates
// ============================================================

// Polar is a point in polar form. Theta is in the mode it was requested in.
type Polar struct {
	R     float64 `json:"r"`
	Theta float64 `json:"theta"`
}

// Rect is a point in rectangular form.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ToPolar converts (x, y) to (r, θ), θ = atan2(y, x).
func ToPolar(x, y float64, mode AngleMode) Polar {
	return Polar{
		R:     math.Sqrt(x*x + y*y),
		Theta: mode.fromRadians(math.Atan2(y, x)),
	}
}

// ToRect converts (r, θ) to (x, y).
func ToRect(r, theta float64, mode AngleMode) Rect {
	theta = mode.toRadians(theta)
	return Rect{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// ============================================================
// Degrees, minutes, seconds
// ============================================================

// DMS is an angle in degrees, minutes and seconds. The sign applies to the
// whole angle, so -0°30' is Negative with Degrees 0.
type DMS struct {
	Negative bool    `json:"negative,omitempty"`
	Degrees  int     `json:"degrees"`
	Minutes  int     `json:"minutes"`
	Seconds  float64 `json:"seconds"`
}

// DecToDMS splits a decimal angle. Seconds are rounded to 3 decimals, and a
// rounding up to 60 carries into the minutes and degrees.
func DecToDMS(decimal float64) DMS {
	neg := decimal < 0
	decimal = math.Abs(decimal)
	d := math.Floor(decimal)
	minFloat := (decimal - d) * 60
	m := math.Floor(minFloat)
	s := roundHalfUp((minFloat-m)*60*1000) / 1000

	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		d++
	}
	return DMS{Negative: neg && (d != 0 || m != 0 || s != 0), Degrees: int(d), Minutes: int(m), Seconds: s}
}

// DMSToDec joins degrees, minutes and seconds. The sign is taken from d.
func DMSToDec(d, m, s float64) float64 {
	sign := 1.0
	if d < 0 {
		sign = -1
	}
	return sign * (math.Abs(d) + m/60 + s/3600)
}

// Decimal converts dms back to a decimal angle.
func (dms DMS) Decimal() float64 {
	v := float64(dms.Degrees) + float64(dms.Minutes)/60 + dms.Seconds/3600
	if dms.Negative {
		return -v
	}
	return v
}

func (dms DMS) String() string {
	sign := ""
	if dms.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%d'%s\"", sign, dms.Degrees, dms.Minutes, strconv.FormatFloat(dms.Seconds, 'f', -1, 64))
}

// FormatDMS renders a decimal angle as d°m's".
func FormatDMS(decimal float64) string {
	return DecToDMS(decimal).String()
}
