package scicalc

import (
	"math"
	"math/rand/v2"
)

// Random draws calculator random numbers from its own source. A Random is
// not safe for concurrent use; the package-level functions are.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a Random seeded deterministically.
func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Num returns a uniform value in [0, 1).
func (r *Random) Num() float64 { return r.r.Float64() }

// Int returns a uniform integer in [ceil(a), floor(b)].
func (r *Random) Int(a, b float64) float64 { return randomInt(r.r.Float64, a, b) }

// RandomNum returns a uniform value in [0, 1).
func RandomNum() float64 { return rand.Float64() }

// RandomInt returns a uniform integer in [ceil(a), floor(b)]. An empty
// range is undefined (NaN).
func RandomInt(a, b float64) float64 { return randomInt(rand.Float64, a, b) }

func randomInt(next func() float64, a, b float64) float64 {
	lo, hi := math.Ceil(a), math.Floor(b)
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return math.NaN()
	}
	return math.Floor(next()*(hi-lo+1)) + lo
}
