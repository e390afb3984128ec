package testutil

import (
	"math"
	"math/rand"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n < 2 yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// UnitSteps returns steps+1 drive coordinates i*(1/steps) for i in [0, steps],
// computed as float64(i) * step the way a caller stepping a counter would.
func UnitSteps(steps int) []float64 {
	if steps < 1 {
		return []float64{0}
	}
	step := 1 / float64(steps)
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// DeterministicUniform draws n values uniformly from [lo, hi) with a fixed
// seed for reproducibility.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// DeterministicSine generates cycles periods of a sine wave over length
// samples.
func DeterministicSine(cycles int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * float64(cycles) / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}
