//go:build fastmath

package shape

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

const backendName = "fastmath"

// mathExp computes e^x using fast approximation.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}

// mathPow computes base^exp using fast approximation.
// Uses the identity: b^e = e^(e * ln(b)) for b > 0.
// Zero, unit and non-positive bases are left to math.Pow so the special
// cases (0^s, 1^s, x^0) stay exact.
func mathPow(base, exp float64) float64 {
	if exp == 0 || base == 1 || base <= 0 || math.IsInf(base, 0) || math.IsNaN(base) || math.IsInf(exp, 0) || math.IsNaN(exp) {
		return math.Pow(base, exp)
	}

	return approx.FastExp(exp * approx.FastLog(base))
}
