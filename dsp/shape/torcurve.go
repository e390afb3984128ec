package shape

import (
	"math"

	"github.com/cwbudde/algo-torcurve/dsp/core"
)

// epsilon keeps every denominator that can reach zero away from it.
const epsilon = 1e-5

// pinchThreshold is the value of c at which the pinch transform flips sign.
const pinchThreshold = 0.5

// Backend reports the exp/pow implementation compiled into the package:
// "exact" by default, "fastmath" when built with -tags fastmath.
func Backend() string {
	return backendName
}

// pinch squares v, negating the result below 0.5.
func pinch(v float64) float64 {
	if v < pinchThreshold {
		return -v * v
	}

	return v * v
}

// Torcurve evaluates the curve at x for steepness a, midpoint b and tail
// pinch c.
//
// x and b are clamped to [0, 1]. a is unrestricted; large magnitudes
// saturate the curve. The pinched c is not clamped, so values outside
// [0, 1] extrapolate between the basis curves. A NaN result is reported
// as 0, so the function never fails.
func Torcurve(x, a, b, c float64) float64 {
	u := pinch(c)
	x = core.Clamp(x, 0, 1)
	s := mathExp(a)
	s2 := 1 / s
	t := core.Clamp(b, 0, 1)

	var c1, c2, c3 float64
	if x < t {
		c1, c2, c3 = leftBasis(x, t, s, s2)
	} else {
		c1, c2, c3 = rightBasis(x, t, s, s2)
	}

	return core.ZeroNaN(blend(u, c1, c2, c3))
}

// Products feeding an addition are wrapped in float64() so they round
// before the add and never fuse into FMA instructions.

// leftBasis computes the three basis curves for x < t.
func leftBasis(x, t, s, s2 float64) (c1, c2, c3 float64) {
	c1 = (t * x) / (x + float64(s*(t-x)) + epsilon)

	inv := 1 / (t + epsilon)
	c2 = t - powProduct(inv, s2-1, math.Abs(x-t), s2)
	c3 = powProduct(inv, s-1, x, s)

	return c1, c2, c3
}

// rightBasis computes the three basis curves for x >= t. It mirrors
// leftBasis around t so both agree at x == t.
func rightBasis(x, t, s, s2 float64) (c1, c2, c3 float64) {
	c1 = float64((1-t)*(x-1))/(1-x-float64(s*(t-x))+epsilon) + 1

	inv := 1 / ((1 - t) + epsilon)
	c2 = powProduct(inv, s2-1, math.Abs(x-t), s2) + t
	c3 = 1 - powProduct(inv, s-1, 1-x, s)

	return c1, c2, c3
}

// powProduct returns b1^e1 * b2^e2. When one factor overflows while the
// other is a tiny nonzero value the direct product is ±Inf although the
// true value is small; that case is recomputed in log space. Inf * 0
// stays NaN and ends in the NaN guard.
func powProduct(b1, e1, b2, e2 float64) float64 {
	p := float64(mathPow(b1, e1) * mathPow(b2, e2))
	if !math.IsInf(p, 0) {
		return p
	}

	return math.Exp(float64(e1*math.Log(b1)) + float64(e2*math.Log(b2)))
}

// blend mixes the basis curves by the signed coefficient u: c1 is always
// present, c2 fades in as u goes negative and c3 as u goes positive.
func blend(u, c1, c2, c3 float64) float64 {
	if u <= 0 {
		return float64(-u*c2) + float64((1+u)*c1)
	}

	return float64(u*c3) + float64((1-u)*c1)
}
