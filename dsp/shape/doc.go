// Package shape provides torcurve, a parametric shaping curve for easing,
// procedural shaping and static waveshaping.
//
// [Torcurve] maps a drive coordinate x in [0, 1] to an output value using
// three controls:
//
//   - a: steepness, applied exponentially (s = e^a)
//   - b: midpoint, clamped to [0, 1], where the curve switches branch
//   - c: tail pinch, squared asymmetrically around 0.5 into a mixing
//     coefficient that blends three basis curves
//
// With a=0, b=0.5, c=0 the curve is (almost exactly) the identity.
//
// The evaluator is a pure function: it never allocates, never fails and is
// safe for concurrent use. Out-of-range x and b are clamped, the pinched
// c is deliberately left unclamped, and a NaN result is replaced by 0.
//
// [Curve] holds a validated parameter set for repeated evaluation and
// exposes an odd-symmetric [Curve.Bipolar] mapping for audio-rate
// waveshaping.
//
// Building with -tags fastmath swaps the exp/pow calls for the
// approximations from github.com/meko-christian/algo-approx. Results then
// lose bit-exactness but keep the no-NaN guarantee. [Backend] reports the
// active implementation.
package shape
