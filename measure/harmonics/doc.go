// Package harmonics measures the harmonic signature of a static transfer
// curve.
//
// A transfer curve used as a waveshaper turns a pure sine into its
// fundamental plus harmonics. [Analyze] drives the curve with an
// integer number of sine cycles per FFT frame, so every harmonic lands on
// an exact bin and no window is needed, and reports the level of each
// harmonic relative to the fundamental together with THD and the odd/even
// split.
//
// Typical use with a torcurve:
//
//	c, _ := shape.NewCurve(shape.WithSteepness(2), shape.WithPinch(0.7))
//	res, err := harmonics.Analyze(c.Bipolar, harmonics.Config{})
package harmonics
