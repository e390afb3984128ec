package shape

import (
	"fmt"
	"math"
)

const (
	defaultSteepness = 0.0
	defaultMidpoint  = 0.5
	defaultPinch     = 0.0
)

// Option mutates construction-time curve parameters.
type Option func(*curveConfig) error

type curveConfig struct {
	steepness float64
	midpoint  float64
	pinch     float64
}

func defaultCurveConfig() curveConfig {
	return curveConfig{
		steepness: defaultSteepness,
		midpoint:  defaultMidpoint,
		pinch:     defaultPinch,
	}
}

// WithSteepness sets the steepness control a. Any finite value is accepted.
func WithSteepness(a float64) Option {
	return func(cfg *curveConfig) error {
		if err := validateParam("steepness", a); err != nil {
			return err
		}

		cfg.steepness = a

		return nil
	}
}

// WithMidpoint sets the midpoint control b. Finite values outside [0, 1]
// are accepted and clamped at evaluation time.
func WithMidpoint(b float64) Option {
	return func(cfg *curveConfig) error {
		if err := validateParam("midpoint", b); err != nil {
			return err
		}

		cfg.midpoint = b

		return nil
	}
}

// WithPinch sets the tail pinch control c. Finite values outside [0, 1]
// are accepted and extrapolate the blend.
func WithPinch(c float64) Option {
	return func(cfg *curveConfig) error {
		if err := validateParam("pinch", c); err != nil {
			return err
		}

		cfg.pinch = c

		return nil
	}
}

// Curve is a torcurve with a fixed parameter set.
//
// Evaluation does not mutate the curve and may run concurrently; the
// setters must not race with evaluation.
type Curve struct {
	a float64
	b float64
	c float64
}

// NewCurve creates a curve. Without options it is the near-identity curve
// a=0, b=0.5, c=0.
func NewCurve(opts ...Option) (*Curve, error) {
	cfg := defaultCurveConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Curve{
		a: cfg.steepness,
		b: cfg.midpoint,
		c: cfg.pinch,
	}, nil
}

// Eval evaluates the curve at x.
func (c *Curve) Eval(x float64) float64 {
	return Torcurve(x, c.a, c.b, c.c)
}

// Bipolar maps x in [-1, 1] through the curve with odd symmetry, which
// makes the curve usable as a static waveshaper. Inputs beyond ±1
// saturate.
func (c *Curve) Bipolar(x float64) float64 {
	switch {
	case x > 0:
		return Torcurve(x, c.a, c.b, c.c)
	case x < 0:
		return -Torcurve(-x, c.a, c.b, c.c)
	default:
		return 0
	}
}

// Steepness returns the steepness control a.
func (c *Curve) Steepness() float64 { return c.a }

// Midpoint returns the midpoint control b as configured, before clamping.
func (c *Curve) Midpoint() float64 { return c.b }

// Pinch returns the tail pinch control c as configured, before pinching.
func (c *Curve) Pinch() float64 { return c.c }

// SetSteepness updates the steepness control a.
func (c *Curve) SetSteepness(a float64) error {
	if err := validateParam("steepness", a); err != nil {
		return err
	}

	c.a = a

	return nil
}

// SetMidpoint updates the midpoint control b.
func (c *Curve) SetMidpoint(b float64) error {
	if err := validateParam("midpoint", b); err != nil {
		return err
	}

	c.b = b

	return nil
}

// SetPinch updates the tail pinch control c.
func (c *Curve) SetPinch(v float64) error {
	if err := validateParam("pinch", v); err != nil {
		return err
	}

	c.c = v

	return nil
}

func validateParam(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("curve %s must be finite: %f", name, v)
	}

	return nil
}
