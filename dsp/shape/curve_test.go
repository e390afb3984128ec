package shape

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-torcurve/internal/testutil"
)

func TestNewCurveDefaults(t *testing.T) {
	c, err := NewCurve()
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	if c.Steepness() != defaultSteepness || c.Midpoint() != defaultMidpoint || c.Pinch() != defaultPinch {
		t.Fatalf("defaults = (%v, %v, %v), want (%v, %v, %v)",
			c.Steepness(), c.Midpoint(), c.Pinch(), defaultSteepness, defaultMidpoint, defaultPinch)
	}
}

func TestNewCurveValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "nan steepness", opt: WithSteepness(math.NaN())},
		{name: "inf steepness", opt: WithSteepness(math.Inf(1))},
		{name: "nan midpoint", opt: WithMidpoint(math.NaN())},
		{name: "inf midpoint", opt: WithMidpoint(math.Inf(-1))},
		{name: "nan pinch", opt: WithPinch(math.NaN())},
		{name: "inf pinch", opt: WithPinch(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCurve(tt.opt); err == nil {
				t.Fatal("expected error for non-finite parameter")
			}
		})
	}
}

func TestNewCurveAcceptsOutOfRangeControls(t *testing.T) {
	c, err := NewCurve(WithSteepness(-25), WithMidpoint(3), WithPinch(-2), nil)
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	if c.Midpoint() != 3 || c.Pinch() != -2 {
		t.Fatalf("controls normalised at construction: b=%v c=%v", c.Midpoint(), c.Pinch())
	}
}

func TestCurveEvalMatchesTorcurve(t *testing.T) {
	c, err := NewCurve(WithSteepness(1.25), WithMidpoint(0.35), WithPinch(0.8))
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	for _, x := range testutil.Linspace(-0.25, 1.25, 61) {
		if got, want := c.Eval(x), Torcurve(x, 1.25, 0.35, 0.8); got != want {
			t.Fatalf("Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestCurveBipolarOddSymmetry(t *testing.T) {
	c, err := NewCurve(WithSteepness(2), WithMidpoint(0.2), WithPinch(-0.6))
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	if got := c.Bipolar(0); got != 0 {
		t.Fatalf("Bipolar(0) = %v, want 0", got)
	}

	for _, x := range testutil.Linspace(0.01, 1.5, 50) {
		pos := c.Bipolar(x)
		neg := c.Bipolar(-x)
		if pos != -neg {
			t.Fatalf("Bipolar(%v) = %v, Bipolar(%v) = %v, want odd symmetry", x, pos, -x, neg)
		}
		if pos != c.Eval(x) {
			t.Fatalf("Bipolar(%v) = %v, want Eval = %v", x, pos, c.Eval(x))
		}
	}
}

func TestCurveBipolarSaturates(t *testing.T) {
	c, err := NewCurve(WithSteepness(1))
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	if got, want := c.Bipolar(4), c.Bipolar(1); got != want {
		t.Fatalf("Bipolar(4) = %v, want %v", got, want)
	}
	if got, want := c.Bipolar(-4), c.Bipolar(-1); got != want {
		t.Fatalf("Bipolar(-4) = %v, want %v", got, want)
	}
}

func TestCurveSetters(t *testing.T) {
	c, err := NewCurve()
	if err != nil {
		t.Fatalf("NewCurve() error = %v", err)
	}

	if err := c.SetSteepness(1.5); err != nil {
		t.Fatalf("SetSteepness() error = %v", err)
	}
	if err := c.SetMidpoint(0.7); err != nil {
		t.Fatalf("SetMidpoint() error = %v", err)
	}
	if err := c.SetPinch(0.9); err != nil {
		t.Fatalf("SetPinch() error = %v", err)
	}

	if got, want := c.Eval(0.4), Torcurve(0.4, 1.5, 0.7, 0.9); got != want {
		t.Fatalf("Eval after setters = %v, want %v", got, want)
	}

	if err := c.SetSteepness(math.NaN()); err == nil {
		t.Fatal("expected error for NaN steepness")
	}
	if err := c.SetMidpoint(math.Inf(1)); err == nil {
		t.Fatal("expected error for Inf midpoint")
	}
	if err := c.SetPinch(math.Inf(-1)); err == nil {
		t.Fatal("expected error for -Inf pinch")
	}

	if c.Steepness() != 1.5 || c.Midpoint() != 0.7 || c.Pinch() != 0.9 {
		t.Fatalf("rejected setter changed state: (%v, %v, %v)", c.Steepness(), c.Midpoint(), c.Pinch())
	}
}
