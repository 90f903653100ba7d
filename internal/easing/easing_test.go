package easing

import (
	"math"
	"testing"
)

func TestEvalEndpoints(t *testing.T) {
	curves := []Curve{Linear, EaseIn, EaseOut, EaseInOut}

	for _, c := range curves {
		if got := Eval(c, 0); got != 0 {
			t.Errorf("%s: Eval(0) = %f, want 0", c, got)
		}
		if got := Eval(c, 1); got != 1 {
			t.Errorf("%s: Eval(1) = %f, want 1", c, got)
		}
	}
}

func TestEvalCurveShapes(t *testing.T) {
	tests := []struct {
		curve Curve
		x     float64
		want  float64
	}{
		{Linear, 0.25, 0.25},
		{Linear, 0.5, 0.5},
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.25, 0.15625}, // 3x²-2x³
	}

	for _, tt := range tests {
		got := Eval(tt.curve, tt.x)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%s, %f) = %f, want %f", tt.curve, tt.x, got, tt.want)
		}
	}
}

func TestEvalClampsProgress(t *testing.T) {
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut} {
		if got := Eval(c, -0.5); got != 0 {
			t.Errorf("%s: Eval(-0.5) = %f, want 0", c, got)
		}
		if got := Eval(c, 1.5); got != 1 {
			t.Errorf("%s: Eval(1.5) = %f, want 1", c, got)
		}
	}
}

func TestEvalMonotonic(t *testing.T) {
	for _, c := range []Curve{Linear, EaseIn, EaseOut, EaseInOut} {
		prev := -1.0
		for x := 0.0; x <= 1.0; x += 0.01 {
			v := Eval(c, x)
			if v < prev {
				t.Fatalf("%s: not monotonic at x=%.2f (%.4f < %.4f)", c, x, v, prev)
			}
			prev = v
		}
	}
}

func TestUnknownCurveFallsBack(t *testing.T) {
	if Eval(Curve("bounce"), 0.5) != Eval(Default, 0.5) {
		t.Error("unknown curve should evaluate as the default curve")
	}
	if Curve("bounce").Valid() {
		t.Error("unknown curve reported as valid")
	}
}
