package common

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"tenth", 0, 100, 0.1, 10},
		{"negative_span", 50, -50, 0.5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, -2, 0) {
		t.Fatalf("expected ordinary values to be finite")
	}
	if Finite(1, math.NaN()) {
		t.Fatalf("NaN should not be finite")
	}
	if Finite(math.Inf(-1)) {
		t.Fatalf("-Inf should not be finite")
	}
	if !Finite() {
		t.Fatalf("empty input should be finite")
	}
}
