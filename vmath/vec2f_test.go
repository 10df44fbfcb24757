package vmath

import (
	"math"
	"testing"
)

func TestV2FAxis(t *testing.T) {
	tests := []struct {
		deg  float64
		want Vec2F
	}{
		{0, Vec2F{1, 0}},
		{90, Vec2F{0, 1}},
		{-90, Vec2F{0, -1}},
		{180, Vec2F{-1, 0}},
	}
	for _, tt := range tests {
		got := V2FAxis(tt.deg)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("%v deg: expected %v, got %v", tt.deg, tt.want, got)
		}
	}
}

func TestV2FPolarMagnitude(t *testing.T) {
	v := V2FPolar(1.234, 0.05)
	if mag := math.Hypot(v.X, v.Y); math.Abs(mag-0.05) > 1e-12 {
		t.Errorf("Expected magnitude 0.05, got %v", mag)
	}
}

func TestV2FDotProjection(t *testing.T) {
	offset := V2FSub(Vec2F{12, 8}, Vec2F{4, 8})
	if got := V2FDot(offset, V2FAxis(0)); got != 8 {
		t.Errorf("Expected projection 8, got %v", got)
	}
	sum := V2FAdd(offset, Vec2F{1, 1})
	if sum != (Vec2F{9, 1}) {
		t.Errorf("Expected {9 1}, got %v", sum)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(2, 1, 1.75) != 1.75 || Clamp(0.5, 1, 1.75) != 1 || Clamp(1.5, 1, 1.75) != 1.5 {
		t.Error("Expected pixel ratio clamp to [1, 1.75]")
	}
	if Clamp01(-0.2) != 0 || Clamp01(1.4) != 1 {
		t.Error("Expected Clamp01 to saturate")
	}
	if math.Abs(DegToRad(180)-math.Pi) > 1e-12 {
		t.Errorf("Expected pi, got %v", DegToRad(180))
	}
}
