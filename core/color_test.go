package core

import "testing"

func TestBlend(t *testing.T) {
	dst := RGB{R: 0, G: 0, B: 0}
	src := RGB{R: 200, G: 100, B: 50}

	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"transparent", 0, dst},
		{"negative", -1, dst},
		{"opaque", 1, src},
		{"half", 0.5, RGB{R: 100, G: 50, B: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.Blend(src, tt.alpha); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestKineticAdvance(t *testing.T) {
	k := Kinetic{X: 10, Y: 20, VX: 0.05, VY: -0.025}
	k.Advance(16)
	if k.X != 10.8 || k.Y != 19.6 {
		t.Errorf("Expected (10.8, 19.6), got (%v, %v)", k.X, k.Y)
	}
}
