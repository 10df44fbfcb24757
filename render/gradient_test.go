package render

import (
	"testing"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/parameter/visual"
	"github.com/lixenwraith/glyph-trail/vmath"
)

func TestGradientEndpoints(t *testing.T) {
	g := DefaultGradient()

	if got := g.At(0); got != visual.GradientStart {
		t.Errorf("Expected start %v, got %v", visual.GradientStart, got)
	}
	if got := g.At(1); got != visual.GradientEnd {
		t.Errorf("Expected end %v, got %v", visual.GradientEnd, got)
	}
	if got := g.At(-3); got != visual.GradientStart {
		t.Errorf("Expected clamp to start, got %v", got)
	}
	if got := g.At(7); got != visual.GradientEnd {
		t.Errorf("Expected clamp to end, got %v", got)
	}
}

func TestGradientMidpoint(t *testing.T) {
	g := NewGradient(core.RGB{R: 0, G: 0, B: 0}, core.RGB{R: 200, G: 100, B: 50})
	got := g.At(0.5)
	want := core.RGB{R: 100, G: 50, B: 25}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestGradientAlongRotatedAxis(t *testing.T) {
	g := NewGradient(core.RGB{R: 0, G: 0, B: 0}, core.RGB{R: 255, G: 255, B: 255})

	tests := []struct {
		name     string
		offset   vmath.Vec2F
		rotation float64
		want     core.RGB
	}{
		{"Center", vmath.Vec2F{}, 0, core.RGB{R: 128, G: 128, B: 128}},
		{"Left edge", vmath.Vec2F{X: -10}, 0, core.RGB{}},
		{"Right edge", vmath.Vec2F{X: 10}, 0, core.RGB{R: 255, G: 255, B: 255}},
		{"Vertical offset unrotated", vmath.Vec2F{Y: 10}, 0, core.RGB{R: 128, G: 128, B: 128}},
		{"Vertical offset rotated 90", vmath.Vec2F{Y: 10}, 90, core.RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Along(tt.offset, vmath.V2FAxis(tt.rotation), 20)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
