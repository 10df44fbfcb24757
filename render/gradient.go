package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/parameter/visual"
	"github.com/lixenwraith/glyph-trail/vmath"
)

// Gradient is a two-stop linear gradient with fixed endpoints
type Gradient struct {
	start, end colorful.Color
}

// NewGradient builds a gradient from start to end
func NewGradient(start, end core.RGB) Gradient {
	return Gradient{start: toColorful(start), end: toColorful(end)}
}

// DefaultGradient is the cyan to violet glyph gradient
func DefaultGradient() Gradient {
	return NewGradient(visual.GradientStart, visual.GradientEnd)
}

// At samples the gradient at t, clamped to [0, 1]
func (g Gradient) At(t float64) core.RGB {
	return fromColorful(g.start.BlendRgb(g.end, vmath.Clamp01(t)))
}

// Along samples the gradient laid along an axis of length span centered on the origin.
// offset is the sample point relative to the origin; axis must be a unit vector.
func (g Gradient) Along(offset, axis vmath.Vec2F, span float64) core.RGB {
	if span <= 0 {
		return g.At(0.5)
	}
	return g.At(0.5 + vmath.V2FDot(offset, axis)/span)
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}
