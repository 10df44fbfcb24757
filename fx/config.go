package fx

import (
	"time"

	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/particle"
	"github.com/lixenwraith/glyph-trail/render"
)

// Config tunes one CursorFX instance
type Config struct {
	Emitter particle.EmitterConfig

	// Capacity caps live particles
	Capacity int
	// ShockCapacity caps live shock rings
	ShockCapacity int

	// FrameDelta is the fixed simulation step per frame
	FrameDelta time.Duration

	// MaxPixelRatio clamps the host pixel ratio
	MaxPixelRatio float64

	// Opacity scales life-derived opacity at paint time
	Opacity float64

	Gradient render.Gradient

	// Seed fixes the random source when non-zero
	Seed uint64
}

// DefaultConfig returns the compiled defaults
func DefaultConfig() Config {
	return Config{
		Emitter:       particle.DefaultEmitterConfig(),
		Capacity:      parameter.ParticleCapacity,
		ShockCapacity: parameter.ShockCapacity,
		FrameDelta:    parameter.FrameDelta,
		MaxPixelRatio: parameter.MaxPixelRatio,
		Opacity:       parameter.ParticleOpacity,
		Gradient:      render.DefaultGradient(),
	}
}
