// Package particle holds the transient overlay effects driven by pointer input:
// glyph particles, click shock rings, the capped collection that owns them,
// and the throttled emitter that creates them.
package particle

import (
	"math"

	"github.com/lixenwraith/glyph-trail/core"
)

// Particle is a single transient glyph with fixed rotation and a fading lifetime
type Particle struct {
	core.Kinetic

	// Life is the remaining lifetime and TTL the total, both in milliseconds
	Life, TTL float64
	// Size is the glyph size in pixels
	Size float64
	// Rotation is a static offset in degrees set at creation
	Rotation float64
	Glyph    rune
}

// Opacity returns max(0, life/ttl)
func (p *Particle) Opacity() float64 {
	if p.TTL <= 0 {
		return 0
	}
	return math.Max(0, p.Life/p.TTL)
}

// Age advances position by velocity and burns lifetime for one step
func (p *Particle) Age(dtMs float64) float64 {
	p.Advance(dtMs)
	p.Life -= dtMs
	return p.Opacity()
}

// Shock is an expanding ring spawned by a click
type Shock struct {
	X, Y      float64
	Life, TTL float64
	// MaxRadius is reached when Life hits zero
	MaxRadius float64
}

// Radius grows linearly with elapsed lifetime
func (s *Shock) Radius() float64 {
	if s.TTL <= 0 {
		return s.MaxRadius
	}
	return (1 - math.Max(0, s.Life)/s.TTL) * s.MaxRadius
}

// Opacity returns max(0, life/ttl)
func (s *Shock) Opacity() float64 {
	if s.TTL <= 0 {
		return 0
	}
	return math.Max(0, s.Life/s.TTL)
}

// Age burns lifetime for one step
func (s *Shock) Age(dtMs float64) float64 {
	s.Life -= dtMs
	return s.Opacity()
}
