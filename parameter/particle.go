package parameter

import (
	"time"
)

// Cursor Glyph Particles
const (
	// ParticleAlphabet is the symbol set glyphs are sampled from
	ParticleAlphabet = "0123456789+-*/=%<>!&|^~?:()[]{}#@$"

	// ParticleCapacity is the hard cap on live particles, oldest evicted first
	ParticleCapacity = 120

	// ParticleThrottle is the minimum gap between accepted pointer moves, earlier moves are dropped
	ParticleThrottle = 40 * time.Millisecond

	// ParticleBurstMin/Max bound the number of particles per accepted pointer move (inclusive)
	ParticleBurstMin = 1
	ParticleBurstMax = 3

	// ParticleJitter is the full width (px) of the random offset around the pointer
	ParticleJitter = 6.0

	// ParticleMinSpeed/MaxSpeed are initial speeds in pixels per second
	ParticleMinSpeed = 30.0
	ParticleMaxSpeed = 70.0

	// ParticleMinSize/MaxSize are glyph sizes in pixels
	ParticleMinSize = 14.0
	ParticleMaxSize = 24.0

	// ParticleMinTTL/MaxTTL are lifetimes in milliseconds
	ParticleMinTTL = 400.0
	ParticleMaxTTL = 600.0

	// ParticleRotationSpread is the full width (degrees) of the static rotation, centered on zero
	ParticleRotationSpread = 30.0

	// ParticleOpacity scales the life-derived opacity at paint time
	ParticleOpacity = 0.8
)

// Shock Rings
const (
	// ShockThrottle is the minimum gap between accepted clicks
	ShockThrottle = 350 * time.Millisecond

	// ShockTTL is the ring lifetime in milliseconds
	ShockTTL = 500.0

	// ShockMaxRadius is the final ring radius in pixels (4 cells wide)
	ShockMaxRadius = 32.0

	// ShockCapacity caps live rings
	ShockCapacity = 8

	// ShockGlyph is drawn along the ring
	ShockGlyph = '·'
)
