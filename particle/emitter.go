package particle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/vmath"
)

// PointerEvent is a pointer sample in viewport pixels with a monotonic timestamp
type PointerEvent struct {
	X, Y float64
	At   time.Time
}

// EmitterConfig bounds the randomized kinematics of emitted particles
type EmitterConfig struct {
	Throttle time.Duration

	BurstMin, BurstMax int

	Jitter             float64 // px, full width
	MinSpeed, MaxSpeed float64 // px/s
	MinSize, MaxSize   float64 // px
	MinTTL, MaxTTL     float64 // ms
	RotationSpread     float64 // degrees, full width

	Alphabet []rune

	// Shockwaves enables click rings
	Shockwaves     bool
	ShockThrottle  time.Duration
	ShockTTL       float64
	ShockMaxRadius float64
}

// DefaultEmitterConfig returns the compiled defaults
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Throttle:       parameter.ParticleThrottle,
		BurstMin:       parameter.ParticleBurstMin,
		BurstMax:       parameter.ParticleBurstMax,
		Jitter:         parameter.ParticleJitter,
		MinSpeed:       parameter.ParticleMinSpeed,
		MaxSpeed:       parameter.ParticleMaxSpeed,
		MinSize:        parameter.ParticleMinSize,
		MaxSize:        parameter.ParticleMaxSize,
		MinTTL:         parameter.ParticleMinTTL,
		MaxTTL:         parameter.ParticleMaxTTL,
		RotationSpread: parameter.ParticleRotationSpread,
		Alphabet:       []rune(parameter.ParticleAlphabet),
		ShockThrottle:  parameter.ShockThrottle,
		ShockTTL:       parameter.ShockTTL,
		ShockMaxRadius: parameter.ShockMaxRadius,
	}
}

// Emitter turns accepted pointer samples into particle bursts.
// Samples closer than Throttle to the last accepted one are dropped, never queued.
type Emitter struct {
	cfg       EmitterConfig
	particles *Particles
	shocks    *Shocks
	rng       *rand.Rand

	lastMove  time.Time
	moved     bool
	lastClick time.Time
	clicked   bool

	throttled uint64
	emitted   uint64
}

// NewEmitter binds an emitter to its collections; shocks may be nil when rings are disabled
func NewEmitter(cfg EmitterConfig, particles *Particles, shocks *Shocks, rng *rand.Rand) *Emitter {
	if cfg.BurstMin < 1 {
		cfg.BurstMin = 1
	}
	if cfg.BurstMax < cfg.BurstMin {
		cfg.BurstMax = cfg.BurstMin
	}
	if len(cfg.Alphabet) == 0 {
		cfg.Alphabet = []rune(parameter.ParticleAlphabet)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Emitter{
		cfg:       cfg,
		particles: particles,
		shocks:    shocks,
		rng:       rng,
	}
}

// Emit handles one pointer move and returns the number of particles created
func (e *Emitter) Emit(ev PointerEvent) int {
	if e.moved && ev.At.Sub(e.lastMove) < e.cfg.Throttle {
		e.throttled++
		return 0
	}
	e.moved = true
	e.lastMove = ev.At

	count := e.cfg.BurstMin + e.rng.IntN(e.cfg.BurstMax-e.cfg.BurstMin+1)
	burst := make([]Particle, count)
	for i := range burst {
		burst[i] = e.spawn(ev.X, ev.Y)
	}
	e.particles.Append(burst...)
	e.emitted += uint64(count)
	return count
}

// Click spawns a shock ring, subject to its own throttle
func (e *Emitter) Click(ev PointerEvent) bool {
	if !e.cfg.Shockwaves || e.shocks == nil {
		return false
	}
	if e.clicked && ev.At.Sub(e.lastClick) < e.cfg.ShockThrottle {
		return false
	}
	e.clicked = true
	e.lastClick = ev.At

	e.shocks.Append(Shock{
		X:         ev.X,
		Y:         ev.Y,
		Life:      e.cfg.ShockTTL,
		TTL:       e.cfg.ShockTTL,
		MaxRadius: e.cfg.ShockMaxRadius,
	})
	return true
}

func (e *Emitter) spawn(x, y float64) Particle {
	angle := e.rng.Float64() * 2 * math.Pi
	speed := e.between(e.cfg.MinSpeed, e.cfg.MaxSpeed) / 1000
	vel := vmath.V2FPolar(angle, speed)
	ttl := e.between(e.cfg.MinTTL, e.cfg.MaxTTL)

	return Particle{
		Kinetic: core.Kinetic{
			X:  x + (e.rng.Float64()-0.5)*e.cfg.Jitter,
			Y:  y + (e.rng.Float64()-0.5)*e.cfg.Jitter,
			VX: vel.X,
			VY: vel.Y,
		},
		Life:     ttl,
		TTL:      ttl,
		Size:     e.between(e.cfg.MinSize, e.cfg.MaxSize),
		Rotation: (e.rng.Float64() - 0.5) * e.cfg.RotationSpread,
		Glyph:    e.cfg.Alphabet[e.rng.IntN(len(e.cfg.Alphabet))],
	}
}

func (e *Emitter) between(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

// Throttled returns the cumulative number of dropped pointer moves
func (e *Emitter) Throttled() uint64 {
	return e.throttled
}

// Emitted returns the cumulative number of particles created
func (e *Emitter) Emitted() uint64 {
	return e.emitted
}
