// Package fx is the cursor glyph effect: a throttled particle emitter feeding a
// self-rescheduling render loop that paints onto a full-viewport overlay.
// It never surfaces errors; when it cannot paint it keeps simulating silently.
package fx

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/glyph-trail/capability"
	"github.com/lixenwraith/glyph-trail/engine"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/parameter/visual"
	"github.com/lixenwraith/glyph-trail/particle"
	"github.com/lixenwraith/glyph-trail/render"
	"github.com/lixenwraith/glyph-trail/status"
)

// CursorFX owns everything alive during one mount: field, emitter, loop and surface.
// Not safe for concurrent use; call from the host UI goroutine.
type CursorFX struct {
	cfg      Config
	gate     *capability.Gate
	sched    engine.Scheduler
	canvas   render.CanvasFactory
	rng      *rand.Rand
	viewport render.Viewport
	visible  bool

	started     bool
	closed      bool
	unsubscribe func()

	mount *mount

	metrics metrics
}

// mount is the state discarded on unmount
type mount struct {
	particles *particle.Particles
	shocks    *particle.Shocks
	emitter   *particle.Emitter
	loop      *engine.Loop
	surface   *render.Surface
}

// New wires the component; nothing mounts until Start
func New(cfg Config, gate *capability.Gate, sched engine.Scheduler, canvas render.CanvasFactory, reg *status.Registry) *CursorFX {
	if reg == nil {
		reg = status.NewRegistry()
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	return &CursorFX{
		cfg:     cfg,
		gate:    gate,
		sched:   sched,
		canvas:  canvas,
		rng:     rng,
		visible: true,
		metrics: newMetrics(reg),
	}
}

// Start mounts when the gate allows it and follows gate changes afterwards
func (c *CursorFX) Start(vp render.Viewport) {
	if c.started || c.closed {
		return
	}
	c.started = true
	c.viewport = vp
	c.unsubscribe = c.gate.Subscribe(c.onGate)
	c.metrics.motion.Store(c.gate.Mode().String())
	if c.gate.Enabled() {
		c.mountNow()
	}
}

// Close unmounts for good and stops following the gate
func (c *CursorFX) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.unmountNow()
}

// PointerMove feeds the emitter
func (c *CursorFX) PointerMove(ev particle.PointerEvent) {
	if c.mount == nil {
		return
	}
	m := c.mount
	before := m.particles.Evicted()
	n := m.emitter.Emit(ev)
	if n == 0 {
		c.metrics.throttled.Add(1)
		return
	}
	c.metrics.emitted.Add(int64(n))
	c.metrics.evicted.Add(int64(m.particles.Evicted() - before))
	c.metrics.particles.Store(int64(m.particles.Len()))
}

// Click spawns a shock ring when enabled
func (c *CursorFX) Click(ev particle.PointerEvent) {
	if c.mount == nil {
		return
	}
	c.mount.emitter.Click(ev)
}

// Resize matches the surface to the new viewport
func (c *CursorFX) Resize(vp render.Viewport) {
	c.viewport = vp
	if c.mount != nil {
		c.mount.surface.Resize(vp)
	}
}

// SetVisible suspends or resumes the render loop
func (c *CursorFX) SetVisible(visible bool) {
	c.visible = visible
	if c.mount != nil {
		c.mount.loop.SetVisible(visible)
		c.metrics.running.Store(c.mount.loop.State() == engine.StateRunning)
	}
}

// Mounted reports whether the effect is live
func (c *CursorFX) Mounted() bool {
	return c.mount != nil
}

// Len returns the live particle count, zero when unmounted
func (c *CursorFX) Len() int {
	if c.mount == nil {
		return 0
	}
	return c.mount.particles.Len()
}

// Particles returns a copy of the live particles, oldest first
func (c *CursorFX) Particles() []particle.Particle {
	if c.mount == nil {
		return nil
	}
	return c.mount.particles.Snapshot()
}

// Shocks returns the number of live shock rings
func (c *CursorFX) Shocks() int {
	if c.mount == nil {
		return 0
	}
	return c.mount.shocks.Len()
}

// LoopState returns the render loop state; Stopped when unmounted
func (c *CursorFX) LoopState() engine.State {
	if c.mount == nil {
		return engine.StateStopped
	}
	return c.mount.loop.State()
}

// Surface exposes the drawing surface geometry, nil when unmounted
func (c *CursorFX) Surface() *render.Surface {
	if c.mount == nil {
		return nil
	}
	return c.mount.surface
}

func (c *CursorFX) onGate(enabled bool) {
	c.metrics.motion.Store(c.gate.Mode().String())
	if c.closed {
		return
	}
	if enabled {
		c.mountNow()
	} else {
		c.unmountNow()
	}
}

func (c *CursorFX) mountNow() {
	if c.mount != nil {
		return
	}
	var canvas render.Canvas
	if c.canvas != nil {
		// a failed canvas leaves a paint-less surface
		if cv, err := c.canvas(); err == nil {
			canvas = cv
		}
	}

	m := &mount{
		particles: particle.NewField[particle.Particle](c.cfg.Capacity),
		shocks:    particle.NewField[particle.Shock](max(c.cfg.ShockCapacity, 1)),
		surface:   render.NewSurface(canvas, c.cfg.MaxPixelRatio),
	}
	m.emitter = particle.NewEmitter(c.cfg.Emitter, m.particles, m.shocks, c.rng)
	m.loop = engine.NewLoop(c.sched, func() { c.frame(m) })
	m.surface.Resize(c.viewport)

	c.mount = m
	c.metrics.mounts.Add(1)
	c.metrics.mounted.Store(true)

	// a hidden host mounts idle; the first visible notification starts it
	if c.visible {
		m.loop.Start()
	}
	c.metrics.running.Store(m.loop.State() == engine.StateRunning)
}

func (c *CursorFX) unmountNow() {
	m := c.mount
	if m == nil {
		return
	}
	m.loop.Stop()
	m.surface.Release()
	m.particles.Reset()
	m.shocks.Reset()
	c.mount = nil

	c.metrics.mounted.Store(false)
	c.metrics.running.Store(false)
	c.metrics.particles.Store(0)
}

// frame clears, steps, culls and paints one frame
func (c *CursorFX) frame(m *mount) {
	start := time.Now()
	dt := float64(c.cfg.FrameDelta) / float64(time.Millisecond)
	s := m.surface
	g := c.cfg.Gradient
	opacity := c.cfg.Opacity * visual.GradientStopAlpha

	s.Clear()
	c.metrics.frames.Add(1)
	if !s.Available() {
		// clear-only pass, the pool stays as it was until a canvas exists
		return
	}

	culled := m.particles.Step(dt, func(p *particle.Particle, a float64) {
		s.Glyph(p.X, p.Y, p.Size, p.Rotation, p.Glyph, a*opacity, g)
	})
	m.shocks.Step(dt, func(sh *particle.Shock, a float64) {
		s.Ring(sh.X, sh.Y, sh.Radius(), parameter.ShockGlyph, a*opacity, g)
	})

	c.metrics.culled.Add(int64(culled))
	c.metrics.particles.Store(int64(m.particles.Len()))
	c.metrics.paintMs.Set(float64(time.Since(start)) / float64(time.Millisecond))
}
