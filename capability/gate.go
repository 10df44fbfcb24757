// Package capability resolves whether decorative motion may run on this host.
// Signals are read once at construction and change only through explicit notifications.
package capability

import (
	"github.com/lixenwraith/glyph-trail/core"
)

// Signals are the host accessibility and input capabilities
type Signals struct {
	// ReducedMotion is the system-level reduced motion preference
	ReducedMotion bool
	// CoarsePointer is true when there is no fine pointer (no mouse reporting)
	CoarsePointer bool
}

// Gate combines the user motion mode with host signals.
// Not safe for concurrent use; driven from the UI goroutine.
type Gate struct {
	mode    core.MotionMode
	signals Signals

	enabled   bool
	listeners map[int]func(enabled bool)
	nextID    int
}

// NewGate resolves the initial enabled state
func NewGate(mode core.MotionMode, sig Signals) *Gate {
	g := &Gate{
		mode:      mode,
		signals:   sig,
		listeners: make(map[int]func(bool)),
	}
	g.enabled = g.resolve()
	return g
}

// Enabled reports whether the effect may mount
func (g *Gate) Enabled() bool {
	return g.enabled
}

// ReduceMotion applies the mode override to the system signal
func (g *Gate) ReduceMotion() bool {
	switch g.mode {
	case core.MotionReduced:
		return true
	case core.MotionFull:
		return false
	default:
		return g.signals.ReducedMotion
	}
}

// CoarsePointer reports the current pointer capability
func (g *Gate) CoarsePointer() bool {
	return g.signals.CoarsePointer
}

// Mode returns the user motion mode
func (g *Gate) Mode() core.MotionMode {
	return g.mode
}

// SetMode changes the user override
func (g *Gate) SetMode(m core.MotionMode) {
	g.mode = m
	g.update()
}

// SetSystemReducedMotion records a change of the system preference
func (g *Gate) SetSystemReducedMotion(reduced bool) {
	g.signals.ReducedMotion = reduced
	g.update()
}

// SetCoarsePointer records a pointer capability change, e.g. mouse reporting toggled
func (g *Gate) SetCoarsePointer(coarse bool) {
	g.signals.CoarsePointer = coarse
	g.update()
}

// Subscribe registers fn to run whenever Enabled flips; the returned func unsubscribes
func (g *Gate) Subscribe(fn func(enabled bool)) (cancel func()) {
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

func (g *Gate) resolve() bool {
	return !g.ReduceMotion() && !g.signals.CoarsePointer
}

func (g *Gate) update() {
	next := g.resolve()
	if next == g.enabled {
		return
	}
	g.enabled = next
	for _, fn := range g.listeners {
		fn(next)
	}
}
