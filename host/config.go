package host

import (
	"fmt"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/engine"
	"github.com/lixenwraith/glyph-trail/fx"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/status"
)

// PointerMode overrides mouse capability detection
type PointerMode uint8

const (
	// PointerAuto treats a terminal without mouse support as a coarse pointer
	PointerAuto PointerMode = iota
	PointerFine
	PointerCoarse
)

func (p PointerMode) String() string {
	switch p {
	case PointerFine:
		return "fine"
	case PointerCoarse:
		return "coarse"
	default:
		return "auto"
	}
}

// ParsePointerMode maps a config value to a mode
func ParsePointerMode(s string) (PointerMode, error) {
	switch s {
	case "auto", "":
		return PointerAuto, nil
	case "fine":
		return PointerFine, nil
	case "coarse":
		return PointerCoarse, nil
	}
	return PointerAuto, fmt.Errorf("unknown pointer mode %q", s)
}

// Config is the terminal host configuration
type Config struct {
	FX fx.Config

	// Motion is the user override loaded from preferences
	Motion core.MotionMode
	// SystemReducedMotion stands in for the OS accessibility preference
	SystemReducedMotion bool

	Pointer    PointerMode
	PixelRatio float64

	// HUD shows the metrics panel at startup
	HUD bool
}

// DefaultConfig returns the compiled defaults
func DefaultConfig() Config {
	return Config{
		FX:         fx.DefaultConfig(),
		PixelRatio: parameter.MinPixelRatio,
	}
}

// MotionStore persists motion mode changes made at runtime
type MotionStore interface {
	SetMotionMode(core.MotionMode) error
}

// Option customizes a Host
type Option func(*Host)

// WithPreferences persists motion mode changes through s
func WithPreferences(s MotionStore) Option {
	return func(h *Host) { h.prefs = s }
}

// WithRegistry publishes metrics to r instead of a private registry
func WithRegistry(r *status.Registry) Option {
	return func(h *Host) { h.reg = r }
}

// WithClock replaces the pointer timestamp source
func WithClock(c engine.TimeProvider) Option {
	return func(h *Host) { h.clock = c }
}
