package capability

import (
	"testing"

	"github.com/lixenwraith/glyph-trail/core"
)

func TestGateResolution(t *testing.T) {
	tests := []struct {
		name    string
		mode    core.MotionMode
		sig     Signals
		enabled bool
		reduce  bool
	}{
		{"Auto default", core.MotionAuto, Signals{}, true, false},
		{"Auto system reduced", core.MotionAuto, Signals{ReducedMotion: true}, false, true},
		{"Reduced override", core.MotionReduced, Signals{}, false, true},
		{"Full overrides system", core.MotionFull, Signals{ReducedMotion: true}, true, false},
		{"Coarse pointer", core.MotionAuto, Signals{CoarsePointer: true}, false, false},
		{"Full with coarse pointer", core.MotionFull, Signals{CoarsePointer: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(tt.mode, tt.sig)
			if g.Enabled() != tt.enabled {
				t.Errorf("Expected enabled=%v, got %v", tt.enabled, g.Enabled())
			}
			if g.ReduceMotion() != tt.reduce {
				t.Errorf("Expected reduce=%v, got %v", tt.reduce, g.ReduceMotion())
			}
		})
	}
}

func TestGateNotifiesOnlyOnFlip(t *testing.T) {
	g := NewGate(core.MotionAuto, Signals{})
	var got []bool
	g.Subscribe(func(enabled bool) { got = append(got, enabled) })

	g.SetCoarsePointer(false) // unchanged
	g.SetCoarsePointer(true)  // disable
	g.SetSystemReducedMotion(true)
	g.SetCoarsePointer(false) // still reduced
	g.SetMode(core.MotionFull)

	want := []bool{false, true}
	if len(got) != len(want) {
		t.Fatalf("Expected notifications %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d: Expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestGateUnsubscribe(t *testing.T) {
	g := NewGate(core.MotionAuto, Signals{})
	calls := 0
	cancel := g.Subscribe(func(bool) { calls++ })

	g.SetMode(core.MotionReduced)
	cancel()
	g.SetMode(core.MotionAuto)

	if calls != 1 {
		t.Errorf("Expected 1 call before unsubscribe, got %d", calls)
	}
}

func TestGateModeAccessor(t *testing.T) {
	g := NewGate(core.MotionAuto, Signals{})
	g.SetMode(g.Mode().Next())
	if g.Mode() != core.MotionReduced {
		t.Errorf("Expected reduced after cycling from auto, got %s", g.Mode())
	}
	if g.CoarsePointer() {
		t.Error("Expected fine pointer")
	}
}
