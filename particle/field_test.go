package particle

import (
	"math"
	"testing"
)

func TestParticleRemovedAfterTTL(t *testing.T) {
	f := NewField[Particle](10)
	f.Append(Particle{Life: 500, TTL: 500, Glyph: '#'})

	for tick := 1; tick <= 31; tick++ {
		f.Step(16, nil)
		if f.Len() != 1 {
			t.Fatalf("Expected particle alive after tick %d, got len %d", tick, f.Len())
		}
	}

	f.Step(16, nil)
	if f.Len() != 0 {
		t.Errorf("Expected particle removed after 32 ticks (512ms), got len %d", f.Len())
	}
	if f.Culled() != 1 {
		t.Errorf("Expected culled count 1, got %d", f.Culled())
	}
}

func TestFieldRemovesInSameFrameOpacityHitsZero(t *testing.T) {
	f := NewField[Particle](10)
	f.Append(Particle{Life: 16, TTL: 100, Glyph: 'x'})

	visited := 0
	removed := f.Step(16, func(p *Particle, a float64) { visited++ })

	if removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if visited != 0 {
		t.Errorf("Expected expired particle not painted, got %d visits", visited)
	}
	if f.Len() != 0 {
		t.Errorf("Expected empty field, got %d", f.Len())
	}
}

func TestFieldAppendEvictsOldestFirst(t *testing.T) {
	f := NewField[Particle](3)
	for _, g := range "abcde" {
		f.Append(Particle{Life: 100, TTL: 100, Glyph: g})
	}

	if f.Len() != 3 {
		t.Fatalf("Expected len 3, got %d", f.Len())
	}
	got := ""
	for _, p := range f.Snapshot() {
		got += string(p.Glyph)
	}
	if got != "cde" {
		t.Errorf("Expected survivors \"cde\", got %q", got)
	}
	if f.Evicted() != 2 {
		t.Errorf("Expected 2 evicted, got %d", f.Evicted())
	}
}

func TestFieldAppendBurstOverCap(t *testing.T) {
	f := NewField[Particle](2)
	n := f.Append(
		Particle{Life: 1, TTL: 1, Glyph: '1'},
		Particle{Life: 1, TTL: 1, Glyph: '2'},
		Particle{Life: 1, TTL: 1, Glyph: '3'},
		Particle{Life: 1, TTL: 1, Glyph: '4'},
	)
	if n != 2 {
		t.Errorf("Expected 2 evicted, got %d", n)
	}
	snap := f.Snapshot()
	if len(snap) != 2 || snap[0].Glyph != '3' || snap[1].Glyph != '4' {
		t.Errorf("Expected [3 4], got %+v", snap)
	}
}

func TestFieldStepVisitsNewestFirst(t *testing.T) {
	f := NewField[Particle](10)
	for _, g := range "abc" {
		f.Append(Particle{Life: 100, TTL: 100, Glyph: g})
	}

	order := ""
	f.Step(16, func(p *Particle, a float64) { order += string(p.Glyph) })
	if order != "cba" {
		t.Errorf("Expected reverse order \"cba\", got %q", order)
	}
}

func TestFieldStepMixedExpiry(t *testing.T) {
	f := NewField[Particle](10)
	f.Append(
		Particle{Life: 10, TTL: 100, Glyph: 'a'},
		Particle{Life: 100, TTL: 100, Glyph: 'b'},
		Particle{Life: 5, TTL: 100, Glyph: 'c'},
		Particle{Life: 50, TTL: 100, Glyph: 'd'},
	)

	opacities := map[rune]float64{}
	removed := f.Step(16, func(p *Particle, a float64) { opacities[p.Glyph] = a })

	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	snap := f.Snapshot()
	if len(snap) != 2 || snap[0].Glyph != 'b' || snap[1].Glyph != 'd' {
		t.Fatalf("Expected survivors [b d] in order, got %+v", snap)
	}
	if got, want := opacities['b'], 84.0/100.0; got != want {
		t.Errorf("Expected opacity %v for b, got %v", want, got)
	}
	if got, want := opacities['d'], 34.0/100.0; got != want {
		t.Errorf("Expected opacity %v for d, got %v", want, got)
	}
}

func TestParticleAgeAdvancesPosition(t *testing.T) {
	p := Particle{Life: 100, TTL: 100}
	p.VX, p.VY = 0.05, -0.025
	p.X, p.Y = 10, 10

	p.Age(16)

	if math.Abs(p.X-10.8) > 1e-9 || math.Abs(p.Y-9.6) > 1e-9 {
		t.Errorf("Expected position (10.8, 9.6), got (%v, %v)", p.X, p.Y)
	}
	if p.Life != 84 {
		t.Errorf("Expected life 84, got %v", p.Life)
	}
}

func TestOpacityZeroTTL(t *testing.T) {
	p := Particle{Life: 10, TTL: 0}
	if p.Opacity() != 0 {
		t.Errorf("Expected zero opacity for zero ttl, got %v", p.Opacity())
	}
}

func TestShockRadiusGrows(t *testing.T) {
	f := NewField[Shock](4)
	f.Append(Shock{X: 5, Y: 5, Life: 100, TTL: 100, MaxRadius: 40})

	var radius float64
	f.Step(50, func(s *Shock, a float64) { radius = s.Radius() })
	if radius != 20 {
		t.Errorf("Expected radius 20 at half life, got %v", radius)
	}

	f.Step(50, nil)
	if f.Len() != 0 {
		t.Errorf("Expected ring removed at end of life, got %d", f.Len())
	}
}

func TestFieldReset(t *testing.T) {
	f := NewField[Particle](4)
	f.Append(Particle{Life: 1, TTL: 1}, Particle{Life: 1, TTL: 1})
	f.Reset()
	if f.Len() != 0 {
		t.Errorf("Expected empty field after reset, got %d", f.Len())
	}
	if f.Capacity() != 4 {
		t.Errorf("Expected capacity 4, got %d", f.Capacity())
	}
}
