package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("fx.frames")
	b := r.Ints.Get("fx.frames")
	if a != b {
		t.Error("Expected the same pointer for repeated Get")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Set(1.5)
		}()
	}
	wg.Wait()
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestRegistrySnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get("fx.motion").Store("auto")
	r.Ints.Get("fx.particles").Store(7)
	r.Bools.Get("fx.mounted").Store(true)
	r.Floats.Get("fx.paint_ms").Set(0.25)

	snap := r.Snapshot()
	want := []Entry{
		{"fx.motion", "auto"},
		{"fx.mounted", "true"},
		{"fx.paint_ms", "0.250"},
		{"fx.particles", "7"},
	}
	if len(snap) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(snap))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("entry %d: Expected %v, got %v", i, want[i], snap[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected total 4, got %d", r.TotalCount())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected empty zero value")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %q", MaxStringLen, got)
	}
}
