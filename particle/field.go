package particle

// Mortal is an effect element that ages every frame
type Mortal interface {
	// Age advances the element by dtMs and returns its opacity afterwards
	Age(dtMs float64) float64
}

// Field is an ordered, capped collection of effect elements, oldest first.
// Not safe for concurrent use; the owner drives it from the UI goroutine.
type Field[T any, P interface {
	*T
	Mortal
}] struct {
	items    []T
	capacity int

	evicted uint64
	culled  uint64
}

// Particles is the glyph particle collection
type Particles = Field[Particle, *Particle]

// Shocks is the click ring collection
type Shocks = Field[Shock, *Shock]

// NewField creates an empty field; capacity below 1 is raised to 1
func NewField[T any, P interface {
	*T
	Mortal
}](capacity int) *Field[T, P] {
	if capacity < 1 {
		capacity = 1
	}
	return &Field[T, P]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of live elements
func (f *Field[T, P]) Len() int {
	return len(f.items)
}

// Capacity returns the hard cap
func (f *Field[T, P]) Capacity() int {
	return f.capacity
}

// Append adds elements then evicts from the front until the cap holds.
// Returns the number evicted.
func (f *Field[T, P]) Append(items ...T) int {
	f.items = append(f.items, items...)
	over := len(f.items) - f.capacity
	if over <= 0 {
		return 0
	}
	n := copy(f.items, f.items[over:])
	clear(f.items[n:])
	f.items = f.items[:n]
	f.evicted += uint64(over)
	return over
}

// Step ages every element by dtMs in reverse order, removing those whose opacity
// reached zero in the same pass. visit is called for survivors with their opacity.
// Returns the number removed.
func (f *Field[T, P]) Step(dtMs float64, visit func(P, float64)) int {
	removed := 0
	for i := len(f.items) - 1; i >= 0; i-- {
		p := P(&f.items[i])
		a := p.Age(dtMs)
		if a <= 0 {
			f.items = append(f.items[:i], f.items[i+1:]...)
			removed++
			continue
		}
		if visit != nil {
			visit(p, a)
		}
	}
	if removed > 0 {
		var zero T
		tail := f.items[len(f.items):cap(f.items)]
		for i := 0; i < removed && i < len(tail); i++ {
			tail[i] = zero
		}
		f.culled += uint64(removed)
	}
	return removed
}

// Snapshot copies the live elements, oldest first
func (f *Field[T, P]) Snapshot() []T {
	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// Reset drops all elements
func (f *Field[T, P]) Reset() {
	clear(f.items)
	f.items = f.items[:0]
}

// Evicted returns the cumulative count dropped by the cap
func (f *Field[T, P]) Evicted() uint64 {
	return f.evicted
}

// Culled returns the cumulative count removed on expiry
func (f *Field[T, P]) Culled() uint64 {
	return f.culled
}
