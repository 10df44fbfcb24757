package render

import (
	"testing"

	"github.com/lixenwraith/glyph-trail/core"
)

func TestBufferGlyphAndClear(t *testing.T) {
	b := NewBuffer(4, 3)
	fg := core.RGB{R: 1, G: 2, B: 3}

	b.Glyph(1, 1, 'a', fg, 0.5)
	b.Glyph(1, 1, 'b', fg, 0.7)
	b.Glyph(3, 2, 'c', fg, 2)

	if b.Count() != 2 {
		t.Errorf("Expected 2 touched cells, got %d", b.Count())
	}
	if c := b.Get(1, 1); c.Rune != 'b' || c.Alpha != 0.7 {
		t.Errorf("Expected later glyph to win, got %+v", c)
	}
	if c := b.Get(3, 2); c.Alpha != 1 {
		t.Errorf("Expected alpha clamped to 1, got %v", c.Alpha)
	}

	b.Clear()
	if b.Count() != 0 || !b.Get(1, 1).Empty() {
		t.Error("Expected empty buffer after clear")
	}
}

func TestBufferIgnoresInvalidGlyphs(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Glyph(-1, 0, 'x', core.RGB{}, 1)
	b.Glyph(0, 5, 'x', core.RGB{}, 1)
	b.Glyph(0, 0, 0, core.RGB{}, 1)
	b.Glyph(0, 0, 'x', core.RGB{}, 0)

	if b.Count() != 0 {
		t.Errorf("Expected nothing painted, got %d", b.Count())
	}
}

func TestBufferResizeClears(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Glyph(1, 1, 'x', core.RGB{}, 1)
	b.Resize(5, 1)

	if w, h := b.Size(); w != 5 || h != 1 {
		t.Errorf("Expected 5x1, got %dx%d", w, h)
	}
	if b.Count() != 0 {
		t.Errorf("Expected cleared after resize, got %d", b.Count())
	}
}

func TestBufferTouchedOrder(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Glyph(2, 2, 'a', core.RGB{}, 1)
	b.Glyph(0, 1, 'b', core.RGB{}, 1)

	var got []rune
	b.Touched(func(col, row int, c Cell) { got = append(got, c.Rune) })
	if len(got) != 2 || got[0] != 'a' || got[1] != 'b' {
		t.Errorf("Expected paint order [a b], got %q", got)
	}
}
