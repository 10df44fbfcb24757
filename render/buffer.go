package render

import (
	"github.com/lixenwraith/glyph-trail/core"
)

// Buffer is an in-memory Canvas with touched-cell tracking.
// The terminal host composites it over the page; the simulate command reads it directly.
type Buffer struct {
	cells   []Cell
	touched []int
	width   int
	height  int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	clear(b.cells)
	b.touched = b.touched[:0]
}

// Clear empties the touched cells only
func (b *Buffer) Clear() {
	for _, idx := range b.touched {
		b.cells[idx] = Cell{}
	}
	b.touched = b.touched[:0]
}

// Glyph implements Canvas
func (b *Buffer) Glyph(col, row int, r rune, fg core.RGB, alpha float64) {
	if !b.inBounds(col, row) || r == 0 || alpha <= 0 {
		return
	}
	idx := row*b.width + col
	if b.cells[idx].Empty() {
		b.touched = append(b.touched, idx)
	}
	b.cells[idx] = Cell{Rune: r, Fg: fg, Alpha: min(alpha, 1)}
}

// Get returns the cell at (col, row), zero when out of bounds
func (b *Buffer) Get(col, row int) Cell {
	if !b.inBounds(col, row) {
		return Cell{}
	}
	return b.cells[row*b.width+col]
}

// Touched calls fn for every non-empty cell in paint order
func (b *Buffer) Touched(fn func(col, row int, c Cell)) {
	for _, idx := range b.touched {
		fn(idx%b.width, idx/b.width, b.cells[idx])
	}
}

// Count returns the number of non-empty cells
func (b *Buffer) Count() int {
	return len(b.touched)
}

// Size returns buffer dimensions in cells
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
