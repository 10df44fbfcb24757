package render

import "github.com/lixenwraith/glyph-trail/core"

// Canvas is a cell-addressed drawing target layered above the page
type Canvas interface {
	// Resize sets the canvas dimensions in cells and clears it
	Resize(cols, rows int)
	// Clear removes every glyph
	Clear()
	// Glyph draws r at (col, row); later draws replace earlier ones in the same cell
	Glyph(col, row int, r rune, fg core.RGB, alpha float64)
}

// CanvasFactory creates the canvas for one mount; an error leaves the surface paint-less
type CanvasFactory func() (Canvas, error)
