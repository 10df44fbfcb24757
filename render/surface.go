package render

import (
	"math"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/vmath"
)

// Viewport is the host's visible area and display density
type Viewport struct {
	Cols, Rows int
	// PixelRatio is the device pixel ratio; values below 1 are treated as 1
	PixelRatio float64
}

// Width returns the viewport width in pixels
func (v Viewport) Width() float64 {
	return float64(v.Cols) * parameter.CellWidth
}

// Height returns the viewport height in pixels
func (v Viewport) Height() float64 {
	return float64(v.Rows) * parameter.CellHeight
}

// Surface is the full-viewport drawing surface: pixel geometry plus an optional canvas.
// A nil canvas degrades every paint to a no-op.
type Surface struct {
	canvas   Canvas
	maxRatio float64

	viewport    Viewport
	ratio       float64
	pixelWidth  int
	pixelHeight int
}

// NewSurface wraps canvas, which may be nil; maxRatio caps the pixel ratio
func NewSurface(canvas Canvas, maxRatio float64) *Surface {
	if maxRatio < parameter.MinPixelRatio {
		maxRatio = parameter.MinPixelRatio
	}
	return &Surface{canvas: canvas, maxRatio: maxRatio, ratio: parameter.MinPixelRatio}
}

// Available reports whether paints reach a canvas
func (s *Surface) Available() bool {
	return s.canvas != nil
}

// Resize matches the surface to the viewport with the clamped pixel ratio.
// Returns false when the resulting geometry is unchanged.
func (s *Surface) Resize(vp Viewport) bool {
	ratio := vmath.Clamp(vp.PixelRatio, parameter.MinPixelRatio, s.maxRatio)
	if math.IsNaN(ratio) {
		ratio = parameter.MinPixelRatio
	}
	pw := int(math.Floor(vp.Width() * ratio))
	ph := int(math.Floor(vp.Height() * ratio))

	if vp.Cols == s.viewport.Cols && vp.Rows == s.viewport.Rows &&
		pw == s.pixelWidth && ph == s.pixelHeight {
		return false
	}

	s.viewport = vp
	s.ratio = ratio
	s.pixelWidth = pw
	s.pixelHeight = ph
	if s.canvas != nil {
		s.canvas.Resize(vp.Cols, vp.Rows)
	}
	return true
}

// PixelSize returns backing store dimensions
func (s *Surface) PixelSize() (width, height int) {
	return s.pixelWidth, s.pixelHeight
}

// Ratio returns the applied pixel ratio
func (s *Surface) Ratio() float64 {
	return s.ratio
}

// Viewport returns the last applied viewport
func (s *Surface) Viewport() Viewport {
	return s.viewport
}

// Clear wipes the whole surface
func (s *Surface) Clear() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

// Glyph paints r centered at (x, y) px. The gradient runs across the glyph's
// rotated horizontal extent and is sampled where the glyph's cell center falls.
func (s *Surface) Glyph(x, y, size, rotation float64, r rune, alpha float64, g Gradient) {
	if s.canvas == nil || alpha <= 0 {
		return
	}
	col, row, ok := s.cellAt(x, y)
	if !ok {
		return
	}
	center := vmath.Vec2F{
		X: (float64(col) + 0.5) * parameter.CellWidth,
		Y: (float64(row) + 0.5) * parameter.CellHeight,
	}
	offset := vmath.V2FSub(center, vmath.Vec2F{X: x, Y: y})
	fg := g.Along(offset, vmath.V2FAxis(rotation), size)
	s.canvas.Glyph(col, row, r, fg, alpha)
}

// Ring paints r along a circle of radius px around (x, y), tinted by angle
func (s *Surface) Ring(x, y, radius float64, r rune, alpha float64, g Gradient) {
	if s.canvas == nil || alpha <= 0 {
		return
	}
	if radius < parameter.CellWidth/2 {
		if col, row, ok := s.cellAt(x, y); ok {
			s.canvas.Glyph(col, row, r, g.At(0), alpha)
		}
		return
	}
	// one sample per half cell of circumference
	steps := max(8, int(2*math.Pi*radius/(parameter.CellWidth/2)))
	lastCol, lastRow := -1, -1
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		p := vmath.V2FAdd(vmath.Vec2F{X: x, Y: y}, vmath.V2FPolar(t*2*math.Pi, radius))
		col, row, ok := s.cellAt(p.X, p.Y)
		if !ok || (col == lastCol && row == lastRow) {
			continue
		}
		lastCol, lastRow = col, row
		s.canvas.Glyph(col, row, r, g.At(t), alpha)
	}
}

// Release detaches the canvas; the surface keeps its geometry but paints nothing
func (s *Surface) Release() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
	s.canvas = nil
}

func (s *Surface) cellAt(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x / parameter.CellWidth)
	row = int(y / parameter.CellHeight)
	if col >= s.viewport.Cols || row >= s.viewport.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Composite blends an overlay cell over the backdrop color beneath it
func Composite(under core.RGB, c Cell) core.RGB {
	return under.Blend(c.Fg, c.Alpha)
}
