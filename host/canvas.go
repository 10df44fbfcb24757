package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/render"
)

// Canvas is the overlay layer; glyphs land in a cell buffer and are composited
// over the page when the host draws
type Canvas struct {
	*render.Buffer
}

// NewCanvas creates an empty overlay
func NewCanvas() *Canvas {
	return &Canvas{Buffer: render.NewBuffer(0, 0)}
}

// Factory adapts the canvas to render.CanvasFactory
func (c *Canvas) Factory() render.CanvasFactory {
	return func() (render.Canvas, error) { return c, nil }
}

// Draw composites every painted cell over bg; cells keep the page background
func (c *Canvas) Draw(screen tcell.Screen, bg core.RGB) {
	bgColor := rgb(bg)
	c.Touched(func(col, row int, cell render.Cell) {
		fg := render.Composite(bg, cell)
		st := tcell.StyleDefault.Background(bgColor).Foreground(rgb(fg))
		screen.SetContent(col, row, cell.Rune, nil, st)
	})
}

func rgb(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(bg))
}
