package render

import "github.com/lixenwraith/glyph-trail/core"

// Cell is one overlay cell: a glyph tinted Fg at Alpha over whatever lies beneath
type Cell struct {
	Rune  rune
	Fg    core.RGB
	Alpha float64
}

// Empty reports whether the cell lets the layer beneath show through untouched
func (c Cell) Empty() bool {
	return c.Rune == 0 || c.Alpha <= 0
}
