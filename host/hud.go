package host

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/parameter"
	"github.com/lixenwraith/glyph-trail/parameter/visual"
	"github.com/lixenwraith/glyph-trail/status"
)

// drawHUD renders the metrics panel in the top right corner
func drawHUD(screen tcell.Screen, reg *status.Registry, cols, rows int) {
	width := parameter.HUDWidth
	if cols < width || rows < 2 {
		return
	}
	x0 := cols - width

	entries := reg.Snapshot()
	height := min(len(entries)+1, rows-1)

	bg := style(visual.HUDLabel, visual.HUDBg)
	for y := 0; y < height; y++ {
		for x := x0; x < cols; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	drawText(screen, x0, 0, cols, parameter.HUDTitle, style(visual.HUDValue, visual.HUDBg).Bold(true))

	for i, e := range entries {
		y := i + 1
		if y >= height {
			break
		}
		valueStyle := style(visual.HUDValue, visual.HUDBg)
		if e.Value == "false" {
			valueStyle = style(visual.HUDOff, visual.HUDBg)
		}
		label := fmt.Sprintf(" %-14s", e.Key)
		x := drawText(screen, x0, y, cols, label, bg)
		drawText(screen, x, y, cols, e.Value, valueStyle)
	}
}
