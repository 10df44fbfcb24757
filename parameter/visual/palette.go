package visual

import "github.com/lixenwraith/glyph-trail/core"

// Page palette (dark portfolio theme)
var (
	PageBg      = core.RGB{R: 10, G: 12, B: 24}
	PageFg      = core.RGB{R: 200, G: 204, B: 220}
	PageHeading = core.RGB{R: 0, G: 212, B: 255}
	PageMuted   = core.RGB{R: 110, G: 116, B: 140}
	PageAccent  = core.RGB{R: 179, G: 71, B: 217}
)

// HUD palette
var (
	HUDBg    = core.RGB{R: 20, G: 22, B: 36}
	HUDLabel = core.RGB{R: 150, G: 150, B: 170}
	HUDValue = core.RGB{R: 100, G: 220, B: 150}
	HUDOff   = core.RGB{R: 220, G: 90, B: 90}
)
