package visual

import (
	"github.com/lixenwraith/glyph-trail/core"
)

// Glyph gradient endpoints, fixed regardless of particle state
var (
	GradientStart = core.RGB{R: 0, G: 212, B: 255}
	GradientEnd   = core.RGB{R: 179, G: 71, B: 217}
)

// GradientStopAlpha is the alpha carried by both gradient stops
const GradientStopAlpha = 0.95
