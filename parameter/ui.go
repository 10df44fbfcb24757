package parameter

// Cell Geometry
const (
	// CellWidth and CellHeight map one terminal cell to viewport pixels
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Pixel Ratio
const (
	// MinPixelRatio and MaxPixelRatio clamp the backing store scale
	MinPixelRatio = 1.0
	MaxPixelRatio = 1.75
)

// HUD
const (
	// HUDWidth is the metrics panel width in cells
	HUDWidth = 28

	// HUDTitle heads the metrics panel
	HUDTitle = " glyph-trail "
)
