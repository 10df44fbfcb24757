package host

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/parameter/visual"
)

// Section is one titled block of the page
type Section struct {
	Title string
	Lines []string
}

// Page is the static portfolio drawn beneath the overlay
type Page struct {
	Name     string
	Headline string
	Sections []Section
	Footer   string
}

// DefaultPage is the built-in portfolio backdrop
func DefaultPage() *Page {
	return &Page{
		Name:     "glyph-trail",
		Headline: "Software engineer. Systems, tooling and small delightful details.",
		Sections: []Section{
			{Title: "About", Lines: []string{
				"I build services and the tools around them.",
				"Move the mouse: every gesture leaves a short trail of glyphs.",
			}},
			{Title: "Projects", Lines: []string{
				"trail     particle effects for terminal pages",
				"ledger    append-only storage for small services",
				"relay     message plumbing with backpressure",
			}},
			{Title: "Contact", Lines: []string{
				"mail   hello@example.com",
			}},
		},
		Footer: "q quit   m motion   p pointer   h metrics",
	}
}

// Draw fills the screen with the page; content that does not fit is clipped
func (p *Page) Draw(screen tcell.Screen, cols, rows int) {
	bg := style(visual.PageFg, visual.PageBg)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	const margin = 4
	y := 1
	drawText(screen, margin, y, cols, p.Name, style(visual.PageHeading, visual.PageBg).Bold(true))
	y++
	drawText(screen, margin, y, cols, p.Headline, style(visual.PageMuted, visual.PageBg))
	y += 2

	for _, s := range p.Sections {
		if y >= rows-1 {
			break
		}
		drawText(screen, margin, y, cols, s.Title, style(visual.PageAccent, visual.PageBg).Bold(true))
		y++
		for _, line := range s.Lines {
			if y >= rows-1 {
				break
			}
			drawText(screen, margin+2, y, cols, line, bg)
			y++
		}
		y++
	}

	if rows > 0 && p.Footer != "" {
		drawText(screen, margin, rows-1, cols, p.Footer, style(visual.PageMuted, visual.PageBg))
	}
}

// Background returns the color under every overlay cell
func (p *Page) Background() core.RGB {
	return visual.PageBg
}

func drawText(screen tcell.Screen, x, y, maxX int, text string, st tcell.Style) int {
	for _, r := range text {
		if x >= maxX {
			break
		}
		screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}
