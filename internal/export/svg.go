// Package export converts rendered frames to vector images.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/spinglobe/internal/render"
)

const (
	brailleBase = 0x2800
	brailleEnd  = 0x28FF
)

type SVGOptions struct {
	// Scale is the size of one Braille dot cell in pixels. A glyph is two
	// dot cells wide and four tall.
	Scale      float64
	Foreground string
	Background string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Scale: 4, Foreground: "#00ff00", Background: "#0a0a0a"}
}

// Braille dot-to-bit mapping, indexed [row][column].
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// FrameToSVG draws Braille glyphs as dots and every other non-blank glyph
// as a text cell.
func FrameToSVG(f render.Frame, opts SVGOptions) string {
	if opts.Scale <= 0 {
		opts.Scale = DefaultSVGOptions().Scale
	}
	scale := opts.Scale
	width := float64(f.Width()) * scale * 2
	height := float64(f.Lines()) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s" font-family="monospace" font-size="%.1f">
`, width, height, width, height, opts.Background, opts.Foreground, scale*3.5))

	dotRadius := scale * 0.4

	for row, line := range f.Rows {
		col := 0
		for _, r := range line {
			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			col++

			switch {
			case r == ' ':
			case r >= brailleBase && r <= brailleEnd:
				pattern := int(r - brailleBase)
				for dy := 0; dy < 4; dy++ {
					for dx := 0; dx < 2; dx++ {
						if pattern&pixelMap[dy][dx] != 0 {
							cx := baseX + float64(dx)*scale + scale/2
							cy := baseY + float64(dy)*scale + scale/2
							sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
						}
					}
				}
			default:
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, baseX, baseY+scale*3, html.EscapeString(string(r))))
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
