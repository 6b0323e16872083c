package texture

import (
	"math"

	"github.com/san-kum/spinglobe/internal/sphere"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

// Fill patterns from empty to all eight dots.
var densityTiers = [5]rune{
	0x00,        // none
	0x01 | 0x08, // top row
	0x03 | 0x18, // top two rows
	0x07 | 0x38, // dots 1-6
	0xFF,        // full cell
}

// DensityTier returns the Braille cell for r in [0, 1], split into five bands
// of width 0.2. Values from 0.8 up use the full cell.
func DensityTier(r float64) rune {
	switch {
	case r < 0.2:
		return brailleBase + densityTiers[0]
	case r < 0.4:
		return brailleBase + densityTiers[1]
	case r < 0.6:
		return brailleBase + densityTiers[2]
	case r < 0.8:
		return brailleBase + densityTiers[3]
	default:
		return brailleBase + densityTiers[4]
	}
}

// meridian is the longitude period of the procedural sources: twelve
// stripes around the sphere, each lit for its first half.
const meridian = math.Pi / 6

// brailleGlyph fills the lit half of each meridian band with a density
// pattern chosen by how far the point sits from the top pole.
func brailleGlyph(c sphere.Coords, rotation float64) rune {
	long := spin(c.Long, rotation)
	if math.IsNaN(long) || math.IsNaN(c.Lat) {
		return Blank
	}
	if math.Mod(long, meridian) < meridian/2 {
		return DensityTier(c.Lat / math.Pi)
	}
	return brailleBase
}

// stripeGlyph draws solid meridian bands with thin edge glyphs.
func stripeGlyph(c sphere.Coords, rotation float64) rune {
	long := spin(c.Long, rotation)
	if math.IsNaN(long) {
		return Blank
	}
	m := math.Mod(long, meridian)
	switch {
	case m < 0.05*meridian/2:
		return brailleBase + 0xB8
	case m < 0.95*meridian/2:
		return brailleBase + 0xFF
	case m < meridian/2:
		return brailleBase + 0x47
	default:
		return brailleBase
	}
}

// IsBraille reports whether r is in the Braille Patterns block.
func IsBraille(r rune) bool {
	return r >= brailleBase && r <= brailleBase+0xFF
}
