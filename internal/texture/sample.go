package texture

import (
	"math"

	"github.com/san-kum/spinglobe/internal/sphere"
)

// Blank is the glyph for pixels that miss the sphere or fall outside the map.
const Blank = ' '

const twoPi = 2 * math.Pi

// Sample returns the map glyph under c after spinning the sphere by rotation
// about its vertical axis. Only longitude is rotated.
func Sample(c sphere.Coords, rotation float64, m *Map) rune {
	row, col, ok := locate(c, rotation, m)
	if !ok {
		return Blank
	}
	g, _ := m.At(row, col)
	return g
}

// locate maps rotated coordinates to a grid cell. Longitude spans the width
// and latitude spans the height; the row is counted up from the bottom, so
// lat = 0 addresses row height, one past the last row.
func locate(c sphere.Coords, rotation float64, m *Map) (row, col int, ok bool) {
	long := spin(c.Long, rotation)

	x := math.Trunc(long * float64(m.width) / twoPi)
	y := math.Trunc(c.Lat * float64(m.height) / math.Pi)
	r := float64(m.height) - y

	// NaN fails every comparison and lands here too.
	if !(x >= 0 && x < float64(m.width) && r >= 0 && r < float64(m.height)) {
		return 0, 0, false
	}
	return int(r), int(x), true
}

// spin applies rotation to a longitude and normalizes it into [0, 2π).
func spin(long, rotation float64) float64 {
	l := math.Mod(long+rotation+twoPi, twoPi)
	if l < 0 {
		l += twoPi
	}
	return l
}
