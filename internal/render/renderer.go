package render

import (
	"strings"

	"github.com/san-kum/spinglobe/internal/sphere"
	"github.com/san-kum/spinglobe/internal/texture"
	"github.com/san-kum/spinglobe/internal/vecmath"
)

// Camera is the fixed ray origin.
var Camera = vecmath.Vec3{X: 0, Y: 0, Z: -1.5}

type Renderer struct {
	sampler *texture.Sampler
	width   int
	height  int
}

func New(s *texture.Sampler) *Renderer {
	w := s.Map.Width()
	return &Renderer{
		sampler: s,
		width:   w,
		height:  w / 4,
	}
}

func (r *Renderer) Width() int  { return r.width }
func (r *Renderer) Height() int { return r.height }

// Direction returns the ray direction through pixel (x, y). Columns span
// [-2, 2) and rows span (1, -1] from the top down.
func (r *Renderer) Direction(x, y int) vecmath.Vec3 {
	w := float64(r.width)
	return vecmath.Vec3{
		X: float64(x)*4/w - 2,
		Y: float64(y)*-2/(w/4) + 1,
		Z: 1.0,
	}
}

// Pixel returns the glyph for (x, y) and whether its ray hit the sphere.
func (r *Renderer) Pixel(x, y int, rotation float64) (rune, bool) {
	p, hit := sphere.Intersect(Camera, r.Direction(x, y))
	var c sphere.Coords
	if hit {
		c = sphere.ToGeometric(p)
	}
	return r.sampler.SampleHit(c, hit, rotation), hit
}

// Render draws the whole frame at the given rotation.
func (r *Renderer) Render(rotation float64) Frame {
	f := Frame{Rows: make([]string, r.height)}
	var b strings.Builder
	for y := 0; y < r.height; y++ {
		b.Reset()
		for x := 0; x < r.width; x++ {
			g, hit := r.Pixel(x, y, rotation)
			if hit {
				f.Hits++
			}
			b.WriteRune(g)
		}
		f.Rows[y] = b.String()
	}
	return f
}
