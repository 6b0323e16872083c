package metrics

import "github.com/san-kum/spinglobe/internal/render"

// Coverage is the mean fraction of each frame covered by the sphere.
type Coverage struct {
	name    string
	samples []float64
	total   float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(n int, rotation float64, f render.Frame) {
	v := f.Coverage()
	c.samples = append(c.samples, v)
	c.total += v
}

func (c *Coverage) Value() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	return c.total / float64(len(c.samples))
}

// Series returns the per-frame coverage in frame order.
func (c *Coverage) Series() []float64 { return c.samples }

func (c *Coverage) Reset() {
	c.samples = nil
	c.total = 0
}

// GlyphVariety tracks the largest number of distinct non-blank glyphs seen
// in a single frame.
type GlyphVariety struct {
	name string
	max  int
}

func NewGlyphVariety() *GlyphVariety {
	return &GlyphVariety{name: "glyph_variety"}
}

func (g *GlyphVariety) Name() string { return g.name }

func (g *GlyphVariety) Observe(n int, rotation float64, f render.Frame) {
	seen := make(map[rune]bool)
	for _, row := range f.Rows {
		for _, r := range row {
			if r != ' ' {
				seen[r] = true
			}
		}
	}
	if len(seen) > g.max {
		g.max = len(seen)
	}
}

func (g *GlyphVariety) Value() float64 { return float64(g.max) }

func (g *GlyphVariety) Reset() { g.max = 0 }
