package render

import (
	"strings"
	"unicode/utf8"
)

// Frame is one rendered image, top row first.
type Frame struct {
	Rows []string
	// Hits counts pixels whose ray met the sphere.
	Hits int
}

func (f Frame) Lines() int { return len(f.Rows) }

// Width returns the glyph count of the first row.
func (f Frame) Width() int {
	if len(f.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(f.Rows[0])
}

// String joins the rows, each terminated by a line break.
func (f Frame) String() string {
	var b strings.Builder
	for _, row := range f.Rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}

func (f Frame) Bytes() []byte { return []byte(f.String()) }

// Coverage is the fraction of pixels covered by the sphere.
func (f Frame) Coverage() float64 {
	total := f.Lines() * f.Width()
	if total == 0 {
		return 0
	}
	return float64(f.Hits) / float64(total)
}
