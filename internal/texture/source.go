package texture

import (
	"fmt"

	"github.com/san-kum/spinglobe/internal/sphere"
)

// Source selects how a hit point is turned into a glyph.
type Source int

const (
	SourceTexture Source = iota
	SourceBraille
	SourceFallback
	SourceStripes
)

var sourceNames = map[Source]string{
	SourceTexture:  "texture",
	SourceBraille:  "braille",
	SourceFallback: "fallback",
	SourceStripes:  "stripes",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// ParseSource maps a source name to a Source.
func ParseSource(name string) (Source, error) {
	for s, n := range sourceNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// SourceNames lists the accepted source names.
func SourceNames() []string {
	return []string{"texture", "braille", "fallback", "stripes"}
}

type Sampler struct {
	Map    *Map
	Source Source
}

func NewSampler(m *Map, src Source) *Sampler {
	return &Sampler{Map: m, Source: src}
}

// Sample returns the glyph for a hit at c.
func (s *Sampler) Sample(c sphere.Coords, rotation float64) rune {
	switch s.Source {
	case SourceBraille:
		return brailleGlyph(c, rotation)
	case SourceStripes:
		return stripeGlyph(c, rotation)
	case SourceFallback:
		if row, col, ok := locate(c, rotation, s.Map); ok {
			g, _ := s.Map.At(row, col)
			return g
		}
		return brailleGlyph(c, rotation)
	default:
		return Sample(c, rotation, s.Map)
	}
}

// SampleHit is Sample for an optional hit; a miss is always Blank.
func (s *Sampler) SampleHit(c sphere.Coords, hit bool, rotation float64) rune {
	if !hit {
		return Blank
	}
	return s.Sample(c, rotation)
}
