package texture

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Map is an immutable rectangular grid of glyphs. Row 0 is the first line of
// the source text.
type Map struct {
	cells  [][]rune
	width  int
	height int
}

// Parse builds a Map from texture text. The width is the rune count of the
// text before the first line break and the height is the number of line
// breaks. Text after the last line break is not part of the grid. Short rows
// are padded with Blank and long rows are cut to the width.
func Parse(content string) (*Map, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty content", ErrMalformed)
	}
	first := strings.IndexByte(content, '\n')
	if first < 0 {
		return nil, fmt.Errorf("%w: no line break found", ErrMalformed)
	}
	width := utf8.RuneCountInString(content[:first])
	if width == 0 {
		return nil, fmt.Errorf("%w: first line is empty", ErrMalformed)
	}
	height := strings.Count(content, "\n")

	lines := strings.SplitN(content, "\n", height+1)[:height]
	cells := make([][]rune, height)
	for i, line := range lines {
		row := make([]rune, width)
		n := copy(row, []rune(line))
		for j := n; j < width; j++ {
			row[j] = Blank
		}
		cells[i] = row
	}

	return &Map{cells: cells, width: width, height: height}, nil
}

// Load reads and parses the texture file at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// At returns the glyph at (row, col) and whether the position is inside the grid.
func (m *Map) At(row, col int) (rune, bool) {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return Blank, false
	}
	return m.cells[row][col], true
}

// Glyphs returns the distinct glyphs present in the grid.
func (m *Map) Glyphs() map[rune]bool {
	set := make(map[rune]bool)
	for _, row := range m.cells {
		for _, r := range row {
			set[r] = true
		}
	}
	return set
}
