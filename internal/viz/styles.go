package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(34)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	helpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 2)
)

type palette struct {
	globe, header, value, running, paused lipgloss.Style
	sparkHigh, sparkMid, sparkLow         lipgloss.Style
}

func newPalette(t Theme) palette {
	return palette{
		globe:     lipgloss.NewStyle().Foreground(t.Globe),
		header:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		value:     lipgloss.NewStyle().Foreground(t.Text),
		running:   lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		paused:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		sparkHigh: lipgloss.NewStyle().Foreground(t.Success),
		sparkMid:  lipgloss.NewStyle().Foreground(t.Secondary),
		sparkLow:  lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// SparklineChart renders a mini sparkline from values
func (p palette) SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	// Show the most recent samples.
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var result strings.Builder
	for _, v := range values {
		norm := (v - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		if norm > 0.7 {
			result.WriteString(p.sparkHigh.Render(c))
		} else if norm > 0.3 {
			result.WriteString(p.sparkMid.Render(c))
		} else {
			result.WriteString(p.sparkLow.Render(c))
		}
	}

	return result.String()
}
