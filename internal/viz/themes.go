package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the viewer
type Theme struct {
	Name      string
	Globe     lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:      "default",
		Globe:     lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#00ffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Globe:     lipgloss.Color("#00a8cc"), // Ocean blue
		Secondary: lipgloss.Color("#0077be"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Globe:     lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Globe:     lipgloss.Color("#bbbbbb"),
		Secondary: lipgloss.Color("#999999"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#ffffff"),
		Warning:   lipgloss.Color("#aaaaaa"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Globe:     lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeOcean,
		ThemeRetroGreen,
		ThemeMono,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the default theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
