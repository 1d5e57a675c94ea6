package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kaelum/glimmer/internal/particle"
)

// Theme defines the color scheme for the TUI. Palette is indexed by
// particle.Color, so every theme remaps the seven spawn hues.
type Theme struct {
	Name    string
	Palette [particle.NumColors]lipgloss.Color
	Header  lipgloss.Color
	Muted   lipgloss.Color
	Graph   lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name: "cyberpunk",
		Palette: [particle.NumColors]lipgloss.Color{
			"#ff2a6d", "#05ffa1", "#f9f871", "#00bfff", "#ff00ff", "#00ffff", "#ffffff",
		},
		Header: lipgloss.Color("#00ffff"),
		Muted:  lipgloss.Color("#666688"),
		Graph:  lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name: "retro",
		Palette: [particle.NumColors]lipgloss.Color{
			"#00cc00", "#00ff00", "#88ff88", "#00aa00", "#44ff44", "#00ee88", "#ccffcc",
		},
		Header: lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Graph:  lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name: "minimal",
		Palette: [particle.NumColors]lipgloss.Color{
			"#ff6666", "#66cc66", "#cccc66", "#6699cc", "#cc66cc", "#66cccc", "#ffffff",
		},
		Header: lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
		Graph:  lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name: "ocean",
		Palette: [particle.NumColors]lipgloss.Color{
			"#0077be", "#00a8cc", "#ffd700", "#4488ff", "#7fdbff", "#39cccc", "#e0f0ff",
		},
		Header: lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
		Graph:  lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name: "sunset",
		Palette: [particle.NumColors]lipgloss.Color{
			"#ff6b6b", "#feca57", "#ffd32a", "#ff9ff3", "#f368e0", "#ff7f50", "#fff5f5",
		},
		Header: lipgloss.Color("#feca57"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Graph:  lipgloss.Color("#ff6b6b"),
	}

	// Default theme
	CurrentTheme = ThemeCyberpunk

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
