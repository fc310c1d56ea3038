package model

// Theme names. The palettes themselves live in the styles package.
const (
	ThemePurple = "Purple"
	ThemeOcean  = "Ocean"
	ThemeForest = "Forest"
	ThemeSunset = "Sunset"
	ThemeRose   = "Rose"
)

// DefaultTheme is active when nothing else was chosen.
const DefaultTheme = ThemePurple

// Themes lists every theme in picker order.
var Themes = []string{ThemePurple, ThemeOcean, ThemeForest, ThemeSunset, ThemeRose}

// IsTheme reports whether name is a known theme.
func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// NextTheme cycles through Themes by delta.
func NextTheme(name string, delta int) string {
	return Themes[cycleIndex(indexOf(Themes, name), delta, len(Themes))]
}
