package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formThemes lists the values accepted by --theme. The first entry is
// the default.
var formThemes = []struct {
	name  string
	build func() *huh.Theme
}{
	{"nupack", nupackTheme},
	{"base", huh.ThemeBase},
	{"charm", huh.ThemeCharm},
	{"dracula", huh.ThemeDracula},
}

var selectedTheme string

// ThemeNames returns the accepted theme names, default first.
func ThemeNames() []string {
	names := make([]string, len(formThemes))
	for i, t := range formThemes {
		names[i] = t.name
	}
	return names
}

// IsValidTheme reports whether name is an accepted theme name.
func IsValidTheme(name string) bool {
	return slices.Contains(ThemeNames(), name)
}

// SetTheme selects the theme used by forms and the spinner.
// Unknown or empty names select the default.
func SetTheme(name string) {
	selectedTheme = name
}

func activeTheme() *huh.Theme {
	for _, t := range formThemes {
		if t.name == selectedTheme {
			return t.build()
		}
	}
	return formThemes[0].build()
}

// spinnerStyles colors the spinner like a form's selector and its title
// like a form option.
func spinnerStyles(t *huh.Theme) (spin, title lipgloss.Style) {
	spin = lipgloss.NewStyle().Foreground(t.Focused.SelectSelector.GetForeground())
	title = lipgloss.NewStyle().Foreground(t.Focused.Option.GetForeground())
	return spin, title
}
