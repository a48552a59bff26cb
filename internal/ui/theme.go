package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/shhac/burrow/internal/ui/settings"
)

// Theme modes stored under settings.PrefTheme
const (
	ThemeSystem = "system"
	ThemeDark   = "dark"
	ThemeLight  = "light"
)

// forcedVariant pins the default theme to one variant regardless of the OS setting.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// themeFor returns the theme for a stored mode. Unknown modes follow the system.
func themeFor(mode string) fyne.Theme {
	switch mode {
	case ThemeDark:
		return &forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	case ThemeLight:
		return &forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	default:
		return theme.DefaultTheme()
	}
}

// ApplyTheme switches the running app to mode.
func ApplyTheme(a fyne.App, mode string) {
	a.Settings().SetTheme(themeFor(mode))
}

// LoadThemePreference applies the theme saved by the preferences dialog.
func LoadThemePreference(a fyne.App) {
	ApplyTheme(a, a.Preferences().StringWithFallback(settings.PrefTheme, ThemeSystem))
}
