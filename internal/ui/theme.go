package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// appTheme wraps the default theme to force a variant and optionally raise contrast.
type appTheme struct {
	fyne.Theme
	variant      fyne.ThemeVariant
	forced       bool
	highContrast bool
}

func newAppTheme(p prefs.Preferences) *appTheme {
	t := &appTheme{Theme: theme.DefaultTheme(), highContrast: p.Accessibility.HighContrast}
	switch p.Theme {
	case config.ThemeDark:
		t.variant, t.forced = theme.VariantDark, true
	case config.ThemeLight:
		t.variant, t.forced = theme.VariantLight, true
	}
	return t
}

func (t *appTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	if t.highContrast {
		dark := variant == theme.VariantDark
		switch name {
		case theme.ColorNameBackground, theme.ColorNameInputBackground:
			if dark {
				return color.Black
			}
			return color.White
		case theme.ColorNameForeground, theme.ColorNamePlaceHolder:
			if dark {
				return color.White
			}
			return color.Black
		}
	}
	return t.Theme.Color(name, variant)
}

func (app *AgeCalculatorApp) applyTheme() {
	p := app.Prefs.Get()
	app.App.Settings().SetTheme(newAppTheme(p))
	slog.Debug(config.MsgThemeApplied,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTheme, p.Theme)
}
