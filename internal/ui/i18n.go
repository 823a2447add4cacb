package ui

import "github.com/tartampluch/age-calculator/internal/config"

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *AgeCalculatorApp) UpdateLocalizer() {
	lang := app.Prefs.Get().Language
	if lang == "" {
		lang = config.SupportedLanguages[0]
	}
	app.Localizer = app.Bundle.Localizer(lang)
}

// GetMsg is a helper to translate a key safely.
func (app *AgeCalculatorApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	return app.Localizer.Msg(key)
}

// Format translates a key with template data.
func (app *AgeCalculatorApp) Format(key string, data map[string]any) string {
	if app.Localizer == nil {
		return key
	}
	return app.Localizer.Format(key, data)
}
