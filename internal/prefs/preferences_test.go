package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

func TestDefaults_AreValid(t *testing.T) {
	d := prefs.Defaults()
	require.NoError(t, d.Validate())

	assert.Equal(t, config.ThemeAuto, d.Theme)
	assert.Equal(t, config.InputManual, d.InputMethod)
	assert.Equal(t, config.DateFormatMDY, d.DateFormat)
	assert.Equal(t, config.ShareText, d.ShareFormat)
	assert.False(t, d.AutoCalculate)
	assert.False(t, d.RememberLastInput)
	assert.True(t, d.Accessibility.AnnounceResults)
	assert.False(t, d.Accessibility.HighContrast)
}

func TestValidate_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*prefs.Preferences)
	}{
		{"Theme", func(p *prefs.Preferences) { p.Theme = "neon" }},
		{"Share format", func(p *prefs.Preferences) { p.ShareFormat = "image" }},
		{"Input method", func(p *prefs.Preferences) { p.InputMethod = "voice" }},
		{"Date format", func(p *prefs.Preferences) { p.DateFormat = "DD.MM.YYYY" }},
		{"Language", func(p *prefs.Preferences) { p.Language = "xx" }},
		{"Empty language", func(p *prefs.Preferences) { p.Language = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prefs.Defaults()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), prefs.ErrInvalidPreferences)
		})
	}
}

func TestApply(t *testing.T) {
	p := prefs.Defaults()

	require.NoError(t, p.Apply(config.PrefTheme, "dark"))
	require.NoError(t, p.Apply(config.PrefAutoCalculate, "true"))
	require.NoError(t, p.Apply(config.PrefHighContrast, "1"))
	require.NoError(t, p.Apply(" LANGUAGE ", " fr "))

	assert.Equal(t, "dark", p.Theme)
	assert.True(t, p.AutoCalculate)
	assert.True(t, p.Accessibility.HighContrast)
	assert.Equal(t, "fr", p.Language)

	assert.ErrorIs(t, p.Apply("colour", "red"), prefs.ErrUnknownPreference)
	assert.ErrorIs(t, p.Apply(config.PrefShowFunFacts, "maybe"), prefs.ErrInvalidPreferences)
}

func TestSettings_CoversEveryKey(t *testing.T) {
	s := prefs.Defaults().Settings()

	for _, key := range []string{
		config.PrefTheme, config.PrefInputMethod, config.PrefDateFormat, config.PrefLanguage,
		config.PrefShowNotifications, config.PrefShowAnimations, config.PrefAutoCalculate,
		config.PrefShowFunFacts, config.PrefShowPlanetaryAges, config.PrefShowStatistics,
		config.PrefRememberLastInput, config.PrefShareFormat,
		config.PrefAnnounceResults, config.PrefFocusManagement, config.PrefHighContrast,
	} {
		assert.Contains(t, s, key)
	}
}

func TestDateLayout(t *testing.T) {
	p := prefs.Defaults()
	assert.Equal(t, "01/02/2006", p.DateLayout())

	p.DateFormat = config.DateFormatDMY
	assert.Equal(t, "02/01/2006", p.DateLayout())

	p.DateFormat = "bogus"
	assert.Equal(t, config.DateFormatISO, p.DateLayout())
}
