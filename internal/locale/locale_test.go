package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/locale"
)

func newBundle(t *testing.T) *locale.Bundle {
	t.Helper()
	b, err := locale.NewBundle()
	require.NoError(t, err)
	return b
}

func TestNewBundle_DetectsLanguages(t *testing.T) {
	b := newBundle(t)
	assert.ElementsMatch(t, config.SupportedLanguages, b.Languages())
}

func TestLocalizer_Msg(t *testing.T) {
	b := newBundle(t)

	assert.Equal(t, "Day", b.Localizer("en").Msg(config.TKeyLblDay))
	assert.Equal(t, "Jour", b.Localizer("fr").Msg(config.TKeyLblDay))
	assert.Equal(t, "does_not_exist", b.Localizer("fr").Msg("does_not_exist"), "Missing keys come back as-is")
	assert.Empty(t, b.Localizer("fr").Translate("does_not_exist", nil))
}

func TestLocalizer_Fallback(t *testing.T) {
	b := newBundle(t)

	l := b.Localizer("de")
	assert.Equal(t, "en", l.Language())
	assert.Equal(t, "Day", l.Msg(config.TKeyLblDay))

	assert.Equal(t, "fr", b.Localizer("fr-CA").Language())
}

func TestLocalizer_Format(t *testing.T) {
	l := newBundle(t).Localizer("en")

	got := l.Format(config.TKeyShareText, map[string]any{"Years": 34, "Months": 0, "Days": 5})
	assert.Equal(t, "I'm 34 years, 0 months, and 5 days old!", got)
}

func TestLocalizer_Issue(t *testing.T) {
	b := newBundle(t)
	v := engine.NewValidator(engine.FixedClock{Time: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)})

	res := v.Validate(1, 13, 2000)
	require.Len(t, res, 1)
	assert.Equal(t, "Le mois doit être un nombre entre 1 et 12", b.Localizer("fr").Issue(res[0]))

	res = v.Validate(30, 2, 2023)
	assert.Equal(t, []string{"February 2023 only has 28 days"}, b.Localizer("en").Issues(res))

	unknown := engine.Issue{Rule: "custom_rule", Message: "Custom"}
	assert.Equal(t, "Custom", b.Localizer("fr").Issue(unknown))
}

func TestLocalizer_Numbers(t *testing.T) {
	l := newBundle(t).Localizer("en")
	assert.Equal(t, "8,766", l.Number(8766))
	assert.Equal(t, "1,009,843,200", l.Number(1009843200))
	assert.Equal(t, "99.65", l.Decimal(99.65))
}

func TestLocalizer_Calculator(t *testing.T) {
	l := newBundle(t).Localizer("fr")
	c := l.Calculator(
		engine.CalendarDate{Day: 10, Month: 8, Year: 2000},
		engine.FixedClock{Time: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	)

	assert.Equal(t, "Jours vécus", c.DerivedStats()[0].Label)
	assert.Equal(t, "Mercure", c.PlanetaryAges()[0].Body)
	assert.Equal(t, "jeudi", c.BirthDayInfo().DayOfWeek)
	assert.Contains(t, c.FunFacts(), "Vous êtes né(e) un jeudi ! 📅")
	assert.Contains(t, c.FunFacts(), "Votre signe du zodiaque est Lion ! ✨")
	assert.Equal(t, "Vos 24 ans", c.NextMilestones()[0].Description)
}
