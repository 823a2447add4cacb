package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/locale"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// renderReport prints the report as plain text, honoring the display preferences.
func renderReport(w io.Writer, r engine.Report, loc *locale.Localizer, p prefs.Preferences) error {
	var b strings.Builder

	fmt.Fprintln(&b, loc.Format(config.TKeyLblAge, map[string]any{
		"Years": r.Age.Years, "Months": r.Age.Months, "Days": r.Age.Days,
	}))
	fmt.Fprintln(&b, loc.Format(config.TKeyLblBornOn, map[string]any{
		"Date": r.BirthDate.Format(p.DateLayout()), "Weekday": r.BirthDay.DayOfWeek,
	}))
	if r.BirthdayToday && r.Celebrate {
		fmt.Fprintln(&b, loc.Format(config.TKeyNotifCelebrate, map[string]any{"Years": r.Age.Years}))
	}

	if p.ShowStatistics {
		fmt.Fprintf(&b, config.FormatSection, loc.Msg(config.TKeyLblStats))
		for _, s := range r.Stats {
			fmt.Fprintf(&b, config.FormatStatLine, s.Label, loc.Number(s.Value))
		}
	}

	if p.ShowPlanetaryAges {
		fmt.Fprintf(&b, config.FormatSection, loc.Msg(config.TKeyLblPlanets))
		for _, pa := range r.PlanetaryAges {
			fmt.Fprintf(&b, config.FormatStatLine, pa.Body, loc.Decimal(pa.Years))
		}
	}

	fmt.Fprintf(&b, config.FormatSection, loc.Msg(config.TKeyLblMilestones))
	for _, m := range r.Milestones {
		left := loc.Format(config.TKeyLblDaysLeft, map[string]any{"Days": loc.Number(int64(m.DaysRemaining))})
		fmt.Fprintf(&b, config.FormatMilestone, m.Description, left)
	}

	if p.ShowFunFacts {
		fmt.Fprintf(&b, config.FormatSection, loc.Msg(config.TKeyLblFacts))
		for _, f := range r.FunFacts {
			fmt.Fprintf(&b, config.FormatListItem, f)
		}
	}

	fmt.Fprintf(&b, config.FormatSection, loc.Msg(config.TKeyLblHistory))
	for _, h := range r.HistoricalEvents {
		fmt.Fprintf(&b, config.FormatListItem, h)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
