package engine

import (
	"fmt"

	"github.com/tartampluch/age-calculator/internal/config"
)

var seasons = []string{"Winter", "Spring", "Summer", "Autumn"}

// zodiacSigns starts at Capricorn so that (monthIndex + day/22) % 12
// approximates the sign cutoffs around the 22nd of each month.
var zodiacSigns = []string{
	"Capricorn", "Aquarius", "Pisces", "Aries", "Taurus", "Gemini",
	"Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius",
}

type bracket struct {
	below    int // exclusive upper bound in years; 0 means unbounded
	key      string
	fallback string
}

var ageBrackets = []bracket{
	{1, config.TKeyFactBaby, config.FallbackFactBaby},
	{5, config.TKeyFactEarly, config.FallbackFactEarly},
	{13, config.TKeyFactChild, config.FallbackFactChild},
	{20, config.TKeyFactTeen, config.FallbackFactTeen},
	{30, config.TKeyFactTwenties, config.FallbackFactTwenties},
	{40, config.TKeyFactThirties, config.FallbackFactThirties},
	{50, config.TKeyFactForties, config.FallbackFactForties},
	{60, config.TKeyFactFifties, config.FallbackFactFifties},
	{70, config.TKeyFactSixties, config.FallbackFactSixties},
	{0, config.TKeyFactSenior, config.FallbackFactSenior},
}

// Season returns the English season of the birth month (Jan-Mar is Winter).
func (d CalendarDate) Season() string {
	return seasons[(d.Month-1)/3]
}

// ZodiacSign returns the English sign name using the month/22nd approximation.
func (d CalendarDate) ZodiacSign() string {
	return zodiacSigns[((d.Month-1)+d.Day/22)%len(zodiacSigns)]
}

// FunFacts composes the facts in a fixed order: age bracket, decade
// congratulation, birth weekday, weekend bonus, season, zodiac sign and
// birthday countdown.
func (c *Calculator) FunFacts() []string {
	years := 0
	if d, err := c.Duration(); err == nil {
		years = d.Years
	}

	var facts []string
	for _, b := range ageBrackets {
		if b.below == 0 || years < b.below {
			facts = append(facts, c.text(b.key, b.fallback, nil))
			break
		}
	}

	if years > 0 && years%10 == 0 {
		facts = append(facts, c.text(config.TKeyFactDecade,
			fmt.Sprintf(config.FallbackFactDecade, years),
			map[string]any{"Years": years}))
	}

	info := c.BirthDayInfo()
	facts = append(facts, c.text(config.TKeyFactWeekday,
		fmt.Sprintf(config.FallbackFactWeekday, info.DayOfWeek),
		map[string]any{"Weekday": info.DayOfWeek}))
	if info.IsWeekend {
		facts = append(facts, c.text(config.TKeyFactWeekend, config.FallbackFactWeekend, nil))
	}

	season := c.name(config.TKeyPrefixSeason, c.Birth.Season())
	facts = append(facts, c.text(config.TKeyFactSeason,
		fmt.Sprintf(config.FallbackFactSeason, season),
		map[string]any{"Season": season}))

	sign := c.name(config.TKeyPrefixZodiac, c.Birth.ZodiacSign())
	facts = append(facts, c.text(config.TKeyFactZodiac,
		fmt.Sprintf(config.FallbackFactZodiac, sign),
		map[string]any{"Sign": sign}))

	if fact, ok := c.countdownFact(); ok {
		facts = append(facts, fact)
	}
	return facts
}

func (c *Calculator) countdownFact() (string, bool) {
	if c.BirthdayToday() {
		return c.text(config.TKeyFactBirthdayToday, config.FallbackFactBirthdayToday, nil), true
	}
	days := c.DaysUntilNextBirthday()
	switch {
	case days == 1:
		return c.text(config.TKeyFactBirthdayTmrw, config.FallbackFactBirthdayTmrw, nil), true
	case days <= config.CountdownWindowDays:
		return c.text(config.TKeyFactBirthdaySoon,
			fmt.Sprintf(config.FallbackFactBirthdaySoon, days),
			map[string]any{"Days": days}), true
	}
	return "", false
}
