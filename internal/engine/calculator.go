package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/age-calculator/internal/config"
)

// ErrFutureBirthDate is returned when the birth date is after "today".
var ErrFutureBirthDate = errors.New(config.ErrFutureBirthDate)

// TranslateFunc resolves a translation key with template data.
// It returns "" when no translation exists, in which case English is used.
type TranslateFunc func(key string, data map[string]any) string

// AgeDuration is the calendar-exact time elapsed since birth.
type AgeDuration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// Stat is one derived counter shown on the results page.
type Stat struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int64  `json:"value"`
	Icon  string `json:"icon"`
}

// BirthDayInfo describes the weekday the person was born on.
type BirthDayInfo struct {
	DayOfWeek     string       `json:"dayOfWeek"`
	Weekday       time.Weekday `json:"-"`
	IsWeekend     bool         `json:"isWeekend"`
	FormattedDate string       `json:"formattedDate"`
}

// Calculator derives ages and statistics from a validated birth date.
// Every method recomputes from the birth date and Clock; nothing is cached.
type Calculator struct {
	Birth CalendarDate
	Clock Clock

	// Translate allows the presentation layer to inject localized strings.
	Translate TranslateFunc
}

// NewCalculator creates a Calculator. A nil clock means wall-clock time.
func NewCalculator(birth CalendarDate, clock Clock) *Calculator {
	return &Calculator{Birth: birth, Clock: clockOrDefault(clock)}
}

// today returns the current calendar date; time-of-day is ignored.
func (c *Calculator) today() CalendarDate {
	return DateOf(clockOrDefault(c.Clock).Now())
}

// Duration returns the calendar-exact age. Months borrow from years and days
// borrow from the previous month; when that month is shorter than the birth
// day the anniversary is clamped to its last day.
func (c *Calculator) Duration() (AgeDuration, error) {
	today := c.today()
	if c.Birth.After(today) {
		return AgeDuration{}, ErrFutureBirthDate
	}
	return elapsed(c.Birth, today), nil
}

func elapsed(from, to CalendarDate) AgeDuration {
	months := (to.Year-from.Year)*config.MonthsInYear + (to.Month - from.Month)
	if to.Day < from.Day {
		months--
	}
	anchor := from.addMonthsClamped(months)
	return AgeDuration{
		Years:  months / config.MonthsInYear,
		Months: months % config.MonthsInYear,
		Days:   daysBetween(anchor, to),
	}
}

// nextBirthday returns the next occurrence of the birth month/day strictly after today.
// Feb 29 becomes Mar 1 in non-leap years (time.Date normalization).
func (c *Calculator) nextBirthday() CalendarDate {
	today := c.today()
	candidate := DateOf(time.Date(today.Year, time.Month(c.Birth.Month), c.Birth.Day, 0, 0, 0, 0, time.UTC))
	if !candidate.After(today) {
		candidate = DateOf(time.Date(today.Year+1, time.Month(c.Birth.Month), c.Birth.Day, 0, 0, 0, 0, time.UTC))
	}
	return candidate
}

// DaysUntilNextBirthday returns the days until the next birthday.
// On the birthday itself it returns the full count to the following one (365 or 366),
// never 0; BirthdayToday covers the same-day case.
func (c *Calculator) DaysUntilNextBirthday() int {
	return daysBetween(c.today(), c.nextBirthday())
}

// BirthdayToday reports whether today is the birthday.
func (c *Calculator) BirthdayToday() bool {
	today := c.today()
	occurrence := DateOf(time.Date(today.Year, time.Month(c.Birth.Month), c.Birth.Day, 0, 0, 0, 0, time.UTC))
	return occurrence == today
}

// ElapsedDays returns whole days since birth, or 0 for a future date.
func (c *Calculator) ElapsedDays() int {
	return max(daysBetween(c.Birth, c.today()), 0)
}

// DerivedStats returns the six counters in display order:
// Total Days, Total Weeks, Total Hours, Heartbeats, Breaths, Days to Birthday.
func (c *Calculator) DerivedStats() []Stat {
	days := int64(c.ElapsedDays())
	hours := days * 24
	minutes := hours * 60
	seconds := minutes * 60
	heartbeats := seconds * config.AverageHeartRate / 60
	breaths := minutes * config.AverageBreathsPerMinute

	return []Stat{
		c.stat(config.TKeyStatTotalDays, "Total Days", days, config.IconCalendar),
		c.stat(config.TKeyStatTotalWeeks, "Total Weeks", days/7, config.IconChart),
		c.stat(config.TKeyStatTotalHours, "Total Hours", hours, config.IconClock),
		c.stat(config.TKeyStatHeartbeats, "Heartbeats", heartbeats, config.IconHeart),
		c.stat(config.TKeyStatBreaths, "Breaths", breaths, config.IconLungs),
		c.stat(config.TKeyStatBirthday, "Days to Birthday", int64(c.DaysUntilNextBirthday()), config.IconCake),
	}
}

func (c *Calculator) stat(key, label string, value int64, icon string) Stat {
	return Stat{Key: key, Label: c.text(key, label, nil), Value: value, Icon: icon}
}

// BirthDayInfo returns the weekday of birth. time uses the proleptic
// Gregorian calendar, so dates before 1582 are handled the same way.
func (c *Calculator) BirthDayInfo() BirthDayInfo {
	t := c.Birth.Time()
	wd := t.Weekday()
	return BirthDayInfo{
		DayOfWeek:     c.weekdayName(wd),
		Weekday:       wd,
		IsWeekend:     wd == time.Saturday || wd == time.Sunday,
		FormattedDate: t.Format(config.DateFormatLong),
	}
}

func (c *Calculator) weekdayName(wd time.Weekday) string {
	return c.name(config.TKeyPrefixWeekday, wd.String())
}

// text resolves key through Translate and falls back to the English text.
func (c *Calculator) text(key, fallback string, data map[string]any) string {
	if c.Translate != nil {
		if msg := c.Translate(key, data); msg != "" && msg != key {
			return msg
		}
	}
	return fallback
}

// name localizes an entry of a fixed English name table (planets, seasons, signs, weekdays).
func (c *Calculator) name(prefix, english string) string {
	return c.text(nameKey(prefix, english), english, nil)
}

func nameKey(prefix, english string) string {
	return prefix + strings.ToLower(english)
}

// ordinal returns the English ordinal of n (1st, 2nd, 3rd, 11th...).
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
