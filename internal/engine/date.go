package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/age-calculator/internal/config"
)

const day = 24 * time.Hour

// CalendarDate is a day/month/year triple in the proleptic Gregorian calendar.
type CalendarDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DateOf returns the calendar date of t in t's own location.
// Birthdays follow the local calendar of the person, not UTC.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Day: d, Month: int(m), Year: y}
}

// ParseCalendarDate parses an ISO date (YYYY-MM-DD) and rejects impossible dates.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(config.DateFormatISO, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}
	return DateOf(t), nil
}

// IsLeapYear applies the Gregorian rule: divisible by 4, not by 100 unless by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month in year. It returns 0 for months outside 1-12.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Valid reports whether the triple names a real calendar day.
func (d CalendarDate) Valid() bool {
	return d.Month >= 1 && d.Month <= config.MonthsInYear && d.Day >= 1 && d.Day <= DaysInMonth(d.Month, d.Year)
}

// Time returns midnight UTC of the date.
// UTC keeps every day exactly 24 hours long for day arithmetic.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// After reports whether d is strictly later than o.
func (d CalendarDate) After(o CalendarDate) bool {
	return d.Time().After(o.Time())
}

// AddDays returns the date n days later (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Format formats the date with a Go time layout.
func (d CalendarDate) Format(layout string) string {
	return d.Time().Format(layout)
}

// MonthName returns the English month name, or "" when out of range.
func (d CalendarDate) MonthName() string {
	if d.Month < 1 || d.Month > config.MonthsInYear {
		return ""
	}
	return time.Month(d.Month).String()
}

// addMonthsClamped moves d forward by n months, clamping the day to the
// length of the target month (Jan 31 + 1 month = Feb 28/29).
func (d CalendarDate) addMonthsClamped(n int) CalendarDate {
	total := d.Year*config.MonthsInYear + (d.Month - 1) + n
	y := total / config.MonthsInYear
	m := total%config.MonthsInYear + 1
	return CalendarDate{Day: min(d.Day, DaysInMonth(m, y)), Month: m, Year: y}
}

// daysBetween returns the number of whole days from a to b.
func daysBetween(a, b CalendarDate) int {
	return int(b.Time().Sub(a.Time()) / day)
}
