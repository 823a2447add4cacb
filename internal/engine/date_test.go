package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{2004, true},
		{2024, true},
		{1900, false},
		{2021, false},
		{2100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(1, 2023))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 30, DaysInMonth(4, 2023))
	assert.Equal(t, 31, DaysInMonth(12, 2023))
	assert.Equal(t, 0, DaysInMonth(13, 2023), "Out of range months have no days")
	assert.Equal(t, 0, DaysInMonth(0, 2023))
}

func TestCalendarDate_Valid(t *testing.T) {
	assert.True(t, CalendarDate{Day: 29, Month: 2, Year: 2000}.Valid())
	assert.False(t, CalendarDate{Day: 29, Month: 2, Year: 1900}.Valid())
	assert.False(t, CalendarDate{Day: 31, Month: 6, Year: 2000}.Valid())
	assert.False(t, CalendarDate{Day: 0, Month: 1, Year: 2000}.Valid())
}

func TestDateOf_UsesLocation(t *testing.T) {
	// 23:30 UTC on June 14th is already June 15th in Tokyo.
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2025, 6, 14, 23, 30, 0, 0, time.UTC).In(tokyo)

	assert.Equal(t, CalendarDate{Day: 15, Month: 6, Year: 2025}, DateOf(instant))
}

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2000-08-10")
	require.NoError(t, err)
	assert.Equal(t, CalendarDate{Day: 10, Month: 8, Year: 2000}, d)
	assert.Equal(t, "2000-08-10", d.String())

	_, err = ParseCalendarDate("2021-02-29")
	assert.Error(t, err, "time.Parse rejects impossible days")

	_, err = ParseCalendarDate("10/08/2000")
	assert.Error(t, err)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		name string
		from CalendarDate
		n    int
		want CalendarDate
	}{
		{"Simple", CalendarDate{15, 6, 1990}, 12, CalendarDate{15, 6, 1991}},
		{"End of January to February", CalendarDate{31, 1, 2023}, 1, CalendarDate{28, 2, 2023}},
		{"End of January to leap February", CalendarDate{31, 1, 2024}, 1, CalendarDate{29, 2, 2024}},
		{"Year rollover", CalendarDate{10, 11, 2023}, 3, CalendarDate{10, 2, 2024}},
		{"Zero", CalendarDate{1, 1, 2000}, 0, CalendarDate{1, 1, 2000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.addMonthsClamped(tt.n))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := CalendarDate{Day: 10, Month: 8, Year: 2000}
	b := CalendarDate{Day: 10, Month: 8, Year: 2024}

	// 24 years including 6 leap days (2004..2024).
	assert.Equal(t, 24*365+6, daysBetween(a, b))
	assert.Equal(t, -(24*365 + 6), daysBetween(b, a))
	assert.Equal(t, 1, daysBetween(CalendarDate{28, 2, 2024}, CalendarDate{29, 2, 2024}))
}

func TestSeasonAndZodiac(t *testing.T) {
	tests := []struct {
		date   CalendarDate
		season string
		sign   string
	}{
		{CalendarDate{21, 1, 2000}, "Winter", "Capricorn"},
		{CalendarDate{22, 1, 2000}, "Winter", "Aquarius"},
		{CalendarDate{15, 4, 2000}, "Spring", "Aries"},
		{CalendarDate{15, 6, 1990}, "Spring", "Gemini"},
		{CalendarDate{10, 8, 2000}, "Summer", "Leo"},
		{CalendarDate{22, 12, 2000}, "Autumn", "Capricorn"},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.season, tt.date.Season())
			assert.Equal(t, tt.sign, tt.date.ZodiacSign())
		})
	}
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 101: "101st", 111: "111th"} {
		assert.Equal(t, want, ordinal(n))
	}
}
