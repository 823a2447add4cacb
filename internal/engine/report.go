package engine

import "time"

// Report is an immutable snapshot of every calculation for one birth date.
type Report struct {
	BirthDate         CalendarDate   `json:"birthDate"`
	CalculatedAt      time.Time      `json:"calculatedAt"`
	Age               AgeDuration    `json:"age"`
	Stats             []Stat         `json:"stats"`
	DaysUntilBirthday int            `json:"daysUntilBirthday"`
	NextBirthday      CalendarDate   `json:"nextBirthday"`
	BirthdayToday     bool           `json:"birthdayToday"`
	Milestones        []Milestone    `json:"milestones"`
	PlanetaryAges     []PlanetaryAge `json:"planetaryAges"`
	BirthDay          BirthDayInfo   `json:"birthDay"`
	HistoricalEvents  []string       `json:"historicalEvents"`
	FunFacts          []string       `json:"funFacts"`
	Celebrate         bool           `json:"celebrate"`
}

// Report computes all results. It fails only with ErrFutureBirthDate.
func (c *Calculator) Report() (Report, error) {
	age, err := c.Duration()
	if err != nil {
		return Report{}, err
	}

	return Report{
		BirthDate:         c.Birth,
		CalculatedAt:      clockOrDefault(c.Clock).Now(),
		Age:               age,
		Stats:             c.DerivedStats(),
		DaysUntilBirthday: c.DaysUntilNextBirthday(),
		NextBirthday:      c.nextBirthday(),
		BirthdayToday:     c.BirthdayToday(),
		Milestones:        c.NextMilestones(),
		PlanetaryAges:     c.PlanetaryAges(),
		BirthDay:          c.BirthDayInfo(),
		HistoricalEvents:  c.HistoricalEvents(),
		FunFacts:          c.FunFacts(),
		Celebrate:         c.Celebrate(),
	}, nil
}

// NextBirthday returns the date of the next birthday strictly after today.
func (c *Calculator) NextBirthday() CalendarDate {
	return c.nextBirthday()
}
