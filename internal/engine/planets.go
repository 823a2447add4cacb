package engine

import (
	"math"

	"github.com/tartampluch/age-calculator/internal/config"
)

// PlanetaryAge is the age expressed in years of another planet.
type PlanetaryAge struct {
	Key   string  `json:"key"`
	Body  string  `json:"body"`
	Years float64 `json:"years"`
}

type planet struct {
	name        string
	orbitalDays float64
}

// planets lists orbital periods in Earth days. Consumers rely on this order.
var planets = []planet{
	{"Mercury", 87.97},
	{"Venus", 224.70},
	{"Mars", 686.98},
	{"Jupiter", 4332.59},
	{"Saturn", 10759.22},
	{"Uranus", 30688.50},
	{"Neptune", 60182.00},
}

// PlanetaryAges divides the elapsed Earth days by each orbital period,
// rounded to two decimals.
func (c *Calculator) PlanetaryAges() []PlanetaryAge {
	days := float64(c.ElapsedDays())

	ages := make([]PlanetaryAge, 0, len(planets))
	for _, p := range planets {
		ages = append(ages, PlanetaryAge{
			Key:   nameKey(config.TKeyPrefixPlanet, p.name),
			Body:  c.name(config.TKeyPrefixPlanet, p.name),
			Years: math.Round(days/p.orbitalDays*100) / 100,
		})
	}
	return ages
}
