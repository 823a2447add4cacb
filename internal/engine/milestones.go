package engine

import (
	"fmt"
	"slices"

	"github.com/tartampluch/age-calculator/internal/config"
)

// MilestoneType classifies an upcoming milestone.
type MilestoneType string

const (
	MilestoneBirthday MilestoneType = "birthday"
	MilestoneDecade   MilestoneType = "decade"
	MilestoneMajor    MilestoneType = "major"
)

// Milestone is a future age worth counting down to.
type Milestone struct {
	Type          MilestoneType `json:"type"`
	TargetAge     int           `json:"targetAge"`
	DaysRemaining int           `json:"daysRemaining"`
	Description   string        `json:"description"`
}

// NextMilestones returns up to three upcoming milestones: the next birthday,
// the next decade and the next unreached major age, each dropped when its target
// is already listed.
//
// Days remaining beyond the next birthday are estimated with 365-day years.
func (c *Calculator) NextMilestones() []Milestone {
	age := 0
	if d, err := c.Duration(); err == nil {
		age = d.Years
	}
	days := c.DaysUntilNextBirthday()

	estimate := func(target int) int {
		return days + (target-age-1)*config.ApproxDaysPerYear
	}

	next := age + 1
	milestones := []Milestone{{
		Type:          MilestoneBirthday,
		TargetAge:     next,
		DaysRemaining: days,
		Description: c.text(config.TKeyMilestoneBirthday,
			fmt.Sprintf(config.FallbackMilestoneBirthday, ordinal(next)),
			map[string]any{"Age": next, "Ordinal": ordinal(next)}),
	}}
	listed := []int{next}

	if decade := (age/10 + 1) * 10; decade != next {
		milestones = append(milestones, Milestone{
			Type:          MilestoneDecade,
			TargetAge:     decade,
			DaysRemaining: estimate(decade),
			Description: c.text(config.TKeyMilestoneDecade,
				fmt.Sprintf(config.FallbackMilestoneDecade, decade),
				map[string]any{"Age": decade}),
		})
		listed = append(listed, decade)
	}

	// Only the first unreached major age counts, even when it is already listed.
	for _, major := range config.MajorMilestones {
		if major <= age {
			continue
		}
		if slices.Contains(listed, major) {
			break
		}
		milestones = append(milestones, Milestone{
			Type:          MilestoneMajor,
			TargetAge:     major,
			DaysRemaining: estimate(major),
			Description: c.text(config.TKeyMilestoneMajor,
				fmt.Sprintf(config.FallbackMilestoneMajor, major),
				map[string]any{"Age": major}),
		})
		break
	}

	return milestones
}

// Celebrate reports whether the current age deserves a celebration:
// every decade plus the ages in config.CelebrationAges.
func (c *Calculator) Celebrate() bool {
	d, err := c.Duration()
	if err != nil || d.Years == 0 {
		return false
	}
	return d.Years%10 == 0 || slices.Contains(config.CelebrationAges, d.Years)
}
