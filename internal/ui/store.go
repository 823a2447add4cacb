package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// FyneStore keeps the preferences in the fyne application preferences,
// using the same dotted keys as the preferences file.
type FyneStore struct {
	Preferences fyne.Preferences
}

// NewFyneStore returns a store backed by p.
func NewFyneStore(p fyne.Preferences) *FyneStore {
	return &FyneStore{Preferences: p}
}

// Load reads every key, falling back to the defaults for unset ones.
func (s *FyneStore) Load() (prefs.Preferences, error) {
	p := prefs.Defaults()
	for key, def := range p.Settings() {
		var value string
		switch v := def.(type) {
		case string:
			value = s.Preferences.StringWithFallback(key, v)
		case bool:
			value = strconv.FormatBool(s.Preferences.BoolWithFallback(key, v))
		default:
			continue
		}
		if err := p.Apply(key, value); err != nil {
			return p, err
		}
	}
	return p, p.Validate()
}

// Save writes every key.
func (s *FyneStore) Save(p prefs.Preferences) error {
	for key, value := range p.Settings() {
		switch v := value.(type) {
		case string:
			s.Preferences.SetString(key, v)
		case bool:
			s.Preferences.SetBool(key, v)
		}
	}
	return nil
}
