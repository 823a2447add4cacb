package prefs

import (
	"errors"
	"fmt"

	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/zalando/go-keyring"
)

// ErrNoLastInput is returned when no birth date has been remembered.
var ErrNoLastInput = errors.New(config.ErrNoLastInput)

// LastInputStore remembers the last calculated birth date in the OS keyring.
// The date never goes to the preferences file.
type LastInputStore struct {
	Service string
	User    string
}

// NewLastInputStore returns a store using the application keyring entry.
func NewLastInputStore() *LastInputStore {
	return &LastInputStore{Service: config.KeyringService, User: config.KeyringLastInputUser}
}

// Save stores the date as YYYY-MM-DD.
func (s *LastInputStore) Save(d engine.CalendarDate) error {
	if err := keyring.Set(s.Service, s.User, d.String()); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return nil
}

// Load returns the remembered date, or ErrNoLastInput.
func (s *LastInputStore) Load() (engine.CalendarDate, error) {
	value, err := keyring.Get(s.Service, s.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return engine.CalendarDate{}, ErrNoLastInput
	}
	if err != nil {
		return engine.CalendarDate{}, fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return engine.ParseCalendarDate(value)
}

// Clear forgets the remembered date. Clearing an empty store is not an error.
func (s *LastInputStore) Clear() error {
	err := keyring.Delete(s.Service, s.User)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return nil
}
