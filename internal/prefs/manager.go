package prefs

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/tartampluch/age-calculator/internal/config"
)

// Manager owns the current preferences of one application instance.
// It is safe for concurrent use; listeners run after the change is stored.
type Manager struct {
	store Store

	mu        sync.RWMutex
	current   Preferences
	listeners []func(Preferences)
}

// NewManager loads preferences from store. Invalid stored values are
// replaced by the defaults; I/O failures are returned.
func NewManager(store Store) (*Manager, error) {
	p, err := store.Load()
	switch {
	case err == nil:
		slog.Debug(config.MsgPrefsLoaded, config.LogKeyComponent, config.CompPrefs)
	case errors.Is(err, ErrInvalidPreferences):
		slog.Warn(config.MsgPrefsFallback,
			config.LogKeyComponent, config.CompPrefs,
			config.LogKeyError, err,
		)
		p = Defaults()
	default:
		return nil, err
	}
	return &Manager{store: store, current: p}, nil
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update applies fn to a copy, validates and persists it.
// Nothing changes when validation or saving fails.
func (m *Manager) Update(fn func(*Preferences)) error {
	return m.update(func(p *Preferences) error {
		fn(p)
		return nil
	})
}

// Set changes a single preference given as text (e.g. "theme", "dark").
func (m *Manager) Set(key, value string) error {
	return m.update(func(p *Preferences) error {
		return p.Apply(key, value)
	})
}

func (m *Manager) update(fn func(*Preferences) error) error {
	m.mu.Lock()
	next := m.current
	err := fn(&next)
	if err == nil {
		err = next.Validate()
	}
	if err == nil {
		err = m.store.Save(next)
	}
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = next
	listeners := append([]func(Preferences){}, m.listeners...)
	m.mu.Unlock()

	slog.Info(config.MsgPrefsSaved, config.LogKeyComponent, config.CompPrefs)
	for _, l := range listeners {
		l(next)
	}
	return nil
}

// Reset restores the defaults.
func (m *Manager) Reset() error {
	if err := m.Update(func(p *Preferences) { *p = Defaults() }); err != nil {
		return err
	}
	slog.Info(config.MsgPrefsReset, config.LogKeyComponent, config.CompPrefs)
	return nil
}

// OnChange registers fn to be called with the new preferences after every change.
func (m *Manager) OnChange(fn func(Preferences)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}
