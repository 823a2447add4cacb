package prefs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// failingStore loads fine but refuses to save.
type failingStore struct {
	prefs.MemoryStore
}

func (failingStore) Save(prefs.Preferences) error {
	return errors.New("disk full")
}

func TestNewManager_InvalidStoredValuesFallBack(t *testing.T) {
	stored := prefs.Defaults()
	stored.Theme = "neon"

	m, err := prefs.NewManager(&prefs.MemoryStore{Prefs: stored})
	require.NoError(t, err)
	assert.Equal(t, prefs.Defaults(), m.Get())
}

func TestManager_Set(t *testing.T) {
	store := &prefs.MemoryStore{}
	m, err := prefs.NewManager(store)
	require.NoError(t, err)

	require.NoError(t, m.Set(config.PrefTheme, config.ThemeDark))
	assert.Equal(t, config.ThemeDark, m.Get().Theme)
	assert.Equal(t, config.ThemeDark, store.Prefs.Theme, "Change must be persisted")

	tests := []struct {
		name  string
		key   string
		value string
		want  error
	}{
		{"Unknown key", "colour", "red", prefs.ErrUnknownPreference},
		{"Invalid value", config.PrefTheme, "neon", prefs.ErrInvalidPreferences},
		{"Invalid bool", config.PrefShowStatistics, "sometimes", prefs.ErrInvalidPreferences},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.Set(tt.key, tt.value), tt.want)
			assert.Equal(t, config.ThemeDark, m.Get().Theme, "State must not change on error")
			assert.True(t, m.Get().ShowStatistics)
		})
	}
}

func TestManager_SaveFailureKeepsState(t *testing.T) {
	m, err := prefs.NewManager(&failingStore{})
	require.NoError(t, err)

	called := false
	m.OnChange(func(prefs.Preferences) { called = true })

	assert.Error(t, m.Update(func(p *prefs.Preferences) { p.Language = "fr" }))
	assert.Equal(t, "en", m.Get().Language)
	assert.False(t, called)
}

func TestManager_OnChangeAndReset(t *testing.T) {
	m, err := prefs.NewManager(&prefs.MemoryStore{})
	require.NoError(t, err)

	var seen []prefs.Preferences
	m.OnChange(func(p prefs.Preferences) { seen = append(seen, p) })

	require.NoError(t, m.Update(func(p *prefs.Preferences) {
		p.Language = "fr"
		p.ShowFunFacts = false
	}))
	require.NoError(t, m.Reset())

	require.Len(t, seen, 2)
	assert.Equal(t, "fr", seen[0].Language)
	assert.False(t, seen[0].ShowFunFacts)
	assert.Equal(t, prefs.Defaults(), seen[1])
	assert.Equal(t, prefs.Defaults(), m.Get())
}

func TestManager_PersistsAcrossInstances(t *testing.T) {
	store := &prefs.FileStore{Path: filepath.Join(t.TempDir(), config.PrefsFileName)}

	m, err := prefs.NewManager(store)
	require.NoError(t, err)
	require.NoError(t, m.Set(config.PrefDateFormat, config.DateFormatYMD))
	require.NoError(t, m.Set(config.PrefAnnounceResults, "false"))

	reopened, err := prefs.NewManager(store)
	require.NoError(t, err)
	assert.Equal(t, config.DateFormatYMD, reopened.Get().DateFormat)
	assert.False(t, reopened.Get().Accessibility.AnnounceResults)
}
