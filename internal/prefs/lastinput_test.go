package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/prefs"
	"github.com/zalando/go-keyring"
)

func TestLastInputStore(t *testing.T) {
	keyring.MockInit()
	s := prefs.NewLastInputStore()

	_, err := s.Load()
	assert.ErrorIs(t, err, prefs.ErrNoLastInput)
	assert.NoError(t, s.Clear(), "Clearing an empty store is not an error")

	want := engine.CalendarDate{Day: 29, Month: 2, Year: 2000}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	assert.ErrorIs(t, err, prefs.ErrNoLastInput)
}

func TestLastInputStore_CorruptValue(t *testing.T) {
	keyring.MockInit()
	s := prefs.NewLastInputStore()
	require.NoError(t, keyring.Set(s.Service, s.User, "not-a-date"))

	_, err := s.Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, prefs.ErrNoLastInput)
}
