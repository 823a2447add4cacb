package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tartampluch/age-calculator/internal/config"
)

// Store persists preferences.
type Store interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// FileStore keeps preferences in a JSON file read and written through viper.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path. An empty path means DefaultPath().
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	return &FileStore{Path: path}, nil
}

// DefaultPath returns <user config dir>/<app id>/preferences.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}
	return filepath.Join(dir, config.AppID, config.PrefsFileName), nil
}

func (s *FileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.Path)
	v.SetConfigType(config.PrefsFileType)
	v.SetConfigPermissions(config.FilePermUserRW)
	return v
}

// Load reads the file on top of the defaults. A missing file yields the defaults.
// Values that fail validation are reported with ErrInvalidPreferences.
func (s *FileStore) Load() (Preferences, error) {
	v := s.newViper()
	for key, value := range Defaults().Settings() {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Defaults(), fmt.Errorf("%s: %w", config.ErrPrefsLoad, err)
		}
		slog.Debug(config.MsgPrefsMissing,
			config.LogKeyComponent, config.CompPrefs,
			config.LogKeyPath, s.Path,
		)
	}

	var p Preferences
	if err := v.Unmarshal(&p); err != nil {
		return Defaults(), fmt.Errorf("%s: %w", config.ErrPrefsLoad, err)
	}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// Save writes every preference, creating the parent directory if needed.
func (s *FileStore) Save(p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	v := s.newViper()
	for key, value := range p.Settings() {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(s.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrPrefsSave, err)
	}
	return nil
}

// MemoryStore keeps preferences in memory only. A zero MemoryStore loads the defaults.
type MemoryStore struct {
	Prefs Preferences
}

// Load returns the stored preferences.
func (m *MemoryStore) Load() (Preferences, error) {
	if m.Prefs == (Preferences{}) {
		return Defaults(), nil
	}
	return m.Prefs, m.Prefs.Validate()
}

// Save replaces the stored preferences.
func (m *MemoryStore) Save(p Preferences) error {
	m.Prefs = p
	return nil
}
