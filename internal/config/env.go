package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds overrides read from the process environment.
// Flags given on the command line take precedence over these values.
type Env struct {
	Language  string `env:"AGECALC_LANGUAGE"`
	Debug     bool   `env:"AGECALC_DEBUG"`
	PrefsFile string `env:"AGECALC_PREFS_FILE"`
	Now       string `env:"AGECALC_NOW"`
}

// LoadEnv parses the AGECALC_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("%s: %w", ErrEnvParse, err)
	}
	return e, nil
}

// ReferenceTime parses the AGECALC_NOW override.
// ok is false when no override is set.
func (e Env) ReferenceTime() (t time.Time, ok bool, err error) {
	if e.Now == "" {
		return time.Time{}, false, nil
	}
	t, err = time.ParseInLocation(DateFormatISO, e.Now, time.Local)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s: %w", ErrDateParse, err)
	}
	return t, true, nil
}
