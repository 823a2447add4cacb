// Package prefs holds the user preferences, their validation and persistence.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/age-calculator/internal/config"
)

var (
	// ErrInvalidPreferences is wrapped by every validation failure.
	ErrInvalidPreferences = errors.New(config.ErrInvalidPrefs)

	// ErrUnknownPreference is returned by Apply for keys that do not exist.
	ErrUnknownPreference = errors.New(config.ErrUnknownPref)
)

// Accessibility groups the assistive settings.
type Accessibility struct {
	AnnounceResults bool `mapstructure:"announce_results" json:"announce_results"`
	FocusManagement bool `mapstructure:"focus_management" json:"focus_management"`
	HighContrast    bool `mapstructure:"high_contrast" json:"high_contrast"`
}

// Preferences is the full set of user settings.
type Preferences struct {
	Theme             string        `mapstructure:"theme" json:"theme" validate:"required,oneof=auto light dark"`
	InputMethod       string        `mapstructure:"input_method" json:"input_method" validate:"required,oneof=manual picker"`
	DateFormat        string        `mapstructure:"date_format" json:"date_format" validate:"required,oneof=DD/MM/YYYY MM/DD/YYYY YYYY-MM-DD"`
	Language          string        `mapstructure:"language" json:"language" validate:"required,oneof=en fr"`
	ShowNotifications bool          `mapstructure:"show_notifications" json:"show_notifications"`
	ShowAnimations    bool          `mapstructure:"show_animations" json:"show_animations"`
	AutoCalculate     bool          `mapstructure:"auto_calculate" json:"auto_calculate"`
	ShowFunFacts      bool          `mapstructure:"show_fun_facts" json:"show_fun_facts"`
	ShowPlanetaryAges bool          `mapstructure:"show_planetary_ages" json:"show_planetary_ages"`
	ShowStatistics    bool          `mapstructure:"show_statistics" json:"show_statistics"`
	RememberLastInput bool          `mapstructure:"remember_last_input" json:"remember_last_input"`
	ShareFormat       string        `mapstructure:"share_format" json:"share_format" validate:"required,oneof=text json ics vcard"`
	Accessibility     Accessibility `mapstructure:"accessibility" json:"accessibility"`
	LastRunVersion    string        `mapstructure:"last_run_version" json:"last_run_version,omitempty"`
}

// Defaults returns the factory settings.
func Defaults() Preferences {
	return Preferences{
		Theme:             config.ThemeAuto,
		InputMethod:       config.InputManual,
		DateFormat:        config.DateFormatMDY,
		Language:          config.SupportedLanguages[0],
		ShowNotifications: true,
		ShowAnimations:    true,
		AutoCalculate:     false,
		ShowFunFacts:      true,
		ShowPlanetaryAges: true,
		ShowStatistics:    true,
		RememberLastInput: false,
		ShareFormat:       config.ShareText,
		Accessibility: Accessibility{
			AnnounceResults: true,
			FocusManagement: true,
			HighContrast:    false,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed values.
func (p Preferences) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s=%v", fe.Field(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPreferences, strings.Join(fields, ", "))
}

// DateLayout returns the Go time layout for the DateFormat preference.
func (p Preferences) DateLayout() string {
	if layout, ok := config.DateFormatLayouts[p.DateFormat]; ok {
		return layout
	}
	return config.DateFormatISO
}

// Settings flattens the preferences into dotted keys, as stored on disk.
func (p Preferences) Settings() map[string]any {
	return map[string]any{
		config.PrefTheme:             p.Theme,
		config.PrefInputMethod:       p.InputMethod,
		config.PrefDateFormat:        p.DateFormat,
		config.PrefLanguage:          p.Language,
		config.PrefShowNotifications: p.ShowNotifications,
		config.PrefShowAnimations:    p.ShowAnimations,
		config.PrefAutoCalculate:     p.AutoCalculate,
		config.PrefShowFunFacts:      p.ShowFunFacts,
		config.PrefShowPlanetaryAges: p.ShowPlanetaryAges,
		config.PrefShowStatistics:    p.ShowStatistics,
		config.PrefRememberLastInput: p.RememberLastInput,
		config.PrefShareFormat:       p.ShareFormat,
		config.PrefAnnounceResults:   p.Accessibility.AnnounceResults,
		config.PrefFocusManagement:   p.Accessibility.FocusManagement,
		config.PrefHighContrast:      p.Accessibility.HighContrast,
		config.PrefLastRun:           p.LastRunVersion,
	}
}

// Apply sets one preference from its textual form.
// Values are not validated here; call Validate on the result.
func (p *Preferences) Apply(key, value string) error {
	strField := map[string]*string{
		config.PrefTheme:       &p.Theme,
		config.PrefInputMethod: &p.InputMethod,
		config.PrefDateFormat:  &p.DateFormat,
		config.PrefLanguage:    &p.Language,
		config.PrefShareFormat: &p.ShareFormat,
		config.PrefLastRun:     &p.LastRunVersion,
	}
	boolField := map[string]*bool{
		config.PrefShowNotifications: &p.ShowNotifications,
		config.PrefShowAnimations:    &p.ShowAnimations,
		config.PrefAutoCalculate:     &p.AutoCalculate,
		config.PrefShowFunFacts:      &p.ShowFunFacts,
		config.PrefShowPlanetaryAges: &p.ShowPlanetaryAges,
		config.PrefShowStatistics:    &p.ShowStatistics,
		config.PrefRememberLastInput: &p.RememberLastInput,
		config.PrefAnnounceResults:   &p.Accessibility.AnnounceResults,
		config.PrefFocusManagement:   &p.Accessibility.FocusManagement,
		config.PrefHighContrast:      &p.Accessibility.HighContrast,
	}

	key = strings.ToLower(strings.TrimSpace(key))
	if f, ok := strField[key]; ok {
		*f = strings.TrimSpace(value)
		return nil
	}
	if f, ok := boolField[key]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPreferences, key, value)
		}
		*f = b
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreference, key)
}
