package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

var (
	errMissingDate  = errors.New(config.ErrMissingDate)
	errInvalidInput = errors.New(config.ErrInvalidInput)
)

// dateInput collects the birth date flags shared by calc, validate and export.
// Values stay strings so the validator can report non-numeric input.
type dateInput struct {
	day   string
	month string
	year  string
	date  string
	last  bool
}

func (in *dateInput) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&in.day, config.FlagDay, "", config.FlagDescDay)
	f.StringVar(&in.month, config.FlagMonth, "", config.FlagDescMonth)
	f.StringVar(&in.year, config.FlagYear, "", config.FlagDescYear)
	f.StringVar(&in.date, config.FlagDate, "", config.FlagDescDate)
	f.BoolVar(&in.last, config.FlagLast, false, config.FlagDescLast)
	cmd.MarkFlagsMutuallyExclusive(config.FlagDate, config.FlagLast)
}

// fields returns the raw day, month and year, sanitized.
func (in dateInput) fields() (day, month, year string, err error) {
	if in.date != "" {
		parts := strings.Split(engine.SanitizeInput(in.date), "-")
		if len(parts) != 3 {
			return "", "", "", fmt.Errorf("%s: %q", config.ErrDateParse, in.date)
		}
		return parts[2], parts[1], parts[0], nil
	}
	if in.day == "" && in.month == "" && in.year == "" {
		return "", "", "", errMissingDate
	}
	return engine.SanitizeInput(in.day), engine.SanitizeInput(in.month), engine.SanitizeInput(in.year), nil
}

// check validates the input. err is set for input that cannot be checked at all
// (missing date, keyring failure); rule failures are reported in the Result.
func (e *env) check(in dateInput) (engine.CalendarDate, engine.Result, error) {
	v := engine.NewValidator(e.clock)

	if in.last {
		birth, err := e.lastInput.Load()
		if err != nil {
			return engine.CalendarDate{}, nil, err
		}
		var res engine.Result
		e.monitor.Track(config.OpValidate, func() { res = v.Validate(birth.Day, birth.Month, birth.Year) })
		return birth, res, nil
	}

	day, month, year, err := in.fields()
	if err != nil {
		return engine.CalendarDate{}, nil, err
	}

	var res engine.Result
	e.monitor.Track(config.OpValidate, func() { res = v.ValidateInput(day, month, year) })
	if !res.Valid() {
		return engine.CalendarDate{}, res, nil
	}

	// ValidateInput guarantees three integers.
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	return engine.CalendarDate{Day: d, Month: m, Year: y}, res, nil
}

// birthDate returns a valid birth date or an error listing every localized issue.
func (e *env) birthDate(in dateInput) (engine.CalendarDate, error) {
	birth, res, err := e.check(in)
	if err != nil {
		return engine.CalendarDate{}, err
	}
	if !res.Valid() {
		return engine.CalendarDate{}, e.invalid(res)
	}
	return birth, nil
}

func (e *env) invalid(res engine.Result) error {
	slog.Info(config.MsgCalcRejected,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyIssues, len(res),
	)
	return fmt.Errorf("%w: %s", errInvalidInput, strings.Join(e.loc.Issues(res), "; "))
}

// remember stores the birth date when the preference asks for it.
// A keyring failure only logs a warning.
func (e *env) remember(birth engine.CalendarDate) {
	if !e.prefs.Get().RememberLastInput {
		return
	}
	if err := e.lastInput.Save(birth); err != nil {
		slog.Warn(config.MsgLastInputFail,
			config.LogKeyComponent, config.CompKeyring,
			config.LogKeyError, err)
		return
	}
	slog.Debug(config.MsgLastInputSaved, config.LogKeyComponent, config.CompKeyring)
}
