package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/age-calculator/internal/config"
)

// Field identifies the input a validation issue belongs to.
type Field string

const (
	FieldDay   Field = "day"
	FieldMonth Field = "month"
	FieldYear  Field = "year"
	FieldDate  Field = "date"
)

// Rule identifies a validation rule. Its value is also the translation key
// presentation layers use to localize the message.
type Rule string

const (
	RuleDayNotNumber   Rule = config.TKeyErrDayNotNumber
	RuleMonthNotNumber Rule = config.TKeyErrMonthNotNumber
	RuleYearNotNumber  Rule = config.TKeyErrYearNotNumber
	RuleYearTooEarly   Rule = config.TKeyErrYearTooEarly
	RuleYearFuture     Rule = config.TKeyErrYearFuture
	RuleMonthRange     Rule = config.TKeyErrMonthRange
	RuleDayRange       Rule = config.TKeyErrDayRange
	RuleDayInMonth     Rule = config.TKeyErrDayInMonth
	RuleDateFuture     Rule = config.TKeyErrDateFuture
	RuleAgeCeiling     Rule = config.TKeyErrAgeCeiling
)

// Issue is one failed validation rule.
// Data carries the template values needed to localize Message.
type Issue struct {
	Rule    Rule           `json:"rule"`
	Field   Field          `json:"field"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// Error lets an Issue travel through APIs that expect an error (e.g. widget validators).
func (i Issue) Error() string {
	return i.Message
}

// Result is the ordered list of issues. An empty Result means the input is valid.
type Result []Issue

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Messages returns the human-readable messages in rule order.
func (r Result) Messages() []string {
	msgs := make([]string, 0, len(r))
	for _, issue := range r {
		msgs = append(msgs, issue.Message)
	}
	return msgs
}

// First returns the authoritative issue when only one message can be shown.
func (r Result) First() (Issue, bool) {
	if len(r) == 0 {
		return Issue{}, false
	}
	return r[0], true
}

// Validator checks birth dates against calendar rules and domain bounds.
// It is pure apart from reading "today" from Clock.
type Validator struct {
	Clock Clock
}

// NewValidator creates a Validator. A nil clock means wall-clock time.
func NewValidator(clock Clock) *Validator {
	return &Validator{Clock: clockOrDefault(clock)}
}

// ValidateInput validates raw form values. Each value must be an integer;
// when any is not, only the shape issues are reported.
func (v *Validator) ValidateInput(day, month, year string) Result {
	d, dayOK := parseInteger(day)
	m, monthOK := parseInteger(month)
	y, yearOK := parseInteger(year)

	var res Result
	if !dayOK {
		res = append(res, Issue{Rule: RuleDayNotNumber, Field: FieldDay, Message: config.MsgDayNotNumber})
	}
	if !monthOK {
		res = append(res, Issue{Rule: RuleMonthNotNumber, Field: FieldMonth, Message: config.MsgMonthNotNumber})
	}
	if !yearOK {
		res = append(res, Issue{Rule: RuleYearNotNumber, Field: FieldYear, Message: config.MsgYearNotNumber})
	}
	if len(res) > 0 {
		return res
	}
	return v.Validate(d, m, y)
}

// Validate returns every applicable issue for the triple, in rule precedence order:
// year bounds, month range, day range, future date, age ceiling.
func (v *Validator) Validate(day, month, year int) Result {
	today := DateOf(clockOrDefault(v.Clock).Now())

	var res Result
	yearOK := true
	switch {
	case year < config.MinBirthYear:
		res = append(res, Issue{Rule: RuleYearTooEarly, Field: FieldYear, Message: config.MsgYearTooEarly})
		yearOK = false
	case year > today.Year:
		res = append(res, Issue{Rule: RuleYearFuture, Field: FieldYear, Message: config.MsgYearFuture})
		yearOK = false
	}

	monthOK := month >= 1 && month <= config.MonthsInYear
	if !monthOK {
		res = append(res, Issue{Rule: RuleMonthRange, Field: FieldMonth, Message: config.MsgMonthRange})
	}

	switch {
	case day < 1 || day > config.MaxDayValue:
		res = append(res, Issue{Rule: RuleDayRange, Field: FieldDay, Message: config.MsgDayRange})
	case yearOK && monthOK && day > DaysInMonth(month, year):
		n := DaysInMonth(month, year)
		name := CalendarDate{Month: month}.MonthName()
		res = append(res, Issue{
			Rule:    RuleDayInMonth,
			Field:   FieldDay,
			Message: fmt.Sprintf(config.MsgDayInMonth, name, year, n),
			Data:    map[string]any{"Month": name, "Year": year, "Days": n},
		})
	}

	if len(res) == 0 {
		birth := CalendarDate{Day: day, Month: month, Year: year}
		if birth.After(today) {
			res = append(res, Issue{Rule: RuleDateFuture, Field: FieldDate, Message: config.MsgDateFuture})
		}
	}

	// Sanity ceiling on the plain year difference, not a calendar-exact age.
	// Written as a bound on year so extreme inputs cannot overflow.
	if year < today.Year-config.MaxAgeYears {
		res = append(res, Issue{Rule: RuleAgeCeiling, Field: FieldYear, Message: config.MsgAgeCeiling})
	}

	return res
}

// FirstError returns the first failing rule's message, or ok=false when valid.
func (v *Validator) FirstError(day, month, year int) (msg string, ok bool) {
	issue, found := v.Validate(day, month, year).First()
	if !found {
		return "", false
	}
	return issue.Message, true
}

// ValidateField checks a single form field while the user is typing.
// An empty value is not an error yet. The returned error is an Issue.
func (v *Validator) ValidateField(field Field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	n, ok := parseInteger(value)

	switch field {
	case FieldDay:
		if !ok {
			return Issue{Rule: RuleDayNotNumber, Field: field, Message: config.MsgDayNotNumber}
		}
		if n < 1 || n > config.MaxDayValue {
			return Issue{Rule: RuleDayRange, Field: field, Message: config.MsgDayRange}
		}
	case FieldMonth:
		if !ok {
			return Issue{Rule: RuleMonthNotNumber, Field: field, Message: config.MsgMonthNotNumber}
		}
		if n < 1 || n > config.MonthsInYear {
			return Issue{Rule: RuleMonthRange, Field: field, Message: config.MsgMonthRange}
		}
	case FieldYear:
		if !ok {
			return Issue{Rule: RuleYearNotNumber, Field: field, Message: config.MsgYearNotNumber}
		}
		if n < config.MinBirthYear {
			return Issue{Rule: RuleYearTooEarly, Field: field, Message: config.MsgYearTooEarly}
		}
		if n > clockOrDefault(v.Clock).Now().Year() {
			return Issue{Rule: RuleYearFuture, Field: field, Message: config.MsgYearFuture}
		}
	}
	return nil
}

// SanitizeInput strips markup-significant characters from a form value.
func SanitizeInput(value string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '/', '\\', '&':
			return -1
		}
		return r
	}, value))
}

// NormalizeInput keeps only digits and date separators.
func NormalizeInput(value string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '-' || r == '/' || r == '.' {
			return r
		}
		return -1
	}, value)
}

// parseInteger accepts base-10 integers only: floats, NaN and text are rejected.
func parseInteger(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
