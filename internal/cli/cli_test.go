package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/cli"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/zalando/go-keyring"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// harness runs commands against an isolated preferences file and keyring,
// with "today" fixed to 2024-06-15.
type harness struct {
	t     *testing.T
	dir   string
	prefs string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	keyring.MockInit()
	for _, name := range []string{"AGECALC_LANGUAGE", "AGECALC_DEBUG", "AGECALC_PREFS_FILE", "AGECALC_NOW"} {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	return &harness{t: t, dir: dir, prefs: filepath.Join(dir, config.PrefsFileName)}
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var out, errOut bytes.Buffer
	args = append(args, "--prefs", h.prefs, "--now", "2024-06-15")
	code := cli.Execute(context.Background(), args, &out, &errOut)
	return result{stdout: out.String(), stderr: errOut.String(), code: code}
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	res := h.run(args...)
	require.Equal(h.t, config.ExitCodeSuccess, res.code, "stderr: %s", res.stderr)
	return res.stdout
}

func TestCalc_Text(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("calc", "--date", "1990-08-10")

	for _, want := range []string{
		"33 years, 10 months, 5 days",
		"Born on 08/10/1990 (Friday)",
		"Statistics",
		"Total Days: 12,363",
		"Total Weeks: 1,766",
		"Total Hours: 296,712",
		"Days to Birthday: 56",
		"Age on other planets",
		"Your 34th birthday (in 56 days)",
		"Turning 40 - a new decade begins! (in 2,246 days)",
		"Major milestone: 50 years",
		"You're in your thirties!",
		"You were born on a Friday!",
		"German reunification",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCalc_SeparateFields(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("calc", "--day", "10", "--month", "8", "--year", "1990")
	assert.Contains(t, out, "33 years, 10 months, 5 days")
}

func TestCalc_French(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("calc", "--date", "1990-08-10", "--lang", "fr")

	assert.Contains(t, out, "33 ans, 10 mois, 5 jours")
	assert.Contains(t, out, "Statistiques")
	assert.Contains(t, out, "Mercure")
	assert.Contains(t, out, "vendredi")
}

func TestCalc_LanguageFromEnvironment(t *testing.T) {
	h := newHarness(t)
	t.Setenv("AGECALC_LANGUAGE", "fr")

	assert.Contains(t, h.mustRun("calc", "--date", "1990-08-10"), "33 ans")
	assert.Contains(t, h.mustRun("calc", "--date", "1990-08-10", "--lang", "en"), "33 years", "Flag wins over environment")
}

func TestCalc_JSON(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("calc", "--date", "1990-08-10", "--format", "json")

	var doc struct {
		ID  string `json:"id"`
		Age struct {
			Years  int `json:"years"`
			Months int `json:"months"`
			Days   int `json:"days"`
		} `json:"age"`
		DaysUntilBirthday int `json:"daysUntilBirthday"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, 33, doc.Age.Years)
	assert.Equal(t, 10, doc.Age.Months)
	assert.Equal(t, 5, doc.Age.Days)
	assert.Equal(t, 56, doc.DaysUntilBirthday)
}

func TestCalc_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Missing date", []string{"calc"}, config.ErrMissingDate},
		{"Impossible day", []string{"calc", "--day", "31", "--month", "2", "--year", "2023"}, "February 2023 only has 28 days"},
		{"Future date", []string{"calc", "--date", "2024-06-16"}, "Birth date cannot be in the future"},
		{"Not a number", []string{"calc", "--day", "ten", "--month", "8", "--year", "1990"}, "Day must be a valid number"},
		{"Malformed date", []string{"calc", "--date", "10/08/1990"}, config.ErrDateParse},
		{"Unknown format", []string{"calc", "--date", "1990-08-10", "--format", "xml"}, config.ErrUnknownFormat},
		{"Date and last together", []string{"calc", "--date", "1990-08-10", "--last"}, "none of the others can be"},
		{"Nothing remembered", []string{"calc", "--last"}, config.ErrNoLastInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(tt.args...)
			assert.Equal(t, config.ExitCodeError, res.code)
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestCalc_LocalizedIssues(t *testing.T) {
	h := newHarness(t)
	res := h.run("calc", "--day", "1", "--month", "13", "--year", "1990", "--lang", "fr")
	assert.Equal(t, config.ExitCodeError, res.code)
	assert.NotContains(t, res.stderr, "Month must be", "Issues are translated")
}

func TestValidate(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "OK\n", h.mustRun("validate", "--date", "2000-02-29"))

	res := h.run("validate", "--day", "32", "--month", "13", "--year", "1899")
	assert.Equal(t, config.ExitCodeError, res.code)
	assert.Equal(t, []string{
		"Year must be 1900 or later for accurate calculations",
		"Month must be a number between 1 and 12",
		"Day must be a number between 1 and 31",
	}, strings.Split(strings.TrimSpace(res.stdout), "\n"))
}

func TestPreferencesShapeOutput(t *testing.T) {
	h := newHarness(t)

	h.mustRun("prefs", "set", config.PrefShowStatistics, "false")
	h.mustRun("prefs", "set", config.PrefShowFunFacts, "false")
	h.mustRun("prefs", "set", config.PrefDateFormat, config.DateFormatDMY)

	out := h.mustRun("calc", "--date", "1990-08-10")
	assert.Contains(t, out, "Born on 10/08/1990 (Friday)")
	assert.NotContains(t, out, "Total Days")
	assert.NotContains(t, out, "You're in your thirties!")
	assert.Contains(t, out, "Age on other planets")
}

func TestRememberLastInput(t *testing.T) {
	h := newHarness(t)

	h.mustRun("calc", "--date", "1990-08-10")
	assert.Equal(t, config.ExitCodeError, h.run("calc", "--last").code, "Nothing is remembered by default")

	h.mustRun("prefs", "set", config.PrefRememberLastInput, "true")
	h.mustRun("calc", "--date", "1990-08-10")
	assert.Contains(t, h.mustRun("calc", "--last"), "33 years, 10 months, 5 days")

	h.mustRun("prefs", "set", config.PrefRememberLastInput, "false")
	assert.Equal(t, config.ExitCodeError, h.run("calc", "--last").code, "Turning the option off forgets the date")
}

func TestExport(t *testing.T) {
	h := newHarness(t)

	t.Run("Format from extension", func(t *testing.T) {
		path := filepath.Join(h.dir, "birthday.ics")
		out := h.mustRun("export", "--date", "1990-08-10", "-o", path)
		assert.Equal(t, "Saved "+path+"\n", out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "BEGIN:VCALENDAR")
		assert.Contains(t, string(data), "RRULE:FREQ=YEARLY")
	})

	t.Run("Stdout", func(t *testing.T) {
		out := h.mustRun("export", "--date", "1990-08-10", "--format", "vcard", "--name", "Ada", "-o", "-")
		assert.Contains(t, out, "BDAY:19900810")
		assert.Contains(t, out, "FN:Ada")
	})

	t.Run("Format from preference", func(t *testing.T) {
		h.mustRun("prefs", "set", config.PrefShareFormat, config.ShareJSON)
		path := filepath.Join(h.dir, "result.out")
		h.mustRun("export", "--date", "1990-08-10", "-o", path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
	})

	t.Run("Unknown format", func(t *testing.T) {
		res := h.run("export", "--date", "1990-08-10", "--format", "pdf", "-o", "-")
		assert.Equal(t, config.ExitCodeError, res.code)
	})
}

func TestImport(t *testing.T) {
	h := newHarness(t)

	write := func(name, content string) string {
		path := filepath.Join(h.dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), config.FilePermUserRW))
		return path
	}

	t.Run("Exported card imports back", func(t *testing.T) {
		path := filepath.Join(h.dir, "me.vcf")
		h.mustRun("export", "--date", "1990-08-10", "--name", "Ada Lovelace", "-o", path)

		out := h.mustRun("import", path)
		assert.Contains(t, out, "Birth date imported from "+path)
		assert.Contains(t, out, "Ada Lovelace")
		assert.Contains(t, out, "33 years, 10 months, 5 days")
	})

	t.Run("Year unknown", func(t *testing.T) {
		path := write("yearless.vcf", "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:X\r\nBDAY:--0810\r\nEND:VCARD\r\n")
		res := h.run("import", path)
		assert.Equal(t, config.ExitCodeError, res.code)
		assert.Contains(t, res.stderr, config.ErrYearUnknown)
	})

	t.Run("Birthday too early", func(t *testing.T) {
		path := write("old.vcf", "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:X\r\nBDAY:1850-01-01\r\nEND:VCARD\r\n")
		res := h.run("import", path)
		assert.Equal(t, config.ExitCodeError, res.code)
		assert.Contains(t, res.stderr, "Year must be 1900 or later")
	})

	t.Run("Missing file", func(t *testing.T) {
		res := h.run("import", filepath.Join(h.dir, "nope.vcf"))
		assert.Equal(t, config.ExitCodeError, res.code)
		assert.Contains(t, res.stderr, config.ErrOpenFile)
	})
}

func TestPrefsCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("prefs", "show")
	assert.Contains(t, out, "theme = auto\n")
	assert.Contains(t, out, "accessibility.announce_results = true\n")

	assert.Equal(t, "Settings saved\n", h.mustRun("prefs", "set", "theme", "dark"))
	assert.Contains(t, h.mustRun("prefs", "show"), "theme = dark\n")

	res := h.run("prefs", "set", "theme", "neon")
	assert.Equal(t, config.ExitCodeError, res.code)
	assert.Contains(t, res.stderr, config.ErrInvalidPrefs)

	res = h.run("prefs", "set", "colour", "red")
	assert.Equal(t, config.ExitCodeError, res.code)
	assert.Contains(t, res.stderr, config.ErrUnknownPref)

	h.mustRun("prefs", "reset")
	assert.Contains(t, h.mustRun("prefs", "show"), "theme = auto\n")
}

func TestPrefsLanguageUsedByDefault(t *testing.T) {
	h := newHarness(t)
	h.mustRun("prefs", "set", config.PrefLanguage, "fr")
	assert.Contains(t, h.mustRun("calc", "--date", "1990-08-10"), "33 ans")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("version")
	assert.True(t, strings.HasPrefix(out, config.AppName+" version "+config.Version), out)
}

func TestMetricsFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "Calc counts validation and report",
			args: []string{"calc", "--date", "1990-08-10", "--metrics"},
			want: []string{
				"# TYPE agecalc_calculations_total counter",
				`agecalc_calculations_total{operation="report"} 1`,
				`agecalc_calculations_total{operation="validate"} 1`,
			},
		},
		{
			name:    "Validate never builds a report",
			args:    []string{"validate", "--date", "1990-08-10", "--metrics"},
			want:    []string{`agecalc_calculations_total{operation="validate"} 1`},
			notWant: []string{`operation="report"`},
		},
		{
			name:    "Off by default",
			args:    []string{"calc", "--date", "1990-08-10"},
			notWant: []string{"agecalc_calculations_total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(tt.args...)
			require.Equal(t, config.ExitCodeSuccess, res.code, "stderr: %s", res.stderr)
			for _, want := range tt.want {
				assert.Contains(t, res.stderr, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, res.stderr, notWant)
				assert.NotContains(t, res.stdout, notWant)
			}
		})
	}
}
