package ui

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

// birthForm holds the date inputs.
type birthForm struct {
	day       *NumericalEntry
	month     *NumericalEntry
	year      *NumericalEntry
	pickBtn   *widget.Button
	calcBtn   *widget.Button
	container fyne.CanvasObject

	// quiet is set while the form is filled programmatically.
	quiet bool
}

func (f *birthForm) values() (day, month, year string) {
	return f.day.Text, f.month.Text, f.year.Text
}

func (f *birthForm) set(day, month, year string) {
	f.quiet = true
	defer func() { f.quiet = false }()
	f.day.SetText(day)
	f.month.SetText(month)
	f.year.SetText(year)
}

func (f *birthForm) setDate(d engine.CalendarDate) {
	f.set(strconv.Itoa(d.Day), strconv.Itoa(d.Month), strconv.Itoa(d.Year))
}

func (f *birthForm) entry(field engine.Field) *NumericalEntry {
	switch field {
	case engine.FieldMonth:
		return f.month
	case engine.FieldYear:
		return f.year
	default:
		return f.day
	}
}

// buildForm lays out the entries in the order of the date format preference.
func (app *AgeCalculatorApp) buildForm() *birthForm {
	p := app.Prefs.Get()
	f := &birthForm{}

	newField := func(field engine.Field, placeholder string, digits int) *NumericalEntry {
		e := NewNumericalEntry(digits)
		e.PlaceHolder = placeholder
		e.Validator = app.fieldValidator(field)
		e.OnChanged = func(string) { app.autoCalculate() }
		e.OnSubmitted = func(string) { app.Calculate() }
		return e
	}
	f.day = newField(engine.FieldDay, "DD", 2)
	f.month = newField(engine.FieldMonth, "MM", 2)
	f.year = newField(engine.FieldYear, "YYYY", config.AutoCalcYearDigits)

	items := map[engine.Field]*widget.FormItem{
		engine.FieldDay:   widget.NewFormItem(app.GetMsg(config.TKeyLblDay), f.day),
		engine.FieldMonth: widget.NewFormItem(app.GetMsg(config.TKeyLblMonth), f.month),
		engine.FieldYear:  widget.NewFormItem(app.GetMsg(config.TKeyLblYear), f.year),
	}
	form := widget.NewForm()
	for _, field := range fieldOrder(p.DateFormat) {
		form.AppendItem(items[field])
	}

	f.calcBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	f.calcBtn.Importance = widget.HighImportance

	f.pickBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnPickDate), theme.HistoryIcon(), app.ShowDatePicker)
	if p.InputMethod != config.InputPicker {
		f.pickBtn.Hide()
	}

	f.container = container.NewVBox(form, container.NewGridWithColumns(config.LayoutColumnsDouble, f.pickBtn, f.calcBtn))
	return f
}

// fieldOrder maps a date format preference to the entry order.
func fieldOrder(format string) []engine.Field {
	switch format {
	case config.DateFormatMDY:
		return []engine.Field{engine.FieldMonth, engine.FieldDay, engine.FieldYear}
	case config.DateFormatYMD:
		return []engine.Field{engine.FieldYear, engine.FieldMonth, engine.FieldDay}
	default:
		return []engine.Field{engine.FieldDay, engine.FieldMonth, engine.FieldYear}
	}
}

// fieldValidator adapts ValidateField to a widget validator with a localized message.
func (app *AgeCalculatorApp) fieldValidator(field engine.Field) fyne.StringValidator {
	v := engine.NewValidator(app.Clock)
	return func(s string) error {
		err := v.ValidateField(field, engine.SanitizeInput(s))
		var issue engine.Issue
		if errors.As(err, &issue) {
			return errors.New(app.Localizer.Issue(issue))
		}
		return err
	}
}

// autoCalculate runs the calculation while typing once the year looks complete.
func (app *AgeCalculatorApp) autoCalculate() {
	if app.form == nil || app.form.quiet || !app.Prefs.Get().AutoCalculate {
		return
	}
	day, month, year := app.form.values()
	if day == "" || month == "" || len(year) < config.AutoCalcYearDigits {
		return
	}
	app.Calculate()
}

// Calculate validates the form and shows the results.
func (app *AgeCalculatorApp) Calculate() {
	app.calculate(true)
}

// calculate recomputes the report. interactive is false when only the
// presentation changed (e.g. a new language): nothing is remembered or notified.
func (app *AgeCalculatorApp) calculate(interactive bool) {
	slog.Debug(config.MsgCalcRequested, config.LogKeyComponent, config.CompUI)
	p := app.Prefs.Get()

	day, month, year := app.form.values()
	day, month, year = engine.SanitizeInput(day), engine.SanitizeInput(month), engine.SanitizeInput(year)

	var res engine.Result
	app.Monitor.Track(config.OpValidate, func() {
		res = engine.NewValidator(app.Clock).ValidateInput(day, month, year)
	})
	if !res.Valid() {
		slog.Info(config.MsgCalcRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyIssues, len(res))
		app.report = nil
		app.status.SetText(strings.Join(app.Localizer.Issues(res), "\n"))
		app.showPlaceholder()
		if first, ok := res.First(); ok && p.Accessibility.FocusManagement && interactive {
			app.Window.Canvas().Focus(app.form.entry(first.Field))
		}
		return
	}

	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	birth := engine.CalendarDate{Day: d, Month: m, Year: y}

	calc := app.Localizer.Calculator(birth, app.Clock)
	var (
		r   engine.Report
		err error
	)
	app.Monitor.Track(config.OpReport, func() { r, err = calc.Report() })
	if err != nil {
		app.report = nil
		app.status.SetText(err.Error())
		app.showPlaceholder()
		return
	}

	slog.Info(config.MsgCalcDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyYears, r.Age.Years)

	app.report = &r
	app.status.SetText("")
	app.renderResults(r)
	if !interactive {
		return
	}

	if p.Accessibility.AnnounceResults {
		app.status.SetText(app.ageText(r))
	}
	app.rememberInput(birth)
	if r.BirthdayToday && r.Celebrate {
		app.notify(app.Format(config.TKeyNotifCelebrate, map[string]any{"Years": r.Age.Years}))
	}
}

// ShowDatePicker opens a calendar; picking a day fills the form and calculates.
func (app *AgeCalculatorApp) ShowDatePicker() {
	slog.Debug(config.MsgPickerOpen, config.LogKeyComponent, config.CompUI)

	start := app.Clock.Now()
	if app.report != nil {
		start = app.report.BirthDate.Time()
	}

	var d *dialog.CustomDialog
	cal := widget.NewCalendar(start, func(t time.Time) {
		app.form.setDate(engine.DateOf(t))
		if d != nil {
			d.Hide()
		}
		app.Calculate()
	})
	d = dialog.NewCustom(app.GetMsg(config.TKeyBtnPickDate), app.GetMsg(config.TKeyBtnCancel), cal, app.Window)
	d.Show()
}
