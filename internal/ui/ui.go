package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/locale"
	"github.com/tartampluch/age-calculator/internal/perf"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// LastInputStore remembers the last calculated birth date between runs.
type LastInputStore interface {
	Save(engine.CalendarDate) error
	Load() (engine.CalendarDate, error)
	Clear() error
}

// Deps are the collaborators built by main.
type Deps struct {
	Prefs     *prefs.Manager
	Bundle    *locale.Bundle
	Monitor   *perf.Monitor
	LastInput LastInputStore
	Clock     engine.Clock
}

// AgeCalculatorApp encapsulates the UI state and its collaborators.
type AgeCalculatorApp struct {
	App            fyne.App
	Window         fyne.Window
	SettingsWindow fyne.Window
	Ctx            context.Context

	Prefs     *prefs.Manager
	Bundle    *locale.Bundle
	Localizer *locale.Localizer
	Monitor   *perf.Monitor
	LastInput LastInputStore
	Clock     engine.Clock // Injected clock for testability

	SupportedLanguages []string

	form    *birthForm
	results *fyne.Container
	status  *widget.Label
	report  *engine.Report
}

// NewAgeCalculatorApp constructs the application and wires dependencies.
func NewAgeCalculatorApp(a fyne.App, ctx context.Context, d Deps) *AgeCalculatorApp {
	a.SetIcon(theme.HistoryIcon())

	clock := d.Clock
	if clock == nil {
		clock = engine.RealClock{}
	}

	return &AgeCalculatorApp{
		App:                a,
		Ctx:                ctx,
		Prefs:              d.Prefs,
		Bundle:             d.Bundle,
		Monitor:            d.Monitor,
		LastInput:          d.LastInput,
		Clock:              clock,
		SupportedLanguages: d.Bundle.Languages(),
	}
}

// Setup builds the main window without showing it.
func (app *AgeCalculatorApp) Setup() {
	app.UpdateLocalizer()
	app.applyTheme()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetMaster()
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.refreshContent()

	app.Prefs.OnChange(app.onPreferencesChanged)
	app.restoreLastInput()
}

// Run shows the main window and blocks until the application quits.
func (app *AgeCalculatorApp) Run() {
	app.Setup()
	app.Window.Show()
	app.App.Run()
	app.Monitor.LogReport()
}

// refreshContent rebuilds the window, keeping the typed date.
// Called at startup and whenever language, date format or display options change.
func (app *AgeCalculatorApp) refreshContent() {
	var day, month, year string
	if app.form != nil {
		day, month, year = app.form.values()
	}

	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.status = widget.NewLabel("")
	app.status.Wrapping = fyne.TextWrapWord
	app.results = container.NewVBox()

	app.form = app.buildForm()
	app.form.set(day, month, year)

	toolbar := container.NewGridWithColumns(config.LayoutColumnsDouble,
		widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), app.ShowImportDialog),
		widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	app.Window.SetContent(container.NewBorder(
		container.NewVBox(app.form.container, app.status),
		toolbar, nil, nil,
		container.NewVScroll(container.NewPadded(app.results)),
	))

	if app.report != nil {
		app.renderResults(*app.report)
	} else {
		app.showPlaceholder()
	}
}

// onPreferencesChanged reacts to a stored preference change.
func (app *AgeCalculatorApp) onPreferencesChanged(p prefs.Preferences) {
	if !p.RememberLastInput && app.LastInput != nil {
		if err := app.LastInput.Clear(); err != nil {
			slog.Warn(config.MsgLastInputFail,
				config.LogKeyComponent, config.CompKeyring,
				config.LogKeyError, err)
		}
	}

	app.UpdateLocalizer()
	app.applyTheme()

	// Re-run the calculation so translated texts follow the new language.
	if app.report != nil {
		app.calculate(false)
	}
	app.refreshContent()
}

// restoreLastInput fills the form with the remembered birth date.
func (app *AgeCalculatorApp) restoreLastInput() {
	if app.LastInput == nil || !app.Prefs.Get().RememberLastInput {
		return
	}
	birth, err := app.LastInput.Load()
	if err != nil {
		slog.Debug(config.MsgLastInputFail,
			config.LogKeyComponent, config.CompKeyring,
			config.LogKeyError, err)
		return
	}
	app.form.setDate(birth)
	app.Calculate()
}

// rememberInput stores the birth date when the preference asks for it.
func (app *AgeCalculatorApp) rememberInput(birth engine.CalendarDate) {
	if app.LastInput == nil || !app.Prefs.Get().RememberLastInput {
		return
	}
	if err := app.LastInput.Save(birth); err != nil {
		slog.Warn(config.MsgLastInputFail,
			config.LogKeyComponent, config.CompKeyring,
			config.LogKeyError, err)
		return
	}
	slog.Debug(config.MsgLastInputSaved, config.LogKeyComponent, config.CompKeyring)
}

// notify sends a desktop notification unless the user turned them off.
func (app *AgeCalculatorApp) notify(content string) {
	if !app.Prefs.Get().ShowNotifications {
		slog.Debug(config.MsgNotifSkipped, config.LogKeyComponent, config.CompUI)
		return
	}
	app.App.SendNotification(fyne.NewNotification(config.AppName, content))
}
