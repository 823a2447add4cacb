package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/prefs"
)

// choice maps translated select labels back to preference values.
type choice struct {
	values []string
	labels []string
}

func (c choice) label(value string) string {
	for i, v := range c.values {
		if v == value {
			return c.labels[i]
		}
	}
	return c.labels[0]
}

func (c choice) value(label string) string {
	for i, l := range c.labels {
		if l == label {
			return c.values[i]
		}
	}
	return c.values[0]
}

func (c choice) newSelect(current string) *widget.Select {
	s := widget.NewSelect(c.labels, nil)
	s.SetSelected(c.label(current))
	return s
}

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect   *widget.Select
	themeSelect  *widget.Select
	formatSelect *widget.Select
	inputSelect  *widget.Select
	shareSelect  *widget.Select

	checkFacts    *widget.Check
	checkPlanets  *widget.Check
	checkStats    *widget.Check
	checkNotif    *widget.Check
	checkAnim     *widget.Check
	checkAutoCalc *widget.Check
	checkRemember *widget.Check

	checkAnnounce *widget.Check
	checkFocus    *widget.Check
	checkContrast *widget.Check
}

func (app *AgeCalculatorApp) themeChoice() choice {
	return choice{
		values: []string{config.ThemeAuto, config.ThemeLight, config.ThemeDark},
		labels: []string{app.GetMsg(config.TKeyThemeAuto), app.GetMsg(config.TKeyThemeLight), app.GetMsg(config.TKeyThemeDark)},
	}
}

func (app *AgeCalculatorApp) inputChoice() choice {
	return choice{
		values: []string{config.InputManual, config.InputPicker},
		labels: []string{app.GetMsg(config.TKeyInputManual), app.GetMsg(config.TKeyInputPicker)},
	}
}

// Date and export formats are shown as-is.
func plainChoice(values ...string) choice {
	return choice{values: values, labels: values}
}

var (
	dateFormatChoice  = plainChoice(config.DateFormatMDY, config.DateFormatDMY, config.DateFormatYMD)
	shareFormatChoice = plainChoice(config.ShareText, config.ShareJSON, config.ShareICS, config.ShareVCard)
)

// newSettingsWidgets builds the controls filled with the current preferences.
func (app *AgeCalculatorApp) newSettingsWidgets(p prefs.Preferences) *settingsWidgets {
	check := func(key string, v bool) *widget.Check {
		c := widget.NewCheck(app.GetMsg(key), nil)
		c.SetChecked(v)
		return c
	}

	return &settingsWidgets{
		langSelect:   plainChoice(app.SupportedLanguages...).newSelect(p.Language),
		themeSelect:  app.themeChoice().newSelect(p.Theme),
		formatSelect: dateFormatChoice.newSelect(p.DateFormat),
		inputSelect:  app.inputChoice().newSelect(p.InputMethod),
		shareSelect:  shareFormatChoice.newSelect(p.ShareFormat),

		checkFacts:    check(config.TKeyLblShowFacts, p.ShowFunFacts),
		checkPlanets:  check(config.TKeyLblShowPlanets, p.ShowPlanetaryAges),
		checkStats:    check(config.TKeyLblShowStats, p.ShowStatistics),
		checkNotif:    check(config.TKeyLblShowNotif, p.ShowNotifications),
		checkAnim:     check(config.TKeyLblAnimations, p.ShowAnimations),
		checkAutoCalc: check(config.TKeyLblAutoCalc, p.AutoCalculate),
		checkRemember: check(config.TKeyLblRemember, p.RememberLastInput),

		checkAnnounce: check(config.TKeyLblAnnounce, p.Accessibility.AnnounceResults),
		checkFocus:    check(config.TKeyLblFocus, p.Accessibility.FocusManagement),
		checkContrast: check(config.TKeyLblContrast, p.Accessibility.HighContrast),
	}
}

// apply copies the widget states into p.
func (app *AgeCalculatorApp) apply(sw *settingsWidgets, p *prefs.Preferences) {
	p.Language = sw.langSelect.Selected
	p.Theme = app.themeChoice().value(sw.themeSelect.Selected)
	p.DateFormat = dateFormatChoice.value(sw.formatSelect.Selected)
	p.InputMethod = app.inputChoice().value(sw.inputSelect.Selected)
	p.ShareFormat = shareFormatChoice.value(sw.shareSelect.Selected)

	p.ShowFunFacts = sw.checkFacts.Checked
	p.ShowPlanetaryAges = sw.checkPlanets.Checked
	p.ShowStatistics = sw.checkStats.Checked
	p.ShowNotifications = sw.checkNotif.Checked
	p.ShowAnimations = sw.checkAnim.Checked
	p.AutoCalculate = sw.checkAutoCalc.Checked
	p.RememberLastInput = sw.checkRemember.Checked

	p.Accessibility.AnnounceResults = sw.checkAnnounce.Checked
	p.Accessibility.FocusManagement = sw.checkFocus.Checked
	p.Accessibility.HighContrast = sw.checkContrast.Checked
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *AgeCalculatorApp) ShowSettingsWindow() {
	if app.SettingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.SettingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.SettingsWindow = w

	sw := app.newSettingsWidgets(app.Prefs.Get())

	generalForm := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblTheme), sw.themeSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDateFormat), sw.formatSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblInputMethod), sw.inputSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblShareFormat), sw.shareSelect),
	)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	displayCard := widget.NewCard(app.GetMsg(config.TKeyLblDisplay), "", container.NewGridWithColumns(
		config.LayoutColumnsDouble,
		sw.checkStats, sw.checkPlanets,
		sw.checkFacts, sw.checkNotif,
		sw.checkAnim, sw.checkAutoCalc,
		sw.checkRemember,
	))

	a11yCard := widget.NewCard(app.GetMsg(config.TKeyLblA11y), "", container.NewVBox(
		sw.checkAnnounce, sw.checkFocus, sw.checkContrast,
	))

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })
	btnReset := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnReset), theme.ViewRefreshIcon(), func() {
		app.resetSettings(w)
	})

	// --- Footer ---
	footerLabel := widget.NewLabel(app.Format(config.TKeyLblFooter, map[string]any{"Version": config.Version}))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	w.SetContent(container.NewPadded(container.NewVBox(
		generalCard,
		displayCard,
		a11yCard,
		btnReset,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	)))
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, w.Content().MinSize().Height))
	w.SetOnClosed(func() { app.SettingsWindow = nil })
	w.Show()
}

// saveSettings persists the widget states; listeners refresh the main window.
func (app *AgeCalculatorApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	err := app.Prefs.Update(func(p *prefs.Preferences) {
		app.apply(sw, p)
	})
	if err != nil {
		dialog.ShowError(err, w)
		return
	}

	app.notify(app.GetMsg(config.TKeyNotifSaved))
	w.Close()
}

func (app *AgeCalculatorApp) resetSettings(w fyne.Window) {
	if err := app.Prefs.Reset(); err != nil {
		dialog.ShowError(err, w)
		return
	}
	app.notify(app.GetMsg(config.TKeyNotifSaved))
	w.Close()
}
