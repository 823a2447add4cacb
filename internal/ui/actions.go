package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/share"
)

var errNoReport = errors.New(config.ErrNoReport)

// Share copies the share text to the clipboard.
func (app *AgeCalculatorApp) Share() {
	if app.report == nil {
		return
	}
	app.App.Clipboard().SetContent(share.Text(*app.report, app.Localizer.Translate))
	app.notify(app.GetMsg(config.TKeyNotifCopied))
}

// ShowExportDialog asks for a destination and writes the report in the preferred format.
func (app *AgeCalculatorApp) ShowExportDialog() {
	if app.report == nil {
		return
	}
	format := app.Prefs.Get().ShareFormat

	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if w == nil {
			return // Cancelled
		}
		defer func() { _ = w.Close() }()

		if err := app.exportTo(w, w.URI().Name()); err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		app.notify(app.Format(config.TKeyNotifExported, map[string]any{"File": w.URI().Name()}))
	}, app.Window)
	d.SetFileName(share.FileName(format))
	d.Show()
}

// exportTo writes the current report. The format follows the file extension,
// then the share format preference.
func (app *AgeCalculatorApp) exportTo(w io.Writer, name string) error {
	if app.report == nil {
		return errNoReport
	}
	format, err := share.FormatFromPath(name)
	if err != nil {
		format = app.Prefs.Get().ShareFormat
	}

	opts := share.Options{Translate: app.Localizer.Translate}
	if err := share.Encode(w, format, *app.report, opts); err != nil {
		return err
	}
	slog.Info(config.MsgExported,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyFormat, format,
		config.LogKeyFile, name)
	return nil
}

// ShowImportDialog reads the first birthday of a vCard file into the form.
func (app *AgeCalculatorApp) ShowImportDialog() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if r == nil {
			return // Cancelled
		}
		defer func() { _ = r.Close() }()

		if err := app.importFrom(r, r.URI().Name()); err != nil {
			dialog.ShowError(err, app.Window)
		}
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

func (app *AgeCalculatorApp) importFrom(r io.Reader, name string) error {
	contact, err := share.DecodeVCardBirthday(r)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	slog.Info(config.MsgImported,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyName, contact.Name)

	app.form.setDate(contact.Birth)
	app.Calculate()
	app.notify(app.Format(config.TKeyNotifImported, map[string]any{"File": name}))
	return nil
}
