package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

func (app *AgeCalculatorApp) ageText(r engine.Report) string {
	return app.Format(config.TKeyLblAge, map[string]any{
		"Years": r.Age.Years, "Months": r.Age.Months, "Days": r.Age.Days,
	})
}

func (app *AgeCalculatorApp) showPlaceholder() {
	hint := widget.NewLabel(app.GetMsg(config.TKeyLblNoResult))
	hint.Alignment = fyne.TextAlignCenter
	hint.Wrapping = fyne.TextWrapWord
	app.results.Objects = []fyne.CanvasObject{hint}
	app.results.Refresh()
}

// renderResults replaces the results area with one card per section,
// honoring the display preferences.
func (app *AgeCalculatorApp) renderResults(r engine.Report) {
	p := app.Prefs.Get()
	objects := []fyne.CanvasObject{app.ageCard(r, p.ShowAnimations)}

	if p.ShowStatistics {
		grid := container.NewGridWithColumns(config.LayoutColumnsDouble)
		for _, s := range r.Stats {
			value := widget.NewLabel(app.Localizer.Number(s.Value))
			value.TextStyle = fyne.TextStyle{Bold: true}
			grid.Add(widget.NewLabel(s.Label))
			grid.Add(value)
		}
		objects = append(objects, widget.NewCard(app.GetMsg(config.TKeyLblStats), "", grid))
	}

	if p.ShowPlanetaryAges {
		grid := container.NewGridWithColumns(config.LayoutColumnsDouble)
		for _, pa := range r.PlanetaryAges {
			grid.Add(widget.NewLabel(pa.Body))
			grid.Add(widget.NewLabel(app.Localizer.Decimal(pa.Years)))
		}
		objects = append(objects, widget.NewCard(app.GetMsg(config.TKeyLblPlanets), "", grid))
	}

	milestones := container.NewVBox()
	for _, m := range r.Milestones {
		left := app.Format(config.TKeyLblDaysLeft, map[string]any{"Days": app.Localizer.Number(int64(m.DaysRemaining))})
		milestones.Add(container.NewBorder(nil, nil, nil, widget.NewLabel(left), wrapped(m.Description)))
	}
	objects = append(objects, widget.NewCard(app.GetMsg(config.TKeyLblMilestones), "", milestones))

	if p.ShowFunFacts {
		objects = append(objects, widget.NewCard(app.GetMsg(config.TKeyLblFacts), "", bulletList(r.FunFacts)))
	}
	objects = append(objects, widget.NewCard(app.GetMsg(config.TKeyLblHistory), "", bulletList(r.HistoricalEvents)))

	app.results.Objects = objects
	app.results.Refresh()
}

// ageCard shows the headline age with the share and export actions.
func (app *AgeCalculatorApp) ageCard(r engine.Report, animate bool) fyne.CanvasObject {
	bornOn := app.Format(config.TKeyLblBornOn, map[string]any{
		"Date":    r.BirthDate.Format(app.Prefs.Get().DateLayout()),
		"Weekday": r.BirthDay.DayOfWeek,
	})
	next := app.Format(config.TKeyLblDaysLeft, map[string]any{"Days": app.Localizer.Number(int64(r.DaysUntilBirthday))})

	actions := container.NewGridWithColumns(config.LayoutColumnsDouble,
		widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnShare), theme.ContentCopyIcon(), app.Share),
		widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), app.ShowExportDialog),
	)
	card := widget.NewCard(app.ageText(r), bornOn, container.NewVBox(
		widget.NewLabelWithStyle(next, fyne.TextAlignLeading, fyne.TextStyle{Italic: true}),
		actions,
	))

	if !animate || !r.BirthdayToday {
		return card
	}

	// Birthday highlight fading out behind the card.
	bg := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	anim := canvas.NewColorRGBAAnimation(toRGBA(theme.Color(theme.ColorNamePrimary)), color.RGBA{}, config.AnimationDuration,
		func(c color.Color) {
			bg.FillColor = c
			bg.Refresh()
		})
	anim.Start()
	return container.NewStack(bg, card)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func wrapped(text string) *widget.Label {
	l := widget.NewLabel(text)
	l.Wrapping = fyne.TextWrapWord
	return l
}

func bulletList(items []string) fyne.CanvasObject {
	box := container.NewVBox()
	for _, item := range items {
		box.Add(wrapped("• " + item))
	}
	return box
}
