package main

import (
	"bytes"
	"context"
	"errors"
	"image/png"

	"drug-concentration/internal/adapters/chart/gochart"
	mem "drug-concentration/internal/adapters/storage/memory"
	"drug-concentration/internal/domain/concentration"
	"drug-concentration/internal/domain/forms"
	"drug-concentration/internal/platform/logger"
	"drug-concentration/internal/ports/chart"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// desktopForm son las cinco entradas y lo que necesitan los botones.
// La ventana es una única sesión del servicio de formularios: Generate vuelca
// los widgets con Edit y después genera desde lo guardado.
type desktopForm struct {
	app    fyne.App
	window fyne.Window
	log    logger.Logger

	svc      *forms.Service
	formID   string
	renderer chart.Renderer

	dose      *widget.Entry
	rate      *widget.Entry
	start     *widget.Entry
	end       *widget.Entry
	intervals *widget.Entry
}

func main() {
	a := app.New()
	w := a.NewWindow("Drug Concentration Calculator")

	log := logger.NewFromEnv()
	svc := forms.NewService(mem.NewFormRepo(mem.FormRepoOptions{MaxForms: 1}), 0)
	session, err := svc.Open(context.Background())
	if err != nil {
		log.Error("form session open failed", map[string]any{"error": err.Error()})
		return
	}

	f := &desktopForm{
		app:      a,
		window:   w,
		log:      log,
		svc:      svc,
		formID:   session.ID,
		renderer: gochart.New(gochart.DefaultWidth, gochart.DefaultHeight),
	}

	w.SetContent(f.build(session.Fields))
	w.Resize(fyne.NewSize(450, 350))
	w.ShowAndRun()
}

func (f *desktopForm) build(initial forms.Fields) fyne.CanvasObject {
	f.dose = widget.NewEntry()
	f.rate = widget.NewEntry()
	f.start = widget.NewEntry()
	f.end = widget.NewEntry()
	f.intervals = widget.NewEntry()
	f.setFields(initial)

	form := widget.NewForm(
		widget.NewFormItem("Drug Dose (in mg):", f.dose),
		widget.NewFormItem("Elimination Rate (per hour):", f.rate),
		widget.NewFormItem("Start Time (0):", f.start),
		widget.NewFormItem("End Time (until observed):", f.end),
		widget.NewFormItem("Time Intervals:", f.intervals),
	)

	return container.NewPadded(container.NewVBox(
		form,
		widget.NewButton("Generate Plot", f.generate),
		widget.NewButton("Reset Fields", f.reset),
	))
}

func (f *desktopForm) edits() forms.EditInput {
	dose, rate, start, end, intervals := f.dose.Text, f.rate.Text, f.start.Text, f.end.Text, f.intervals.Text
	return forms.EditInput{
		Dose:            &dose,
		EliminationRate: &rate,
		TimeStart:       &start,
		TimeEnd:         &end,
		Intervals:       &intervals,
	}
}

func (f *desktopForm) setFields(v forms.Fields) {
	f.dose.SetText(v.Dose)
	f.rate.SetText(v.EliminationRate)
	f.start.SetText(v.TimeStart)
	f.end.SetText(v.TimeEnd)
	f.intervals.SetText(v.Intervals)
}

func (f *desktopForm) generate() {
	ctx := context.Background()
	if _, err := f.svc.Edit(ctx, f.formID, f.edits()); err != nil {
		f.log.Error("form edit failed", map[string]any{"error": err.Error()})
		f.showDialog(forms.DialogFor(err))
		return
	}
	plot, err := f.svc.Generate(ctx, f.formID, concentration.MethodClosedForm)
	if err != nil {
		f.showDialog(forms.DialogFor(err))
		return
	}

	var buf bytes.Buffer
	if err := f.renderer.Render(ctx, &buf, plot, chart.FormatPNG); err != nil {
		f.log.Warn("chart render failed", map[string]any{"error": err.Error()})
		f.showDialog(forms.DialogFor(err))
		return
	}
	img, err := png.Decode(&buf)
	if err != nil {
		f.log.Error("chart decode failed", map[string]any{"error": err.Error()})
		f.showDialog(forms.DialogFor(err))
		return
	}

	f.log.Debug("plot generated", map[string]any{
		"samples":      len(plot.Curve),
		"total_effect": plot.TotalEffect,
	})

	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(float32(gochart.DefaultWidth), float32(gochart.DefaultHeight)))

	pw := f.app.NewWindow("Drug Concentration Over Time")
	pw.SetContent(c)
	pw.Show()
}

func (f *desktopForm) reset() {
	form, err := f.svc.Reset(context.Background(), f.formID)
	if err != nil {
		f.log.Error("form reset failed", map[string]any{"error": err.Error()})
		f.showDialog(forms.DialogFor(err))
		return
	}
	f.setFields(form.Fields)
	f.showDialog(forms.ResetDialog())
}

func (f *desktopForm) showDialog(d forms.Dialog) {
	if d.Kind == forms.DialogError {
		dialog.ShowError(errors.New(d.Message), f.window)
		return
	}
	dialog.ShowInformation(d.Title, d.Message, f.window)
}
