package viewer

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"graphview/internal/app"
	"graphview/internal/domain"
	"graphview/internal/render"
)

// Viewer is the interactive graph window.
type Viewer struct {
	app    fyne.App
	window fyne.Window
	deps   *app.App

	state domain.PlotState

	funcSelect *widget.Select
	aEntry     *widget.Entry
	bEntry     *widget.Entry
	xMinEntry  *widget.Entry
	xMaxEntry  *widget.Entry
	annotation *widget.Label
	plotImg    *canvas.Image
}

// New builds the window and widgets without showing anything.
func New(deps *app.App) *Viewer {
	a := fyneapp.New()
	w := a.NewWindow("Graph Viewer")

	v := &Viewer{
		app:    a,
		window: w,
		deps:   deps,
		state:  domain.PlotState{XMin: 0, XMax: 10},
	}

	v.funcSelect = widget.NewSelect(deps.Catalog.Names(), v.onSelect)
	v.funcSelect.PlaceHolder = "Select a function"

	v.aEntry = newParamEntry(v.redraw)
	v.bEntry = newParamEntry(v.redraw)
	v.xMinEntry = newParamEntry(v.redraw)
	v.xMaxEntry = newParamEntry(v.redraw)
	v.xMinEntry.SetText(formatParam(v.state.XMin))
	v.xMaxEntry.SetText(formatParam(v.state.XMax))

	v.annotation = widget.NewLabel("")
	v.plotImg = canvas.NewImageFromImage(nil)
	v.plotImg.FillMode = canvas.ImageFillContain
	v.plotImg.SetMinSize(fyne.NewSize(
		float32(deps.Config.ChartWidth), float32(deps.Config.ChartHeight)))

	params := container.NewGridWithColumns(4,
		labeled("A", v.aEntry),
		labeled("B", v.bEntry),
		labeled("x min", v.xMinEntry),
		labeled("x max", v.xMaxEntry),
	)
	top := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel("Function:"),
			widget.NewButton("Plot", v.redraw), v.funcSelect),
		params,
	)
	w.SetContent(container.NewBorder(top, v.annotation, nil, nil, v.plotImg))
	w.Resize(fyne.NewSize(
		float32(deps.Config.ChartWidth)+40, float32(deps.Config.ChartHeight)+160))

	return v
}

// Run shows the window and blocks until it is closed.
func (v *Viewer) Run() {
	v.window.ShowAndRun()
}

// onSelect switches the active function, seeds A and B from its defaults,
// and replots. The x range carries over from the previous selection.
func (v *Viewer) onSelect(name string) {
	fn, ok := v.deps.Catalog.Lookup(name)
	if !ok {
		return
	}
	spec := fn.Spec()
	v.state.Selected = &spec
	v.state.A = spec.ParamADefault
	v.state.B = spec.ParamBDefault
	v.aEntry.SetText(formatParam(spec.ParamADefault))
	v.bEntry.SetText(formatParam(spec.ParamBDefault))
	v.redraw()
}

// redraw runs one synchronous validate-compute-render cycle. All entry
// text is parsed into locals first; v.state is only overwritten once the
// whole cycle has succeeded, so bad input never clobbers the last valid
// plot.
func (v *Viewer) redraw() {
	if v.state.Selected == nil {
		return
	}

	a, err := parseParam("A", v.aEntry.Text)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	b, err := parseParam("B", v.bEntry.Text)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	xMin, err := parseParam("x min", v.xMinEntry.Text)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	xMax, err := parseParam("x max", v.xMaxEntry.Text)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}

	fn, ok := v.deps.Catalog.Lookup(v.state.Selected.Name)
	if !ok {
		return
	}
	req := domain.DomainRequest{XMin: xMin, XMax: xMax, A: a, B: b}
	plot, err := v.deps.Plotter.Compute(fn, req)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	img, err := render.Image(plot, v.deps.Config.ChartWidth, v.deps.Config.ChartHeight)
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}

	v.state.A, v.state.B = a, b
	v.state.XMin, v.state.XMax = xMin, xMax
	v.plotImg.Image = img
	v.plotImg.Refresh()
	v.annotation.SetText(plot.Annotation)
}

// newParamEntry returns an entry that replots when submitted.
func newParamEntry(onSubmit func()) *widget.Entry {
	e := widget.NewEntry()
	e.OnSubmitted = func(string) { onSubmit() }
	return e
}

func labeled(name string, e *widget.Entry) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel(name+":"), nil, e)
}

func parseParam(name, text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, text)
	}
	return f, nil
}

func formatParam(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
