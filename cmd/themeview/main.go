package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"themekit/pkg/canvas"
	"themekit/pkg/colorutil"
	"themekit/pkg/gallery"
	"themekit/pkg/geom"
	"themekit/pkg/theme"
)

const (
	previewWidth  = 360
	previewHeight = 200
)

func main() {
	a := app.New()
	w := a.NewWindow("themekit viewer")
	w.Resize(fyne.NewSize(1024, 768))

	th := theme.Default()

	// Full gallery grid on the left
	grid := gallery.Render(th, gallery.DefaultLayout())
	gridImg := fynecanvas.NewImageFromImage(grid.Image())
	gridImg.FillMode = fynecanvas.ImageFillOriginal

	// Single-part preview on the right, driven by the selectors
	preview := fynecanvas.NewImageFromImage(canvas.New(previewWidth, previewHeight).Image())
	preview.FillMode = fynecanvas.ImageFillOriginal

	status := widget.NewLabel("")

	partNames := make([]string, 0, len(theme.Parts()))
	for _, p := range theme.Parts() {
		partNames = append(partNames, p.String())
	}
	stateNames := make([]string, 0, len(theme.States()))
	for _, s := range theme.States() {
		stateNames = append(stateNames, s.String())
	}

	selectedPart := theme.PushButton
	selectedState := theme.StateNormal

	redraw := func() {
		c := canvas.New(previewWidth, previewHeight)
		c.Clear(colorutil.White)
		cell := geom.NewRect(20, 20, previewWidth-40, previewHeight-40)
		gallery.RenderPart(c, th, selectedPart, selectedState, cell)
		preview.Image = c.Image()
		preview.Refresh()
		status.SetText(fmt.Sprintf("%s / %s", selectedPart, selectedState))
	}

	partSelect := widget.NewSelect(partNames, func(name string) {
		if p, ok := theme.ParsePart(name); ok {
			selectedPart = p
			redraw()
		}
	})
	partSelect.SetSelected(selectedPart.String())

	stateSelect := widget.NewSelect(stateNames, func(name string) {
		if s, ok := theme.ParseState(name); ok {
			selectedState = s
			redraw()
		}
	})
	stateSelect.SetSelected(selectedState.String())

	controls := container.NewVBox(
		widget.NewLabel("Part"), partSelect,
		widget.NewLabel("State"), stateSelect,
		preview,
	)
	content := container.NewBorder(nil, status, nil, controls,
		container.NewScroll(gridImg))
	w.SetContent(content)

	redraw()
	w.ShowAndRun()
}
