// Package gallery renders a reference sheet of every widget part in every
// interaction state. Both the CLI exporter and the interactive viewer build
// their output from this one grid so the two stay in agreement.
package gallery

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"themekit/pkg/canvas"
	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
	"themekit/pkg/theme"
)

// Layout controls the grid geometry.
type Layout struct {
	CellWidth  int
	CellHeight int
	Padding    int
	LabelWidth int // left gutter for part names
	LabelTop   int // top gutter for state names
	Background colorutil.Color
}

// DefaultLayout fits every part at a readable size.
func DefaultLayout() Layout {
	return Layout{
		CellWidth:  90,
		CellHeight: 40,
		Padding:    8,
		LabelWidth: 140,
		LabelTop:   24,
		Background: colorutil.White,
	}
}

// Size reports the canvas dimensions the grid needs.
func (l Layout) Size() geom.Size {
	cols := len(theme.States())
	rows := len(theme.Parts())
	return geom.Size{
		Width:  l.LabelWidth + cols*(l.CellWidth+l.Padding) + l.Padding,
		Height: l.LabelTop + rows*(l.CellHeight+l.Padding) + l.Padding,
	}
}

// Render paints the full part-by-state grid and returns the canvas.
func Render(th *theme.Theme, l Layout) *canvas.Canvas {
	size := l.Size()
	c := canvas.New(size.Width, size.Height)
	c.Clear(l.Background)

	for col, state := range theme.States() {
		x := l.LabelWidth + col*(l.CellWidth+l.Padding) + l.Padding
		drawLabel(c, x, l.LabelTop-8, state.String())
	}

	for row, part := range theme.Parts() {
		y := l.LabelTop + row*(l.CellHeight+l.Padding) + l.Padding
		drawLabel(c, l.Padding, y+l.CellHeight/2+4, part.String())

		for col, state := range theme.States() {
			x := l.LabelWidth + col*(l.CellWidth+l.Padding) + l.Padding
			cell := geom.NewRect(x, y, l.CellWidth, l.CellHeight)
			RenderPart(c, th, part, state, cell)
		}
	}

	return c
}

// RenderPart paints one part into the cell, sized by GetPartSize when the
// part has an intrinsic size and stretched to the cell otherwise.
func RenderPart(c *canvas.Canvas, th *theme.Theme, part theme.Part, state theme.State, cell geom.Rect) {
	rect := cell
	if intrinsic := th.GetPartSize(part, state, nil); !intrinsic.IsEmpty() {
		rect = cell.Center(intrinsic)
	} else if part == theme.InnerSpinButton {
		// Spin buttons report width only; take the cell height.
		rect = cell.Center(geom.Size{Width: 15, Height: cell.Height})
	}
	th.Paint(c, part, state, rect, galleryExtra(part, rect))
}

// galleryExtra picks representative extra parameters for each part.
func galleryExtra(part theme.Part, rect geom.Rect) theme.ExtraParams {
	switch part {
	case theme.Checkbox, theme.Radio:
		return theme.ButtonExtraParams{Checked: true}
	case theme.PushButton:
		return theme.ButtonExtraParams{
			BackgroundColor: colorutil.RGB(0xdd, 0xdd, 0xdd),
			HasBorder:       true,
		}
	case theme.TextField:
		return theme.TextFieldExtraParams{BackgroundColor: colorutil.White}
	case theme.MenuList:
		return theme.MenuListExtraParams{
			HasBorder:       true,
			BackgroundColor: colorutil.RGB(0xdd, 0xdd, 0xdd),
			ArrowX:          rect.Right() - 12,
			ArrowY:          rect.Y + rect.Height/2,
		}
	case theme.SliderTrack, theme.SliderThumb:
		return theme.SliderExtraParams{}
	case theme.InnerSpinButton:
		return theme.InnerSpinButtonExtraParams{SpinUp: true}
	case theme.ProgressBar:
		return theme.ProgressBarExtraParams{
			ValueRectX:      rect.X,
			ValueRectY:      rect.Y,
			ValueRectWidth:  rect.Width / 2,
			ValueRectHeight: rect.Height,
		}
	default:
		return nil
	}
}

// drawLabel writes small caption text straight onto the backing image.
func drawLabel(c *canvas.Canvas, x, y int, text string) {
	dst, ok := c.Image().(*image.RGBA)
	if !ok {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
