package theme

import (
	"image"

	"themekit/pkg/assets"
	"themekit/pkg/colorutil"
	"themekit/pkg/geom"
)

// Fixed part footprints, in device pixels.
const (
	buttonLength      = 14
	scrollbarWidth    = 15
	checkboxWidth     = 13
	checkboxHeight    = 13
	sliderThumbWidth  = 11
	sliderThumbHeight = 21
)

// Hand-tuned palette. Reference renderings depend on these exact values;
// do not re-derive them.
var (
	thumbInactiveColor        = colorutil.RGB(0xea, 0xea, 0xea)
	trackColor                = colorutil.RGB(0xd3, 0xd3, 0xd3)
	sliderTrackBackground     = colorutil.RGB(0xe3, 0xdd, 0xd8)
	sliderThumbLightGrey      = colorutil.RGB(0xf4, 0xf2, 0xef)
	sliderThumbDarkGrey       = colorutil.RGB(0xea, 0xe5, 0xe0)
	sliderThumbBorderDarkGrey = colorutil.RGB(0x9d, 0x96, 0x8e)
)

// Luminance shift between the two gradient stops of button chrome. The
// standard gradient runs from 0xdd to 0xf8; this is the lightness increase
// between those values.
const buttonGradientLightness = 0.105

// Lightness shift for the corner highlight pixels of bordered buttons.
const buttonCornerDarken = -0.0588

func (t *Theme) paintArrowButton(s Surface, rect geom.Rect, direction Part, state State) {
	var widthMiddle, lengthMiddle int
	if direction == ScrollbarUpArrow || direction == ScrollbarDownArrow {
		widthMiddle = rect.Width/2 + 1
		lengthMiddle = rect.Height/2 + 1
	} else {
		lengthMiddle = rect.Width/2 + 1
		widthMiddle = rect.Height/2 + 1
	}

	trackHSV := trackColor.HSV()
	buttonColor := colorutil.SaturateAndBrighten(trackHSV, 0, 0.2)
	backgroundColor := buttonColor
	if state == StatePressed {
		buttonColor = colorutil.SaturateAndBrighten(buttonColor.HSV(), 0, -0.1)
	} else if state == StateHovered {
		buttonColor = colorutil.SaturateAndBrighten(buttonColor.HSV(), 0, 0.05)
	}

	// The area visible behind the rounded corners.
	s.FillRect(rect, backgroundColor)

	fx := float64(rect.X)
	fy := float64(rect.Y)
	fw := float64(rect.Width)
	fh := float64(rect.Height)

	var outline geom.Path
	switch direction {
	case ScrollbarUpArrow:
		outline.MoveTo(fx+0.5, fy+fh+0.5)
		outline.RLineTo(0, -(fh - 2))
		outline.RLineTo(2, -2)
		outline.RLineTo(fw-5, 0)
		outline.RLineTo(2, 2)
		outline.RLineTo(0, fh-2)
	case ScrollbarDownArrow:
		outline.MoveTo(fx+0.5, fy-0.5)
		outline.RLineTo(0, fh-2)
		outline.RLineTo(2, 2)
		outline.RLineTo(fw-5, 0)
		outline.RLineTo(2, -2)
		outline.RLineTo(0, -(fh - 2))
	case ScrollbarRightArrow:
		outline.MoveTo(fx-0.5, fy+0.5)
		outline.RLineTo(fw-2, 0)
		outline.RLineTo(2, 2)
		outline.RLineTo(0, fh-5)
		outline.RLineTo(-2, 2)
		outline.RLineTo(-(fw - 2), 0)
	case ScrollbarLeftArrow:
		outline.MoveTo(fx+fw+0.5, fy+0.5)
		outline.RLineTo(-(fw - 2), 0)
		outline.RLineTo(-2, 2)
		outline.RLineTo(0, fh-5)
		outline.RLineTo(2, 2)
		outline.RLineTo(fw-2, 0)
	}
	outline.Close()

	s.FillPath(&outline, buttonColor)

	outlineColor := colorutil.OutlineColor(trackHSV, thumbInactiveColor.HSV())
	s.StrokePath(&outline, outlineColor)

	// A disabled button draws its arrow with the outline color; the weak
	// contrast is the disabled signal.
	arrowColor := outlineColor
	if state != StateDisabled {
		arrowColor = colorutil.Black
	}

	// The offsets below are hand-tailored to produce good looking arrows
	// without anti-aliasing.
	var glyph geom.Path
	switch direction {
	case ScrollbarUpArrow:
		glyph.MoveTo(float64(rect.X+widthMiddle-4), float64(rect.Y+lengthMiddle+2))
		glyph.RLineTo(7, 0)
		glyph.RLineTo(-4, -4)
	case ScrollbarDownArrow:
		glyph.MoveTo(float64(rect.X+widthMiddle-4), float64(rect.Y+lengthMiddle-3))
		glyph.RLineTo(7, 0)
		glyph.RLineTo(-4, 4)
	case ScrollbarRightArrow:
		glyph.MoveTo(float64(rect.X+lengthMiddle-3), float64(rect.Y+widthMiddle-4))
		glyph.RLineTo(0, 7)
		glyph.RLineTo(4, -4)
	case ScrollbarLeftArrow:
		glyph.MoveTo(float64(rect.X+lengthMiddle+1), float64(rect.Y+widthMiddle-5))
		glyph.RLineTo(0, 9)
		glyph.RLineTo(-4, -4)
	}
	glyph.Close()

	s.FillPath(&glyph, arrowColor)
}

func (t *Theme) paintCheckbox(s Surface, state State, rect geom.Rect, button ButtonExtraParams) {
	var id assets.ID
	if button.Indeterminate {
		id = assets.CheckboxIndeterminate
		if state == StateDisabled {
			id = assets.CheckboxDisabledIndeterminate
		}
	} else if button.Checked {
		id = assets.CheckboxOn
		if state == StateDisabled {
			id = assets.CheckboxDisabledOn
		}
	} else {
		id = assets.CheckboxOff
		if state == StateDisabled {
			id = assets.CheckboxDisabledOff
		}
	}
	t.paintCenteredImage(s, rect, t.assets.Image(id))
}

func (t *Theme) paintRadio(s Surface, state State, rect geom.Rect, button ButtonExtraParams) {
	var id assets.ID
	if state == StateDisabled {
		id = assets.RadioDisabledOff
		if button.Checked {
			id = assets.RadioDisabledOn
		}
	} else {
		id = assets.RadioOff
		if button.Checked {
			id = assets.RadioOn
		}
	}
	t.paintCenteredImage(s, rect, t.assets.Image(id))
}

// paintCenteredImage blits an asset at its natural size, centered in rect.
func (t *Theme) paintCenteredImage(s Surface, rect geom.Rect, img image.Image) {
	b := img.Bounds()
	size := geom.Size{Width: b.Dx(), Height: b.Dy()}
	bounds := rect.Center(size)
	s.DrawImage(img, geom.NewRect(0, 0, size.Width, size.Height), bounds)
}

func (t *Theme) paintButton(s Surface, state State, rect geom.Rect, button ButtonExtraParams) {
	right := rect.Right()
	bottom := rect.Bottom()
	baseColor := button.BackgroundColor
	baseHSL := baseColor.HSL()

	// If the button is too small, fall back to a single solid color; a
	// gradient at that size only produces artifacts.
	if rect.Width < 5 || rect.Height < 5 {
		s.FillRect(rect, baseColor)
		return
	}

	if button.HasBorder {
		borderAlpha := uint8(0x55)
		if state == StateHovered {
			borderAlpha = 0x80
		}
		borderColor := colorutil.ARGB(borderAlpha, 0, 0, 0)
		s.DrawLine(rect.X+1, rect.Y, right-1, rect.Y, borderColor)
		s.DrawLine(right-1, rect.Y+1, right-1, bottom-1, borderColor)
		s.DrawLine(rect.X+1, bottom-1, right-1, bottom-1, borderColor)
		s.DrawLine(rect.X, rect.Y+1, rect.X, bottom-1, borderColor)
	}

	lightColor := colorutil.BrightenColor(baseHSL, baseColor.Alpha(), buttonGradientLightness)

	// The light stop sits at the top normally; Pressed swaps the ends so
	// the button reads as sunken.
	lightEnd := geom.Point{X: rect.X, Y: rect.Y}
	darkEnd := geom.Point{X: rect.X, Y: bottom - 1}
	gradient := LinearGradient{
		From:  lightEnd,
		To:    darkEnd,
		Stops: [2]colorutil.Color{lightColor, baseColor},
	}
	if state == StatePressed {
		gradient.From, gradient.To = darkEnd, lightEnd
	}

	fill := rect
	if button.HasBorder {
		fill = geom.NewRect(rect.X+1, rect.Y+1, rect.Width-2, rect.Height-2)
	}
	s.FillRectLinearGradient(fill, gradient)

	if button.HasBorder {
		corner := colorutil.BrightenColor(baseHSL, baseColor.Alpha(), buttonCornerDarken)
		s.DrawPoint(rect.X+1, rect.Y+1, corner)
		s.DrawPoint(right-2, rect.Y+1, corner)
		s.DrawPoint(rect.X+1, bottom-2, corner)
		s.DrawPoint(right-2, bottom-2, corner)
	}
}

func (t *Theme) paintTextField(s Surface, state State, rect geom.Rect, text TextFieldExtraParams) {
	bounds := geom.NewRect(rect.X, rect.Y, rect.Width-1, rect.Height-1)

	s.FillRect(bounds, text.BackgroundColor)

	if text.IsTextArea {
		// Text areas get a plain 1px solid border.
		s.StrokeRect(bounds, colorutil.Black)
		return
	}

	// Text inputs and listboxes simulate an inset bevel:
	//   text input: 2px inset, listbox: 1px inset.
	lightColor := colorutil.RGB(0xee, 0xee, 0xee)
	darkColor := colorutil.RGB(0x9a, 0x9a, 0x9a)
	borderWidth := 2
	if text.IsListbox {
		lightColor = colorutil.RGB(0x80, 0x80, 0x80)
		darkColor = colorutil.RGB(0x2c, 0x2c, 0x2c)
		borderWidth = 1
	}

	left := float64(rect.X)
	top := float64(rect.Y)
	right := float64(rect.Right())
	bottom := float64(rect.Bottom())
	bw := float64(borderWidth)

	// Each edge is a trapezoid running from the outer corner to the inner
	// inset corner. Top and left shade dark, bottom and right light.
	var path geom.Path
	path.MoveTo(left, top)
	path.LineTo(left+bw, top+bw)
	path.LineTo(right-bw, top+bw)
	path.LineTo(right, top)
	s.FillPath(&path, darkColor)

	path.Reset()
	path.MoveTo(left+bw, bottom-bw)
	path.LineTo(left, bottom)
	path.LineTo(right, bottom)
	path.LineTo(right-bw, bottom-bw)
	s.FillPath(&path, lightColor)

	path.Reset()
	path.MoveTo(left, top)
	path.LineTo(left, bottom)
	path.LineTo(left+bw, bottom-bw)
	path.LineTo(left+bw, top+bw)
	s.FillPath(&path, darkColor)

	path.Reset()
	path.MoveTo(right-bw, top+bw)
	path.LineTo(right-bw, bottom)
	path.LineTo(right, bottom)
	path.LineTo(right, top)
	s.FillPath(&path, lightColor)
}

func (t *Theme) paintMenuList(s Surface, state State, rect geom.Rect, menu MenuListExtraParams) {
	// With a border radius the caller paints its own background and
	// border; we only contribute the arrow.
	if !menu.HasBorderRadius {
		button := ButtonExtraParams{
			BackgroundColor: menu.BackgroundColor,
			HasBorder:       menu.HasBorder,
		}
		t.paintButton(s, state, rect, button)
	}

	var path geom.Path
	path.MoveTo(float64(menu.ArrowX), float64(menu.ArrowY-3))
	path.RLineTo(6, 0)
	path.RLineTo(-3, 6)
	path.Close()
	s.FillPath(&path, colorutil.Black)
}

func (t *Theme) paintSliderTrack(s Surface, state State, rect geom.Rect, slider SliderExtraParams) {
	midX := rect.X + rect.Width/2
	midY := rect.Y + rect.Height/2

	var band geom.Rect
	if slider.Vertical {
		x1 := maxInt(rect.X, midX-2)
		x2 := minInt(rect.Right(), midX+2)
		band = geom.NewRect(x1, rect.Y, x2-x1, rect.Height)
	} else {
		y1 := maxInt(rect.Y, midY-2)
		y2 := minInt(rect.Bottom(), midY+2)
		band = geom.NewRect(rect.X, y1, rect.Width, y2-y1)
	}
	s.FillRect(band, sliderTrackBackground)
}

func (t *Theme) paintSliderThumb(s Surface, state State, rect geom.Rect, slider SliderExtraParams) {
	hovered := state == StateHovered || slider.InDrag
	midX := rect.X + rect.Width/2
	midY := rect.Y + rect.Height/2

	firstColor := sliderThumbLightGrey
	secondColor := sliderThumbDarkGrey
	if hovered {
		firstColor = colorutil.White
		secondColor = sliderThumbLightGrey
	}

	var first, second geom.Rect
	if slider.Vertical {
		first = geom.NewRect(rect.X, rect.Y, midX+1-rect.X, rect.Height)
		second = geom.NewRect(midX+1, rect.Y, rect.Right()-(midX+1), rect.Height)
	} else {
		first = geom.NewRect(rect.X, rect.Y, rect.Width, midY+1-rect.Y)
		second = geom.NewRect(rect.X, midY+1, rect.Width, rect.Bottom()-(midY+1))
	}
	s.FillRect(first, firstColor)
	s.FillRect(second, secondColor)

	drawBox(s, rect, sliderThumbBorderDarkGrey)

	if rect.Height > 10 && rect.Width > 10 {
		drawHorizLine(s, midX-2, midX+2, midY, sliderThumbBorderDarkGrey)
		drawHorizLine(s, midX-2, midX+2, midY-3, sliderThumbBorderDarkGrey)
		drawHorizLine(s, midX-2, midX+2, midY+3, sliderThumbBorderDarkGrey)
	}
}

func (t *Theme) paintInnerSpinButton(s Surface, state State, rect geom.Rect, spin InnerSpinButtonExtraParams) {
	if spin.ReadOnly {
		state = StateDisabled
	}

	// The half being spun stays live; the other half renders disabled.
	northState := StateDisabled
	southState := StateDisabled
	if state != StateDisabled {
		if spin.SpinUp {
			southState = StateNormal
		} else {
			northState = StateNormal
		}
	}

	half := geom.NewRect(rect.X, rect.Y, rect.Width, rect.Height/2)
	t.paintArrowButton(s, half, ScrollbarUpArrow, northState)

	half.Y = rect.Y + rect.Height/2
	t.paintArrowButton(s, half, ScrollbarDownArrow, southState)
}

func (t *Theme) paintProgressBar(s Surface, state State, rect geom.Rect, progress ProgressBarExtraParams) {
	barImage := t.assets.Image(assets.ProgressBar)
	leftBorderImage := t.assets.Image(assets.ProgressBorderLeft)
	rightBorderImage := t.assets.Image(assets.ProgressBorderRight)

	barBounds := barImage.Bounds()
	tileScale := float64(rect.Height) / float64(barBounds.Dy())

	// Derive the horizontal scale from the rounded tile width so tiles keep
	// their aspect ratio at integral pixel sizes.
	newTileWidth := int(float64(barBounds.Dx()) * tileScale)
	tileScaleX := float64(newTileWidth) / float64(barBounds.Dx())

	s.TileImage(barImage, 0, 0, tileScaleX, tileScale, rect)

	if progress.ValueRectWidth != 0 {
		valueImage := t.assets.Image(assets.ProgressValue)
		valueBounds := valueImage.Bounds()

		newTileWidth = int(float64(valueBounds.Dx()) * tileScale)
		tileScaleX = float64(newTileWidth) / float64(valueBounds.Dx())

		valueRect := geom.NewRect(progress.ValueRectX, progress.ValueRectY,
			progress.ValueRectWidth, progress.ValueRectHeight)
		s.TileImage(valueImage, 0, 0, tileScaleX, tileScale, valueRect)
	}

	// Border caps scale with the bar height and hug the rect edges. The
	// value segment gets no border of its own.
	leftBounds := leftBorderImage.Bounds()
	destLeftWidth := int(float64(leftBounds.Dx()) * tileScale)
	s.DrawImage(leftBorderImage,
		geom.NewRect(0, 0, leftBounds.Dx(), leftBounds.Dy()),
		geom.NewRect(rect.X, rect.Y, destLeftWidth, rect.Height))

	rightBounds := rightBorderImage.Bounds()
	destRightWidth := int(float64(rightBounds.Dx()) * tileScale)
	s.DrawImage(rightBorderImage,
		geom.NewRect(0, 0, rightBounds.Dx(), rightBounds.Dy()),
		geom.NewRect(rect.Right()-destRightWidth, rect.Y, destRightWidth, rect.Height))
}

// drawHorizLine fills a 1px horizontal run. x2 is inclusive: the line
// covers one extra device pixel past the nominal endpoint.
func drawHorizLine(s Surface, x1, x2, y int, c colorutil.Color) {
	s.FillRect(geom.NewRect(x1, y, x2-x1+1, 1), c)
}

// drawVertLine fills a 1px vertical run. y2 is inclusive.
func drawVertLine(s Surface, x, y1, y2 int, c colorutil.Color) {
	s.FillRect(geom.NewRect(x, y1, 1, y2-y1+1), c)
}

// drawBox outlines rect with 1px lines built from the inclusive line
// primitives.
func drawBox(s Surface, rect geom.Rect, c colorutil.Color) {
	right := rect.X + rect.Width - 1
	bottom := rect.Y + rect.Height - 1
	drawHorizLine(s, rect.X, right, rect.Y, c)
	drawVertLine(s, right, rect.Y, bottom, c)
	drawHorizLine(s, rect.X, right, bottom, c)
	drawVertLine(s, rect.X, rect.Y, bottom, c)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
